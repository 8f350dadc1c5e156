package domain

import "time"

// Priority levels shared by todos and reminders.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Domain entity: бизнес-объект (истина).
// Не зависит от Gin, Postgres, Redis.
type Todo struct {
	ID          int64
	Title       string
	Description string
	DueDate     *time.Time
	Priority    string
	Completed   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
