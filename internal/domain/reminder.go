package domain

import "time"

// Repeat values. Stored as-is; recurrence is never materialized here.
const (
	RepeatNone    = "none"
	RepeatDaily   = "daily"
	RepeatWeekly  = "weekly"
	RepeatMonthly = "monthly"
	RepeatYearly  = "yearly"
)

// Reminder always carries a DateTime; the event merge relies on it.
type Reminder struct {
	ID          int64
	Title       string
	Description string
	DateTime    time.Time
	Repeat      string
	Priority    string
	Completed   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
