package dto

import "time"

// EventResponse is one entry of the merged calendar feed.
// Completed is present for todo events only.
type EventResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Completed   *bool     `json:"completed,omitempty"`
}

// EventsByDateResponse is the single-day form: raw records, unmerged.
type EventsByDateResponse struct {
	Date      string             `json:"date"`
	Reminders []ReminderResponse `json:"reminders"`
	Todos     []TodoResponse     `json:"todos"`
}

// GCalEventRequest is the body for Google Calendar event create/update.
type GCalEventRequest struct {
	Title       string    `json:"title" binding:"required,min=1"`
	Description string    `json:"description"`
	Start       DateTime  `json:"start" binding:"required"`
	End         *DateTime `json:"end"`
}
