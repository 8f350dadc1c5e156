package domain

import "time"

// Event types in the merged calendar feed.
const (
	EventTypeReminder = "reminder"
	EventTypeTodo     = "todo"
)

// Event is the generic calendar entry a Reminder or Todo maps to.
// Completed is only meaningful for todo events.
type Event struct {
	ID          int64
	Title       string
	Start       time.Time
	End         time.Time
	Type        string
	Description string
	Priority    string
	Completed   *bool
}

// EventFromReminder maps a reminder to its calendar event (start == end == DateTime).
func EventFromReminder(r Reminder) Event {
	return Event{
		ID:          r.ID,
		Title:       r.Title,
		Start:       r.DateTime,
		End:         r.DateTime,
		Type:        EventTypeReminder,
		Description: r.Description,
		Priority:    r.Priority,
	}
}

// EventFromTodo maps a todo with a due date to its calendar event.
func EventFromTodo(t Todo) Event {
	var start time.Time
	if t.DueDate != nil {
		start = *t.DueDate
	}
	completed := t.Completed
	return Event{
		ID:          t.ID,
		Title:       t.Title,
		Start:       start,
		End:         start,
		Type:        EventTypeTodo,
		Description: t.Description,
		Priority:    t.Priority,
		Completed:   &completed,
	}
}
