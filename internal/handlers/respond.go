package handlers

import (
	"strconv"

	dom "Assistant/internal/domain"
	"Assistant/internal/dto"
	"Assistant/internal/httperr"

	"github.com/gin-gonic/gin"
)

// fail records err for the error middleware and stops the chain.
// Nothing writes a response here; the middleware owns the error body.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		fail(c, httperr.Validation("invalid id"))
		return 0, false
	}
	return id, true
}

func todoToResponse(t dom.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func todosToResponses(list []dom.Todo) []dto.TodoResponse {
	out := make([]dto.TodoResponse, len(list))
	for i := range list {
		out[i] = todoToResponse(list[i])
	}
	return out
}

func reminderToResponse(r dom.Reminder) dto.ReminderResponse {
	return dto.ReminderResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DateTime:    r.DateTime,
		Repeat:      r.Repeat,
		Priority:    r.Priority,
		Completed:   r.Completed,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func remindersToResponses(list []dom.Reminder) []dto.ReminderResponse {
	out := make([]dto.ReminderResponse, len(list))
	for i := range list {
		out[i] = reminderToResponse(list[i])
	}
	return out
}

func eventToResponse(e dom.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Start:       e.Start,
		End:         e.End,
		Type:        e.Type,
		Description: e.Description,
		Priority:    e.Priority,
		Completed:   e.Completed,
	}
}

func eventsToResponses(list []dom.Event) []dto.EventResponse {
	out := make([]dto.EventResponse, len(list))
	for i := range list {
		out[i] = eventToResponse(list[i])
	}
	return out
}
