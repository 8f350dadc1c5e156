package dto

import "time"

type CreateTodoRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=200"`
	Description string   `json:"description" binding:"max=2000"`
	DueDate     DateTime `json:"dueDate"` // optional: "2026-02-19" or RFC3339
	Priority    string   `json:"priority" binding:"omitempty,oneof=low medium high"`
}

type UpdateTodoRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string   `json:"description" binding:"omitempty,max=2000"`
	DueDate     DateTime  `json:"dueDate"` // отсутствует = не менять, null/"" = очистить, значение = поставить
	Priority    *string   `json:"priority" binding:"omitempty,oneof=low medium high"`
	Completed   *bool     `json:"completed"`
}

type TodoResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    string     `json:"priority"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// DeleteResponse is the confirmation body for DELETE endpoints.
type DeleteResponse struct {
	Message string `json:"message"`
}
