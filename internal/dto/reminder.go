package dto

import "time"

type CreateReminderRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=200"`
	Description string   `json:"description" binding:"max=2000"`
	DateTime    DateTime `json:"dateTime" binding:"required"`
	Repeat      string   `json:"repeat" binding:"omitempty,oneof=none daily weekly monthly yearly"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=low medium high"`
}

type UpdateReminderRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string   `json:"description" binding:"omitempty,max=2000"`
	DateTime    DateTime  `json:"dateTime"` // отсутствует = не менять; null недопустим, поле обязательное
	Repeat      *string   `json:"repeat" binding:"omitempty,oneof=none daily weekly monthly yearly"`
	Priority    *string   `json:"priority" binding:"omitempty,oneof=low medium high"`
	Completed   *bool     `json:"completed"`
}

type ReminderResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"dateTime"`
	Repeat      string    `json:"repeat"`
	Priority    string    `json:"priority"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
