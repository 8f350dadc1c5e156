package handlers

import (
	"net/http"
	"strconv"

	"Assistant/internal/dto"
	"Assistant/internal/httperr"
	"Assistant/internal/service"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	svc *service.ReminderService
}

func NewReminderHandler(svc *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{svc: svc}
}

// List godoc
// @Summary      List all reminders, soonest first
// @Tags         reminders
// @Produce      json
// @Success      200  {array}   dto.ReminderResponse
// @Failure      500  {object}  map[string]string
// @Router       /reminders [get]
func (h *ReminderHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, remindersToResponses(list))
}

// Upcoming godoc
// @Summary      List upcoming reminders (dateTime >= now)
// @Tags         reminders
// @Produce      json
// @Param        limit  query     int  false  "Max results (default 5)"
// @Success      200    {array}   dto.ReminderResponse
// @Failure      500    {object}  map[string]string
// @Router       /reminders/upcoming [get]
func (h *ReminderHandler) Upcoming(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			fail(c, httperr.Validation("limit must be a positive integer"))
			return
		}
		limit = n
	}
	list, err := h.svc.Upcoming(c.Request.Context(), limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, remindersToResponses(list))
}

// Create godoc
// @Summary      Create a reminder
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateReminderRequest  true  "Reminder body"
// @Success      201   {object}  dto.ReminderResponse
// @Failure      400   {object}  map[string]string
// @Router       /reminders [post]
func (h *ReminderHandler) Create(c *gin.Context) {
	var req dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, httperr.Validation(err.Error()))
		return
	}
	when := req.DateTime.Ptr()
	if when == nil {
		fail(c, httperr.Validation("dateTime is required"))
		return
	}
	rem, err := h.svc.Create(c.Request.Context(), req.Title, req.Description, *when, req.Repeat, req.Priority)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, reminderToResponse(rem))
}

// Update godoc
// @Summary      Update a reminder (merge-patch)
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Reminder ID"
// @Param        body  body      dto.UpdateReminderRequest  true  "Fields to change"
// @Success      200   {object}  dto.ReminderResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /reminders/{id} [put]
func (h *ReminderHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, httperr.Validation(err.Error()))
		return
	}
	patch := service.ReminderPatch{
		Title:       req.Title,
		Description: req.Description,
		Repeat:      req.Repeat,
		Priority:    req.Priority,
		Completed:   req.Completed,
	}
	if req.DateTime.Present() {
		p := req.DateTime.Ptr()
		if p == nil {
			fail(c, httperr.Validation("dateTime cannot be empty"))
			return
		}
		patch.DateTime = p
	}
	rem, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reminderToResponse(rem))
}

// Delete godoc
// @Summary      Delete a reminder
// @Tags         reminders
// @Produce      json
// @Param        id   path      int  true  "Reminder ID"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  map[string]string
// @Router       /reminders/{id} [delete]
func (h *ReminderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Message: "Reminder deleted successfully"})
}
