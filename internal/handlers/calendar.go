package handlers

import (
	"net/http"
	"time"

	"Assistant/internal/auth"
	"Assistant/internal/clients/gcal"
	"Assistant/internal/dto"
	"Assistant/internal/httperr"
	"Assistant/internal/service"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	events *service.EventService
	gcal   *service.CalendarService
}

func NewCalendarHandler(events *service.EventService, gcalSvc *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{events: events, gcal: gcalSvc}
}

// AuthURL godoc
// @Summary      Get the Google Calendar consent URL
// @Tags         calendar
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /calendar/auth [get]
func (h *CalendarHandler) AuthURL(c *gin.Context) {
	url, err := h.gcal.AuthURL()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Callback godoc
// @Summary      OAuth2 callback: exchange the code and persist tokens
// @Tags         calendar
// @Produce      json
// @Param        code  query     string  true  "Authorization code"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /calendar/auth/callback [get]
func (h *CalendarHandler) Callback(c *gin.Context) {
	userID := currentCalendarUser(c)
	if err := h.gcal.HandleCallback(c.Request.Context(), userID, c.Query("code")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Events godoc
// @Summary      Merged reminder+todo events for a date range
// @Description  Reminder events first (by dateTime), then todo events (by dueDate). The halves are concatenated, not interleaved.
// @Tags         calendar
// @Produce      json
// @Param        start  query     string  false  "Range start (default now)"
// @Param        end    query     string  false  "Range end (default start+30d)"
// @Success      200    {array}   dto.EventResponse
// @Failure      400    {object}  map[string]string
// @Router       /calendar/events [get]
func (h *CalendarHandler) Events(c *gin.Context) {
	var start, end *time.Time
	if raw := c.Query("start"); raw != "" {
		t, err := dto.ParseDate(raw)
		if err != nil {
			fail(c, httperr.Validation("start: "+err.Error()))
			return
		}
		start = &t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := dto.ParseDate(raw)
		if err != nil {
			fail(c, httperr.Validation("end: "+err.Error()))
			return
		}
		end = &t
	}
	events, err := h.events.EventsInRange(c.Request.Context(), start, end)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, eventsToResponses(events))
}

// EventsByDate godoc
// @Summary      Raw reminders and todos of a single day
// @Tags         calendar
// @Produce      json
// @Param        date  path      string  true  "Day (YYYY-MM-DD)"
// @Success      200   {object}  dto.EventsByDateResponse
// @Failure      400   {object}  map[string]string
// @Router       /calendar/events/{date} [get]
func (h *CalendarHandler) EventsByDate(c *gin.Context) {
	day, err := dto.ParseDate(c.Param("date"))
	if err != nil {
		fail(c, httperr.Validation("date: "+err.Error()))
		return
	}
	rems, todos, err := h.events.EventsOnDay(c.Request.Context(), day)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.EventsByDateResponse{
		Date:      day.Format("2006-01-02"),
		Reminders: remindersToResponses(rems),
		Todos:     todosToResponses(todos),
	})
}

// GoogleEvents lists events from the connected Google calendar.
func (h *CalendarHandler) GoogleEvents(c *gin.Context) {
	timeMin := time.Now()
	timeMax := timeMin.Add(service.DefaultEventWindow)
	if raw := c.Query("start"); raw != "" {
		t, err := dto.ParseDate(raw)
		if err != nil {
			fail(c, httperr.Validation("start: "+err.Error()))
			return
		}
		timeMin = t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := dto.ParseDate(raw)
		if err != nil {
			fail(c, httperr.Validation("end: "+err.Error()))
			return
		}
		timeMax = t
	}
	payload, err := h.gcal.ListEvents(c.Request.Context(), currentCalendarUser(c), timeMin, timeMax)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// GoogleEventCreate inserts an event into the connected calendar.
func (h *CalendarHandler) GoogleEventCreate(c *gin.Context) {
	ev, ok := bindGCalEvent(c)
	if !ok {
		return
	}
	payload, err := h.gcal.AddEvent(c.Request.Context(), currentCalendarUser(c), ev)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusCreated, "application/json; charset=utf-8", payload)
}

// GoogleEventUpdate replaces an event by provider id.
func (h *CalendarHandler) GoogleEventUpdate(c *gin.Context) {
	ev, ok := bindGCalEvent(c)
	if !ok {
		return
	}
	payload, err := h.gcal.UpdateEvent(c.Request.Context(), currentCalendarUser(c), c.Param("id"), ev)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// GoogleEventDelete removes an event by provider id.
func (h *CalendarHandler) GoogleEventDelete(c *gin.Context) {
	if err := h.gcal.DeleteEvent(c.Request.Context(), currentCalendarUser(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Message: "Event deleted successfully"})
}

func bindGCalEvent(c *gin.Context) (gcal.Event, bool) {
	var req dto.GCalEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, httperr.Validation(err.Error()))
		return gcal.Event{}, false
	}
	start := req.Start.Ptr()
	if start == nil {
		fail(c, httperr.Validation("start is required"))
		return gcal.Event{}, false
	}
	ev := gcal.Event{
		Title:       req.Title,
		Description: req.Description,
		Start:       *start,
	}
	if req.End != nil && req.End.Ptr() != nil {
		ev.End = *req.End.Ptr()
	}
	return ev, true
}

func currentCalendarUser(c *gin.Context) int64 {
	if id := auth.UserIDFromContext(c); id != 0 {
		return id
	}
	return service.LocalAccountID
}
