package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"Assistant/internal/app"
	dom "Assistant/internal/domain"
	"Assistant/internal/handlers"
	"Assistant/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memReminderRepo struct {
	reminders map[int64]dom.Reminder
	nextID    int64
}

func newMemReminderRepo() *memReminderRepo {
	return &memReminderRepo{reminders: map[int64]dom.Reminder{}, nextID: 1}
}

func (r *memReminderRepo) Create(_ context.Context, rem dom.Reminder) (dom.Reminder, error) {
	rem.ID = r.nextID
	r.nextID++
	rem.CreatedAt = time.Now()
	rem.UpdatedAt = rem.CreatedAt
	r.reminders[rem.ID] = rem
	return rem, nil
}

func (r *memReminderRepo) GetByID(_ context.Context, id int64) (dom.Reminder, error) {
	rem, ok := r.reminders[id]
	if !ok {
		return dom.Reminder{}, pgx.ErrNoRows
	}
	return rem, nil
}

func (r *memReminderRepo) List(_ context.Context) ([]dom.Reminder, error) {
	out := make([]dom.Reminder, 0, len(r.reminders))
	for _, rem := range r.reminders {
		out = append(out, rem)
	}
	return out, nil
}

func (r *memReminderRepo) Update(_ context.Context, id int64, patch dom.Reminder) (dom.Reminder, error) {
	if _, ok := r.reminders[id]; !ok {
		return dom.Reminder{}, pgx.ErrNoRows
	}
	patch.ID = id
	r.reminders[id] = patch
	return patch, nil
}

func (r *memReminderRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.reminders[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.reminders, id)
	return nil
}

func (r *memReminderRepo) Upcoming(_ context.Context, _ time.Time, _ int) ([]dom.Reminder, error) {
	return nil, nil
}

func (r *memReminderRepo) InRange(_ context.Context, _, _ time.Time) ([]dom.Reminder, error) {
	return nil, nil
}

func (r *memReminderRepo) OnDay(_ context.Context, _ time.Time) ([]dom.Reminder, error) {
	return nil, nil
}

func newReminderRouter(repo *memReminderRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	r := gin.New()
	r.Use(app.ErrorHandler(log))

	h := handlers.NewReminderHandler(service.NewReminderService(repo, nil))
	r.POST("/reminders", h.Create)
	r.PUT("/reminders/:id", h.Update)
	return r
}

func TestReminderHandler_Update_NullDateTimeRejected(t *testing.T) {
	repo := newMemReminderRepo()
	r := newReminderRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/reminders", `{"title":"dentist","dateTime":"2025-09-01T10:00:00Z"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/reminders/1", `{"dateTime":null}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "dateTime cannot be empty")

	// Absent dateTime leaves the stored value alone.
	w = doJSON(t, r, http.MethodPut, "/reminders/1", `{"title":"dentist (moved)"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "2025-09-01T10:00:00Z", updated["dateTime"])
}
