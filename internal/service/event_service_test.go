package service

import (
	"context"
	"testing"
	"time"

	dom "Assistant/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_EventsInRange_ConcatOrder(t *testing.T) {
	todoRepo := newFakeTodoRepo()
	remRepo := newFakeReminderRepo()
	svc := NewEventService(remRepo, todoRepo)

	base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	// Interleave dates across kinds: the feed must still be all reminders
	// first, then all todos, each half sorted on its own.
	_, err := remRepo.Create(context.Background(), dom.Reminder{Title: "r-late", DateTime: base.Add(72 * time.Hour)})
	require.NoError(t, err)
	_, err = remRepo.Create(context.Background(), dom.Reminder{Title: "r-early", DateTime: base.Add(2 * time.Hour)})
	require.NoError(t, err)

	due := base.Add(24 * time.Hour)
	_, err = todoRepo.Create(context.Background(), dom.Todo{Title: "t-mid", DueDate: &due})
	require.NoError(t, err)

	events, err := svc.EventsInRange(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, "r-early", events[0].Title)
	assert.Equal(t, "r-late", events[1].Title)
	assert.Equal(t, "t-mid", events[2].Title)

	assert.Equal(t, dom.EventTypeReminder, events[0].Type)
	assert.Equal(t, dom.EventTypeReminder, events[1].Type)
	assert.Equal(t, dom.EventTypeTodo, events[2].Type)

	// Completed only travels with todo events.
	assert.Nil(t, events[0].Completed)
	require.NotNil(t, events[2].Completed)
	assert.False(t, *events[2].Completed)
}

func TestEventService_EventsInRange_DefaultWindow(t *testing.T) {
	todoRepo := newFakeTodoRepo()
	remRepo := newFakeReminderRepo()
	svc := NewEventService(remRepo, todoRepo)

	base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	_, err := remRepo.Create(context.Background(), dom.Reminder{Title: "inside", DateTime: base.Add(29 * 24 * time.Hour)})
	require.NoError(t, err)
	_, err = remRepo.Create(context.Background(), dom.Reminder{Title: "outside", DateTime: base.Add(31 * 24 * time.Hour)})
	require.NoError(t, err)

	events, err := svc.EventsInRange(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "inside", events[0].Title)
}

func TestEventService_EventsInRange_ExplicitRange(t *testing.T) {
	todoRepo := newFakeTodoRepo()
	remRepo := newFakeReminderRepo()
	svc := NewEventService(remRepo, todoRepo)

	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	_, err := remRepo.Create(context.Background(), dom.Reminder{Title: "in", DateTime: start.Add(time.Hour)})
	require.NoError(t, err)
	_, err = remRepo.Create(context.Background(), dom.Reminder{Title: "before", DateTime: start.Add(-time.Hour)})
	require.NoError(t, err)

	events, err := svc.EventsInRange(context.Background(), &start, &end)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "in", events[0].Title)
}

func TestEventService_EventsOnDay(t *testing.T) {
	todoRepo := newFakeTodoRepo()
	remRepo := newFakeReminderRepo()
	svc := NewEventService(remRepo, todoRepo)

	day := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	_, err := remRepo.Create(context.Background(), dom.Reminder{Title: "same-day", DateTime: day.Add(9 * time.Hour)})
	require.NoError(t, err)
	due := day.Add(17 * time.Hour)
	_, err = todoRepo.Create(context.Background(), dom.Todo{Title: "due-today", DueDate: &due})
	require.NoError(t, err)
	otherDue := day.Add(30 * time.Hour)
	_, err = todoRepo.Create(context.Background(), dom.Todo{Title: "due-tomorrow", DueDate: &otherDue})
	require.NoError(t, err)

	rems, todos, err := svc.EventsOnDay(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, rems, 1)
	require.Len(t, todos, 1)
	assert.Equal(t, "same-day", rems[0].Title)
	assert.Equal(t, "due-today", todos[0].Title)
}
