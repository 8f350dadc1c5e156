package service

import (
	"context"
	"time"

	dom "Assistant/internal/domain"
	"Assistant/internal/httperr"
	"Assistant/internal/repo"

	"golang.org/x/sync/errgroup"
)

// DefaultEventWindow is the range applied when no end date is given.
const DefaultEventWindow = 30 * 24 * time.Hour

// EventService combines reminders and todos into one calendar feed.
type EventService struct {
	reminders repo.ReminderRepo
	todos     repo.TodoRepo
	now       func() time.Time
}

func NewEventService(reminders repo.ReminderRepo, todos repo.TodoRepo) *EventService {
	return &EventService{reminders: reminders, todos: todos, now: time.Now}
}

// EventsInRange fetches both record kinds concurrently and returns
// [reminder events..., todo events...]. Each half is sorted ascending by its
// own date field; the halves are concatenated, never interleaved.
func (s *EventService) EventsInRange(ctx context.Context, start, end *time.Time) ([]dom.Event, error) {
	from := s.now()
	if start != nil {
		from = *start
	}
	to := from.Add(DefaultEventWindow)
	if end != nil {
		to = *end
	}

	var (
		rems  []dom.Reminder
		todos []dom.Todo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rems, err = s.reminders.InRange(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		todos, err = s.todos.DueInRange(gctx, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, httperr.Service("Failed to fetch calendar events", err)
	}

	events := make([]dom.Event, 0, len(rems)+len(todos))
	for _, r := range rems {
		events = append(events, dom.EventFromReminder(r))
	}
	for _, t := range todos {
		events = append(events, dom.EventFromTodo(t))
	}
	return events, nil
}

// EventsOnDay returns the raw records of a single day, unmerged.
func (s *EventService) EventsOnDay(ctx context.Context, day time.Time) ([]dom.Reminder, []dom.Todo, error) {
	var (
		rems  []dom.Reminder
		todos []dom.Todo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rems, err = s.reminders.OnDay(gctx, day)
		return err
	})
	g.Go(func() error {
		var err error
		todos, err = s.todos.DueOnDay(gctx, day)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, httperr.Service("Failed to fetch events", err)
	}
	return rems, todos, nil
}
