package service

import (
	"context"
	"sort"
	"time"

	dom "Assistant/internal/domain"

	"github.com/jackc/pgx/v5"
)

// fakeTodoRepo is an in-memory TodoRepo for service tests.
type fakeTodoRepo struct {
	todos  map[int64]dom.Todo
	nextID int64
	err    error // when set, every call fails with it
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: map[int64]dom.Todo{}, nextID: 1}
}

func (r *fakeTodoRepo) Create(_ context.Context, t dom.Todo) (dom.Todo, error) {
	if r.err != nil {
		return dom.Todo{}, r.err
	}
	t.ID = r.nextID
	r.nextID++
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	r.todos[t.ID] = t
	return t, nil
}

func (r *fakeTodoRepo) GetByID(_ context.Context, id int64) (dom.Todo, error) {
	if r.err != nil {
		return dom.Todo{}, r.err
	}
	t, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *fakeTodoRepo) List(_ context.Context) ([]dom.Todo, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]dom.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTodoRepo) Update(_ context.Context, id int64, patch dom.Todo) (dom.Todo, error) {
	if r.err != nil {
		return dom.Todo{}, r.err
	}
	if _, ok := r.todos[id]; !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	patch.ID = id
	patch.UpdatedAt = time.Now()
	r.todos[id] = patch
	return patch, nil
}

func (r *fakeTodoRepo) Delete(_ context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.todos[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.todos, id)
	return nil
}

func (r *fakeTodoRepo) DueInRange(_ context.Context, start, end time.Time) ([]dom.Todo, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []dom.Todo
	for _, t := range r.todos {
		if t.DueDate != nil && !t.DueDate.Before(start) && !t.DueDate.After(end) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTodoRepo) DueOnDay(_ context.Context, day time.Time) ([]dom.Todo, error) {
	return r.DueInRange(context.Background(), day, day.Add(24*time.Hour-time.Nanosecond))
}

// fakeReminderRepo is an in-memory ReminderRepo for service tests.
type fakeReminderRepo struct {
	reminders map[int64]dom.Reminder
	nextID    int64
	err       error

	lastUpcomingLimit int
	lastUpcomingFrom  time.Time
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{reminders: map[int64]dom.Reminder{}, nextID: 1}
}

func (r *fakeReminderRepo) Create(_ context.Context, rem dom.Reminder) (dom.Reminder, error) {
	if r.err != nil {
		return dom.Reminder{}, r.err
	}
	rem.ID = r.nextID
	r.nextID++
	rem.CreatedAt = time.Now()
	rem.UpdatedAt = rem.CreatedAt
	r.reminders[rem.ID] = rem
	return rem, nil
}

func (r *fakeReminderRepo) GetByID(_ context.Context, id int64) (dom.Reminder, error) {
	if r.err != nil {
		return dom.Reminder{}, r.err
	}
	rem, ok := r.reminders[id]
	if !ok {
		return dom.Reminder{}, pgx.ErrNoRows
	}
	return rem, nil
}

func (r *fakeReminderRepo) List(_ context.Context) ([]dom.Reminder, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]dom.Reminder, 0, len(r.reminders))
	for _, rem := range r.reminders {
		out = append(out, rem)
	}
	return out, nil
}

func (r *fakeReminderRepo) Update(_ context.Context, id int64, patch dom.Reminder) (dom.Reminder, error) {
	if r.err != nil {
		return dom.Reminder{}, r.err
	}
	if _, ok := r.reminders[id]; !ok {
		return dom.Reminder{}, pgx.ErrNoRows
	}
	patch.ID = id
	patch.UpdatedAt = time.Now()
	r.reminders[id] = patch
	return patch, nil
}

func (r *fakeReminderRepo) Delete(_ context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.reminders[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.reminders, id)
	return nil
}

func (r *fakeReminderRepo) Upcoming(_ context.Context, from time.Time, limit int) ([]dom.Reminder, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.lastUpcomingFrom = from
	r.lastUpcomingLimit = limit
	var out []dom.Reminder
	for _, rem := range r.reminders {
		if !rem.DateTime.Before(from) {
			out = append(out, rem)
		}
	}
	sortRemindersByDate(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeReminderRepo) InRange(_ context.Context, start, end time.Time) ([]dom.Reminder, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []dom.Reminder
	for _, rem := range r.reminders {
		if !rem.DateTime.Before(start) && !rem.DateTime.After(end) {
			out = append(out, rem)
		}
	}
	sortRemindersByDate(out)
	return out, nil
}

func (r *fakeReminderRepo) OnDay(_ context.Context, day time.Time) ([]dom.Reminder, error) {
	return r.InRange(context.Background(), day, day.Add(24*time.Hour-time.Nanosecond))
}

// fakeReminderCache is an in-memory ReminderCache for service tests.
type fakeReminderCache struct {
	list     []dom.Reminder
	upcoming map[int][]dom.Reminder
}

func newFakeReminderCache() *fakeReminderCache {
	return &fakeReminderCache{upcoming: map[int][]dom.Reminder{}}
}

func (c *fakeReminderCache) GetReminderList(context.Context) ([]dom.Reminder, error) {
	return c.list, nil
}

func (c *fakeReminderCache) SetReminderList(_ context.Context, list []dom.Reminder) error {
	c.list = list
	return nil
}

func (c *fakeReminderCache) GetUpcoming(_ context.Context, limit int) ([]dom.Reminder, error) {
	return c.upcoming[limit], nil
}

func (c *fakeReminderCache) SetUpcoming(_ context.Context, limit int, list []dom.Reminder) error {
	c.upcoming[limit] = list
	return nil
}

func (c *fakeReminderCache) InvalidateReminders(context.Context) error {
	c.list = nil
	c.upcoming = map[int][]dom.Reminder{}
	return nil
}

func sortRemindersByDate(list []dom.Reminder) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].DateTime.Before(list[j].DateTime)
	})
}
