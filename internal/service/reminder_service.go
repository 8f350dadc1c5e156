package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	dom "Assistant/internal/domain"
	"Assistant/internal/httperr"
	"Assistant/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

// DefaultUpcomingLimit caps GET /reminders/upcoming when no limit is given.
const DefaultUpcomingLimit = 5

// ReminderPatch carries the fields of a merge-patch update.
type ReminderPatch struct {
	Title       *string
	Description *string
	DateTime    *time.Time
	Repeat      *string
	Priority    *string
	Completed   *bool
}

// ReminderCache is the part of the record cache the reminder service
// reads and writes. *cache.RecordCache satisfies it.
type ReminderCache interface {
	GetReminderList(ctx context.Context) ([]dom.Reminder, error)
	SetReminderList(ctx context.Context, list []dom.Reminder) error
	GetUpcoming(ctx context.Context, limit int) ([]dom.Reminder, error)
	SetUpcoming(ctx context.Context, limit int, list []dom.Reminder) error
	InvalidateReminders(ctx context.Context) error
}

type ReminderService struct {
	repo  repo.ReminderRepo
	cache ReminderCache
	sf    singleflight.Group
	now   func() time.Time
}

// NewReminderService creates a ReminderService. If c is nil, caching is disabled.
func NewReminderService(r repo.ReminderRepo, c ReminderCache) *ReminderService {
	return &ReminderService{repo: r, cache: c, now: time.Now}
}

func (s *ReminderService) Create(ctx context.Context, title, desc string, dateTime time.Time, repeat, priority string) (dom.Reminder, error) {
	title = strings.TrimSpace(title)
	desc = strings.TrimSpace(desc)
	if repeat == "" {
		repeat = dom.RepeatNone
	}
	if priority == "" {
		priority = dom.PriorityMedium
	}

	rem, err := s.repo.Create(ctx, dom.Reminder{
		Title:       title,
		Description: desc,
		DateTime:    dateTime,
		Repeat:      repeat,
		Priority:    priority,
		Completed:   false,
	})
	if err != nil {
		return dom.Reminder{}, httperr.Service("Failed to create reminder", err)
	}
	s.invalidate(ctx)
	return rem, nil
}

// List returns all reminders, soonest first.
func (s *ReminderService) List(ctx context.Context) ([]dom.Reminder, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("reminder:list", func() (interface{}, error) {
			if list, err := s.cache.GetReminderList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetReminderList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, httperr.Service("Failed to fetch reminders", err)
		}
		return v.([]dom.Reminder), nil
	}
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, httperr.Service("Failed to fetch reminders", err)
	}
	return list, nil
}

// Upcoming returns at most limit reminders with dateTime >= now, soonest first.
func (s *ReminderService) Upcoming(ctx context.Context, limit int) ([]dom.Reminder, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	now := s.now()
	if s.cache != nil {
		v, err, _ := s.sf.Do("reminder:upcoming:"+strconv.Itoa(limit), func() (interface{}, error) {
			if list, err := s.cache.GetUpcoming(ctx, limit); err == nil && list != nil {
				// A cached slice can outlive its entries within the TTL.
				// Serve it only while every entry is still ahead of now;
				// once any has passed, refetch so the limit stays filled.
				if fresh := notBefore(list, now); len(fresh) == len(list) {
					return fresh, nil
				}
			}
			list, err := s.repo.Upcoming(ctx, now, limit)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetUpcoming(ctx, limit, list)
			return list, nil
		})
		if err != nil {
			return nil, httperr.Service("Failed to fetch upcoming reminders", err)
		}
		return v.([]dom.Reminder), nil
	}
	list, err := s.repo.Upcoming(ctx, now, limit)
	if err != nil {
		return nil, httperr.Service("Failed to fetch upcoming reminders", err)
	}
	return list, nil
}

// notBefore returns the reminders whose dateTime has not yet passed.
func notBefore(list []dom.Reminder, now time.Time) []dom.Reminder {
	out := make([]dom.Reminder, 0, len(list))
	for _, r := range list {
		if !r.DateTime.Before(now) {
			out = append(out, r)
		}
	}
	return out
}

// Update applies patch as a shallow merge onto the stored record.
func (s *ReminderService) Update(ctx context.Context, id int64, patch ReminderPatch) (dom.Reminder, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Reminder{}, httperr.NotFound("Reminder not found")
		}
		return dom.Reminder{}, httperr.Service("Failed to update reminder", err)
	}
	merged := existing
	if patch.Title != nil {
		merged.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		merged.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.DateTime != nil {
		merged.DateTime = *patch.DateTime
	}
	if patch.Repeat != nil {
		merged.Repeat = *patch.Repeat
	}
	if patch.Priority != nil {
		merged.Priority = *patch.Priority
	}
	if patch.Completed != nil {
		merged.Completed = *patch.Completed
	}
	rem, err := s.repo.Update(ctx, id, merged)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Reminder{}, httperr.NotFound("Reminder not found")
		}
		return dom.Reminder{}, httperr.Service("Failed to update reminder", err)
	}
	s.invalidate(ctx)
	return rem, nil
}

func (s *ReminderService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return httperr.NotFound("Reminder not found")
		}
		return httperr.Service("Failed to delete reminder", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *ReminderService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateReminders(ctx)
	}
}
