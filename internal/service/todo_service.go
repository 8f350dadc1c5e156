package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"Assistant/internal/cache"
	dom "Assistant/internal/domain"
	"Assistant/internal/httperr"
	"Assistant/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

// TodoPatch carries the fields of a merge-patch update.
// Nil means "leave as is"; ClearDueDate removes the due date outright.
type TodoPatch struct {
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
	Priority     *string
	Completed    *bool
}

type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.RecordCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c *cache.RecordCache) *TodoService {
	return &TodoService{repo: r, cache: c}
}

func (s *TodoService) Create(ctx context.Context, title, desc string, dueDate *time.Time, priority string) (dom.Todo, error) {
	title = strings.TrimSpace(title)
	desc = strings.TrimSpace(desc)
	if priority == "" {
		priority = dom.PriorityMedium
	}

	t, err := s.repo.Create(ctx, dom.Todo{
		Title:       title,
		Description: desc,
		DueDate:     dueDate,
		Priority:    priority,
		Completed:   false,
	})
	if err != nil {
		return dom.Todo{}, httperr.Service("Failed to create todo", err)
	}
	s.invalidate(ctx)
	return t, nil
}

// List returns all todos, newest first.
func (s *TodoService) List(ctx context.Context) ([]dom.Todo, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("todo:list", func() (interface{}, error) {
			if list, err := s.cache.GetTodoList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetTodoList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, httperr.Service("Failed to fetch todos", err)
		}
		return v.([]dom.Todo), nil
	}
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, httperr.Service("Failed to fetch todos", err)
	}
	return list, nil
}

// Update applies patch as a shallow merge onto the stored record.
func (s *TodoService) Update(ctx context.Context, id int64, patch TodoPatch) (dom.Todo, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, httperr.NotFound("Todo not found")
		}
		return dom.Todo{}, httperr.Service("Failed to update todo", err)
	}
	merged := existing
	if patch.Title != nil {
		merged.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		merged.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.ClearDueDate {
		merged.DueDate = nil
	} else if patch.DueDate != nil {
		merged.DueDate = patch.DueDate
	}
	if patch.Priority != nil {
		merged.Priority = *patch.Priority
	}
	if patch.Completed != nil {
		merged.Completed = *patch.Completed
	}
	t, err := s.repo.Update(ctx, id, merged)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, httperr.NotFound("Todo not found")
		}
		return dom.Todo{}, httperr.Service("Failed to update todo", err)
	}
	s.invalidate(ctx)
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return httperr.NotFound("Todo not found")
		}
		return httperr.Service("Failed to delete todo", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *TodoService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateTodos(ctx)
	}
}
