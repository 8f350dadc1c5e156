package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	dom "Assistant/internal/domain"
	"Assistant/internal/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoService_Create_DefaultsPriority(t *testing.T) {
	repo := newFakeTodoRepo()
	svc := NewTodoService(repo, nil)

	created, err := svc.Create(context.Background(), "  buy milk  ", " from the corner shop ", nil, "")
	require.NoError(t, err)

	assert.Equal(t, "buy milk", created.Title)
	assert.Equal(t, "from the corner shop", created.Description)
	assert.Equal(t, dom.PriorityMedium, created.Priority)
	assert.False(t, created.Completed)
	assert.Nil(t, created.DueDate)
}

func TestTodoService_Create_KeepsExplicitPriority(t *testing.T) {
	repo := newFakeTodoRepo()
	svc := NewTodoService(repo, nil)

	due := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), "file taxes", "", &due, dom.PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, dom.PriorityHigh, created.Priority)
	require.NotNil(t, created.DueDate)
	assert.True(t, created.DueDate.Equal(due))
}

func TestTodoService_Update_MergePatch(t *testing.T) {
	repo := newFakeTodoRepo()
	svc := NewTodoService(repo, nil)

	created, err := svc.Create(context.Background(), "write report", "quarterly numbers", nil, dom.PriorityLow)
	require.NoError(t, err)

	// Only completed is patched; everything else must survive.
	done := true
	updated, err := svc.Update(context.Background(), created.ID, TodoPatch{Completed: &done})
	require.NoError(t, err)

	assert.Equal(t, "write report", updated.Title)
	assert.Equal(t, "quarterly numbers", updated.Description)
	assert.Equal(t, dom.PriorityLow, updated.Priority)
	assert.True(t, updated.Completed)
}

func TestTodoService_Update_ClearDueDate(t *testing.T) {
	repo := newFakeTodoRepo()
	svc := NewTodoService(repo, nil)

	due := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), "file taxes", "", &due, "")
	require.NoError(t, err)
	require.NotNil(t, created.DueDate)

	updated, err := svc.Update(context.Background(), created.ID, TodoPatch{ClearDueDate: true})
	require.NoError(t, err)
	assert.Nil(t, updated.DueDate)
	assert.Equal(t, "file taxes", updated.Title)
}

func TestTodoService_Update_NotFound(t *testing.T) {
	svc := NewTodoService(newFakeTodoRepo(), nil)

	title := "x"
	_, err := svc.Update(context.Background(), 99, TodoPatch{Title: &title})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httperr.From(err).Status)
}

func TestTodoService_Delete(t *testing.T) {
	repo := newFakeTodoRepo()
	svc := NewTodoService(repo, nil)

	created, err := svc.Create(context.Background(), "temp", "", nil, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	err = svc.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httperr.From(err).Status)
}

func TestTodoService_List_RepoErrorIsInternal(t *testing.T) {
	repo := newFakeTodoRepo()
	repo.err = assert.AnError
	svc := NewTodoService(repo, nil)

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, httperr.From(err).Status)
}
