package repo

import (
	"context"
	"time"

	dom "Assistant/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TodoRepo interface {
	Create(ctx context.Context, t dom.Todo) (dom.Todo, error)
	GetByID(ctx context.Context, id int64) (dom.Todo, error)
	List(ctx context.Context) ([]dom.Todo, error)
	Update(ctx context.Context, id int64, patch dom.Todo) (dom.Todo, error)
	Delete(ctx context.Context, id int64) error
	DueInRange(ctx context.Context, start, end time.Time) ([]dom.Todo, error)
	DueOnDay(ctx context.Context, day time.Time) ([]dom.Todo, error)
}

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

const todoColumns = "id, title, description, due_date, priority, completed, created_at, updated_at"

func scanTodo(row pgx.Row) (dom.Todo, error) {
	var t dom.Todo
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.Priority,
		&t.Completed, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		INSERT INTO todos (title, description, due_date, priority, completed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + todoColumns
	return scanTodo(r.db.QueryRow(ctx, query, t.Title, t.Description, t.DueDate, t.Priority, t.Completed))
}

func (r *PGTodoRepo) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1`
	return scanTodo(r.db.QueryRow(ctx, query, id))
}

func (r *PGTodoRepo) List(ctx context.Context) ([]dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos ORDER BY created_at DESC`
	return r.queryTodos(ctx, query)
}

func (r *PGTodoRepo) Update(ctx context.Context, id int64, patch dom.Todo) (dom.Todo, error) {
	query := `
		UPDATE todos
		SET title = $2, description = $3, due_date = $4, priority = $5, completed = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + todoColumns
	return scanTodo(r.db.QueryRow(ctx, query, id,
		patch.Title, patch.Description, patch.DueDate, patch.Priority, patch.Completed))
}

func (r *PGTodoRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PGTodoRepo) DueInRange(ctx context.Context, start, end time.Time) ([]dom.Todo, error) {
	query := `
		SELECT ` + todoColumns + ` FROM todos
		WHERE due_date IS NOT NULL AND due_date >= $1 AND due_date <= $2
		ORDER BY due_date ASC`
	return r.queryTodos(ctx, query, start, end)
}

func (r *PGTodoRepo) DueOnDay(ctx context.Context, day time.Time) ([]dom.Todo, error) {
	next := day.AddDate(0, 0, 1)
	query := `
		SELECT ` + todoColumns + ` FROM todos
		WHERE due_date IS NOT NULL AND due_date >= $1 AND due_date < $2
		ORDER BY due_date ASC`
	return r.queryTodos(ctx, query, day, next)
}

func (r *PGTodoRepo) queryTodos(ctx context.Context, query string, args ...any) ([]dom.Todo, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
