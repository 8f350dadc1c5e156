package repo

import (
	"context"
	"time"

	dom "Assistant/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReminderRepo interface {
	Create(ctx context.Context, rem dom.Reminder) (dom.Reminder, error)
	GetByID(ctx context.Context, id int64) (dom.Reminder, error)
	List(ctx context.Context) ([]dom.Reminder, error)
	Update(ctx context.Context, id int64, patch dom.Reminder) (dom.Reminder, error)
	Delete(ctx context.Context, id int64) error
	Upcoming(ctx context.Context, from time.Time, limit int) ([]dom.Reminder, error)
	InRange(ctx context.Context, start, end time.Time) ([]dom.Reminder, error)
	OnDay(ctx context.Context, day time.Time) ([]dom.Reminder, error)
}

type PGReminderRepo struct {
	db *pgxpool.Pool
}

func NewPGReminderRepo(db *pgxpool.Pool) *PGReminderRepo {
	return &PGReminderRepo{db: db}
}

const reminderColumns = "id, title, description, date_time, repeat, priority, completed, created_at, updated_at"

func scanReminder(row pgx.Row) (dom.Reminder, error) {
	var rem dom.Reminder
	err := row.Scan(&rem.ID, &rem.Title, &rem.Description, &rem.DateTime, &rem.Repeat,
		&rem.Priority, &rem.Completed, &rem.CreatedAt, &rem.UpdatedAt)
	return rem, err
}

func (r *PGReminderRepo) Create(ctx context.Context, rem dom.Reminder) (dom.Reminder, error) {
	query := `
		INSERT INTO reminders (title, description, date_time, repeat, priority, completed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + reminderColumns
	return scanReminder(r.db.QueryRow(ctx, query,
		rem.Title, rem.Description, rem.DateTime, rem.Repeat, rem.Priority, rem.Completed))
}

func (r *PGReminderRepo) GetByID(ctx context.Context, id int64) (dom.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = $1`
	return scanReminder(r.db.QueryRow(ctx, query, id))
}

// List returns all reminders, soonest first.
func (r *PGReminderRepo) List(ctx context.Context) ([]dom.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders ORDER BY date_time ASC`
	return r.queryReminders(ctx, query)
}

func (r *PGReminderRepo) Update(ctx context.Context, id int64, patch dom.Reminder) (dom.Reminder, error) {
	query := `
		UPDATE reminders
		SET title = $2, description = $3, date_time = $4, repeat = $5, priority = $6, completed = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + reminderColumns
	return scanReminder(r.db.QueryRow(ctx, query, id,
		patch.Title, patch.Description, patch.DateTime, patch.Repeat, patch.Priority, patch.Completed))
}

func (r *PGReminderRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PGReminderRepo) Upcoming(ctx context.Context, from time.Time, limit int) ([]dom.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + ` FROM reminders
		WHERE date_time >= $1
		ORDER BY date_time ASC
		LIMIT $2`
	return r.queryReminders(ctx, query, from, limit)
}

func (r *PGReminderRepo) InRange(ctx context.Context, start, end time.Time) ([]dom.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + ` FROM reminders
		WHERE date_time >= $1 AND date_time <= $2
		ORDER BY date_time ASC`
	return r.queryReminders(ctx, query, start, end)
}

func (r *PGReminderRepo) OnDay(ctx context.Context, day time.Time) ([]dom.Reminder, error) {
	next := day.AddDate(0, 0, 1)
	query := `
		SELECT ` + reminderColumns + ` FROM reminders
		WHERE date_time >= $1 AND date_time < $2
		ORDER BY date_time ASC`
	return r.queryReminders(ctx, query, day, next)
}

func (r *PGReminderRepo) queryReminders(ctx context.Context, query string, args ...any) ([]dom.Reminder, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rem)
	}
	return list, rows.Err()
}
