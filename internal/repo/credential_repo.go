package repo

import (
	"context"

	dom "Assistant/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CredentialRepo stores Google Calendar OAuth tokens per user, so credentials
// survive restarts and more than one account can be connected.
type CredentialRepo interface {
	Get(ctx context.Context, userID int64) (dom.CalendarCredential, error)
	Save(ctx context.Context, c dom.CalendarCredential) error
}

type PGCredentialRepo struct {
	db *pgxpool.Pool
}

func NewPGCredentialRepo(db *pgxpool.Pool) *PGCredentialRepo {
	return &PGCredentialRepo{db: db}
}

func (r *PGCredentialRepo) Get(ctx context.Context, userID int64) (dom.CalendarCredential, error) {
	var c dom.CalendarCredential
	err := r.db.QueryRow(ctx, `
		SELECT user_id, access_token, refresh_token, token_type, expiry, updated_at
		FROM calendar_credentials WHERE user_id = $1`, userID,
	).Scan(&c.UserID, &c.AccessToken, &c.RefreshToken, &c.TokenType, &c.Expiry, &c.UpdatedAt)
	return c, err
}

// Save upserts the credential. An empty refresh token keeps the stored one:
// Google only returns it on the first consent.
func (r *PGCredentialRepo) Save(ctx context.Context, c dom.CalendarCredential) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO calendar_credentials (user_id, access_token, refresh_token, token_type, expiry, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = CASE WHEN EXCLUDED.refresh_token = '' THEN calendar_credentials.refresh_token ELSE EXCLUDED.refresh_token END,
			token_type = EXCLUDED.token_type,
			expiry = EXCLUDED.expiry,
			updated_at = NOW()`,
		c.UserID, c.AccessToken, c.RefreshToken, c.TokenType, c.Expiry)
	return err
}
