package domain

import "time"

// CalendarCredential is a persisted Google Calendar OAuth token set,
// keyed by user. Refresh tokens are rotated in place on renewal.
type CalendarCredential struct {
	UserID       int64
	AccessToken  string
	RefreshToken string
	TokenType    string
	Expiry       time.Time
	UpdatedAt    time.Time
}
