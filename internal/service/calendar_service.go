package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"Assistant/internal/clients/gcal"
	dom "Assistant/internal/domain"
	"Assistant/internal/httperr"
	"Assistant/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/oauth2"
)

// LocalAccountID keys credentials stored before any account system is in
// play: the callback without a session lands here.
const LocalAccountID int64 = 0

// CalendarService connects Google Calendar: OAuth handshake plus event CRUD
// with tokens persisted per user and refreshed in place.
type CalendarService struct {
	client *gcal.Client
	creds  repo.CredentialRepo
}

func NewCalendarService(client *gcal.Client, creds repo.CredentialRepo) *CalendarService {
	return &CalendarService{client: client, creds: creds}
}

// AuthURL returns the consent URL.
func (s *CalendarService) AuthURL() (string, error) {
	return s.client.AuthURL()
}

// HandleCallback exchanges the authorization code and persists the tokens
// for userID.
func (s *CalendarService) HandleCallback(ctx context.Context, userID int64, code string) error {
	if code == "" {
		return httperr.Validation("Authorization code is required")
	}
	tok, err := s.client.Exchange(ctx, code)
	if err != nil {
		return err
	}
	if err := s.creds.Save(ctx, credentialFromToken(userID, tok)); err != nil {
		return httperr.Service("Failed to store calendar credentials", err)
	}
	return nil
}

// ListEvents returns the user's Google events in [timeMin, timeMax].
func (s *CalendarService) ListEvents(ctx context.Context, userID int64, timeMin, timeMax time.Time) (json.RawMessage, error) {
	ts, err := s.tokenSource(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.client.ListEvents(ctx, ts, timeMin, timeMax)
}

// AddEvent inserts an event into the user's primary calendar.
func (s *CalendarService) AddEvent(ctx context.Context, userID int64, ev gcal.Event) (json.RawMessage, error) {
	ts, err := s.tokenSource(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.client.AddEvent(ctx, ts, ev)
}

// UpdateEvent replaces an event by id.
func (s *CalendarService) UpdateEvent(ctx context.Context, userID int64, eventID string, ev gcal.Event) (json.RawMessage, error) {
	ts, err := s.tokenSource(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.client.UpdateEvent(ctx, ts, eventID, ev)
}

// DeleteEvent removes an event by id.
func (s *CalendarService) DeleteEvent(ctx context.Context, userID int64, eventID string) error {
	ts, err := s.tokenSource(ctx, userID)
	if err != nil {
		return err
	}
	return s.client.DeleteEvent(ctx, ts, eventID)
}

// tokenSource loads the stored credential and wraps it so refreshed tokens
// are written back (refresh-token rotation included).
func (s *CalendarService) tokenSource(ctx context.Context, userID int64) (oauth2.TokenSource, error) {
	cred, err := s.creds.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httperr.Config("Google Calendar is not connected; visit /calendar/auth first")
		}
		return nil, httperr.Service("Failed to load calendar credentials", err)
	}
	tok := &oauth2.Token{
		AccessToken:  cred.AccessToken,
		RefreshToken: cred.RefreshToken,
		TokenType:    cred.TokenType,
		Expiry:       cred.Expiry,
	}
	return &persistingTokenSource{
		inner:  s.client.TokenSource(ctx, tok),
		creds:  s.creds,
		userID: userID,
		last:   tok.AccessToken,
		ctx:    ctx,
	}, nil
}

// persistingTokenSource saves the token whenever the underlying source
// refreshes it, so new access tokens and rotated refresh tokens survive
// restarts.
type persistingTokenSource struct {
	inner  oauth2.TokenSource
	creds  repo.CredentialRepo
	userID int64
	ctx    context.Context

	mu   sync.Mutex
	last string
}

func (p *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := p.inner.Token()
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if tok.AccessToken != p.last {
		p.last = tok.AccessToken
		_ = p.creds.Save(p.ctx, credentialFromToken(p.userID, tok))
	}
	return tok, nil
}

func credentialFromToken(userID int64, tok *oauth2.Token) dom.CalendarCredential {
	return dom.CalendarCredential{
		UserID:       userID,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		Expiry:       tok.Expiry,
	}
}
