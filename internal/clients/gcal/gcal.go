package gcal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"Assistant/internal/httperr"

	"golang.org/x/oauth2"
)

// googleEndpoint spelled out so only the oauth2 core package is needed.
var googleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

// Event is the provider-neutral shape for event writes.
type Event struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
}

// Client handles the OAuth2 authorization-code flow and event CRUD against
// the user's primary Google calendar.
type Client struct {
	oauth      *oauth2.Config
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewClient(clientID, clientSecret, redirectURI string, timeout time.Duration) *Client {
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes: []string{
				"https://www.googleapis.com/auth/calendar",
				"https://www.googleapis.com/auth/calendar.events",
			},
			Endpoint: googleEndpoint,
		},
		baseURL:    "https://www.googleapis.com/calendar/v3",
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithBaseURL is for tests against a fake upstream.
func NewClientWithBaseURL(clientID, clientSecret, redirectURI, baseURL string, timeout time.Duration) *Client {
	c := NewClient(clientID, clientSecret, redirectURI, timeout)
	c.baseURL = baseURL
	return c
}

// Configured reports whether the OAuth client is set up.
func (c *Client) Configured() bool {
	return c.oauth.ClientID != "" && c.oauth.ClientSecret != "" && c.oauth.RedirectURL != ""
}

// AuthURL builds the consent URL. Offline access plus a forced consent
// prompt so a refresh token is always issued.
func (c *Client) AuthURL() (string, error) {
	if !c.Configured() {
		return "", httperr.Config("Google Calendar OAuth is not configured")
	}
	return c.oauth.AuthCodeURL("state",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	), nil
}

// Exchange swaps an authorization code for tokens.
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if !c.Configured() {
		return nil, httperr.Config("Google Calendar OAuth is not configured")
	}
	tok, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, httperr.Upstream(0, "Failed to handle callback", err)
	}
	return tok, nil
}

// TokenSource returns an auto-refreshing source seeded with tok.
func (c *Client) TokenSource(ctx context.Context, tok *oauth2.Token) oauth2.TokenSource {
	return c.oauth.TokenSource(ctx, tok)
}

// ListEvents returns the provider payload for events in [timeMin, timeMax],
// expanded to single events ordered by start time.
func (c *Client) ListEvents(ctx context.Context, ts oauth2.TokenSource, timeMin, timeMax time.Time) (json.RawMessage, error) {
	params := url.Values{
		"timeMin":      {timeMin.UTC().Format(time.RFC3339)},
		"timeMax":      {timeMax.UTC().Format(time.RFC3339)},
		"singleEvents": {"true"},
		"orderBy":      {"startTime"},
	}
	return c.call(ctx, ts, http.MethodGet, "/calendars/primary/events?"+params.Encode(), nil)
}

// AddEvent inserts an event into the primary calendar.
func (c *Client) AddEvent(ctx context.Context, ts oauth2.TokenSource, ev Event) (json.RawMessage, error) {
	return c.call(ctx, ts, http.MethodPost, "/calendars/primary/events", eventBody(ev))
}

// UpdateEvent replaces an event by id.
func (c *Client) UpdateEvent(ctx context.Context, ts oauth2.TokenSource, eventID string, ev Event) (json.RawMessage, error) {
	return c.call(ctx, ts, http.MethodPut, "/calendars/primary/events/"+url.PathEscape(eventID), eventBody(ev))
}

// DeleteEvent removes an event by id.
func (c *Client) DeleteEvent(ctx context.Context, ts oauth2.TokenSource, eventID string) error {
	_, err := c.call(ctx, ts, http.MethodDelete, "/calendars/primary/events/"+url.PathEscape(eventID), nil)
	return err
}

func eventBody(ev Event) map[string]any {
	end := ev.End
	if end.IsZero() {
		end = ev.Start
	}
	return map[string]any{
		"summary":     ev.Title,
		"description": ev.Description,
		"start": map[string]string{
			"dateTime": ev.Start.UTC().Format(time.RFC3339),
			"timeZone": "UTC",
		},
		"end": map[string]string{
			"dateTime": end.UTC().Format(time.RFC3339),
			"timeZone": "UTC",
		},
	}
}

func (c *Client) call(ctx context.Context, ts oauth2.TokenSource, method, path string, body map[string]any) (json.RawMessage, error) {
	tok, err := ts.Token()
	if err != nil {
		return nil, httperr.Upstream(0, "Failed to refresh Google Calendar credentials", err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request (gcal): %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request (gcal): %w", err)
	}
	tok.SetAuthHeader(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, httperr.Upstream(0, "Google Calendar unavailable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, httperr.Upstream(0, "Google Calendar unavailable", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		cause := fmt.Errorf("gcal status %d", resp.StatusCode)
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			cause = fmt.Errorf("gcal: %s", apiErr.Error.Message)
		}
		return nil, httperr.Upstream(0, "Google Calendar request failed", cause)
	}
	return raw, nil
}
