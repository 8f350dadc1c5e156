package gsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client wraps the Google Custom Search JSON API. It implements
// service.SearchProvider; the fallback policy lives in the service layer.
type Client struct {
	key        string
	engineID   string
	baseURL    string
	httpClient *http.Client
}

func NewClient(key, engineID string, timeout time.Duration) *Client {
	return &Client{
		key:        key,
		engineID:   engineID,
		baseURL:    "https://www.googleapis.com/customsearch/v1",
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithBaseURL is for tests against a fake upstream.
func NewClientWithBaseURL(key, engineID, baseURL string, timeout time.Duration) *Client {
	c := NewClient(key, engineID, timeout)
	c.baseURL = baseURL
	return c
}

// Configured reports whether both the API key and engine id are present.
func (c *Client) Configured() bool {
	return c.key != "" && c.engineID != ""
}

// Search returns the provider payload verbatim. A payload without items is an
// error so the caller can fall back.
func (c *Client) Search(ctx context.Context, query string) (json.RawMessage, error) {
	params := url.Values{"key": {c.key}, "cx": {c.engineID}, "q": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request (customsearch): %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("customsearch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body (customsearch): %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("customsearch status %d", resp.StatusCode)
	}

	var payload struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse response (customsearch): %w", err)
	}
	if len(payload.Items) == 0 {
		return nil, fmt.Errorf("customsearch: response has no items")
	}
	return body, nil
}
