package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"Assistant/internal/httperr"
)

// Client wraps the NewsAPI top-headlines and everything endpoints.
type Client struct {
	key        string
	baseURL    string
	httpClient *http.Client
}

func NewClient(key string, timeout time.Duration) *Client {
	return &Client{
		key:        key,
		baseURL:    "https://newsapi.org/v2",
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithBaseURL is for tests against a fake upstream.
func NewClientWithBaseURL(key, baseURL string, timeout time.Duration) *Client {
	c := NewClient(key, timeout)
	c.baseURL = baseURL
	return c
}

// Headlines returns top headlines for a category and country.
func (c *Client) Headlines(ctx context.Context, category, country string) (json.RawMessage, error) {
	if category == "" {
		category = "general"
	}
	if country == "" {
		country = "us"
	}
	return c.get(ctx, "/top-headlines", url.Values{"category": {category}, "country": {country}},
		"Failed to fetch news")
}

// Search queries the everything endpoint.
func (c *Client) Search(ctx context.Context, query, from, sortBy string) (json.RawMessage, error) {
	if sortBy == "" {
		sortBy = "publishedAt"
	}
	params := url.Values{"q": {query}, "sortBy": {sortBy}}
	if from != "" {
		params.Set("from", from)
	}
	return c.get(ctx, "/everything", params, "Failed to search news")
}

func (c *Client) get(ctx context.Context, path string, params url.Values, failMsg string) (json.RawMessage, error) {
	if c.key == "" {
		return nil, httperr.Config("NEWS_API_KEY is not configured")
	}
	params.Set("apiKey", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request (newsapi): %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, httperr.Upstream(0, failMsg, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, httperr.Upstream(0, failMsg, err)
	}
	if resp.StatusCode != http.StatusOK {
		// NewsAPI errors carry {"status":"error","code":...,"message":...}.
		var apiErr struct {
			Message string `json:"message"`
		}
		cause := fmt.Errorf("newsapi status %d", resp.StatusCode)
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			cause = fmt.Errorf("newsapi: %s", apiErr.Message)
		}
		return nil, httperr.Upstream(0, failMsg, cause)
	}
	return body, nil
}
