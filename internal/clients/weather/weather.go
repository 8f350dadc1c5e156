package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"Assistant/internal/httperr"

	"golang.org/x/sync/errgroup"
)

// DefaultCities is the multi-city batch when none are requested.
var DefaultCities = []string{"London", "New York", "Tokyo", "Mumbai", "Sydney"}

// CityWeather is one element of a multi-city result. A failed city keeps its
// slot with Data null and Error set; the batch itself never fails.
type CityWeather struct {
	City  string          `json:"city"`
	Data  json.RawMessage `json:"data"`
	Error *string         `json:"error"`
}

// Client wraps the OpenWeather current/forecast/geocoding APIs.
// Payloads are passed through unmodified.
type Client struct {
	key        string
	baseURL    string
	geoURL     string
	httpClient *http.Client
}

func NewClient(key string, timeout time.Duration) *Client {
	return &Client{
		key:        key,
		baseURL:    "https://api.openweathermap.org/data/2.5",
		geoURL:     "https://api.openweathermap.org/geo/1.0",
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithBaseURL is for tests against a fake upstream.
func NewClientWithBaseURL(key, baseURL, geoURL string, timeout time.Duration) *Client {
	c := NewClient(key, timeout)
	c.baseURL = baseURL
	c.geoURL = geoURL
	return c
}

// CurrentByCity returns current weather for "city[,country]".
func (c *Client) CurrentByCity(ctx context.Context, city, country string) (json.RawMessage, error) {
	location := city
	if country != "" {
		location += "," + country
	}
	return c.get(ctx, c.baseURL+"/weather", url.Values{"q": {location}, "units": {"metric"}})
}

// CurrentByCoords returns current weather for a lat/lon pair.
func (c *Client) CurrentByCoords(ctx context.Context, lat, lon string) (json.RawMessage, error) {
	return c.get(ctx, c.baseURL+"/weather", url.Values{"lat": {lat}, "lon": {lon}, "units": {"metric"}})
}

// Forecast returns the 5-day forecast for "city[,country]".
func (c *Client) Forecast(ctx context.Context, city, country string) (json.RawMessage, error) {
	location := city
	if country != "" {
		location += "," + country
	}
	return c.get(ctx, c.baseURL+"/forecast", url.Values{"q": {location}, "units": {"metric"}})
}

// SearchCities geocodes a city name, up to 5 matches.
func (c *Client) SearchCities(ctx context.Context, query string) (json.RawMessage, error) {
	return c.get(ctx, c.geoURL+"/direct", url.Values{"q": {query}, "limit": {"5"}})
}

// Multiple fans out one request per city and reassembles results in the
// requested order. Per-city failures are captured, not propagated.
func (c *Client) Multiple(ctx context.Context, cities []string) ([]CityWeather, error) {
	if c.key == "" {
		return nil, httperr.Config("OPENWEATHER_API_KEY is not configured")
	}
	results := make([]CityWeather, len(cities))
	g, gctx := errgroup.WithContext(ctx)
	for i, city := range cities {
		city := strings.TrimSpace(city)
		results[i].City = city
		g.Go(func() error {
			data, err := c.CurrentByCity(gctx, city, "")
			if err != nil {
				msg := httperr.From(err).Message
				results[i].Error = &msg
				return nil
			}
			results[i].Data = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	if c.key == "" {
		return nil, httperr.Config("OPENWEATHER_API_KEY is not configured")
	}
	params.Set("appid", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request (openweather): %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, httperr.Upstream(0, "Weather service unavailable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, httperr.Upstream(0, "Weather service unavailable", err)
	}
	if resp.StatusCode != http.StatusOK {
		// OpenWeather errors look like {"cod":"404","message":"city not found"}.
		var owErr struct {
			Message string `json:"message"`
		}
		msg := fmt.Sprintf("openweather status %d", resp.StatusCode)
		if json.Unmarshal(body, &owErr) == nil && owErr.Message != "" {
			msg = owErr.Message
		}
		return nil, httperr.Upstream(resp.StatusCode, msg, nil)
	}
	return body, nil
}
