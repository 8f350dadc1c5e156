package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"Assistant/internal/dto"
	"Assistant/internal/httperr"

	"github.com/sirupsen/logrus"
)

// SearchProvider is the real web-search upstream. Configured reports whether
// a key/engine pair is present; Search returns the provider payload verbatim.
type SearchProvider interface {
	Configured() bool
	Search(ctx context.Context, query string) (json.RawMessage, error)
}

// SearchService tries the configured provider and degrades to deterministic
// mock results on any failure. A non-empty query always gets a 200.
type SearchService struct {
	provider SearchProvider
	log      *logrus.Logger
}

func NewSearchService(provider SearchProvider, log *logrus.Logger) *SearchService {
	return &SearchService{provider: provider, log: log}
}

// Search returns the provider payload, or mock items when the provider is
// unconfigured or fails for any reason. Only an empty query is an error.
func (s *SearchService) Search(ctx context.Context, query string) (json.RawMessage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, httperr.Validation("Search query is required")
	}

	if s.provider != nil && s.provider.Configured() {
		payload, err := s.provider.Search(ctx, query)
		if err == nil {
			return payload, nil
		}
		s.log.WithError(err).Warn("search provider failed, falling back to mock results")
	}

	body, err := json.Marshal(MockSearchResults(query))
	if err != nil {
		return nil, httperr.Service("Search service temporarily unavailable", err)
	}
	return body, nil
}

// MockSearchResults builds the five canned results from the query alone.
func MockSearchResults(query string) dto.SearchResponse {
	escaped := url.QueryEscape(query)
	return dto.SearchResponse{
		Items: []dto.SearchItem{
			{
				Title:   fmt.Sprintf("Search result for %q - Wikipedia", query),
				Link:    "https://en.wikipedia.org/wiki/" + strings.ReplaceAll(query, " ", "_"),
				Snippet: fmt.Sprintf("This is a mock search result for %q. In a real application, this would come from Google Custom Search API.", query),
			},
			{
				Title:   query + " - GitHub",
				Link:    "https://github.com/search?q=" + escaped,
				Snippet: fmt.Sprintf("Find %s related repositories, code, and projects on GitHub.", query),
			},
			{
				Title:   query + " Tutorial - MDN Web Docs",
				Link:    "https://developer.mozilla.org/en-US/search?q=" + escaped,
				Snippet: fmt.Sprintf("Learn about %s with comprehensive documentation and tutorials.", query),
			},
			{
				Title:   query + " Stack Overflow",
				Link:    "https://stackoverflow.com/search?q=" + escaped,
				Snippet: fmt.Sprintf("Questions and answers about %s from the developer community.", query),
			},
			{
				Title:   query + " News - Google News",
				Link:    "https://news.google.com/search?q=" + escaped,
				Snippet: fmt.Sprintf("Latest news and updates about %s from various sources.", query),
			},
		},
	}
}
