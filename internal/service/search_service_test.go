package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"Assistant/internal/dto"
	"Assistant/internal/httperr"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	configured bool
	payload    json.RawMessage
	err        error
	calls      int
}

func (p *fakeProvider) Configured() bool { return p.configured }

func (p *fakeProvider) Search(context.Context, string) (json.RawMessage, error) {
	p.calls++
	return p.payload, p.err
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestSearchService_EmptyQuery(t *testing.T) {
	svc := NewSearchService(&fakeProvider{configured: true}, testLogger())

	for _, q := range []string{"", "   "} {
		_, err := svc.Search(context.Background(), q)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, httperr.From(err).Status)
	}
}

func TestSearchService_ProviderPayloadPassthrough(t *testing.T) {
	payload := json.RawMessage(`{"items":[{"title":"real"}]}`)
	provider := &fakeProvider{configured: true, payload: payload}
	svc := NewSearchService(provider, testLogger())

	got, err := svc.Search(context.Background(), "golang")
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(got))
	assert.Equal(t, 1, provider.calls)
}

func TestSearchService_FallbackOnProviderError(t *testing.T) {
	provider := &fakeProvider{configured: true, err: errors.New("quota exceeded")}
	svc := NewSearchService(provider, testLogger())

	got, err := svc.Search(context.Background(), "golang generics")
	require.NoError(t, err)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(got, &resp))
	require.Len(t, resp.Items, 5)
	for _, item := range resp.Items {
		assert.Contains(t, item.Title, "golang generics")
		assert.NotEmpty(t, item.Link)
		assert.NotEmpty(t, item.Snippet)
	}
}

func TestSearchService_FallbackWhenUnconfigured(t *testing.T) {
	provider := &fakeProvider{configured: false}
	svc := NewSearchService(provider, testLogger())

	got, err := svc.Search(context.Background(), "kubernetes")
	require.NoError(t, err)
	assert.Equal(t, 0, provider.calls, "unconfigured provider must not be called")

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(got, &resp))
	assert.Len(t, resp.Items, 5)
}

func TestMockSearchResults_Links(t *testing.T) {
	resp := MockSearchResults("go routines")
	require.Len(t, resp.Items, 5)

	assert.Equal(t, "https://en.wikipedia.org/wiki/go_routines", resp.Items[0].Link)
	assert.Equal(t, "https://github.com/search?q=go+routines", resp.Items[1].Link)
	assert.Contains(t, resp.Items[2].Link, "developer.mozilla.org")
	assert.Contains(t, resp.Items[3].Link, "stackoverflow.com")
	assert.Contains(t, resp.Items[4].Link, "news.google.com")
}
