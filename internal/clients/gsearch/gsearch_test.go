package gsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Configured(t *testing.T) {
	assert.True(t, NewClient("key", "engine", time.Second).Configured())
	assert.False(t, NewClient("", "engine", time.Second).Configured())
	assert.False(t, NewClient("key", "", time.Second).Configured())
}

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "test-engine", r.URL.Query().Get("cx"))
		assert.Equal(t, "golang", r.URL.Query().Get("q"))
		w.Write([]byte(`{"items":[{"title":"The Go Programming Language"}]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", "test-engine", srv.URL, time.Second)
	body, err := c.Search(context.Background(), "golang")
	require.NoError(t, err)
	assert.Contains(t, string(body), "The Go Programming Language")
}

func TestClient_Search_NoItemsIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"searchInformation":{"totalResults":"0"}}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", "test-engine", srv.URL, time.Second)
	_, err := c.Search(context.Background(), "xyzzy")
	assert.Error(t, err)
}

func TestClient_Search_UpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", "test-engine", srv.URL, time.Second)
	_, err := c.Search(context.Background(), "golang")
	assert.Error(t, err)
}
