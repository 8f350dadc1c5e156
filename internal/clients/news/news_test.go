package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Assistant/internal/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Headlines_Defaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/top-headlines", r.URL.Path)
		assert.Equal(t, "general", r.URL.Query().Get("category"))
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Write([]byte(`{"status":"ok","articles":[]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL, time.Second)
	body, err := c.Headlines(context.Background(), "", "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","articles":[]}`, string(body))
}

func TestClient_Headlines_ExplicitParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "technology", r.URL.Query().Get("category"))
		assert.Equal(t, "gb", r.URL.Query().Get("country"))
		w.Write([]byte(`{"status":"ok","articles":[]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL, time.Second)
	_, err := c.Headlines(context.Background(), "technology", "gb")
	require.NoError(t, err)
}

func TestClient_Search_DefaultSort(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/everything", r.URL.Path)
		assert.Equal(t, "golang", r.URL.Query().Get("q"))
		assert.Equal(t, "publishedAt", r.URL.Query().Get("sortBy"))
		assert.False(t, r.URL.Query().Has("from"), "empty from must not be sent")
		w.Write([]byte(`{"status":"ok","articles":[]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL, time.Second)
	_, err := c.Search(context.Background(), "golang", "", "")
	require.NoError(t, err)
}

func TestClient_MissingKey(t *testing.T) {
	c := NewClient("", time.Second)
	_, err := c.Headlines(context.Background(), "", "")
	require.Error(t, err)
	assert.Contains(t, httperr.From(err).Message, "NEWS_API_KEY")
}

func TestClient_UpstreamFailureMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"bad key"}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL, time.Second)

	_, err := c.Headlines(context.Background(), "", "")
	require.Error(t, err)
	he := httperr.From(err)
	// The caller-facing message stays generic regardless of upstream detail.
	assert.Equal(t, "Failed to fetch news", he.Message)
	assert.Equal(t, http.StatusInternalServerError, he.Status)

	_, err = c.Search(context.Background(), "golang", "", "")
	require.Error(t, err)
	assert.Equal(t, "Failed to search news", httperr.From(err).Message)
}
