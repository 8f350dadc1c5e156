package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Assistant/internal/dto"
	"Assistant/internal/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateResponse(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + mustJSON(text) + `}]}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestClient_MissingKey(t *testing.T) {
	c := NewClient("", time.Second)
	assert.False(t, c.Configured())

	_, err := c.Generate(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, httperr.From(err).Message, "GEMINI_API_KEY")
}

func TestClient_Generate(t *testing.T) {
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(candidateResponse("Hello there")))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL, time.Second)
	got, err := c.Generate(context.Background(), "say hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello there", got)

	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "say hello", gotBody.Contents[0].Parts[0].Text)
	assert.Nil(t, gotBody.GenerationConfig, "single-turn generate sends no generation config")
}

func TestClient_Converse_RolesAndConfig(t *testing.T) {
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(candidateResponse("answer")))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL, time.Second)
	history := []dto.ConversationMessage{
		{Role: "user", Content: "what is Go?"},
		{Role: "assistant", Content: "a programming language"},
	}
	got, err := c.Converse(context.Background(), history, "who made it?")
	require.NoError(t, err)
	assert.Equal(t, "answer", got)

	require.Len(t, gotBody.Contents, 3)
	assert.Equal(t, "user", gotBody.Contents[0].Role)
	// Non-user history roles map to "model".
	assert.Equal(t, "model", gotBody.Contents[1].Role)
	assert.Equal(t, "user", gotBody.Contents[2].Role)
	assert.Equal(t, "who made it?", gotBody.Contents[2].Parts[0].Text)

	require.NotNil(t, gotBody.GenerationConfig)
	assert.Equal(t, 0.7, gotBody.GenerationConfig.Temperature)
	assert.Equal(t, 1000, gotBody.GenerationConfig.MaxOutputTokens)
}

func TestClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL, time.Second)
	_, err := c.Generate(context.Background(), "hi")
	require.Error(t, err)

	he := httperr.From(err)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
	assert.Equal(t, "Chat processing failed", he.Message)
}

func TestClient_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL, time.Second)
	_, err := c.Generate(context.Background(), "hi")
	require.Error(t, err)
	assert.Equal(t, "Chat processing failed", httperr.From(err).Message)
}
