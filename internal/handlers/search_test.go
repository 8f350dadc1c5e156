package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"Assistant/internal/app"
	"Assistant/internal/clients/gsearch"
	"Assistant/internal/dto"
	"Assistant/internal/handlers"
	"Assistant/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	r := gin.New()
	r.Use(app.ErrorHandler(log))

	// Unconfigured provider: every query lands on the mock results.
	svc := service.NewSearchService(gsearch.NewClient("", "", time.Second), log)
	r.GET("/search", handlers.NewSearchHandler(svc).Search)
	return r
}

func TestSearchHandler_EmptyQuery(t *testing.T) {
	r := newSearchRouter()

	w := doJSON(t, r, http.MethodGet, "/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Search query is required")
}

func TestSearchHandler_MockFallback(t *testing.T) {
	r := newSearchRouter()

	w := doJSON(t, r, http.MethodGet, "/search?q=golang", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 5)
	for _, item := range resp.Items {
		assert.Contains(t, item.Title, "golang")
	}
}
