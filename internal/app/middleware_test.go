package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"Assistant/internal/httperr"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter mirrors newRouter's middleware chain without DB wiring.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)
	r := gin.New()
	r.Use(RequestID(), RequestLogger(log), Metrics(), ErrorHandler(log))
	return r
}

func TestMetricsCountsErrorResponsesWithErrorStatus(t *testing.T) {
	r := newTestRouter()
	r.GET("/missing-record", func(c *gin.Context) {
		_ = c.Error(httperr.NotFound("Record not found"))
		c.Abort()
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing-record", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, float64(1),
		testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "/missing-record", "404")))
	assert.Equal(t, float64(0),
		testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "/missing-record", "200")))
}

func TestMetricsCountsSuccessResponses(t *testing.T) {
	r := newTestRouter()
	r.GET("/ok-record", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok-record", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1),
		testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "/ok-record", "200")))
}

func TestErrorHandlerWritesJSONBody(t *testing.T) {
	r := newTestRouter()
	r.GET("/broken", func(c *gin.Context) {
		_ = c.Error(httperr.Validation("Title is required"))
		c.Abort()
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broken", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Title is required"}`, w.Body.String())
}
