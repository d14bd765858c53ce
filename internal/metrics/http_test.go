package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("http_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "http_test"))
	router.GET("/v1/api-keys", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"count": 1})
	})
	router.GET("/fail", func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "entropy_unavailable"})
	})

	for range 3 {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/api-keys?count=2", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	output := scrape(t, provider)
	assertMetricLine(t, output, `http_test_http_requests_total`,
		`method="GET".*path="/v1/api-keys".*status_code="200"`, `3`)
	assertMetricLine(t, output, `http_test_http_requests_total`,
		`path="/fail".*status_code="503"`, `1`)
	assertMetricLine(t, output, `http_test_http_requests_total`,
		`path="unknown".*status_code="404"`, `1`)
}

func TestRouteLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "RoutePattern", input: "/v1/api-keys", expected: "/v1/api-keys"},
		{name: "Root", input: "/", expected: "/"},
		{name: "Unmatched", input: "", expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, routeLabel(tt.input))
		})
	}
}
