package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter(middleware gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	if middleware != nil {
		router.Use(middleware)
	}
	router.GET("/v1/api-keys", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"count": 0})
	})
	return router
}

func TestCreateCORSMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name      string
		enabled   bool
		origins   string
		expectNil bool
	}{
		{name: "Disabled", enabled: false, origins: "https://example.com", expectNil: true},
		{name: "EnabledWithoutOrigins", enabled: true, origins: "", expectNil: true},
		{name: "EnabledWithOnlySeparators", enabled: true, origins: " , ,", expectNil: true},
		{name: "EnabledWithOrigins", enabled: true, origins: "https://a.example.com,https://b.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware := createCORSMiddleware(tt.enabled, tt.origins, logger)
			if tt.expectNil {
				assert.Nil(t, middleware)
				return
			}
			assert.NotNil(t, middleware)
		})
	}
}

func TestParseOrigins(t *testing.T) {
	assert.Equal(t,
		[]string{"https://app.example.com", "https://admin.example.com"},
		parseOrigins(" https://app.example.com , https://admin.example.com "),
	)
	assert.Nil(t, parseOrigins(""))
}

func TestCORSIntegration(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("HeadersAddedWhenEnabled", func(t *testing.T) {
		router := newCORSRouter(createCORSMiddleware(true, "https://app.example.com", logger))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/api-keys", nil)
		req.Header.Set("Origin", "https://app.example.com")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("NoHeadersWhenDisabled", func(t *testing.T) {
		router := newCORSRouter(createCORSMiddleware(false, "https://app.example.com", logger))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/api-keys", nil)
		req.Header.Set("Origin", "https://app.example.com")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("PreflightAllowsGet", func(t *testing.T) {
		router := newCORSRouter(createCORSMiddleware(true, "https://app.example.com", logger))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/v1/api-keys", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
	})
}
