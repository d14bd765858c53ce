package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Run("Success_WithNamespace", func(t *testing.T) {
		provider, err := NewProvider("apikeygen")

		require.NoError(t, err)
		assert.Equal(t, "apikeygen", provider.Namespace())
		assert.NotNil(t, provider.MeterProvider())
		assert.NotNil(t, provider.Handler())
	})

	t.Run("Success_EmptyNamespace", func(t *testing.T) {
		provider, err := NewProvider("")

		require.NoError(t, err)
		assert.NotNil(t, provider)
	})
}

func TestProvider_Handler(t *testing.T) {
	provider, err := NewProvider("apikeygen")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		provider, err := NewProvider("apikeygen")
		require.NoError(t, err)

		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	t.Run("Success_NilProvider", func(t *testing.T) {
		var provider *Provider
		assert.NoError(t, provider.Shutdown(context.Background()))
		assert.NoError(t, (&Provider{}).Shutdown(context.Background()))
	})
}
