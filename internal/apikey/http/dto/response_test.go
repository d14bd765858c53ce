package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/apikeygen/internal/apikey/domain"
)

func TestMapTokensToListKeysResponse(t *testing.T) {
	t.Run("Success_MapsTokens", func(t *testing.T) {
		tokens := []domain.Token{"API_KEY_A", "API_KEY_B"}

		response := MapTokensToListKeysResponse(tokens)

		assert.Equal(t, []string{"API_KEY_A", "API_KEY_B"}, response.APIKeys)
		assert.Equal(t, 2, response.Count)
	})

	t.Run("Success_EmptyListEncodesAsArray", func(t *testing.T) {
		response := MapTokensToListKeysResponse(nil)

		body, err := json.Marshal(response)
		require.NoError(t, err)
		assert.JSONEq(t, `{"api_keys":[],"count":0}`, string(body))
	})
}
