package service

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalDisplay_Show(t *testing.T) {
	token := "API_KEY_" + "00000000000000000000000000000000000000000000000000000000000000000000000000004000"

	t.Run("Text_Visible", func(t *testing.T) {
		var buf bytes.Buffer
		display := NewTerminalDisplay(&buf, FormatText)

		require.NoError(t, display.Show(token, true))
		assert.Equal(t, token+"\n", buf.String())
	})

	t.Run("JSON_Visible", func(t *testing.T) {
		var buf bytes.Buffer
		display := NewTerminalDisplay(&buf, FormatJSON)

		require.NoError(t, display.Show(token, true))

		var payload map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
		assert.Equal(t, token, payload["api_key"])
	})

	t.Run("Hidden_WritesNothing", func(t *testing.T) {
		var buf bytes.Buffer
		display := NewTerminalDisplay(&buf, FormatText)

		require.NoError(t, display.Show(token, false))
		assert.Empty(t, buf.String())
	})

	t.Run("UnknownFormat_FallsBackToText", func(t *testing.T) {
		var buf bytes.Buffer
		display := NewTerminalDisplay(&buf, "yaml")

		require.NoError(t, display.Show(token, true))
		assert.Equal(t, token+"\n", buf.String())
	})
}
