package service

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output formats understood by the terminal display.
const (
	FormatText = "text"
	FormatJSON = "json"
)

type terminalDisplay struct {
	w      io.Writer
	format string
}

// NewTerminalDisplay creates a Display that writes one token per line (text) or one
// JSON object per line (json). Unknown formats fall back to text.
func NewTerminalDisplay(w io.Writer, format string) Display {
	if format != FormatJSON {
		format = FormatText
	}
	return &terminalDisplay{w: w, format: format}
}

// Show writes the token when visible is true and nothing otherwise.
func (d *terminalDisplay) Show(token string, visible bool) error {
	if !visible {
		return nil
	}

	if d.format == FormatJSON {
		data, err := json.Marshal(map[string]string{"api_key": token})
		if err != nil {
			return fmt.Errorf("failed to encode api key: %w", err)
		}
		_, err = fmt.Fprintln(d.w, string(data))
		return err
	}

	_, err := fmt.Fprintln(d.w, token)
	return err
}
