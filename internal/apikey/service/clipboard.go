package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/atotto/clipboard"

	"github.com/allisson/apikeygen/internal/apikey/domain"
	apperrors "github.com/allisson/apikeygen/internal/errors"
)

// Clipboard mechanisms reported by ClipboardSink.Method.
const (
	ClipboardMethodSystem = "system"
	ClipboardMethodOSC52  = "osc52"
	ClipboardMethodNone   = "none"
)

// ClipboardOptions controls clipboard feature detection.
type ClipboardOptions struct {
	// Terminal receives the OSC 52 sequence when the fallback is used.
	Terminal io.Writer
	// FallbackEnabled allows the OSC 52 fallback.
	FallbackEnabled bool
	// SystemUnsupported forces detection to treat the system clipboard as missing.
	SystemUnsupported bool
}

// NewClipboardSink picks the system clipboard when one is available, the OSC 52
// terminal fallback when allowed, and otherwise a sink that always fails.
func NewClipboardSink(opts ClipboardOptions) ClipboardSink {
	if !opts.SystemUnsupported && !clipboard.Unsupported {
		return NewSystemClipboard(clipboard.WriteAll)
	}
	if opts.FallbackEnabled && opts.Terminal != nil {
		return NewOSC52Clipboard(opts.Terminal)
	}
	return &unavailableClipboard{}
}

type systemClipboard struct {
	write func(text string) error
}

// NewSystemClipboard creates a sink over a clipboard write function such as clipboard.WriteAll.
func NewSystemClipboard(write func(text string) error) ClipboardSink {
	return &systemClipboard{write: write}
}

// Copy writes text to the system clipboard.
func (s *systemClipboard) Copy(ctx context.Context, text string) error {
	return runCopy(ctx, func() error {
		return s.write(text)
	})
}

// Method returns ClipboardMethodSystem.
func (s *systemClipboard) Method() string {
	return ClipboardMethodSystem
}

type osc52Clipboard struct {
	w io.Writer
}

// NewOSC52Clipboard creates a sink that asks the terminal emulator to set its
// clipboard through an OSC 52 escape sequence. The whole text is carried in the
// sequence, so the terminal never has to rely on an existing selection.
func NewOSC52Clipboard(w io.Writer) ClipboardSink {
	return &osc52Clipboard{w: w}
}

// Copy writes the escape sequence to the terminal.
func (o *osc52Clipboard) Copy(ctx context.Context, text string) error {
	return runCopy(ctx, func() error {
		_, err := fmt.Fprint(o.w, osc52Sequence(text))
		return err
	})
}

// Method returns ClipboardMethodOSC52.
func (o *osc52Clipboard) Method() string {
	return ClipboardMethodOSC52
}

type unavailableClipboard struct{}

// Copy always fails with ErrClipboardUnavailable.
func (u *unavailableClipboard) Copy(ctx context.Context, text string) error {
	return apperrors.Wrap(domain.ErrClipboardUnavailable, "no clipboard mechanism detected")
}

// Method returns ClipboardMethodNone.
func (u *unavailableClipboard) Method() string {
	return ClipboardMethodNone
}

// osc52Sequence encodes text as "ESC ] 52 ; c ; <base64> BEL".
func osc52Sequence(text string) string {
	return "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\a"
}

// runCopy runs fn in its own goroutine and waits for it or for ctx.
// The result channel is buffered so an abandoned copy never blocks its goroutine.
func runCopy(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Join(domain.ErrClipboardUnavailable, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		return apperrors.Join(domain.ErrClipboardUnavailable, err)
	case <-ctx.Done():
		return apperrors.Join(domain.ErrClipboardUnavailable, ctx.Err())
	}
}
