// Package service provides API key issuance and the presentation adapters around it.
//
// KeyIssuer is the only component with domain logic. Display, ClipboardSink and
// Notifier are thin adapters over the terminal and the system clipboard so the use
// case can be exercised with fakes.
package service

import (
	"context"

	"github.com/allisson/apikeygen/internal/apikey/domain"
)

// KeyIssuer produces one cryptographically random token per call.
// Implementations must never fall back to a non-cryptographic random source.
type KeyIssuer interface {
	// Issue returns a new token or an error matching domain.ErrEntropyUnavailable.
	Issue() (domain.Token, error)
}

// Display renders a token to the user.
type Display interface {
	// Show renders token; when visible is false the result area stays hidden.
	Show(token string, visible bool) error
}

// ClipboardSink places text on a clipboard.
type ClipboardSink interface {
	// Copy blocks until the text is copied, the copy fails or ctx is done.
	// Failures match domain.ErrClipboardUnavailable.
	Copy(ctx context.Context, text string) error

	// Method names the mechanism used, one of the ClipboardMethod constants.
	Method() string
}

// Notifier presents a notification to the user. It keeps no state.
type Notifier interface {
	Notify(ctx context.Context, notification domain.Notification)
}
