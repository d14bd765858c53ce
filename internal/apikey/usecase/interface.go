// Package usecase orchestrates API key issuance, display and copy.
// Collaborators are injected; nothing here touches the terminal or the clipboard directly.
package usecase

import (
	"context"

	"github.com/allisson/apikeygen/internal/apikey/domain"
)

// KeyUseCase defines the operations behind the generate and copy actions.
type KeyUseCase interface {
	// Issue returns a new token without displaying it.
	Issue(ctx context.Context) (domain.Token, error)

	// Generate issues a token and renders it on the display. On issuance failure the
	// user is notified, nothing is displayed and the error matches
	// domain.ErrEntropyUnavailable.
	Generate(ctx context.Context, visible bool) (domain.Token, error)

	// Copy places an already produced token on the clipboard and notifies the user of
	// the outcome. The token and the display are left untouched either way.
	Copy(ctx context.Context, token domain.Token) error
}
