package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/allisson/apikeygen/internal/apikey/domain"
	apikeyService "github.com/allisson/apikeygen/internal/apikey/service"
)

// keyUseCase implements KeyUseCase.
type keyUseCase struct {
	issuer      apikeyService.KeyIssuer
	display     apikeyService.Display
	clipboard   apikeyService.ClipboardSink
	notifier    apikeyService.Notifier
	logger      *slog.Logger
	copyTimeout time.Duration
}

// NewKeyUseCase creates a KeyUseCase. A zero copyTimeout leaves copies bounded only by ctx.
func NewKeyUseCase(
	issuer apikeyService.KeyIssuer,
	display apikeyService.Display,
	clipboard apikeyService.ClipboardSink,
	notifier apikeyService.Notifier,
	logger *slog.Logger,
	copyTimeout time.Duration,
) KeyUseCase {
	return &keyUseCase{
		issuer:      issuer,
		display:     display,
		clipboard:   clipboard,
		notifier:    notifier,
		logger:      logger,
		copyTimeout: copyTimeout,
	}
}

// Issue returns a new token.
func (u *keyUseCase) Issue(ctx context.Context) (domain.Token, error) {
	token, err := u.issuer.Issue()
	if err != nil {
		u.logger.ErrorContext(ctx, "failed to issue api key", slog.Any("error", err))
		return "", err
	}

	u.logger.DebugContext(ctx, "api key issued", slog.String("api_key", token.Redacted()))
	return token, nil
}

// Generate issues a token and shows it.
func (u *keyUseCase) Generate(ctx context.Context, visible bool) (domain.Token, error) {
	token, err := u.Issue(ctx)
	if err != nil {
		u.notifier.Notify(ctx, domain.NewErrorNotification(domain.MessageGenerationFailed))
		return "", err
	}

	if err := u.display.Show(token.String(), visible); err != nil {
		return "", fmt.Errorf("failed to display api key: %w", err)
	}

	u.logger.InfoContext(ctx, "api key generated",
		slog.String("api_key", token.Redacted()),
		slog.Bool("visible", visible),
	)

	return token, nil
}

// Copy copies token to the clipboard.
func (u *keyUseCase) Copy(ctx context.Context, token domain.Token) error {
	if err := token.Validate(); err != nil {
		u.notifier.Notify(ctx, domain.NewErrorNotification(domain.MessageCopyFailed))
		return err
	}

	if u.copyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.copyTimeout)
		defer cancel()
	}

	method := u.clipboard.Method()
	if err := u.clipboard.Copy(ctx, token.String()); err != nil {
		u.logger.WarnContext(ctx, "failed to copy api key",
			slog.String("method", method),
			slog.Any("error", err),
		)
		u.notifier.Notify(ctx, domain.NewErrorNotification(domain.MessageCopyFailed))
		return err
	}

	message := domain.MessageCopied
	if method == apikeyService.ClipboardMethodOSC52 {
		message = domain.MessageCopiedFallback
	}

	u.logger.InfoContext(ctx, "api key copied",
		slog.String("api_key", token.Redacted()),
		slog.String("method", method),
	)
	u.notifier.Notify(ctx, domain.NewSuccessNotification(message))

	return nil
}
