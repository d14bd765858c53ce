package commands

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/jellydator/validation"

	"github.com/allisson/apikeygen/internal/apikey/domain"
	apikeyUseCase "github.com/allisson/apikeygen/internal/apikey/usecase"
	customValidation "github.com/allisson/apikeygen/internal/validation"
)

// GenerateOptions are the flags of the generate command.
type GenerateOptions struct {
	Count    int
	MaxCount int
	Copy     bool
	Visible  bool
}

// RunGenerateKey issues and displays opts.Count keys, then copies the last one when
// opts.Copy is set. A failed copy is reported through the notifier and does not fail
// the command; a failed issuance does.
func RunGenerateKey(
	ctx context.Context,
	keyUseCase apikeyUseCase.KeyUseCase,
	logger *slog.Logger,
	opts GenerateOptions,
) error {
	err := validation.Validate(opts.Count,
		validation.Required.Error("must be at least 1"),
		validation.Min(1),
		validation.Max(opts.MaxCount),
	)
	if err != nil {
		return fmt.Errorf("invalid count: %w", customValidation.WrapValidationError(err))
	}

	logger.Debug("generating api keys", slog.Int("count", opts.Count))

	var last domain.Token
	for i := range opts.Count {
		token, err := keyUseCase.Generate(ctx, opts.Visible)
		if err != nil {
			return fmt.Errorf("failed to generate api key %d of %d: %w", i+1, opts.Count, err)
		}
		last = token
	}

	if !opts.Copy {
		return nil
	}

	if err := keyUseCase.Copy(ctx, last); err != nil {
		logger.Debug("copy reported to user", slog.Any("error", err))
	}

	return nil
}
