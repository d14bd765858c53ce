package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/allisson/apikeygen/internal/apikey/domain"
	apikeyUseCase "github.com/allisson/apikeygen/internal/apikey/usecase"
)

// RunCopyKey copies arg, or the first line of r when arg is empty, to the clipboard.
// Copy failures, including a malformed key, are reported through the notifier and
// RunCopyKey returns nil. Only missing input is an error.
func RunCopyKey(
	ctx context.Context,
	keyUseCase apikeyUseCase.KeyUseCase,
	logger *slog.Logger,
	r io.Reader,
	arg string,
) error {
	key := strings.TrimSpace(arg)
	if key == "" {
		line, err := readFirstLine(r)
		if errors.Is(err, io.EOF) {
			return errors.New("no api key provided: pass it as an argument or on stdin")
		}
		if err != nil {
			return fmt.Errorf("failed to read api key: %w", err)
		}
		key = line
	}

	if err := keyUseCase.Copy(ctx, domain.Token(key)); err != nil {
		logger.Debug("copy reported to user", slog.Any("error", err))
	}

	return nil
}
