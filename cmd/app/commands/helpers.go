// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	validation "github.com/jellydator/validation"

	apikeyService "github.com/allisson/apikeygen/internal/apikey/service"
	"github.com/allisson/apikeygen/internal/app"
	customValidation "github.com/allisson/apikeygen/internal/validation"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// CloseContainer closes all resources in the container and logs any errors.
func CloseContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// ParseDisplayFormat validates the --format flag.
func ParseDisplayFormat(format string) (string, error) {
	err := validation.Validate(format,
		validation.Required,
		customValidation.OneOf(apikeyService.FormatText, apikeyService.FormatJSON),
	)
	if err != nil {
		return "", fmt.Errorf("invalid format: %w", customValidation.WrapValidationError(err))
	}
	return format, nil
}

// readFirstLine returns the first non-empty line of r, trimmed.
func readFirstLine(r io.Reader) (string, error) {
	if r == nil {
		return "", errors.New("no input available")
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return "", io.EOF
}
