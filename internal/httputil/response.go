// Package httputil provides helpers shared by the gin handlers.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/apikeygen/internal/apikey/domain"
	apperrors "github.com/allisson/apikeygen/internal/errors"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type errorMapping struct {
	target     error
	statusCode int
	code       string
	message    string
}

// errorMappings is checked in order, so specific errors come before their parents.
var errorMappings = []errorMapping{
	{
		target:     domain.ErrEntropyUnavailable,
		statusCode: http.StatusServiceUnavailable,
		code:       "entropy_unavailable",
		message:    "A secure random source is required to generate API keys",
	},
	{
		target:     apperrors.ErrUnavailable,
		statusCode: http.StatusServiceUnavailable,
		code:       "unavailable",
		message:    "A required capability is unavailable",
	},
	{
		target:     apperrors.ErrInvalidInput,
		statusCode: http.StatusUnprocessableEntity,
		code:       "invalid_input",
	},
}

// HandleErrorGin maps err to a status code and writes it as JSON. Unknown errors become
// a 500 without details.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	statusCode := http.StatusInternalServerError
	response := ErrorResponse{Error: "internal_error", Message: "An internal error occurred"}

	for _, m := range errorMappings {
		if !apperrors.Is(err, m.target) {
			continue
		}
		statusCode = m.statusCode
		response = ErrorResponse{Error: m.code, Message: m.message}
		if response.Message == "" {
			response.Message = err.Error()
		}
		break
	}

	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", response.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, response)
}

// HandleValidationErrorGin writes a 422 validation_error response.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}
