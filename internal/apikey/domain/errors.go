package domain

import (
	"github.com/allisson/apikeygen/internal/errors"
)

var (
	// ErrEntropyUnavailable indicates the platform offers no usable secure random source.
	ErrEntropyUnavailable = errors.Wrap(errors.ErrUnavailable, "secure random source unavailable")

	// ErrClipboardUnavailable indicates the copy action could not place the key on a clipboard.
	ErrClipboardUnavailable = errors.Wrap(errors.ErrUnavailable, "clipboard unavailable")

	// ErrInvalidToken indicates a string does not have the API key layout.
	ErrInvalidToken = errors.Wrap(errors.ErrInvalidInput, "invalid api key")
)
