package domain

import (
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/apikeygen/internal/errors"
	customValidation "github.com/allisson/apikeygen/internal/validation"
)

// redactedToken replaces values too short to be partially shown.
const redactedToken = "***REDACTED***"

// Token is an opaque API key. Its value is its only identity.
type Token string

// String returns the token value.
func (t Token) String() string {
	return string(t)
}

// RandomPart returns the 64 hex characters derived from the random bytes.
// Returns an empty string when the token is not well formed.
func (t Token) RandomPart() string {
	if len(t) != TokenLength {
		return ""
	}
	start := len(TokenPrefix)
	return string(t[start : start+RandomPartLength])
}

// UUIDFragment returns the trailing 16 characters taken from the UUID.
// Returns an empty string when the token is not well formed.
func (t Token) UUIDFragment() string {
	if len(t) != TokenLength {
		return ""
	}
	return string(t[TokenLength-UUIDFragmentLength:])
}

// Validate checks the token layout: prefix followed by 80 uppercase hex characters.
func (t Token) Validate() error {
	value := string(t)

	err := validation.Validate(value,
		validation.Required,
		validation.Length(TokenLength, TokenLength),
		validation.By(hasTokenPrefix),
	)
	if err == nil {
		err = validation.Validate(strings.TrimPrefix(value, TokenPrefix), customValidation.UppercaseHex)
	}
	if err != nil {
		return errors.Wrap(ErrInvalidToken, err.Error())
	}
	return nil
}

// Redacted returns a form safe for logs: the prefix, four characters, and the last four.
func (t Token) Redacted() string {
	if len(t) < len(TokenPrefix)+8 {
		return redactedToken
	}
	value := string(t)
	return value[:len(TokenPrefix)+4] + "..." + value[len(value)-4:]
}

func hasTokenPrefix(value interface{}) error {
	s, _ := value.(string)
	if !strings.HasPrefix(s, TokenPrefix) {
		return validation.NewError("validation_token_prefix", "must start with "+TokenPrefix)
	}
	return nil
}
