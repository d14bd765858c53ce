package service

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/apikeygen/internal/apikey/domain"
	apperrors "github.com/allisson/apikeygen/internal/errors"
)

type keyIssuer struct {
	random io.Reader
}

// IssuerOption configures a KeyIssuer.
type IssuerOption func(*keyIssuer)

// WithRandomSource replaces crypto/rand.Reader as the entropy source. A nil reader
// means the platform has no secure random source and every Issue call fails.
func WithRandomSource(r io.Reader) IssuerOption {
	return func(k *keyIssuer) {
		k.random = r
	}
}

// NewKeyIssuer creates a KeyIssuer backed by crypto/rand.Reader unless overridden.
// Both the random bytes and the UUID are drawn from the same source.
func NewKeyIssuer(opts ...IssuerOption) KeyIssuer {
	k := &keyIssuer{random: rand.Reader}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Issue builds API_KEY_ + hex(32 random bytes) + the first 16 characters of a
// separator-free random UUID, uppercased.
func (k *keyIssuer) Issue() (domain.Token, error) {
	if k.random == nil {
		return "", apperrors.Join(domain.ErrEntropyUnavailable, apperrors.New("no random source configured"))
	}

	randomBytes := make([]byte, domain.RandomBytesLength)
	defer clear(randomBytes)

	if _, err := io.ReadFull(k.random, randomBytes); err != nil {
		return "", apperrors.Join(domain.ErrEntropyUnavailable, apperrors.Wrap(err, "failed to read random bytes"))
	}

	id, err := uuid.NewRandomFromReader(k.random)
	if err != nil {
		return "", apperrors.Join(domain.ErrEntropyUnavailable, apperrors.Wrap(err, "failed to generate uuid"))
	}
	fragment := strings.ReplaceAll(id.String(), "-", "")[:domain.UUIDFragmentLength]

	var b strings.Builder
	b.Grow(domain.TokenLength)
	b.WriteString(domain.TokenPrefix)
	b.WriteString(hex.EncodeToString(randomBytes))
	b.WriteString(fragment)

	return domain.Token(strings.ToUpper(b.String())), nil
}
