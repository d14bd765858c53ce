package service

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/apikeygen/internal/apikey/domain"
	apperrors "github.com/allisson/apikeygen/internal/errors"
)

var tokenPattern = regexp.MustCompile(`^API_KEY_[0-9A-F]{64}[0-9A-F]{16}$`)

// zeroReader always yields zero bytes.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

// failingReader always fails.
type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("entropy source closed")
}

func TestNewKeyIssuer(t *testing.T) {
	issuer := NewKeyIssuer()
	assert.NotNil(t, issuer)
	assert.IsType(t, &keyIssuer{}, issuer)
	assert.Equal(t, rand.Reader, issuer.(*keyIssuer).random)
}

func TestKeyIssuer_Issue(t *testing.T) {
	issuer := NewKeyIssuer()

	t.Run("Success_MatchesLayout", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			token, err := issuer.Issue()
			require.NoError(t, err)

			assert.Len(t, token.String(), domain.TokenLength)
			assert.Regexp(t, tokenPattern, token.String())
			assert.NoError(t, token.Validate())
		}
	})

	t.Run("Success_NoCollisions", func(t *testing.T) {
		const count = 10000
		tokens := make(map[domain.Token]struct{}, count)

		for i := 0; i < count; i++ {
			token, err := issuer.Issue()
			require.NoError(t, err)
			tokens[token] = struct{}{}
		}

		assert.Len(t, tokens, count, "expected all tokens to be unique")
	})

	t.Run("Success_ConcurrentIssue", func(t *testing.T) {
		const workers = 8
		const perWorker = 250

		var (
			mu     sync.Mutex
			wg     sync.WaitGroup
			tokens = make(map[domain.Token]struct{}, workers*perWorker)
		)

		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < perWorker; i++ {
					token, err := issuer.Issue()
					if !assert.NoError(t, err) {
						return
					}
					mu.Lock()
					tokens[token] = struct{}{}
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Len(t, tokens, workers*perWorker)
	})
}

func TestKeyIssuer_Issue_ZeroSource(t *testing.T) {
	issuer := NewKeyIssuer(WithRandomSource(zeroReader{}))

	token, err := issuer.Issue()
	require.NoError(t, err)

	assert.Regexp(t, tokenPattern, token.String())
	assert.Equal(t, strings.Repeat("0", 64), token.RandomPart())
	// A v4 UUID from zero bytes is 00000000-0000-4000-8000-000000000000.
	assert.Equal(t, "0000000000004000", token.UUIDFragment())
}

func TestKeyIssuer_Issue_KnownBytes(t *testing.T) {
	randomBytes := bytes.Repeat([]byte{0xab}, domain.RandomBytesLength)
	uuidBytes := bytes.Repeat([]byte{0xcd}, 16)
	source := bytes.NewReader(append(randomBytes, uuidBytes...))

	token, err := NewKeyIssuer(WithRandomSource(source)).Issue()
	require.NoError(t, err)

	assert.Equal(t, strings.Repeat("AB", 32), token.RandomPart())
	// Version and variant bits are forced: cdcdcdcd-cdcd-4dcd-8dcd-...
	assert.Equal(t, "CDCDCDCDCDCD4DCD", token.UUIDFragment())
}

func TestKeyIssuer_Issue_EntropyUnavailable(t *testing.T) {
	tests := []struct {
		name   string
		source io.Reader
	}{
		{
			name:   "Error_NilSource",
			source: nil,
		},
		{
			name:   "Error_FailingSource",
			source: failingReader{},
		},
		{
			name:   "Error_ShortRead",
			source: bytes.NewReader(make([]byte, domain.RandomBytesLength-1)),
		},
		{
			name:   "Error_ExhaustedBeforeUUID",
			source: bytes.NewReader(make([]byte, domain.RandomBytesLength)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer := NewKeyIssuer(WithRandomSource(tt.source))

			token, err := issuer.Issue()

			assert.Empty(t, token)
			assert.ErrorIs(t, err, domain.ErrEntropyUnavailable)
			assert.True(t, apperrors.Is(err, apperrors.ErrUnavailable))
		})
	}
}
