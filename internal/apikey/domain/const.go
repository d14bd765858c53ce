// Package domain defines the API key domain model: an opaque bearer token built from
// a fixed prefix, 32 random bytes and a fragment of a random UUID.
package domain

// Token layout.
const (
	// TokenPrefix is the fixed literal every token starts with.
	TokenPrefix = "API_KEY_"

	// RandomBytesLength is the number of secure random bytes drawn per token.
	RandomBytesLength = 32

	// RandomPartLength is the length of the hex-encoded random bytes.
	RandomPartLength = RandomBytesLength * 2

	// UUIDFragmentLength is how many characters of the separator-free UUID are kept.
	UUIDFragmentLength = 16

	// TokenLength is the total length of a token (8 + 64 + 16).
	TokenLength = len(TokenPrefix) + RandomPartLength + UUIDFragmentLength
)

// NotificationKind classifies a user-visible message.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// String returns the string representation of the notification kind.
func (k NotificationKind) String() string {
	return string(k)
}

// User-visible messages.
const (
	MessageCopied           = "API key copied to clipboard!"
	MessageCopiedFallback   = "API key copied to clipboard (terminal fallback)!"
	MessageCopyFailed       = "Could not copy the API key. Please copy it manually."
	MessageGenerationFailed = "Could not generate an API key. A secure random source is required."
)
