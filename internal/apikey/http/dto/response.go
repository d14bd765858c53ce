package dto

import "github.com/allisson/apikeygen/internal/apikey/domain"

// ListKeysResponse is returned by GET /v1/api-keys.
type ListKeysResponse struct {
	APIKeys []string `json:"api_keys"`
	Count   int      `json:"count"`
}

// MapTokensToListKeysResponse converts issued tokens to the response body.
func MapTokensToListKeysResponse(tokens []domain.Token) ListKeysResponse {
	keys := make([]string, 0, len(tokens))
	for _, token := range tokens {
		keys = append(keys, token.String())
	}

	return ListKeysResponse{
		APIKeys: keys,
		Count:   len(keys),
	}
}

// PageData feeds the key page template.
type PageData struct {
	APIKey            string
	Notification      *domain.Notification
	CopiedMessage     string
	CopyFailedMessage string
}

// NewPageData builds the data for a page showing apiKey, or only the notification when
// apiKey is empty.
func NewPageData(apiKey string, notification *domain.Notification) PageData {
	return PageData{
		APIKey:            apiKey,
		Notification:      notification,
		CopiedMessage:     domain.MessageCopied,
		CopyFailedMessage: domain.MessageCopyFailed,
	}
}
