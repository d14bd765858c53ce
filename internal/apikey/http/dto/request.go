// Package dto provides data transfer objects for the api key HTTP handlers.
package dto

import (
	validation "github.com/jellydator/validation"
)

// DefaultCount is used when the count query parameter is absent.
const DefaultCount = 1

// ListKeysRequest holds the query of GET /v1/api-keys.
type ListKeysRequest struct {
	Count int `form:"count"`
}

// Validate checks that Count is within 1..maxCount.
func (r *ListKeysRequest) Validate(maxCount int) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Count,
			validation.Required.Error("must be at least 1"),
			validation.Min(1),
			validation.Max(maxCount),
		),
	)
}
