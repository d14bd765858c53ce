package usecase

import (
	"context"
	"time"

	"github.com/allisson/apikeygen/internal/apikey/domain"
	"github.com/allisson/apikeygen/internal/metrics"
)

// keyUseCaseWithMetrics decorates KeyUseCase with metrics instrumentation.
type keyUseCaseWithMetrics struct {
	next    KeyUseCase
	metrics metrics.BusinessMetrics
}

// NewKeyUseCaseWithMetrics wraps a KeyUseCase with metrics recording.
func NewKeyUseCaseWithMetrics(useCase KeyUseCase, m metrics.BusinessMetrics) KeyUseCase {
	return &keyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Issue records metrics for key issuance.
func (k *keyUseCaseWithMetrics) Issue(ctx context.Context) (domain.Token, error) {
	start := time.Now()
	token, err := k.next.Issue(ctx)
	k.record(ctx, "key_issue", start, err)
	return token, err
}

// Generate records metrics for key generation.
func (k *keyUseCaseWithMetrics) Generate(ctx context.Context, visible bool) (domain.Token, error) {
	start := time.Now()
	token, err := k.next.Generate(ctx, visible)
	k.record(ctx, "key_generate", start, err)
	return token, err
}

// Copy records metrics for clipboard copies.
func (k *keyUseCaseWithMetrics) Copy(ctx context.Context, token domain.Token) error {
	start := time.Now()
	err := k.next.Copy(ctx, token)
	k.record(ctx, "key_copy", start, err)
	return err
}

func (k *keyUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.Status(err)
	k.metrics.RecordOperation(ctx, "apikey", operation, status)
	k.metrics.RecordDuration(ctx, "apikey", operation, time.Since(start), status)
}
