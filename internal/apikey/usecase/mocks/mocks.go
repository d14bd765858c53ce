// Package mocks provides mock implementations of the apikey use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/apikeygen/internal/apikey/domain"
)

// MockKeyUseCase is a mock implementation of usecase.KeyUseCase.
type MockKeyUseCase struct {
	mock.Mock
}

// Issue mocks the Issue method.
func (m *MockKeyUseCase) Issue(ctx context.Context) (domain.Token, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Token), args.Error(1)
}

// Generate mocks the Generate method.
func (m *MockKeyUseCase) Generate(ctx context.Context, visible bool) (domain.Token, error) {
	args := m.Called(ctx, visible)
	return args.Get(0).(domain.Token), args.Error(1)
}

// Copy mocks the Copy method.
func (m *MockKeyUseCase) Copy(ctx context.Context, token domain.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
