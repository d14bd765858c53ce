// Package mocks provides mock implementations of the apikey services for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/apikeygen/internal/apikey/domain"
)

// MockKeyIssuer is a mock implementation of service.KeyIssuer.
type MockKeyIssuer struct {
	mock.Mock
}

// Issue mocks the Issue method.
func (m *MockKeyIssuer) Issue() (domain.Token, error) {
	args := m.Called()
	return args.Get(0).(domain.Token), args.Error(1)
}

// MockDisplay is a mock implementation of service.Display.
type MockDisplay struct {
	mock.Mock
}

// Show mocks the Show method.
func (m *MockDisplay) Show(token string, visible bool) error {
	args := m.Called(token, visible)
	return args.Error(0)
}

// MockClipboardSink is a mock implementation of service.ClipboardSink.
type MockClipboardSink struct {
	mock.Mock
}

// Copy mocks the Copy method.
func (m *MockClipboardSink) Copy(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

// Method mocks the Method method.
func (m *MockClipboardSink) Method() string {
	args := m.Called()
	return args.String(0)
}

// MockNotifier is a mock implementation of service.Notifier.
type MockNotifier struct {
	mock.Mock
}

// Notify mocks the Notify method.
func (m *MockNotifier) Notify(ctx context.Context, notification domain.Notification) {
	m.Called(ctx, notification)
}
