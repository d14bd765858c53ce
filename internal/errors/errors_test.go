package errors

import (
	"errors"
	"testing"
)

type customError struct {
	Msg string
}

func (e customError) Error() string { return e.Msg }

func TestNew(t *testing.T) {
	err := New("test error")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "test error" {
		t.Errorf("expected 'test error', got '%s'", err.Error())
	}
}

func TestWrap(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrap non-nil error", func(t *testing.T) {
		wrapped := Wrap(baseErr, "wrapped")
		if wrapped == nil {
			t.Fatal("expected wrapped error, got nil")
		}
		expected := "wrapped: base error"
		if wrapped.Error() != expected {
			t.Errorf("expected '%s', got '%s'", expected, wrapped.Error())
		}
		if !errors.Is(wrapped, baseErr) {
			t.Error("expected wrapped error to wrap baseErr")
		}
	})

	t.Run("wrap nil error", func(t *testing.T) {
		wrapped := Wrap(nil, "wrapped")
		if wrapped != nil {
			t.Errorf("expected nil, got %v", wrapped)
		}
	})
}

func TestWrapf(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrapf non-nil error", func(t *testing.T) {
		wrapped := Wrapf(baseErr, "read %d bytes", 32)
		expected := "read 32 bytes: base error"
		if wrapped == nil || wrapped.Error() != expected {
			t.Fatalf("expected '%s', got '%v'", expected, wrapped)
		}
		if !errors.Is(wrapped, baseErr) {
			t.Error("expected wrapped error to wrap baseErr")
		}
	})

	t.Run("wrapf nil error", func(t *testing.T) {
		if wrapped := Wrapf(nil, "read %d bytes", 32); wrapped != nil {
			t.Errorf("expected nil, got %v", wrapped)
		}
	})
}

func TestJoin(t *testing.T) {
	cause := errors.New("short read")

	joined := Join(ErrUnavailable, cause)
	if !Is(joined, ErrUnavailable) {
		t.Error("expected joined error to match ErrUnavailable")
	}
	if !Is(joined, cause) {
		t.Error("expected joined error to match cause")
	}
	if joined.Error() != "unavailable: short read" {
		t.Errorf("unexpected message '%s'", joined.Error())
	}

	if Join(ErrUnavailable, nil) != nil {
		t.Error("expected nil for nil cause")
	}
}

func TestIs(t *testing.T) {
	if !Is(ErrUnavailable, ErrUnavailable) {
		t.Error("expected ErrUnavailable to be ErrUnavailable")
	}

	wrapped := Wrap(ErrUnavailable, "context")
	if !Is(wrapped, ErrUnavailable) {
		t.Error("expected wrapped ErrUnavailable to be ErrUnavailable")
	}

	if Is(ErrUnavailable, ErrInvalidInput) {
		t.Error("expected ErrUnavailable NOT to be ErrInvalidInput")
	}
}

func TestAs(t *testing.T) {
	custom := customError{Msg: "custom"}
	wrapped := Wrap(custom, "context")

	var target customError
	if !As(wrapped, &target) {
		t.Fatal("expected wrapped error to be able to extract target")
	}
	if target.Msg != "custom" {
		t.Errorf("expected 'custom', got '%s'", target.Msg)
	}
}

func TestStandardErrors(t *testing.T) {
	tests := []struct {
		err  error
		text string
	}{
		{ErrInvalidInput, "invalid input"},
		{ErrUnavailable, "unavailable"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.text {
			t.Errorf("expected text '%s' for error, got '%s'", tt.text, tt.err.Error())
		}
	}
}
