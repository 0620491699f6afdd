package testutil

import (
	"errors"
	"testing"

	apperrors "artha/internal/errors"
)

// AssertNoError fails the test if err is non-nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertAppError fails the test unless err is an AppError carrying the
// expected code.
func AssertAppError(t *testing.T, err error, wantCode string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected AppError with code %s, got nil", wantCode)
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError with code %s, got %T: %v", wantCode, err, err)
	}
	if appErr.Code != wantCode {
		t.Fatalf("expected error code %s, got %s (%v)", wantCode, appErr.Code, err)
	}
}
