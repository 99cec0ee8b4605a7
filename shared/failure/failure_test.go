package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"studioops/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "BadRequestFromString",
			err:  failure.BadRequestFromString("missing field"),
			code: http.StatusBadRequest,
		},
		{
			name: "NotFound",
			err:  failure.NotFound("booking not found"),
			code: http.StatusNotFound,
		},
		{
			name: "Conflict",
			err:  failure.Conflict("crew member already assigned"),
			code: http.StatusConflict,
		},
		{
			name: "Unauthorized",
			err:  failure.Unauthorized("missing token"),
			code: http.StatusUnauthorized,
		},
		{
			name: "Unavailable",
			err:  failure.Unavailable("booking store unreachable"),
			code: http.StatusServiceUnavailable,
		},
		{
			name: "InternalError",
			err:  failure.InternalError(errors.New("boom")),
			code: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}
		})
	}
}

func TestGetCode_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("creating booking: %w", failure.Conflict("duplicate"))

	if got := failure.GetCode(wrapped); got != http.StatusConflict {
		t.Errorf("expected code to be %d, got %d", http.StatusConflict, got)
	}

	if !failure.IsConflict(wrapped) {
		t.Error("expected IsConflict to be true for wrapped conflict")
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, got)
	}
}

func TestIsNotFound(t *testing.T) {
	if !failure.IsNotFound(failure.NotFound("event not found")) {
		t.Error("expected IsNotFound to be true")
	}

	if failure.IsNotFound(failure.Conflict("duplicate")) {
		t.Error("expected IsNotFound to be false for conflict")
	}
}
