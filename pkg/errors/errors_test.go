package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestConstructorsCarryStatusAndCode(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"not found", NotFound("cabin"), CodeNotFound, http.StatusNotFound},
		{"missing fields", MissingFields(map[string]any{"check_in": "is required"}), CodeMissingFields, http.StatusBadRequest},
		{"invalid date range", InvalidDateRange("check-out before check-in"), CodeInvalidDateRange, http.StatusBadRequest},
		{"past date", PastDate("check-in in the past"), CodePastDate, http.StatusBadRequest},
		{"capacity exceeded", CapacityExceeded("Cabaña del Lago", 4), CodeCapacityExceeded, http.StatusBadRequest},
		{"conflict", Conflict("dates taken"), CodeConflict, http.StatusConflict},
		{"internal", Internal("boom", errors.New("cause")), CodeInternal, http.StatusInternalServerError},
		{"timeout", Timeout("request timed out"), CodeTimeout, http.StatusGatewayTimeout},
		{"unavailable", Unavailable("email provider"), CodeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, tc.err.Code)
			}
			if tc.err.StatusCode() != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, tc.err.StatusCode())
			}
		})
	}
}

func TestCapacityExceededCitesLimit(t *testing.T) {
	err := CapacityExceeded("Cabaña del Lago", 4)

	if got := err.Details["max_capacity"]; got != 4 {
		t.Errorf("expected max_capacity 4 in details, got %v", got)
	}
	if err.Message == "" {
		t.Error("expected message naming the limit")
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("database write failed", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestAsAppErrorWrapsUnknownErrors(t *testing.T) {
	plain := errors.New("something broke")
	appErr := AsAppError(plain)

	if appErr.Code != CodeInternal {
		t.Errorf("expected unknown errors to map to INTERNAL_ERROR, got %s", appErr.Code)
	}
	if appErr.StatusCode() != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", appErr.StatusCode())
	}
}

func TestAsAppErrorPassesThrough(t *testing.T) {
	original := Conflict("dates taken")
	if got := AsAppError(original); got != original {
		t.Error("expected AppError to pass through unchanged")
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(NotFound("cabin")) {
		t.Error("expected IsAppError true for AppError")
	}
	if IsAppError(errors.New("plain")) {
		t.Error("expected IsAppError false for plain error")
	}
}
