package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorStatusClasses(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected Status
	}{
		{"bad request", BadRequest("malformed payload"), StatusBadRequest},
		{"unauthorized", Unauthorized("Invalid password"), StatusUnauthorized},
		{"forbidden", Forbidden("not allowed"), StatusForbidden},
		{"not found", NotFound("There is no user with such ID"), StatusNotFound},
		{"conflict", Conflict("Email already in use by another user."), StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status != tt.expected {
				t.Errorf("expected status %d, got %d", tt.expected, tt.err.Status)
			}
			if tt.err.Error() != tt.err.Message {
				t.Errorf("Error() should return the message, got %q", tt.err.Error())
			}
		})
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus Status
		wantTagged bool
	}{
		{
			name:       "tagged failure",
			err:        Conflict("Invalid email."),
			wantStatus: StatusConflict,
			wantTagged: true,
		},
		{
			name:       "wrapped tagged failure",
			err:        fmt.Errorf("sign up: %w", NotFound("There is no user with such email")),
			wantStatus: StatusNotFound,
			wantTagged: true,
		},
		{
			name:       "infrastructure error stays untagged",
			err:        errors.New("connection refused"),
			wantStatus: 0,
			wantTagged: false,
		},
		{
			name:       "nil error",
			err:        nil,
			wantStatus: 0,
			wantTagged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, tagged := StatusOf(tt.err)
			if tagged != tt.wantTagged {
				t.Fatalf("expected tagged=%v, got %v", tt.wantTagged, tagged)
			}
			if status != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, status)
			}
		})
	}
}

func TestIsStatus(t *testing.T) {
	err := Unauthorized("Invalid password")
	if !IsStatus(err, StatusUnauthorized) {
		t.Error("expected IsStatus to match the tagged class")
	}
	if IsStatus(err, StatusConflict) {
		t.Error("expected IsStatus to reject a different class")
	}
	if IsStatus(errors.New("plain"), StatusUnauthorized) {
		t.Error("expected IsStatus to reject untagged errors")
	}
}
