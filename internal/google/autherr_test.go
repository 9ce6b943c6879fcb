package google

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "401 response",
			err:  &googleapi.Error{Code: 401, Message: "Invalid Credentials"},
			want: true,
		},
		{
			name: "403 response",
			err:  &googleapi.Error{Code: 403, Message: "Forbidden"},
			want: true,
		},
		{
			name: "wrapped 403 response",
			err:  fmt.Errorf("failed to list events: %w", &googleapi.Error{Code: 403}),
			want: true,
		},
		{
			name: "provider unauthenticated status",
			err:  errors.New("rpc error: code = 16 desc = UNAUTHENTICATED"),
			want: true,
		},
		{
			name: "provider permission denied status",
			err:  errors.New("googleapi: got HTTP response: PERMISSION_DENIED"),
			want: true,
		},
		{
			name: "auth error reason",
			err:  &googleapi.Error{Code: 400, Errors: []googleapi.ErrorItem{{Reason: "authError"}}},
			want: true,
		},
		{
			name: "server error",
			err:  &googleapi.Error{Code: 500, Message: "Backend Error"},
			want: false,
		},
		{
			name: "network error",
			err:  errors.New("dial tcp: connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuthError(tt.err); got != tt.want {
				t.Errorf("IsAuthError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "prefers remote message",
			err:  fmt.Errorf("patch failed: %w", &googleapi.Error{Code: 400, Message: "Invalid task ID"}),
			want: "Invalid task ID",
		},
		{
			name: "falls back to error text",
			err:  errors.New("connection reset"),
			want: "connection reset",
		},
		{
			name: "nil error",
			err:  nil,
			want: "Unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.want {
				t.Errorf("ErrorMessage(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestToProfileDefaults(t *testing.T) {
	p := toProfile(nil)
	if p.Name != "User" || p.Email != "No email" {
		t.Errorf("Expected display defaults for missing profile, got %+v", p)
	}
}
