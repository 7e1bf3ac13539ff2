package auth_test

import (
	"errors"
	"testing"

	"Storefront/internal/auth"
)

func TestValidateSignUp(t *testing.T) {
	tests := []struct {
		name                            string
		userName, email, password, conf string
		wantMsg                         string
	}{
		{"valid", "Alice", "a@x.com", "secret1", "secret1", ""},
		{"missing name", "", "a@x.com", "secret1", "secret1", "Please fill in all fields"},
		{"missing confirm", "Alice", "a@x.com", "secret1", "", "Please fill in all fields"},
		{"bad email", "Alice", "not-an-email", "secret1", "secret1", "Please enter a valid email address"},
		{"email with spaces", "Alice", "a b@x.com", "secret1", "secret1", "Please enter a valid email address"},
		{"short password", "Alice", "a@x.com", "abc", "abc", "Password must be at least 6 characters"},
		{"mismatch", "Alice", "a@x.com", "secret1", "secret2", "Passwords do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.ValidateSignUp(tt.userName, tt.email, tt.password, tt.conf)
			checkValidation(t, err, tt.wantMsg)
		})
	}
}

func TestValidateSignIn(t *testing.T) {
	tests := []struct {
		name            string
		email, password string
		wantMsg         string
	}{
		{"valid", "a@x.com", "whatever", ""},
		{"missing email", "", "whatever", "Please fill in all fields"},
		{"missing password", "a@x.com", "", "Please fill in all fields"},
		{"bad email", "@x.com", "whatever", "Please enter a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.ValidateSignIn(tt.email, tt.password)
			checkValidation(t, err, tt.wantMsg)
		})
	}
}

func checkValidation(t *testing.T, err error, wantMsg string) {
	t.Helper()

	if wantMsg == "" {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}

	if err == nil {
		t.Fatalf("expected %q, got nil", wantMsg)
	}

	var ve *auth.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if ve.Message != wantMsg {
		t.Fatalf("got %q, want %q", ve.Message, wantMsg)
	}
}
