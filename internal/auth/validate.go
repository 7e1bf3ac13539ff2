package auth

import "regexp"

// ValidationError is a user-visible form failure. It never mutates any
// store; the directory is only reached once validation passes.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLen = 6

func ValidateSignUp(name, email, password, confirm string) error {
	if name == "" || email == "" || password == "" || confirm == "" {
		return &ValidationError{Message: "Please fill in all fields"}
	}
	if !emailRe.MatchString(email) {
		return &ValidationError{Message: "Please enter a valid email address"}
	}
	if len(password) < minPasswordLen {
		return &ValidationError{Message: "Password must be at least 6 characters"}
	}
	if password != confirm {
		return &ValidationError{Message: "Passwords do not match"}
	}
	return nil
}

func ValidateSignIn(email, password string) error {
	if email == "" || password == "" {
		return &ValidationError{Message: "Please fill in all fields"}
	}
	if !emailRe.MatchString(email) {
		return &ValidationError{Message: "Please enter a valid email address"}
	}
	return nil
}
