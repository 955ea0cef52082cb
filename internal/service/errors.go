package service

import "errors"

// Domain errors for auth and recipe flows.
var (
	ErrUsernameTaken      = errors.New("username must be unique")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// ValidationError is a user-facing input rejection. Its message is safe to
// surface in a response body.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func newValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}
