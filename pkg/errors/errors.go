package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials      = errors.New("Login failed. Please try again.")
	ErrUnauthenticated         = errors.New("authentication required")
	ErrForbidden               = errors.New("not authorized to perform this action")
	ErrInsufficientPermissions = errors.New("insufficient permissions")

	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// AppError carries a machine-readable code alongside the message shown
// to the caller. Used for validation-class failures that have no
// sentinel of their own.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
