package users

import (
	"errors"
	"fmt"
)

// Sentinel errors for common user operations
var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when registering with a username that
	// belongs to another account
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned for an unknown username or a wrong
	// password; login never distinguishes the two
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotProfileOwner is returned when a caller edits a profile other
	// than their own
	ErrNotProfileOwner = errors.New("cannot edit another user's profile")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
