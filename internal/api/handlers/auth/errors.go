package auth

import (
	"errors"
	"log"
	"net/http"

	"Cityscope/internal/api/handlers"
	"Cityscope/internal/core/users"
)

// handleServiceError converts user service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var valErr *users.ValidationError

	switch {
	case errors.As(err, &valErr):
		handlers.WriteValidationError(w, []string{valErr.Message})
	case errors.Is(err, users.ErrUsernameTaken):
		// Duplicate unique field: 400 naming the field
		handlers.WriteError(w, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, users.ErrInvalidCredentials):
		handlers.WriteError(w, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "User not found")
	default:
		log.Printf("Auth error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
