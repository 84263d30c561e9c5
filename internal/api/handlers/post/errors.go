package post

import (
	"errors"
	"log"
	"net/http"

	"Cityscope/internal/api/handlers"
	"Cityscope/internal/core/posts"
	"Cityscope/internal/core/replies"
	"Cityscope/internal/core/users"
)

// handleServiceError converts post service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var valErr *posts.ValidationError

	switch {
	case errors.As(err, &valErr):
		handlers.WriteValidationError(w, []string{valErr.Message})
	case errors.Is(err, posts.ErrPostNotFound), errors.Is(err, replies.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, posts.ErrNotAuthor):
		handlers.WriteError(w, http.StatusForbidden, "Only the author may modify this post")
	case posts.IsStorageError(err):
		// Collaborator failure: no internal detail leaks to the caller
		log.Printf("Storage error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Post error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
