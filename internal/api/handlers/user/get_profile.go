package user

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Cityscope/internal/api/handlers"
	"Cityscope/internal/api/middleware"
	"Cityscope/internal/core/posts"
	"Cityscope/internal/core/users"
)

// GetProfileHandler handles public profile reads
type GetProfileHandler struct {
	userService users.Service
	postService posts.Service
}

// NewGetProfileHandler creates a new profile handler
func NewGetProfileHandler(userService users.Service, postService posts.Service) *GetProfileHandler {
	return &GetProfileHandler{userService: userService, postService: postService}
}

// HandleGetProfile returns a user's profile together with their posts
// GET /api/users/{username}
func (h *GetProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	profile, err := h.userService.Get(r.Context(), username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	userPosts, err := h.postService.ListByAuthor(r.Context(), username, middleware.GetViewerID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user":  profile,
		"posts": userPosts,
	})
}

// handleServiceError converts user service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var valErr *users.ValidationError

	switch {
	case errors.As(err, &valErr):
		handlers.WriteValidationError(w, []string{valErr.Message})
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, users.ErrNotProfileOwner):
		handlers.WriteError(w, http.StatusForbidden, "Cannot edit another user's profile")
	default:
		log.Printf("User error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
