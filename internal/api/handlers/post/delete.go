package post

import (
	"net/http"

	"Cityscope/internal/api/handlers"
	"Cityscope/internal/api/middleware"
	"Cityscope/internal/core/posts"
)

// DeleteHandler handles post deletion
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new delete post handler
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete removes a post and everything it owns. Author only.
// DELETE /api/posts/{postID}
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := middleware.GetIdentity(r)
	if id == nil {
		handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	postID, err := parsePostID(r)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	if err := h.service.Delete(r.Context(), id.UserID, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
