package reaction

import (
	"net/http"

	"Cityscope/internal/api/handlers"
	"Cityscope/internal/api/middleware"
	"Cityscope/internal/core/reactions"
)

// DeleteHandler handles idempotent reaction removal
type DeleteHandler struct {
	service reactions.Service
}

// NewDeleteHandler creates a new reaction removal handler
func NewDeleteHandler(service reactions.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete removes the caller's reaction if present; without one it
// still answers 200 with current counts
// DELETE /api/posts/{postID}/reactions
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

	counts, err := h.service.Unreact(r.Context(), id.UserID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, counts)
}
