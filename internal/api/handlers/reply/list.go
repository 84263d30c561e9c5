package reply

import (
	"net/http"

	"Cityscope/internal/api/handlers"
	"Cityscope/internal/core/replies"
)

// ListHandler handles reading a post's reply thread
type ListHandler struct {
	service replies.Service
}

// NewListHandler creates a new list replies handler
func NewListHandler(service replies.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList returns a post's replies in insertion order
// GET /api/posts/{postID}/replies
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	result, err := h.service.ListForPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string][]*replies.Reply{"replies": result})
}
