package post

import (
	"net/http"

	"Cityscope/internal/api/handlers"
	"Cityscope/internal/api/middleware"
	"Cityscope/internal/core/posts"
)

// ListHandler handles the feed query
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list posts handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList returns the feed, newest-first, with optional filters
// GET /api/posts?location=&postType=
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	req := posts.ListRequest{
		Location: r.URL.Query().Get("location"),
		PostType: r.URL.Query().Get("postType"),
		ViewerID: middleware.GetViewerID(r),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string][]*posts.Post{"posts": result})
}
