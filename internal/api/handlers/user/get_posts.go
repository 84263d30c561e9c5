package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Cityscope/internal/api/handlers"
	"Cityscope/internal/api/middleware"
	"Cityscope/internal/core/posts"
)

// GetPostsHandler handles a profile page's post feed
type GetPostsHandler struct {
	postService posts.Service
}

// NewGetPostsHandler creates a new user posts handler
func NewGetPostsHandler(postService posts.Service) *GetPostsHandler {
	return &GetPostsHandler{postService: postService}
}

// HandleGetPosts returns a user's posts, newest-first
// GET /api/users/{username}/posts
func (h *GetPostsHandler) HandleGetPosts(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	userPosts, err := h.postService.ListByAuthor(r.Context(), username, middleware.GetViewerID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string][]*posts.Post{"posts": userPosts})
}
