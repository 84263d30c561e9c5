package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Cityscope/internal/api/handlers"
	"Cityscope/internal/api/middleware"
	"Cityscope/internal/core/posts"
	"Cityscope/internal/core/replies"
)

// PostDetail is a post together with its reply thread
type PostDetail struct {
	*posts.Post
	Replies []*replies.Reply `json:"replies"`
}

// GetHandler handles single-post reads
type GetHandler struct {
	service      posts.Service
	replyService replies.Service
}

// NewGetHandler creates a new get post handler
func NewGetHandler(service posts.Service, replyService replies.Service) *GetHandler {
	return &GetHandler{service: service, replyService: replyService}
}

// HandleGet returns one post with its replies
// GET /api/posts/{postID}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := h.service.Get(r.Context(), postID, middleware.GetViewerID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	postReplies, err := h.replyService.ListForPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, PostDetail{Post: post, Replies: postReplies})
}

// parsePostID reads the {postID} URL parameter
func parsePostID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
}
