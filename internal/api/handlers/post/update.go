package post

import (
	"encoding/json"
	"net/http"

	"Cityscope/internal/api/handlers"
	"Cityscope/internal/api/middleware"
	"Cityscope/internal/core/posts"
)

// UpdateHandler handles post edits
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new update post handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

type updatePostBody struct {
	Content  *string `json:"content"`
	PostType *string `json:"postType"`
	Location *string `json:"location"`
}

// HandleUpdate edits a post. Author only.
// PUT /api/posts/{postID}
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	var body updatePostBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), id.UserID, postID, posts.UpdatePostRequest{
		Content:  body.Content,
		PostType: body.PostType,
		Location: body.Location,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]*posts.Post{"post": updated})
}
