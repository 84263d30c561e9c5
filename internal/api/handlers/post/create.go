package post

import (
	"io"
	"net/http"

	"Cityscope/internal/api/handlers"
	"Cityscope/internal/api/middleware"
	"Cityscope/internal/core/posts"
)

// maxUploadBytes bounds multipart parsing: 6MB image + form overhead.
const maxUploadBytes = 7 << 20

// CreateHandler handles post creation
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create post handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate creates a post from a multipart form
// POST /api/posts  (fields: content, postType, location, image?)
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	id := middleware.GetIdentity(r)
	if id == nil {
		handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	req := posts.CreatePostRequest{
		Content:  r.FormValue("content"),
		PostType: r.FormValue("postType"),
		Location: r.FormValue("location"),
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()

		data, readErr := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if readErr != nil {
			handlers.WriteError(w, http.StatusBadRequest, "Failed to read image")
			return
		}

		req.Image = &posts.ImageUpload{
			Data:     data,
			MimeType: header.Header.Get("Content-Type"),
		}
	}

	created, err := h.service.Create(r.Context(), *id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]*posts.Post{"post": created})
}
