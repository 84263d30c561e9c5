package reply

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Cityscope/internal/api/handlers"
	"Cityscope/internal/api/middleware"
	"Cityscope/internal/core/replies"
)

// CreateHandler handles reply creation
type CreateHandler struct {
	service replies.Service
}

// NewCreateHandler creates a new reply handler
func NewCreateHandler(service replies.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

type replyBody struct {
	Content string `json:"content"`
}

// HandleCreate appends a reply to a post
// POST /api/posts/{postID}/replies  body: { "content": ... }
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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

	var body replyBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), *id, postID, body.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]*replies.Reply{"reply": created})
}

// parsePostID reads the {postID} URL parameter
func parsePostID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
}

// handleServiceError converts reply service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var valErr *replies.ValidationError

	switch {
	case errors.As(err, &valErr):
		handlers.WriteValidationError(w, []string{valErr.Message})
	case errors.Is(err, replies.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "Post not found")
	default:
		log.Printf("Reply error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
