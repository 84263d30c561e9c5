package reaction

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Cityscope/internal/api/handlers"
	"Cityscope/internal/api/middleware"
	"Cityscope/internal/core/reactions"
)

// CreateHandler handles the reaction toggle
type CreateHandler struct {
	service reactions.Service
}

// NewCreateHandler creates a new reaction toggle handler
func NewCreateHandler(service reactions.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

type reactionBody struct {
	Type string `json:"type"`
}

// HandleCreate sets, replaces, or removes the caller's reaction
// POST /api/posts/{postID}/reactions  body: { "type": "like" | "dislike" }
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

	var body reactionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	counts, err := h.service.React(r.Context(), id.UserID, postID, body.Type)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, counts)
}

// parsePostID reads the {postID} URL parameter
func parsePostID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
}

// handleServiceError converts reaction service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reactions.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, reactions.ErrInvalidPolarity):
		handlers.WriteValidationError(w, []string{"type must be 'like' or 'dislike'"})
	default:
		log.Printf("Reaction error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
