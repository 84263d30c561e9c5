package auth

import (
	"net/http"

	"Cityscope/internal/api/handlers"
	"Cityscope/internal/api/middleware"
	"Cityscope/internal/core/users"
)

// MeHandler returns the authenticated caller's own profile
type MeHandler struct {
	service users.Service
}

// NewMeHandler creates a new me handler
func NewMeHandler(service users.Service) *MeHandler {
	return &MeHandler{service: service}
}

// HandleMe returns the current user
// GET /api/auth/me
func (h *MeHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	id := middleware.GetIdentity(r)
	if id == nil {
		handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.service.GetByID(r.Context(), id.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]*users.User{"user": user})
}
