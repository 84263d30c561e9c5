package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Cityscope/internal/api/handlers"
	"Cityscope/internal/api/middleware"
	"Cityscope/internal/core/users"
)

// UpdateProfileHandler handles profile edits
type UpdateProfileHandler struct {
	service users.Service
}

// NewUpdateProfileHandler creates a new update profile handler
func NewUpdateProfileHandler(service users.Service) *UpdateProfileHandler {
	return &UpdateProfileHandler{service: service}
}

// HandleUpdateProfile edits bio/location on the caller's own profile
// PUT /api/users/{username}
func (h *UpdateProfileHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := middleware.GetIdentity(r)
	if id == nil {
		handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req users.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), id.UserID, chi.URLParam(r, "username"), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]*users.User{"user": updated})
}
