package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"Cityscope/internal/api/handlers/auth"
	"Cityscope/internal/api/middleware"
	"Cityscope/internal/core/users"
)

// RegisterAuthRoutes registers account endpoints on the router.
// Register/login carry stricter rate limits than the global one to slow
// credential stuffing.
func RegisterAuthRoutes(r chi.Router, service users.Service, authMiddleware *middleware.AuthMiddleware) {
	registerHandler := auth.NewRegisterHandler(service)
	loginHandler := auth.NewLoginHandler(service)
	meHandler := auth.NewMeHandler(service)

	loginLimiter := middleware.NewRateLimiter(10, 1*time.Minute)

	r.With(loginLimiter.Middleware).Post("/api/auth/register", registerHandler.HandleRegister)
	r.With(loginLimiter.Middleware).Post("/api/auth/login", loginHandler.HandleLogin)
	r.With(authMiddleware.RequireAuth).Get("/api/auth/me", meHandler.HandleMe)
}
