package routes

import (
	"github.com/go-chi/chi/v5"

	"Cityscope/internal/api/handlers/user"
	"Cityscope/internal/api/middleware"
	"Cityscope/internal/core/posts"
	"Cityscope/internal/core/users"
)

// RegisterUserRoutes registers profile endpoints on the router
func RegisterUserRoutes(r chi.Router, userService users.Service, postService posts.Service, authMiddleware *middleware.AuthMiddleware) {
	getHandler := user.NewGetProfileHandler(userService, postService)
	updateHandler := user.NewUpdateProfileHandler(userService)
	postsHandler := user.NewGetPostsHandler(postService)

	r.Route("/api/users/{username}", func(r chi.Router) {
		r.With(authMiddleware.OptionalAuth).Get("/", getHandler.HandleGetProfile)
		r.With(authMiddleware.RequireAuth).Put("/", updateHandler.HandleUpdateProfile)
		r.With(authMiddleware.OptionalAuth).Get("/posts", postsHandler.HandleGetPosts)
	})
}
