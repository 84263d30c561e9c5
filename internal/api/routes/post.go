package routes

import (
	"github.com/go-chi/chi/v5"

	"Cityscope/internal/api/handlers/post"
	"Cityscope/internal/api/handlers/reaction"
	"Cityscope/internal/api/handlers/reply"
	"Cityscope/internal/api/middleware"
	"Cityscope/internal/core/posts"
	"Cityscope/internal/core/reactions"
	"Cityscope/internal/core/replies"
)

// RegisterPostRoutes registers post, reaction, and reply endpoints.
// Reads are public but carry viewer state when a credential is present;
// every mutation requires authentication.
func RegisterPostRoutes(
	r chi.Router,
	postService posts.Service,
	reactionService reactions.Service,
	replyService replies.Service,
	authMiddleware *middleware.AuthMiddleware,
) {
	createHandler := post.NewCreateHandler(postService)
	getHandler := post.NewGetHandler(postService, replyService)
	listHandler := post.NewListHandler(postService)
	updateHandler := post.NewUpdateHandler(postService)
	deleteHandler := post.NewDeleteHandler(postService)

	reactHandler := reaction.NewCreateHandler(reactionService)
	unreactHandler := reaction.NewDeleteHandler(reactionService)

	replyCreateHandler := reply.NewCreateHandler(replyService)
	replyListHandler := reply.NewListHandler(replyService)

	r.Route("/api/posts", func(r chi.Router) {
		r.With(authMiddleware.OptionalAuth).Get("/", listHandler.HandleList)
		r.With(authMiddleware.RequireAuth).Post("/", createHandler.HandleCreate)

		r.Route("/{postID}", func(r chi.Router) {
			r.With(authMiddleware.OptionalAuth).Get("/", getHandler.HandleGet)
			r.With(authMiddleware.RequireAuth).Put("/", updateHandler.HandleUpdate)
			r.With(authMiddleware.RequireAuth).Delete("/", deleteHandler.HandleDelete)

			r.With(authMiddleware.RequireAuth).Post("/reactions", reactHandler.HandleCreate)
			r.With(authMiddleware.RequireAuth).Delete("/reactions", unreactHandler.HandleDelete)

			r.Get("/replies", replyListHandler.HandleList)
			r.With(authMiddleware.RequireAuth).Post("/replies", replyCreateHandler.HandleCreate)
		})
	})
}
