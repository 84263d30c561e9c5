package replies

import (
	"context"

	"Cityscope/internal/core/identity"
)

// Repository defines the data access interface for replies
type Repository interface {
	// Create appends a reply. ErrPostNotFound if the post is missing.
	Create(ctx context.Context, reply *Reply) (*Reply, error)

	// ListForPost returns a post's replies in insertion order.
	// ErrPostNotFound if the post is missing.
	ListForPost(ctx context.Context, postID int64) ([]*Reply, error)
}

// Service defines the business logic interface for replies
type Service interface {
	// Create validates content and appends a reply authored by the caller.
	Create(ctx context.Context, author identity.Identity, postID int64, content string) (*Reply, error)

	// ListForPost returns a post's replies oldest-first.
	ListForPost(ctx context.Context, postID int64) ([]*Reply, error)
}
