package posts

import (
	"context"

	"Cityscope/internal/core/identity"
)

// Repository defines the data access interface for posts.
// Read methods take an optional viewerID so a single query can return
// aggregate counts together with the viewer's own reaction state.
type Repository interface {
	Create(ctx context.Context, post *Post) (*Post, error)

	// GetByID returns ErrPostNotFound when no row matches.
	GetByID(ctx context.Context, id int64, viewerID *int64) (*Post, error)

	// List returns posts newest-first, filtered per req.
	List(ctx context.Context, req ListRequest) ([]*Post, error)

	// ListByAuthor returns an author's posts newest-first.
	ListByAuthor(ctx context.Context, authorID int64, viewerID *int64) ([]*Post, error)

	Update(ctx context.Context, post *Post) (*Post, error)

	// Delete removes the post and, through it, all of its reactions and
	// replies in a single transaction.
	Delete(ctx context.Context, id int64) error
}

// Service defines the business logic interface for the post lifecycle
type Service interface {
	// Create validates input, stores any supplied image first, then
	// persists the post. A blob-store failure aborts creation; no
	// orphaned post is ever written.
	Create(ctx context.Context, author identity.Identity, req CreatePostRequest) (*Post, error)

	// Get retrieves a single post. viewerID populates UserReaction.
	Get(ctx context.Context, postID int64, viewerID *int64) (*Post, error)

	// List retrieves the feed, newest-first.
	List(ctx context.Context, req ListRequest) ([]*Post, error)

	// ListByAuthor retrieves a profile page's posts, newest-first.
	ListByAuthor(ctx context.Context, username string, viewerID *int64) ([]*Post, error)

	// Update edits a post. Author only.
	Update(ctx context.Context, callerID int64, postID int64, req UpdatePostRequest) (*Post, error)

	// Delete removes a post and everything it owns. Author only.
	Delete(ctx context.Context, callerID int64, postID int64) error
}

// AuthorLookup is the slice of the user service the post service needs
// to resolve a profile username to an author ID.
type AuthorLookup interface {
	GetIDByUsername(ctx context.Context, username string) (int64, error)
}
