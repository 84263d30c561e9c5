package reactions

import "context"

// Repository defines the data access interface for reactions.
// Both mutations run as a single per-post transaction: the post row is
// locked, the caller's reaction row is read-modified-written, and the
// aggregate counts are taken inside the same transaction. That keeps the
// at-most-one-reaction-per-user invariant under concurrent reactions and
// prevents lost updates on rapid toggles.
type Repository interface {
	// Toggle applies Transition to the caller's current state and returns
	// the resulting counts. ErrPostNotFound if the post is missing.
	Toggle(ctx context.Context, postID, userID int64, polarity string) (*Counts, error)

	// Remove deletes the caller's reaction if present. Idempotent: with no
	// existing reaction it still returns current counts. ErrPostNotFound
	// only when the post itself is missing.
	Remove(ctx context.Context, postID, userID int64) (*Counts, error)

	// CountsFor returns a post's aggregates and, when viewerID is set,
	// that viewer's reaction state.
	CountsFor(ctx context.Context, postID int64, viewerID *int64) (*Counts, error)
}

// Service defines the business logic interface for reaction toggling
type Service interface {
	// React sets, replaces, or removes the caller's reaction per the
	// three-state toggle rule and returns fresh aggregate counts.
	React(ctx context.Context, userID, postID int64, polarity string) (*Counts, error)

	// Unreact removes the caller's reaction. Idempotent.
	Unreact(ctx context.Context, userID, postID int64) (*Counts, error)
}
