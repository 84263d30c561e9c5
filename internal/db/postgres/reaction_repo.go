package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Cityscope/internal/core/reactions"
)

type postgresReactionRepo struct {
	db *sql.DB
}

// NewReactionRepository creates a new PostgreSQL reaction repository
func NewReactionRepository(db *sql.DB) reactions.Repository {
	return &postgresReactionRepo{db: db}
}

// Toggle applies the three-state transition inside a single transaction.
// The post row is locked first, which serializes concurrent toggles on
// the same post and doubles as the existence check; the unique
// (post_id, user_id) constraint backstops the at-most-one invariant.
func (r *postgresReactionRepo) Toggle(ctx context.Context, postID, userID int64, polarity string) (*reactions.Counts, error) {
	return r.inTx(ctx, postID, func(tx *sql.Tx) error {
		var current string
		err := tx.QueryRowContext(ctx,
			`SELECT polarity FROM reactions WHERE post_id = $1 AND user_id = $2`,
			postID, userID,
		).Scan(&current)
		if err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("failed to read current reaction: %w", err)
		}

		next := reactions.Transition(current, polarity)

		switch next {
		case "":
			_, err = tx.ExecContext(ctx,
				`DELETE FROM reactions WHERE post_id = $1 AND user_id = $2`,
				postID, userID)
		default:
			_, err = tx.ExecContext(ctx, `
				INSERT INTO reactions (post_id, user_id, polarity)
				VALUES ($1, $2, $3)
				ON CONFLICT (post_id, user_id)
				DO UPDATE SET polarity = EXCLUDED.polarity, created_at = NOW()
			`, postID, userID, next)
		}
		if err != nil {
			return fmt.Errorf("failed to write reaction: %w", err)
		}

		return nil
	}, userID)
}

// Remove deletes the caller's reaction. Idempotent.
func (r *postgresReactionRepo) Remove(ctx context.Context, postID, userID int64) (*reactions.Counts, error) {
	return r.inTx(ctx, postID, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM reactions WHERE post_id = $1 AND user_id = $2`,
			postID, userID); err != nil {
			return fmt.Errorf("failed to delete reaction: %w", err)
		}
		return nil
	}, userID)
}

// CountsFor returns aggregates plus the viewer's state outside any toggle
func (r *postgresReactionRepo) CountsFor(ctx context.Context, postID int64, viewerID *int64) (*reactions.Counts, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, postID,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, reactions.ErrPostNotFound
	}

	var viewer sql.NullInt64
	if viewerID != nil {
		viewer = sql.NullInt64{Int64: *viewerID, Valid: true}
	}

	return queryCounts(ctx, r.db, postID, viewer)
}

// inTx runs mutate between the post lock and the counts read, all in one
// transaction, and returns the counts the transaction committed with.
func (r *postgresReactionRepo) inTx(ctx context.Context, postID int64, mutate func(*sql.Tx) error, userID int64) (*reactions.Counts, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var lockedID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM posts WHERE id = $1 FOR UPDATE`, postID).Scan(&lockedID)
	if err == sql.ErrNoRows {
		return nil, reactions.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock post: %w", err)
	}

	if err := mutate(tx); err != nil {
		return nil, err
	}

	counts, err := queryCounts(ctx, tx, postID, sql.NullInt64{Int64: userID, Valid: true})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reaction: %w", err)
	}

	return counts, nil
}

// queryer covers *sql.DB and *sql.Tx
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func queryCounts(ctx context.Context, q queryer, postID int64, viewer sql.NullInt64) (*reactions.Counts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE polarity = 'like') AS likes,
			COUNT(*) FILTER (WHERE polarity = 'dislike') AS dislikes,
			MAX(polarity) FILTER (WHERE user_id = $2) AS user_reaction
		FROM reactions
		WHERE post_id = $1
	`

	var counts reactions.Counts
	var userReaction sql.NullString

	if err := q.QueryRowContext(ctx, query, postID, viewer).Scan(
		&counts.Likes, &counts.Dislikes, &userReaction,
	); err != nil {
		return nil, fmt.Errorf("failed to read reaction counts: %w", err)
	}

	if userReaction.Valid {
		counts.UserReaction = &userReaction.String
	}

	return &counts, nil
}
