package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Cityscope/internal/core/replies"
)

type postgresReplyRepo struct {
	db *sql.DB
}

// NewReplyRepository creates a new PostgreSQL reply repository
func NewReplyRepository(db *sql.DB) replies.Repository {
	return &postgresReplyRepo{db: db}
}

// Create appends a reply. The post foreign key surfaces as ErrPostNotFound.
func (r *postgresReplyRepo) Create(ctx context.Context, reply *replies.Reply) (*replies.Reply, error) {
	query := `
		INSERT INTO replies (post_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		reply.PostID, reply.AuthorID, reply.Content,
	).Scan(&reply.ID, &reply.CreatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "replies_post_id_fkey") {
			return nil, replies.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to insert reply: %w", err)
	}

	return reply, nil
}

// ListForPost returns a post's replies in insertion order
func (r *postgresReplyRepo) ListForPost(ctx context.Context, postID int64) ([]*replies.Reply, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, postID,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, replies.ErrPostNotFound
	}

	query := `
		SELECT rp.id, rp.post_id, rp.user_id, u.username, rp.content, rp.created_at
		FROM replies rp
		JOIN users u ON u.id = rp.user_id
		WHERE rp.post_id = $1
		ORDER BY rp.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}
	defer rows.Close()

	result := make([]*replies.Reply, 0)
	for rows.Next() {
		var reply replies.Reply
		if err := rows.Scan(
			&reply.ID, &reply.PostID, &reply.AuthorID,
			&reply.AuthorUsername, &reply.Content, &reply.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		result = append(result, &reply)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate replies: %w", err)
	}

	return result, nil
}
