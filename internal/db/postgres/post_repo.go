package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Cityscope/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// postColumns is the SELECT list shared by every post read. The scalar
// subqueries keep aggregate counts and viewer state in the same
// statement, so every read reflects one consistent snapshot.
const postColumns = `
	p.id, p.author_id, u.username, p.content, p.post_type, p.location,
	p.image_url, p.created_at, p.updated_at,
	(SELECT COUNT(*) FROM reactions r WHERE r.post_id = p.id AND r.polarity = 'like') AS likes,
	(SELECT COUNT(*) FROM reactions r WHERE r.post_id = p.id AND r.polarity = 'dislike') AS dislikes,
	(SELECT COUNT(*) FROM replies rp WHERE rp.post_id = p.id) AS reply_count,
	(SELECT r.polarity FROM reactions r WHERE r.post_id = p.id AND r.user_id = $1) AS user_reaction
`

// Create inserts a new post
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (author_id, content, post_type, location, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		post.AuthorID, post.Content, post.PostType, post.Location, post.ImageURL,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return post, nil
}

// GetByID retrieves a post with aggregate counts and viewer state
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64, viewerID *int64) (*posts.Post, error) {
	query := `SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $2
	`

	row := r.db.QueryRowContext(ctx, query, nullableID(viewerID), id)

	post, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// List retrieves the feed newest-first with optional filters
func (r *postgresPostRepo) List(ctx context.Context, req posts.ListRequest) ([]*posts.Post, error) {
	query := `SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE ($2 = '' OR p.location ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR p.post_type = $3)
		ORDER BY p.created_at DESC, p.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, nullableID(req.ViewerID), req.Location, req.PostType)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// ListByAuthor retrieves an author's posts newest-first
func (r *postgresPostRepo) ListByAuthor(ctx context.Context, authorID int64, viewerID *int64) ([]*posts.Post, error) {
	query := `SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.author_id = $2
		ORDER BY p.created_at DESC, p.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, nullableID(viewerID), authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list author posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// Update persists the editable post fields
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET content = $2, post_type = $3, location = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		post.ID, post.Content, post.PostType, post.Location,
	).Scan(&post.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// Delete removes a post. Reactions and replies go with it through the
// ON DELETE CASCADE foreign keys, so the removal is atomic: no reader
// observes a post stripped of its reactions but not yet gone.
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*posts.Post, error) {
	var post posts.Post
	var userReaction sql.NullString

	err := row.Scan(
		&post.ID, &post.AuthorID, &post.AuthorUsername,
		&post.Content, &post.PostType, &post.Location,
		&post.ImageURL, &post.CreatedAt, &post.UpdatedAt,
		&post.Likes, &post.Dislikes, &post.ReplyCount,
		&userReaction,
	)
	if err != nil {
		return nil, err
	}

	if userReaction.Valid {
		post.UserReaction = &userReaction.String
	}

	return &post, nil
}

func scanPosts(rows *sql.Rows) ([]*posts.Post, error) {
	result := make([]*posts.Post, 0)

	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return result, nil
}

// nullableID converts an optional viewer ID into a SQL parameter, so an
// anonymous viewer's user_reaction subquery matches nothing.
func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
