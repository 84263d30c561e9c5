package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Cityscope/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) *postgresUserRepo {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user. The username unique constraint surfaces as
// users.ErrUsernameTaken.
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (username, password_hash, bio, location)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		user.Username, user.PasswordHash, user.Bio, user.Location,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "users_username_key") {
			return nil, users.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by their stable ID
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetByUsername retrieves a user by username. Match is case-sensitive.
func (r *postgresUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	return r.getOne(ctx, `WHERE username = $1`, username)
}

func (r *postgresUserRepo) getOne(ctx context.Context, where string, arg interface{}) (*users.User, error) {
	query := `
		SELECT id, username, password_hash, bio, location, created_at, updated_at
		FROM users
	` + where

	var user users.User

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.PasswordHash,
		&user.Bio, &user.Location, &user.CreatedAt, &user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// Update persists the editable profile fields
func (r *postgresUserRepo) Update(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		UPDATE users
		SET bio = $2, location = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query, user.ID, user.Bio, user.Location).Scan(&user.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// GetIDByUsername resolves a username to a user ID.
// Satisfies posts.AuthorLookup.
func (r *postgresUserRepo) GetIDByUsername(ctx context.Context, username string) (int64, error) {
	var id int64

	err := r.db.QueryRowContext(ctx, `SELECT id FROM users WHERE username = $1`, username).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, users.ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve username: %w", err)
	}

	return id, nil
}
