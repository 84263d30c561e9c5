package users

import "context"

// Repository defines the data access interface for users
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, user *User) (*User, error)
}

// Service defines the business logic interface for accounts and profiles
type Service interface {
	// Register creates an account and issues its first credential.
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)

	// Login verifies a password and issues a fresh credential.
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)

	// Get retrieves a user's public profile by username (case-sensitive).
	Get(ctx context.Context, username string) (*User, error)

	// GetByID retrieves a user by their stable ID.
	GetByID(ctx context.Context, id int64) (*User, error)

	// UpdateProfile edits bio/location. callerID must own the profile.
	UpdateProfile(ctx context.Context, callerID int64, username string, req UpdateProfileRequest) (*User, error)
}
