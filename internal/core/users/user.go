package users

import "time"

// User represents a registered neighbor.
// PasswordHash is never serialized; the json tag guards against
// accidental exposure through handler responses.
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Bio          string    `json:"bio" db:"bio"`
	Location     string    `json:"location" db:"location"`
	ID           int64     `json:"id" db:"id"`
}

// RegisterRequest is the input for creating a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Bio      string `json:"bio,omitempty"`
	Location string `json:"location,omitempty"`
}

// LoginRequest is the input for authenticating an existing account.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries the editable profile fields. Nil fields
// are left untouched.
type UpdateProfileRequest struct {
	Bio      *string `json:"bio,omitempty"`
	Location *string `json:"location,omitempty"`
}

// AuthResponse pairs a user with a freshly issued credential.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
