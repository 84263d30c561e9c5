package users

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"Cityscope/internal/core/identity"
)

// Usernames are case-sensitive and immutable once set: letters, digits,
// and underscores only.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

const (
	minUsernameLen = 3
	maxUsernameLen = 30
	minPasswordLen = 6
	maxBioLen      = 160
)

type userService struct {
	repo   Repository
	gate   identity.Gate
	hasher identity.Hasher
	logger *slog.Logger
}

// NewService creates a new user service
func NewService(repo Repository, gate identity.Gate, hasher identity.Hasher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		repo:   repo,
		gate:   gate,
		hasher: hasher,
		logger: logger,
	}
}

// Register creates a new account and issues its first credential
func (s *userService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	req.Username = strings.TrimSpace(req.Username)

	if err := s.validateRegisterRequest(req); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Username:     req.Username,
		PasswordHash: hash,
		Bio:          strings.TrimSpace(req.Bio),
		Location:     strings.TrimSpace(req.Location),
	}

	// Repository surfaces the unique constraint as ErrUsernameTaken
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.gate.Issue(identity.Identity{UserID: created.ID, Username: created.Username})
	if err != nil {
		return nil, fmt.Errorf("failed to issue credential: %w", err)
	}

	s.logger.Info("user registered", "username", created.Username, "id", created.ID)

	return &AuthResponse{User: created, Token: token}, nil
}

// Login verifies a password and issues a fresh credential.
// Unknown usernames and wrong passwords both return ErrInvalidCredentials
// so the endpoint can't be used as a username oracle.
func (s *userService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if err == ErrUserNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.gate.Issue(identity.Identity{UserID: user.ID, Username: user.Username})
	if err != nil {
		return nil, fmt.Errorf("failed to issue credential: %w", err)
	}

	s.logger.Info("user logged in", "username", user.Username)

	return &AuthResponse{User: user, Token: token}, nil
}

// Get retrieves a user's public profile by username
func (s *userService) Get(ctx context.Context, username string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, NewValidationError("username", "username is required")
	}
	return s.repo.GetByUsername(ctx, username)
}

// GetByID retrieves a user by their stable ID
func (s *userService) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProfile edits bio/location on the caller's own profile.
// Ownership is re-verified against the freshly loaded row, never against
// a client-supplied snapshot.
func (s *userService) UpdateProfile(ctx context.Context, callerID int64, username string, req UpdateProfileRequest) (*User, error) {
	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}

	if user.ID != callerID {
		return nil, ErrNotProfileOwner
	}

	if req.Bio != nil {
		bio := strings.TrimSpace(*req.Bio)
		if utf8.RuneCountInString(bio) > maxBioLen {
			return nil, NewValidationError("bio", fmt.Sprintf("bio must be at most %d characters", maxBioLen))
		}
		user.Bio = bio
	}

	if req.Location != nil {
		user.Location = strings.TrimSpace(*req.Location)
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "username", updated.Username)

	return updated, nil
}

func (s *userService) validateRegisterRequest(req RegisterRequest) error {
	if req.Username == "" {
		return NewValidationError("username", "username is required")
	}
	if len(req.Username) < minUsernameLen || len(req.Username) > maxUsernameLen {
		return NewValidationError("username",
			fmt.Sprintf("username must be between %d and %d characters", minUsernameLen, maxUsernameLen))
	}
	if !usernameRegex.MatchString(req.Username) {
		return NewValidationError("username", "username may contain only letters, digits, and underscores")
	}
	if len(req.Password) < minPasswordLen {
		return NewValidationError("password",
			fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Bio)) > maxBioLen {
		return NewValidationError("bio", fmt.Sprintf("bio must be at most %d characters", maxBioLen))
	}
	return nil
}
