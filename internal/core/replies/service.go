package replies

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"Cityscope/internal/core/identity"
)

// maxContentLen matches the post content limit.
const maxContentLen = 280

type replyService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new reply service
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &replyService{repo: repo, logger: logger}
}

// Create validates content and appends a reply with a server timestamp
func (s *replyService) Create(ctx context.Context, author identity.Identity, postID int64, content string) (*Reply, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, NewValidationError("content", "content is required")
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return nil, NewValidationError("content", "content must be at most 280 characters")
	}

	reply := &Reply{
		PostID:         postID,
		AuthorID:       author.UserID,
		AuthorUsername: author.Username,
		Content:        content,
	}

	created, err := s.repo.Create(ctx, reply)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reply created", "post", postID, "author", author.Username)

	return created, nil
}

// ListForPost returns a post's replies in insertion order
func (s *replyService) ListForPost(ctx context.Context, postID int64) ([]*Reply, error) {
	return s.repo.ListForPost(ctx, postID)
}
