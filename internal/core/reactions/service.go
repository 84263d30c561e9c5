package reactions

import (
	"context"
	"log/slog"
)

type reactionService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new reaction service
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &reactionService{repo: repo, logger: logger}
}

// React applies the toggle rule for the caller on the given post
func (s *reactionService) React(ctx context.Context, userID, postID int64, polarity string) (*Counts, error) {
	if !ValidPolarity(polarity) {
		return nil, ErrInvalidPolarity
	}

	counts, err := s.repo.Toggle(ctx, postID, userID, polarity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reaction toggled",
		"post", postID,
		"user", userID,
		"polarity", polarity,
		"result", stateLabel(counts.UserReaction))

	return counts, nil
}

// Unreact removes the caller's reaction, if any
func (s *reactionService) Unreact(ctx context.Context, userID, postID int64) (*Counts, error) {
	counts, err := s.repo.Remove(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reaction removed", "post", postID, "user", userID)

	return counts, nil
}

func stateLabel(reaction *string) string {
	if reaction == nil {
		return "none"
	}
	return *reaction
}
