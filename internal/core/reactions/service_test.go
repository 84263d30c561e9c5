package reactions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReactionRepository struct {
	mock.Mock
}

func (m *mockReactionRepository) Toggle(ctx context.Context, postID, userID int64, polarity string) (*Counts, error) {
	args := m.Called(ctx, postID, userID, polarity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Counts), args.Error(1)
}

func (m *mockReactionRepository) Remove(ctx context.Context, postID, userID int64) (*Counts, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Counts), args.Error(1)
}

func (m *mockReactionRepository) CountsFor(ctx context.Context, postID int64, viewerID *int64) (*Counts, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Counts), args.Error(1)
}

func TestReactionService_React_RejectsInvalidPolarity(t *testing.T) {
	repo := new(mockReactionRepository)
	service := NewService(repo, nil)

	for _, polarity := range []string{"", "love", "LIKE", "up"} {
		_, err := service.React(context.Background(), 1, 2, polarity)
		assert.ErrorIs(t, err, ErrInvalidPolarity, "polarity %q", polarity)
	}

	repo.AssertNotCalled(t, "Toggle")
}

func TestReactionService_React_DelegatesToggle(t *testing.T) {
	repo := new(mockReactionRepository)
	service := NewService(repo, nil)

	like := PolarityLike
	expected := &Counts{Likes: 3, Dislikes: 1, UserReaction: &like}

	repo.On("Toggle", mock.Anything, int64(10), int64(7), PolarityLike).Return(expected, nil)

	counts, err := service.React(context.Background(), 7, 10, PolarityLike)
	require.NoError(t, err)
	assert.Equal(t, expected, counts)
	repo.AssertExpectations(t)
}

func TestReactionService_React_MissingPost(t *testing.T) {
	repo := new(mockReactionRepository)
	service := NewService(repo, nil)

	repo.On("Toggle", mock.Anything, int64(404), int64(7), PolarityDislike).Return(nil, ErrPostNotFound)

	_, err := service.React(context.Background(), 7, 404, PolarityDislike)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestReactionService_Unreact_Idempotent(t *testing.T) {
	repo := new(mockReactionRepository)
	service := NewService(repo, nil)

	// No reaction to remove: still a success with current counts
	expected := &Counts{Likes: 2, Dislikes: 0, UserReaction: nil}
	repo.On("Remove", mock.Anything, int64(10), int64(7)).Return(expected, nil).Twice()

	first, err := service.Unreact(context.Background(), 7, 10)
	require.NoError(t, err)

	second, err := service.Unreact(context.Background(), 7, 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Nil(t, second.UserReaction)
	repo.AssertExpectations(t)
}
