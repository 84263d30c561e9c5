package posts_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Cityscope/internal/core/blobs"
	"Cityscope/internal/core/identity"
	"Cityscope/internal/core/posts"
	"Cityscope/internal/core/reactions"
	"Cityscope/internal/core/replies"
)

// memStore is a shared in-memory backend implementing the post, reaction,
// and reply repositories, so the full post lifecycle can run through the
// real services. Deleting a post drops its reactions and replies, the
// same cascade the database enforces.
type memStore struct {
	mu        sync.Mutex
	nextID    int64
	posts     map[int64]*posts.Post
	reactions map[int64]map[int64]string // postID -> userID -> polarity
	replies   map[int64][]*replies.Reply
}

func newMemStore() *memStore {
	return &memStore{
		posts:     make(map[int64]*posts.Post),
		reactions: make(map[int64]map[int64]string),
		replies:   make(map[int64][]*replies.Reply),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) countsLocked(postID int64, viewerID *int64) *reactions.Counts {
	counts := &reactions.Counts{}
	for userID, polarity := range s.reactions[postID] {
		switch polarity {
		case reactions.PolarityLike:
			counts.Likes++
		case reactions.PolarityDislike:
			counts.Dislikes++
		}
		if viewerID != nil && userID == *viewerID {
			p := polarity
			counts.UserReaction = &p
		}
	}
	return counts
}

func (s *memStore) viewLocked(post *posts.Post, viewerID *int64) *posts.Post {
	view := *post
	counts := s.countsLocked(post.ID, viewerID)
	view.Likes = counts.Likes
	view.Dislikes = counts.Dislikes
	view.UserReaction = counts.UserReaction
	view.ReplyCount = len(s.replies[post.ID])
	return &view
}

// posts.Repository

func (s *memStore) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *post
	stored.ID = s.id()
	s.posts[stored.ID] = &stored
	return s.viewLocked(&stored, nil), nil
}

func (s *memStore) GetByID(ctx context.Context, id int64, viewerID *int64) (*posts.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[id]
	if !ok {
		return nil, posts.ErrPostNotFound
	}
	return s.viewLocked(post, viewerID), nil
}

func (s *memStore) List(ctx context.Context, req posts.ListRequest) ([]*posts.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*posts.Post
	for _, post := range s.posts {
		if req.Location != "" && !strings.Contains(strings.ToLower(post.Location), strings.ToLower(req.Location)) {
			continue
		}
		if req.PostType != "" && post.PostType != req.PostType {
			continue
		}
		result = append(result, s.viewLocked(post, req.ViewerID))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (s *memStore) ListByAuthor(ctx context.Context, authorID int64, viewerID *int64) ([]*posts.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*posts.Post
	for _, post := range s.posts {
		if post.AuthorID == authorID {
			result = append(result, s.viewLocked(post, viewerID))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (s *memStore) Update(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[post.ID]; !ok {
		return nil, posts.ErrPostNotFound
	}
	stored := *post
	s.posts[post.ID] = &stored
	return s.viewLocked(&stored, nil), nil
}

func (s *memStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return posts.ErrPostNotFound
	}
	delete(s.posts, id)
	delete(s.reactions, id)
	delete(s.replies, id)
	return nil
}

// reactions.Repository

func (s *memStore) Toggle(ctx context.Context, postID, userID int64, polarity string) (*reactions.Counts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[postID]; !ok {
		return nil, reactions.ErrPostNotFound
	}
	if s.reactions[postID] == nil {
		s.reactions[postID] = make(map[int64]string)
	}
	next := reactions.Transition(s.reactions[postID][userID], polarity)
	if next == "" {
		delete(s.reactions[postID], userID)
	} else {
		s.reactions[postID][userID] = next
	}
	return s.countsLocked(postID, &userID), nil
}

func (s *memStore) Remove(ctx context.Context, postID, userID int64) (*reactions.Counts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[postID]; !ok {
		return nil, reactions.ErrPostNotFound
	}
	delete(s.reactions[postID], userID)
	return s.countsLocked(postID, &userID), nil
}

func (s *memStore) CountsFor(ctx context.Context, postID int64, viewerID *int64) (*reactions.Counts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[postID]; !ok {
		return nil, reactions.ErrPostNotFound
	}
	return s.countsLocked(postID, viewerID), nil
}

// replies.Repository

func (s *memStore) CreateReply(ctx context.Context, reply *replies.Reply) (*replies.Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[reply.PostID]; !ok {
		return nil, replies.ErrPostNotFound
	}
	stored := *reply
	stored.ID = s.id()
	s.replies[reply.PostID] = append(s.replies[reply.PostID], &stored)
	return &stored, nil
}

func (s *memStore) ListForPost(ctx context.Context, postID int64) ([]*replies.Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[postID]; !ok {
		return nil, replies.ErrPostNotFound
	}
	return append([]*replies.Reply{}, s.replies[postID]...), nil
}

// replyRepo adapts memStore to replies.Repository, whose Create has the
// same name as the post repository's.
type replyRepo struct{ *memStore }

func (r replyRepo) Create(ctx context.Context, reply *replies.Reply) (*replies.Reply, error) {
	return r.CreateReply(ctx, reply)
}

type noAuthors struct{}

func (noAuthors) GetIDByUsername(ctx context.Context, username string) (int64, error) {
	return 0, posts.ErrPostNotFound
}

type noBlobs struct{}

func (noBlobs) Put(ctx context.Context, data []byte, mimeType string) (*blobs.BlobRef, error) {
	return &blobs.BlobRef{URL: "/uploads/test"}, nil
}

func TestPostLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	postService := posts.NewService(store, noBlobs{}, noAuthors{}, nil)
	reactionService := reactions.NewService(store, nil)
	replyService := replies.NewService(replyRepo{store}, nil)

	alice := identity.Identity{UserID: 1, Username: "alice"}
	bob := identity.Identity{UserID: 2, Username: "bob"}

	// Alice posts an event
	post, err := postService.Create(ctx, alice, posts.CreatePostRequest{
		Content:  "Block party on Saturday",
		PostType: posts.PostTypeEvent,
		Location: "Elm Street",
	})
	require.NoError(t, err)

	// Bob likes it
	counts, err := reactionService.React(ctx, bob.UserID, post.ID, reactions.PolarityLike)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Likes)
	require.NotNil(t, counts.UserReaction)
	assert.Equal(t, reactions.PolarityLike, *counts.UserReaction)

	// Liking again toggles the reaction off
	counts, err = reactionService.React(ctx, bob.UserID, post.ID, reactions.PolarityLike)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.Likes)
	assert.Nil(t, counts.UserReaction)

	// Like, then dislike: the dislike replaces the like
	_, err = reactionService.React(ctx, bob.UserID, post.ID, reactions.PolarityLike)
	require.NoError(t, err)
	counts, err = reactionService.React(ctx, bob.UserID, post.ID, reactions.PolarityDislike)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.Likes)
	assert.Equal(t, 1, counts.Dislikes)
	require.NotNil(t, counts.UserReaction)
	assert.Equal(t, reactions.PolarityDislike, *counts.UserReaction)

	// Bob replies
	reply, err := replyService.Create(ctx, bob, post.ID, "Can I bring anything?")
	require.NoError(t, err)
	assert.Equal(t, post.ID, reply.PostID)

	// Bob's view of the post carries his reaction and the reply count
	view, err := postService.Get(ctx, post.ID, &bob.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Dislikes)
	assert.Equal(t, 1, view.ReplyCount)
	require.NotNil(t, view.UserReaction)
	assert.Equal(t, reactions.PolarityDislike, *view.UserReaction)

	// Anonymous view of the same post has no reaction state
	view, err = postService.Get(ctx, post.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, view.UserReaction)

	// Bob can't delete Alice's post
	err = postService.Delete(ctx, bob.UserID, post.ID)
	assert.ErrorIs(t, err, posts.ErrNotAuthor)

	// Alice deletes it; everything it owned goes with it
	require.NoError(t, postService.Delete(ctx, alice.UserID, post.ID))

	_, err = postService.Get(ctx, post.ID, nil)
	assert.ErrorIs(t, err, posts.ErrPostNotFound)

	_, err = reactionService.React(ctx, bob.UserID, post.ID, reactions.PolarityLike)
	assert.ErrorIs(t, err, reactions.ErrPostNotFound)

	_, err = replyService.Create(ctx, bob, post.ID, "too late")
	assert.ErrorIs(t, err, replies.ErrPostNotFound)

	_, err = replyService.ListForPost(ctx, post.ID)
	assert.ErrorIs(t, err, replies.ErrPostNotFound)
}
