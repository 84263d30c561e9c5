package posts

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"Cityscope/internal/core/blobs"
	"Cityscope/internal/core/identity"
)

type postService struct {
	repo    Repository
	blobs   blobs.Store
	authors AuthorLookup
	logger  *slog.Logger
}

// NewService creates a new post service
func NewService(repo Repository, blobStore blobs.Store, authors AuthorLookup, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:    repo,
		blobs:   blobStore,
		authors: authors,
		logger:  logger,
	}
}

// Create validates input, stores the image (if any), then persists the post.
// Validation and the blob upload both happen before any database write, so a
// failure at either step leaves no partial post behind.
func (s *postService) Create(ctx context.Context, author identity.Identity, req CreatePostRequest) (*Post, error) {
	content := strings.TrimSpace(req.Content)
	location := strings.TrimSpace(req.Location)

	postType := req.PostType
	if postType == "" {
		postType = PostTypeUpdate
	}

	if err := validateContent(content); err != nil {
		return nil, err
	}
	if location == "" {
		return nil, NewValidationError("location", "location is required")
	}
	if !ValidPostType(postType) {
		return nil, NewValidationError("postType",
			"postType must be one of: recommendation, help, update, event")
	}

	var imageURL *string
	if req.Image != nil {
		ref, err := s.blobs.Put(ctx, req.Image.Data, req.Image.MimeType)
		if err != nil {
			s.logger.Error("image upload failed", "error", err, "author", author.Username)
			return nil, NewStorageError("image upload", err)
		}
		imageURL = &ref.URL
	}

	post := &Post{
		AuthorID:       author.UserID,
		AuthorUsername: author.Username,
		Content:        content,
		PostType:       postType,
		Location:       location,
		ImageURL:       imageURL,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.logger.Info("post created",
		"id", created.ID,
		"author", author.Username,
		"postType", created.PostType)

	return created, nil
}

// Get retrieves a single post with aggregate counts and viewer state
func (s *postService) Get(ctx context.Context, postID int64, viewerID *int64) (*Post, error) {
	return s.repo.GetByID(ctx, postID, viewerID)
}

// List retrieves the feed, newest-first, applying optional filters
func (s *postService) List(ctx context.Context, req ListRequest) ([]*Post, error) {
	req.Location = strings.TrimSpace(req.Location)
	req.PostType = strings.TrimSpace(req.PostType)

	if req.PostType != "" && !ValidPostType(req.PostType) {
		return nil, NewValidationError("postType",
			"postType must be one of: recommendation, help, update, event")
	}

	return s.repo.List(ctx, req)
}

// ListByAuthor retrieves a profile page's posts, newest-first
func (s *postService) ListByAuthor(ctx context.Context, username string, viewerID *int64) ([]*Post, error) {
	authorID, err := s.authors.GetIDByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	return s.repo.ListByAuthor(ctx, authorID, viewerID)
}

// Update edits a post's content, type, or location. Ownership is checked
// against the freshly loaded row.
func (s *postService) Update(ctx context.Context, callerID int64, postID int64, req UpdatePostRequest) (*Post, error) {
	post, err := s.repo.GetByID(ctx, postID, nil)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != callerID {
		return nil, ErrNotAuthor
	}

	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if err := validateContent(content); err != nil {
			return nil, err
		}
		post.Content = content
	}

	if req.PostType != nil {
		if !ValidPostType(*req.PostType) {
			return nil, NewValidationError("postType",
				"postType must be one of: recommendation, help, update, event")
		}
		post.PostType = *req.PostType
	}

	if req.Location != nil {
		location := strings.TrimSpace(*req.Location)
		if location == "" {
			return nil, NewValidationError("location", "location is required")
		}
		post.Location = location
	}

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	s.logger.Info("post updated", "id", postID, "author", callerID)

	return updated, nil
}

// Delete removes a post together with its reactions and replies.
// Only the author may delete; the check runs against current state so a
// stale client snapshot can't bypass ownership.
func (s *postService) Delete(ctx context.Context, callerID int64, postID int64) error {
	post, err := s.repo.GetByID(ctx, postID, nil)
	if err != nil {
		return err
	}

	if post.AuthorID != callerID {
		return ErrNotAuthor
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		return err
	}

	s.logger.Info("post deleted", "id", postID, "author", callerID)

	return nil
}

func validateContent(content string) error {
	if content == "" {
		return NewValidationError("content", "content is required")
	}
	if utf8.RuneCountInString(content) > MaxContentLen {
		return NewValidationError("content", "content must be at most 280 characters")
	}
	return nil
}
