package posts

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Cityscope/internal/core/blobs"
	"Cityscope/internal/core/identity"
)

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, post *Post) (*Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *mockPostRepository) GetByID(ctx context.Context, id int64, viewerID *int64) (*Post, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *mockPostRepository) List(ctx context.Context, req ListRequest) ([]*Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *mockPostRepository) ListByAuthor(ctx context.Context, authorID int64, viewerID *int64) ([]*Post, error) {
	args := m.Called(ctx, authorID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *mockPostRepository) Update(ctx context.Context, post *Post) (*Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *mockPostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockBlobStore struct {
	mock.Mock
}

func (m *mockBlobStore) Put(ctx context.Context, data []byte, mimeType string) (*blobs.BlobRef, error) {
	args := m.Called(ctx, data, mimeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blobs.BlobRef), args.Error(1)
}

type mockAuthorLookup struct {
	mock.Mock
}

func (m *mockAuthorLookup) GetIDByUsername(ctx context.Context, username string) (int64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService() (*mockPostRepository, *mockBlobStore, *mockAuthorLookup, Service) {
	repo := new(mockPostRepository)
	blobStore := new(mockBlobStore)
	authors := new(mockAuthorLookup)
	return repo, blobStore, authors, NewService(repo, blobStore, authors, nil)
}

var alice = identity.Identity{UserID: 1, Username: "alice"}

func TestPostService_Create_ContentBounds(t *testing.T) {
	repo, _, _, service := newTestService()

	repo.On("Create", mock.Anything, mock.Anything).Return(&Post{ID: 1}, nil)

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"empty rejected", "", true},
		{"whitespace-only rejected", "   \t  ", true},
		{"single char accepted", "x", false},
		{"exactly 280 accepted", strings.Repeat("a", 280), false},
		{"281 rejected", strings.Repeat("a", 281), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), alice, CreatePostRequest{
				Content:  tt.content,
				Location: "Elm Street",
			})
			if tt.wantErr {
				assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostService_Create_MultibyteContentCountsRunes(t *testing.T) {
	repo, _, _, service := newTestService()
	repo.On("Create", mock.Anything, mock.Anything).Return(&Post{ID: 1}, nil)

	// 280 multibyte runes are within bounds even though the byte length isn't
	_, err := service.Create(context.Background(), alice, CreatePostRequest{
		Content:  strings.Repeat("é", 280),
		Location: "Elm Street",
	})
	assert.NoError(t, err)
}

func TestPostService_Create_DefaultsPostType(t *testing.T) {
	repo, _, _, service := newTestService()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.PostType == PostTypeUpdate
	})).Return(&Post{ID: 1, PostType: PostTypeUpdate}, nil)

	created, err := service.Create(context.Background(), alice, CreatePostRequest{
		Content:  "Block party Saturday!",
		Location: "Elm Street",
	})
	require.NoError(t, err)
	assert.Equal(t, PostTypeUpdate, created.PostType)
	repo.AssertExpectations(t)
}

func TestPostService_Create_RejectsUnknownPostType(t *testing.T) {
	_, _, _, service := newTestService()

	_, err := service.Create(context.Background(), alice, CreatePostRequest{
		Content:  "hello",
		PostType: "gossip",
		Location: "Elm Street",
	})
	assert.True(t, IsValidationError(err))
}

func TestPostService_Create_RequiresLocation(t *testing.T) {
	_, _, _, service := newTestService()

	_, err := service.Create(context.Background(), alice, CreatePostRequest{
		Content: "hello",
	})
	assert.True(t, IsValidationError(err))
}

func TestPostService_Create_BlobFailureAbortsCreation(t *testing.T) {
	repo, blobStore, _, service := newTestService()

	blobStore.On("Put", mock.Anything, mock.Anything, "image/png").
		Return(nil, errors.New("disk full"))

	_, err := service.Create(context.Background(), alice, CreatePostRequest{
		Content:  "hello",
		Location: "Elm Street",
		Image:    &ImageUpload{Data: []byte{1, 2, 3}, MimeType: "image/png"},
	})

	assert.True(t, IsStorageError(err))
	// No orphaned post: the repository was never touched
	repo.AssertNotCalled(t, "Create")
}

func TestPostService_Create_StoresImageURL(t *testing.T) {
	repo, blobStore, _, service := newTestService()

	blobStore.On("Put", mock.Anything, []byte{1, 2, 3}, "image/jpeg").
		Return(&blobs.BlobRef{URL: "/uploads/abc.jpg"}, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.ImageURL != nil && *p.ImageURL == "/uploads/abc.jpg"
	})).Return(&Post{ID: 1}, nil)

	_, err := service.Create(context.Background(), alice, CreatePostRequest{
		Content:  "hello",
		Location: "Elm Street",
		Image:    &ImageUpload{Data: []byte{1, 2, 3}, MimeType: "image/jpeg"},
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestPostService_Delete_AuthorOnly(t *testing.T) {
	repo, _, _, service := newTestService()

	repo.On("GetByID", mock.Anything, int64(10), (*int64)(nil)).
		Return(&Post{ID: 10, AuthorID: 1}, nil)

	// Caller 2 is not the author
	err := service.Delete(context.Background(), 2, 10)
	assert.ErrorIs(t, err, ErrNotAuthor)
	repo.AssertNotCalled(t, "Delete")
}

func TestPostService_Delete_Succeeds(t *testing.T) {
	repo, _, _, service := newTestService()

	repo.On("GetByID", mock.Anything, int64(10), (*int64)(nil)).
		Return(&Post{ID: 10, AuthorID: 1}, nil)
	repo.On("Delete", mock.Anything, int64(10)).Return(nil)

	require.NoError(t, service.Delete(context.Background(), 1, 10))
	repo.AssertExpectations(t)
}

func TestPostService_Delete_MissingPost(t *testing.T) {
	repo, _, _, service := newTestService()

	repo.On("GetByID", mock.Anything, int64(404), (*int64)(nil)).
		Return(nil, ErrPostNotFound)

	err := service.Delete(context.Background(), 1, 404)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostService_Update_AuthorOnly(t *testing.T) {
	repo, _, _, service := newTestService()

	repo.On("GetByID", mock.Anything, int64(10), (*int64)(nil)).
		Return(&Post{ID: 10, AuthorID: 1, Content: "old", PostType: PostTypeUpdate, Location: "Elm"}, nil)

	content := "new content"
	_, err := service.Update(context.Background(), 2, 10, UpdatePostRequest{Content: &content})
	assert.ErrorIs(t, err, ErrNotAuthor)
	repo.AssertNotCalled(t, "Update")
}

func TestPostService_Update_ValidatesEditedFields(t *testing.T) {
	repo, _, _, service := newTestService()

	repo.On("GetByID", mock.Anything, int64(10), (*int64)(nil)).
		Return(&Post{ID: 10, AuthorID: 1, Content: "old", PostType: PostTypeUpdate, Location: "Elm"}, nil)

	tooLong := strings.Repeat("a", 281)
	_, err := service.Update(context.Background(), 1, 10, UpdatePostRequest{Content: &tooLong})
	assert.True(t, IsValidationError(err))

	empty := ""
	_, err = service.Update(context.Background(), 1, 10, UpdatePostRequest{Location: &empty})
	assert.True(t, IsValidationError(err))
}

func TestPostService_List_RejectsUnknownPostTypeFilter(t *testing.T) {
	_, _, _, service := newTestService()

	_, err := service.List(context.Background(), ListRequest{PostType: "gossip"})
	assert.True(t, IsValidationError(err))
}

func TestPostService_List_PassesFiltersThrough(t *testing.T) {
	repo, _, _, service := newTestService()

	repo.On("List", mock.Anything, ListRequest{Location: "Elm", PostType: PostTypeEvent}).
		Return([]*Post{{ID: 1}}, nil)

	result, err := service.List(context.Background(), ListRequest{Location: " Elm ", PostType: PostTypeEvent})
	require.NoError(t, err)
	assert.Len(t, result, 1)
	repo.AssertExpectations(t)
}
