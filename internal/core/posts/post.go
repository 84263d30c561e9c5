package posts

import "time"

// Post types form a fixed enumeration; PostTypeUpdate is the default
// when a creator doesn't pick one.
const (
	PostTypeRecommendation = "recommendation"
	PostTypeHelp           = "help"
	PostTypeUpdate         = "update"
	PostTypeEvent          = "event"
)

// ValidPostType reports whether s is a member of the post type enumeration.
func ValidPostType(s string) bool {
	switch s {
	case PostTypeRecommendation, PostTypeHelp, PostTypeUpdate, PostTypeEvent:
		return true
	}
	return false
}

// MaxContentLen bounds post and reply content. Enforced at the boundary:
// over-long content is rejected, never truncated.
const MaxContentLen = 280

// Post represents a post in the neighborhood feed, carrying aggregate
// reaction counts and, when a viewer is known, that viewer's own
// reaction state. UserReaction is nil both for anonymous viewers and
// for viewers who haven't reacted.
type Post struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"-" db:"updated_at"`
	Content        string    `json:"content" db:"content"`
	PostType       string    `json:"postType" db:"post_type"`
	Location       string    `json:"location" db:"location"`
	AuthorUsername string    `json:"author" db:"author_username"`
	ImageURL       *string   `json:"imageUrl,omitempty" db:"image_url"`
	UserReaction   *string   `json:"userReaction"`
	ID             int64     `json:"id" db:"id"`
	AuthorID       int64     `json:"authorId" db:"author_id"`
	Likes          int       `json:"likes"`
	Dislikes       int       `json:"dislikes"`
	ReplyCount     int       `json:"replyCount"`
}

// ImageUpload carries raw image bytes from a multipart request into the
// blob store collaborator.
type ImageUpload struct {
	Data     []byte
	MimeType string
}

// CreatePostRequest represents input for creating a new post
type CreatePostRequest struct {
	Content  string
	PostType string
	Location string
	Image    *ImageUpload
}

// UpdatePostRequest carries the editable post fields. Nil fields are
// left untouched.
type UpdatePostRequest struct {
	Content  *string
	PostType *string
	Location *string
}

// ListRequest represents the feed query. Location matches as a
// case-insensitive substring; PostType matches exactly. Both optional,
// combined with AND. ViewerID, when set, populates UserReaction.
type ListRequest struct {
	Location string
	PostType string
	ViewerID *int64
}
