package reactions

import "time"

// Reaction polarities. A user holds at most one reaction per post.
const (
	PolarityLike    = "like"
	PolarityDislike = "dislike"
)

// ValidPolarity reports whether s is a recognized reaction polarity.
func ValidPolarity(s string) bool {
	return s == PolarityLike || s == PolarityDislike
}

// Reaction is a (user, post) pair with a single polarity. Reactions are
// only ever created, replaced, or removed through the toggle operation.
type Reaction struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Polarity  string    `json:"type" db:"polarity"`
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	UserID    int64     `json:"userId" db:"user_id"`
}

// Counts carries a post's aggregate reaction totals plus the caller's
// own resulting state. Per-user reaction lists are never exposed.
type Counts struct {
	UserReaction *string `json:"userReaction"`
	Likes        int     `json:"likes"`
	Dislikes     int     `json:"dislikes"`
}
