package replies

import "time"

// Reply belongs to exactly one post. Replies are append-only: insertion
// order is display order, and nothing in scope edits or deletes them
// short of the post itself going away.
type Reply struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	Content        string    `json:"content" db:"content"`
	AuthorUsername string    `json:"author" db:"author_username"`
	ID             int64     `json:"id" db:"id"`
	PostID         int64     `json:"postId" db:"post_id"`
	AuthorID       int64     `json:"authorId" db:"user_id"`
}
