package reactions

import "errors"

var (
	// ErrPostNotFound indicates the reacted-to post doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidPolarity indicates the polarity is not "like" or "dislike"
	ErrInvalidPolarity = errors.New("reaction type must be 'like' or 'dislike'")
)
