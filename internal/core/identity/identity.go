package identity

// Identity is the resolved caller identity attached to authenticated requests.
type Identity struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}
