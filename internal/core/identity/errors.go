package identity

import "errors"

var (
	// ErrUnauthenticated is returned for any missing, malformed, expired,
	// or badly signed credential. Callers must reject the request with no
	// side effects; retrying with the same token cannot succeed.
	ErrUnauthenticated = errors.New("unauthenticated")
)
