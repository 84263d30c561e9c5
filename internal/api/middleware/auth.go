package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"Cityscope/internal/core/identity"
)

// Context keys for storing caller information
type contextKey string

const identityKey contextKey = "identity"

// AuthMiddleware enforces bearer-token authentication for protected
// routes. Tokens come from the Authorization header and are verified by
// the identity gate.
type AuthMiddleware struct {
	gate identity.Gate
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(gate identity.Gate) *AuthMiddleware {
	return &AuthMiddleware{gate: gate}
}

// RequireAuth ensures the caller presented a valid credential.
// If not, responds 401; otherwise injects the resolved identity into the
// request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeAuthError(w, "Missing or malformed Authorization header")
			return
		}

		id, err := m.gate.Authorize(r.Context(), token)
		if err != nil {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), id)))
	})
}

// OptionalAuth loads the caller's identity when a valid credential is
// present, but lets anonymous requests through. Used by read endpoints
// that return viewer-specific reaction state.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		id, err := m.gate.Authorize(r.Context(), token)
		if err != nil {
			// Invalid token on an optional route: continue anonymously
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), id)))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")), true
}

func withIdentity(ctx context.Context, id *identity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentity extracts the caller's identity from the request context.
// Returns nil for anonymous requests.
func GetIdentity(r *http.Request) *identity.Identity {
	id, _ := r.Context().Value(identityKey).(*identity.Identity)
	return id
}

// GetViewerID returns the caller's user ID, or nil when anonymous.
func GetViewerID(r *http.Request) *int64 {
	if id := GetIdentity(r); id != nil {
		return &id.UserID
	}
	return nil
}

// SetTestIdentity injects an identity into the context for testing.
// This function should ONLY be used in tests to mock authenticated users.
func SetTestIdentity(ctx context.Context, id *identity.Identity) context.Context {
	return withIdentity(ctx, id)
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}
