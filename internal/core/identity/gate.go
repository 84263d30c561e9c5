package identity

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Gate issues and verifies bearer credentials. Authorization is
// synchronous and deterministic for a given token.
type Gate interface {
	// Issue creates a signed credential for the given identity.
	Issue(id Identity) (string, error)

	// Authorize verifies a presented credential and yields the caller's
	// identity, or ErrUnauthenticated.
	Authorize(ctx context.Context, token string) (*Identity, error)
}

// claims are the JWT claims carried by Cityscope credentials.
// The subject holds the user ID; the username rides along so handlers
// don't need a user lookup just to know who is calling.
type claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

type jwtGate struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTGate creates a Gate backed by HS256-signed JWTs.
// ttl bounds credential lifetime; zero or negative falls back to 7 days.
func NewJWTGate(secret []byte, ttl time.Duration) Gate {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &jwtGate{secret: secret, ttl: ttl}
}

func (g *jwtGate) Issue(id Identity) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(id.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
		Username: id.Username,
	})
	return token.SignedString(g.secret)
}

func (g *jwtGate) Authorize(_ context.Context, tokenString string) (*Identity, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrUnauthenticated
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		// Reject algorithm confusion: only HS256 tokens are ever issued.
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrUnauthenticated
		}
		return g.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrUnauthenticated
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || c.Subject == "" {
		return nil, ErrUnauthenticated
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	return &Identity{UserID: userID, Username: c.Username}, nil
}
