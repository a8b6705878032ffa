package security

import (
	"crypto/subtle"

	"coursecms/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// AdminGate is the single authorization predicate for every admin route.
type AdminGate struct {
	password []byte
	hash     []byte
	tokens   *TokenManager
}

// NewAdminGate compares against passwordHash (bcrypt) when it is set and
// against the plaintext password otherwise. tokens may be nil.
func NewAdminGate(password, passwordHash string, tokens *TokenManager) *AdminGate {
	return &AdminGate{
		password: []byte(password),
		hash:     []byte(passwordHash),
		tokens:   tokens,
	}
}

// Verify reports whether password matches the configured secret. An empty
// secret on either side never matches.
func (g *AdminGate) Verify(password string) bool {
	if password == "" {
		return false
	}
	if len(g.hash) > 0 {
		return bcrypt.CompareHashAndPassword(g.hash, []byte(password)) == nil
	}
	if len(g.password) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(g.password, []byte(password)) == 1
}

// Authorize accepts a valid admin bearer token or the shared password.
func (g *AdminGate) Authorize(bearer, password string) error {
	if bearer != "" && g.tokens != nil && g.tokens.Validate(bearer) == nil {
		return nil
	}
	if g.Verify(password) {
		return nil
	}
	return domain.ErrUnauthorized
}

// IssueToken returns "" when tokens are not configured.
func (g *AdminGate) IssueToken() (string, error) {
	if g.tokens == nil {
		return "", nil
	}
	return g.tokens.Generate()
}
