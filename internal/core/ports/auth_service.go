package ports

import (
	"context"
	"time"

	"github.com/nysp/correction-notices/internal/core/domain"
)

// TokenTypeBearer is the token_type reported alongside every issued token.
const TokenTypeBearer = "bearer"

// IssuedToken is the result of a successful login.
type IssuedToken struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// Authenticator exchanges credentials for a bearer token.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*IssuedToken, error)
}

// SessionResolver recovers the calling account from a bearer token.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Account, error)
}
