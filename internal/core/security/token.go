package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenTTL is the lifetime of every issued bearer token.
const AccessTokenTTL = 30 * time.Minute

// Decode outcomes.
var (
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
	ErrMissingSubject   = errors.New("token has no subject")
)

var signingMethod = jwt.SigningMethodHS256

// TokenConfig holds the process-wide signing material.
type TokenConfig struct {
	Secret string
}

// TokenCodec signs and verifies HS256 JWTs carrying a subject and an expiry.
// It is safe for concurrent use.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(cfg TokenConfig) (*TokenCodec, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token codec: empty secret")
	}
	return &TokenCodec{secret: []byte(cfg.Secret)}, nil
}

// Encode returns a token for subject that expires at issuedAt+ttl.
// Expiry has one-second resolution. Each token carries a random jti, so two
// tokens issued in the same second still differ.
func (c *TokenCodec) Encode(subject string, issuedAt time.Time, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt.UTC()),
		ExpiresAt: jwt.NewNumericDate(issuedAt.UTC().Add(ttl)),
	}
	return jwt.NewWithClaims(signingMethod, claims).SignedString(c.secret)
}

// Decode verifies token against the secret and returns its subject when now is
// before the expiry.
func (c *TokenCodec) Decode(token string, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	switch {
	case err == nil && parsed.Valid:
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrExpired
	default:
		return "", ErrInvalidSignature
	}

	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}
