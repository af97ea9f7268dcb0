package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nysp/correction-notices/internal/core/domain"
	"github.com/nysp/correction-notices/internal/core/ports"
	"github.com/nysp/correction-notices/internal/core/security"
)

// PasswordHasher is the one-way hashing primitive the auth service relies on.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenCodec signs and verifies bearer tokens.
type TokenCodec interface {
	Encode(subject string, issuedAt time.Time, ttl time.Duration) (string, error)
	Decode(token string, now time.Time) (string, error)
}

// AuthService authenticates credentials and resolves bearer tokens back to
// accounts. It keeps no state between calls.
type AuthService struct {
	repo   ports.AccountRepository
	hasher PasswordHasher
	codec  TokenCodec
	now    func() time.Time
	log    zerolog.Logger

	// dummyHash is compared against when the username is unknown so both
	// failure paths pay for one bcrypt comparison.
	dummyHash string
}

// AuthOption customises an AuthService.
type AuthOption func(*AuthService)

// WithClock overrides the time source used for issuing and checking tokens.
func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

func NewAuthService(repo ports.AccountRepository, hasher PasswordHasher, codec TokenCodec, log zerolog.Logger, opts ...AuthOption) (*AuthService, error) {
	s := &AuthService{
		repo:   repo,
		hasher: hasher,
		codec:  codec,
		now:    time.Now,
		log:    log,
	}
	for _, opt := range opts {
		opt(s)
	}

	dummy, err := hasher.Hash("correction-notices/dummy")
	if err != nil {
		return nil, fmt.Errorf("auth service: prepare dummy hash: %w", err)
	}
	s.dummyHash = dummy
	return s, nil
}

// Login verifies username and password and issues a fresh token. Unknown
// usernames and wrong passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.IssuedToken, error) {
	if username == "" || password == "" || len(username) > domain.MaxUsernameLength {
		s.hasher.Verify(password, s.dummyHash)
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	issuedAt := s.now().UTC()
	token, err := s.codec.Encode(account.Username, issuedAt, security.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("login: sign token: %w", err)
	}

	s.log.Info().Str("username", account.Username).Str("role", account.Role.String()).Msg("token issued")

	return &ports.IssuedToken{
		AccessToken: token,
		TokenType:   ports.TokenTypeBearer,
		ExpiresAt:   issuedAt.Add(security.AccessTokenTTL),
	}, nil
}

// Resolve maps a bearer token to its account. Every decode failure and a
// subject without an account yield domain.ErrUnauthenticated.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Account, error) {
	subject, err := s.codec.Decode(token, s.now().UTC())
	if err != nil {
		s.log.Debug().Err(err).Msg("token rejected")
		return nil, domain.ErrUnauthenticated
	}

	account, err := s.repo.FindByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("resolve token: %w", err)
	}
	return account, nil
}

// CreateAccount hashes password and stores a new account.
func (s *AuthService) CreateAccount(ctx context.Context, username, password string, role domain.Role) (*domain.Account, error) {
	if username == "" || len(username) > domain.MaxUsernameLength || password == "" {
		return nil, fmt.Errorf("create account: %w", domain.ErrInvalidCredentials)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("create account: invalid role %s", role)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("create account: hash password: %w", err)
	}

	return s.repo.Create(ctx, &domain.Account{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.now().UTC(),
	})
}
