package ports

import (
	"context"

	"github.com/nysp/correction-notices/internal/core/domain"
)

// AccountRepository is the credential store.
type AccountRepository interface {
	// FindByUsername returns domain.ErrAccountNotFound when no account matches exactly.
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	// Create returns domain.ErrAccountExists on a duplicate username.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Count(ctx context.Context) (int64, error)
}
