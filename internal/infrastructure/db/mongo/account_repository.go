package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nysp/correction-notices/internal/core/domain"
)

type AccountRepository struct {
	accounts collection[mongoAccount]
}

func NewAccountRepository(db *mongo.Database, seq *sequence) *AccountRepository {
	return &AccountRepository{
		accounts: newCollection[mongoAccount](db, seq, collAccounts, domain.ErrAccountNotFound, domain.ErrAccountExists),
	}
}

type mongoAccount struct {
	ID           int64     `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"password_hash"`
	Role         string    `bson:"role"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	doc := mongoAccount{
		Username:     account.Username,
		PasswordHash: account.PasswordHash,
		Role:         account.Role.String(),
		CreatedAt:    account.CreatedAt.UTC(),
	}
	if err := r.accounts.insert(ctx, &doc, func(id int64) { doc.ID = id }); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	doc, err := r.accounts.findOne(ctx, bson.M{"username": username})
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	return r.accounts.count(ctx, bson.M{})
}

// toDomain maps a stored account. An unrecognised stored role becomes
// domain.RoleUnknown, which the access policy never grants.
func (a *mongoAccount) toDomain() *domain.Account {
	role, _ := domain.ParseRole(a.Role)
	return &domain.Account{
		ID:           a.ID,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Role:         role,
		CreatedAt:    a.CreatedAt,
	}
}
