package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nysp/correction-notices/internal/core/domain"
)

func TestMongoAccount_RoleStoredAsString(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	raw, err := bson.Marshal(mongoAccount{ID: 3, Username: "alice", PasswordHash: "h", Role: domain.RoleOfficer.String(), CreatedAt: created})
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, "officer", doc["role"])
	assert.Equal(t, int64(3), doc["_id"])

	var back mongoAccount
	require.NoError(t, bson.Unmarshal(raw, &back))
	account := back.toDomain()
	assert.Equal(t, domain.RoleOfficer, account.Role)
	assert.Equal(t, "alice", account.Username)
	assert.True(t, created.Equal(account.CreatedAt))
}

func TestMongoAccount_UnknownRoleFailsClosed(t *testing.T) {
	account := (&mongoAccount{Username: "mallory", Role: "superuser"}).toDomain()
	assert.Equal(t, domain.RoleUnknown, account.Role)
	assert.False(t, account.Role.Valid())
}

func TestCollection_DuplicateKeyMapsToSentinel(t *testing.T) {
	c := collection[domain.Driver]{duplicate: domain.ErrDuplicateLicence}
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}

	err := c.writeError("insert", dup)
	assert.ErrorIs(t, err, domain.ErrDuplicateLicence)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestViolationTypeRepository_DuplicateDescriptionIsConflict(t *testing.T) {
	client, err := mongo.NewClient(options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	repo := NewViolationTypeRepository(client.Database("cn"), nil)
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}

	err = repo.types.writeError("insert", dup)
	assert.ErrorIs(t, err, domain.ErrDuplicateViolationType)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotErrorIs(t, err, domain.ErrStorage)
}

func TestConfig_ClientOptions(t *testing.T) {
	cfg := Config{URI: "mongodb://db:27017", Database: "cn", AppName: "correction-notices"}
	opts := cfg.clientOptions()

	require.NotNil(t, opts.AppName)
	assert.Equal(t, "correction-notices", *opts.AppName)
	require.NotNil(t, opts.ServerSelectionTimeout)
	assert.Equal(t, defaultTimeout, *opts.ServerSelectionTimeout)
	assert.Equal(t, 5*time.Second, Config{Timeout: 5 * time.Second}.timeout())
}
