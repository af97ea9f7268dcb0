package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/nysp/correction-notices/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Collection names.
const (
	collAccounts          = "accounts"
	collDrivers           = "drivers"
	collOfficers          = "officers"
	collVehicleOwners     = "vehicle_owners"
	collVehicles          = "vehicles"
	collViolationTypes    = "violation_types"
	collCorrectionNotices = "correction_notices"
	collNoticeViolations  = "notice_violations"
	collCounters          = "counters"
)

// Config selects the deployment and database holding the records.
type Config struct {
	URI      string
	Database string
	AppName  string
	// Timeout bounds connect and the initial ping. Zero means defaultTimeout.
	Timeout time.Duration
}

func (c Config) clientOptions() *options.ClientOptions {
	opts := options.Client().
		ApplyURI(c.URI).
		SetServerSelectionTimeout(c.timeout()).
		SetRetryWrites(true)
	if c.AppName != "" {
		opts.SetAppName(c.AppName)
	}
	return opts
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}
	return c.Timeout
}

// Connect returns a client and its database once the primary answers a ping.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()

	client, err := mongo.Connect(ctx, cfg.clientOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping %s: %w", cfg.Database, err)
	}
	return client, client.Database(cfg.Database), nil
}

// Probe pings the primary; used by readiness checks.
func Probe(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	}
}

// NewStore returns every repository backed by db.
func NewStore(db *mongo.Database) ports.Store {
	seq := newSequence(db.Collection(collCounters))
	return ports.Store{
		Accounts:          NewAccountRepository(db, seq),
		Drivers:           NewDriverRepository(db, seq),
		Officers:          NewOfficerRepository(db, seq),
		VehicleOwners:     NewVehicleOwnerRepository(db, seq),
		Vehicles:          NewVehicleRepository(db, seq),
		ViolationTypes:    NewViolationTypeRepository(db, seq),
		CorrectionNotices: NewCorrectionNoticeRepository(db, seq),
		NoticeViolations:  NewNoticeViolationRepository(db, seq),
	}
}
