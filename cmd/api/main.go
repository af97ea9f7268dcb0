// Command api serves the correction notices records API.
//
// @title                       Correction Notices API
// @version                     1.0
// @description                 Records management for traffic correction notices.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	_ "github.com/nysp/correction-notices/docs"
	"github.com/nysp/correction-notices/internal/api"
	"github.com/nysp/correction-notices/internal/api/handler"
	"github.com/nysp/correction-notices/internal/core/ports"
	"github.com/nysp/correction-notices/internal/core/security"
	"github.com/nysp/correction-notices/internal/core/service"
	"github.com/nysp/correction-notices/internal/infrastructure/db/memory"
	"github.com/nysp/correction-notices/internal/infrastructure/db/mongo"
	redisstore "github.com/nysp/correction-notices/internal/infrastructure/db/redis"
	"github.com/nysp/correction-notices/internal/pkg/config"
	"github.com/nysp/correction-notices/pkg/logger"
)

const serviceName = "correction-notices"

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: serviceName,
		Env:     cfg.Env,
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.UsesDefaultSecret() {
		ev := log.Warn()
		if cfg.IsProduction() {
			ev = log.Error()
		}
		ev.Msg("SECRET_KEY is unset; tokens are signed with the insecure default")
	}

	store, checks, cleanup, err := openStorage(ctx, cfg, logger.Component("storage"))
	if err != nil {
		return err
	}
	defer cleanup()

	idem, closeIdem, err := openIdempotency(ctx, cfg, checks)
	if err != nil {
		return err
	}
	defer closeIdem()

	codec, err := security.NewTokenCodec(security.TokenConfig{Secret: cfg.SecretKey})
	if err != nil {
		return err
	}
	auth, err := service.NewAuthService(store.Accounts, security.NewPasswordHasher(0), codec, logger.Component("auth"))
	if err != nil {
		return err
	}

	if err := service.NewBootstrap(auth, store.Accounts, store.ViolationTypes, logger.Component("bootstrap")).Run(ctx, cfg.BootstrapPassword); err != nil {
		return err
	}

	records := logger.Component("records")
	e := api.NewRouter(api.Deps{
		Log:              logger.Component("http"),
		Auth:             auth,
		Sessions:         auth,
		Policy:           security.NewPolicy(),
		Drivers:          service.NewDriverService(store.Drivers, store.CorrectionNotices, idem, records),
		Officers:         service.NewOfficerService(store.Officers, idem, records),
		VehicleOwners:    service.NewVehicleOwnerService(store.VehicleOwners, idem, records),
		Vehicles:         service.NewVehicleService(store.Vehicles, store.VehicleOwners, store.CorrectionNotices, idem, records),
		ViolationTypes:   service.NewViolationTypeService(store.ViolationTypes),
		Notices:          service.NewCorrectionNoticeService(store, idem, records),
		NoticeViolations: service.NewNoticeViolationService(store, idem, records),
		HealthChecks:     checks,
	})

	srvErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("storage", cfg.Storage).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
		close(srvErr)
	}()

	select {
	case err := <-srvErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.Store, map[string]handler.HealthCheck, func(), error) {
	checks := map[string]handler.HealthCheck{}

	if cfg.Storage == config.StorageMemory {
		log.Warn().Msg("using in-memory storage; records are lost on exit")
		return memory.NewDB().Store(), checks, func() {}, nil
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, AppName: serviceName})
	if err != nil {
		return ports.Store{}, nil, nil, err
	}
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return ports.Store{}, nil, nil, fmt.Errorf("mongo indexes: %w", err)
	}
	checks["mongodb"] = mongo.Probe(client)

	cleanup := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}
	return mongo.NewStore(db), checks, cleanup, nil
}

// openIdempotency uses Redis when REDIS_ADDR is set, else process memory.
func openIdempotency(ctx context.Context, cfg *config.Config, checks map[string]handler.HealthCheck) (ports.IdempotencyStore, func(), error) {
	if cfg.Redis.Addr == "" {
		return memory.NewIdempotencyStore(), func() {}, nil
	}

	client, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, err
	}
	checks["redis"] = redisstore.Probe(client)
	return redisstore.NewIdempotencyStore(client, cfg.Redis.IdempotencyTTL), func() { _ = client.Close() }, nil
}
