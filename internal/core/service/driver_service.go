package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/nysp/correction-notices/internal/core/domain"
	"github.com/nysp/correction-notices/internal/core/ports"
)

const driverResource = "drivers"

type DriverService struct {
	drivers ports.DriverRepository
	notices ports.CorrectionNoticeRepository
	replay  replayer
	log     zerolog.Logger
}

func NewDriverService(drivers ports.DriverRepository, notices ports.CorrectionNoticeRepository, idem ports.IdempotencyStore, log zerolog.Logger) *DriverService {
	return &DriverService{
		drivers: drivers,
		notices: notices,
		replay:  replayer{store: idem, log: log},
		log:     log,
	}
}

func (s *DriverService) Get(ctx context.Context, id int64) (*domain.Driver, error) {
	return s.drivers.FindByID(ctx, id)
}

// Create stores a new driver. Licences are unique across drivers.
func (s *DriverService) Create(ctx context.Context, d domain.Driver, idempotencyKey string) (*domain.Driver, error) {
	replay, id, replayed, err := s.replay.begin(ctx, driverResource, idempotencyKey)
	if err != nil {
		return nil, err
	}
	if replayed {
		if existing, err := s.drivers.FindByID(ctx, id); err == nil {
			return existing, nil
		}
	}
	defer replay.release(ctx)

	if err := s.ensureLicenceFree(ctx, d.DriversLicence, 0); err != nil {
		return nil, err
	}

	d.ID = 0
	if err := s.drivers.Create(ctx, &d); err != nil {
		return nil, err
	}
	replay.complete(ctx, d.ID)

	s.log.Info().Int64("driver_id", d.ID).Msg("driver created")
	return &d, nil
}

// Update applies patch to the driver with id.
func (s *DriverService) Update(ctx context.Context, id int64, patch domain.DriverPatch) (*domain.Driver, error) {
	d, err := s.drivers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.DriversLicence != nil {
		if err := s.ensureLicenceFree(ctx, *patch.DriversLicence, id); err != nil {
			return nil, err
		}
	}

	patch.Apply(d)
	if err := s.drivers.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Delete removes a driver that no correction notice references.
func (s *DriverService) Delete(ctx context.Context, id int64) error {
	if _, err := s.drivers.FindByID(ctx, id); err != nil {
		return err
	}
	n, err := s.notices.CountByDriver(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrDriverInUse
	}
	if err := s.drivers.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("driver_id", id).Msg("driver deleted")
	return nil
}

func (s *DriverService) FrequentOffenders(ctx context.Context, minViolations int) ([]*domain.Driver, error) {
	return s.drivers.FrequentOffenders(ctx, minViolations)
}

// ensureLicenceFree fails with domain.ErrDuplicateLicence when licence belongs
// to a driver other than selfID.
func (s *DriverService) ensureLicenceFree(ctx context.Context, licence string, selfID int64) error {
	existing, err := s.drivers.FindByLicence(ctx, licence)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != selfID:
		return domain.ErrDuplicateLicence
	default:
		return nil
	}
}
