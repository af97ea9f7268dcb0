package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/nysp/correction-notices/internal/core/domain"
	"github.com/nysp/correction-notices/internal/core/ports"
)

const (
	vehicleResource      = "vehicles"
	vehicleOwnerResource = "vehicle_owners"
)

type VehicleService struct {
	vehicles ports.VehicleRepository
	owners   ports.VehicleOwnerRepository
	notices  ports.CorrectionNoticeRepository
	replay   replayer
	log      zerolog.Logger
}

func NewVehicleService(vehicles ports.VehicleRepository, owners ports.VehicleOwnerRepository, notices ports.CorrectionNoticeRepository, idem ports.IdempotencyStore, log zerolog.Logger) *VehicleService {
	return &VehicleService{
		vehicles: vehicles,
		owners:   owners,
		notices:  notices,
		replay:   replayer{store: idem, log: log},
		log:      log,
	}
}

func (s *VehicleService) Get(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return s.vehicles.FindByID(ctx, id)
}

// Create stores a vehicle for an existing owner. VINs are unique.
func (s *VehicleService) Create(ctx context.Context, v domain.Vehicle, idempotencyKey string) (*domain.Vehicle, error) {
	replay, id, replayed, err := s.replay.begin(ctx, vehicleResource, idempotencyKey)
	if err != nil {
		return nil, err
	}
	if replayed {
		if existing, err := s.vehicles.FindByID(ctx, id); err == nil {
			return existing, nil
		}
	}
	defer replay.release(ctx)

	if _, err := s.owners.FindByID(ctx, v.VehicleOwnerID); err != nil {
		return nil, err
	}
	if err := s.ensureVINFree(ctx, v.VIN, 0); err != nil {
		return nil, err
	}

	v.ID = 0
	if err := s.vehicles.Create(ctx, &v); err != nil {
		return nil, err
	}
	replay.complete(ctx, v.ID)

	s.log.Info().Int64("vehicle_id", v.ID).Msg("vehicle created")
	return &v, nil
}

func (s *VehicleService) Update(ctx context.Context, id int64, patch domain.VehiclePatch) (*domain.Vehicle, error) {
	v, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.VehicleOwnerID != nil {
		if _, err := s.owners.FindByID(ctx, *patch.VehicleOwnerID); err != nil {
			return nil, err
		}
	}
	if patch.VIN != nil {
		if err := s.ensureVINFree(ctx, *patch.VIN, id); err != nil {
			return nil, err
		}
	}

	patch.Apply(v)
	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Delete removes a vehicle that no correction notice references.
func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	if _, err := s.vehicles.FindByID(ctx, id); err != nil {
		return err
	}
	n, err := s.notices.CountByVehicle(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrVehicleInUse
	}
	if err := s.vehicles.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("vehicle_id", id).Msg("vehicle deleted")
	return nil
}

func (s *VehicleService) ensureVINFree(ctx context.Context, vin string, selfID int64) error {
	existing, err := s.vehicles.FindByVIN(ctx, vin)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != selfID:
		return domain.ErrDuplicateVIN
	default:
		return nil
	}
}

type VehicleOwnerService struct {
	owners ports.VehicleOwnerRepository
	replay replayer
	log    zerolog.Logger
}

func NewVehicleOwnerService(owners ports.VehicleOwnerRepository, idem ports.IdempotencyStore, log zerolog.Logger) *VehicleOwnerService {
	return &VehicleOwnerService{owners: owners, replay: replayer{store: idem, log: log}, log: log}
}

func (s *VehicleOwnerService) Get(ctx context.Context, id int64) (*domain.VehicleOwner, error) {
	return s.owners.FindByID(ctx, id)
}

func (s *VehicleOwnerService) Create(ctx context.Context, o domain.VehicleOwner, idempotencyKey string) (*domain.VehicleOwner, error) {
	replay, id, replayed, err := s.replay.begin(ctx, vehicleOwnerResource, idempotencyKey)
	if err != nil {
		return nil, err
	}
	if replayed {
		if existing, err := s.owners.FindByID(ctx, id); err == nil {
			return existing, nil
		}
	}
	defer replay.release(ctx)

	_, err = s.owners.FindByUsername(ctx, o.Username)
	switch {
	case err == nil:
		return nil, domain.ErrDuplicateOwnerUsername
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	o.ID = 0
	if err := s.owners.Create(ctx, &o); err != nil {
		return nil, err
	}
	replay.complete(ctx, o.ID)
	return &o, nil
}
