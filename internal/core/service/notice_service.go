package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nysp/correction-notices/internal/core/domain"
	"github.com/nysp/correction-notices/internal/core/ports"
)

const (
	correctionNoticeResource = "correction_notices"
	noticeViolationResource  = "notice_violations"
)

type CorrectionNoticeService struct {
	notices    ports.CorrectionNoticeRepository
	violations ports.NoticeViolationRepository
	drivers    ports.DriverRepository
	vehicles   ports.VehicleRepository
	officers   ports.OfficerRepository
	replay     replayer
	log        zerolog.Logger
}

func NewCorrectionNoticeService(store ports.Store, idem ports.IdempotencyStore, log zerolog.Logger) *CorrectionNoticeService {
	return &CorrectionNoticeService{
		notices:    store.CorrectionNotices,
		violations: store.NoticeViolations,
		drivers:    store.Drivers,
		vehicles:   store.Vehicles,
		officers:   store.Officers,
		replay:     replayer{store: idem, log: log},
		log:        log,
	}
}

func (s *CorrectionNoticeService) Get(ctx context.Context, id int64) (*domain.CorrectionNotice, error) {
	return s.notices.FindByID(ctx, id)
}

// Create stores a notice after checking that its driver, vehicle and officer exist.
func (s *CorrectionNoticeService) Create(ctx context.Context, n domain.CorrectionNotice, idempotencyKey string) (*domain.CorrectionNotice, error) {
	replay, id, replayed, err := s.replay.begin(ctx, correctionNoticeResource, idempotencyKey)
	if err != nil {
		return nil, err
	}
	if replayed {
		if existing, err := s.notices.FindByID(ctx, id); err == nil {
			return existing, nil
		}
	}
	defer replay.release(ctx)

	if err := s.checkReferences(ctx, &n.DriverID, &n.VehicleID, &n.OfficerID); err != nil {
		return nil, err
	}

	n.ID = 0
	if err := s.notices.Create(ctx, &n); err != nil {
		return nil, err
	}
	replay.complete(ctx, n.ID)

	s.log.Info().
		Int64("correction_notice_id", n.ID).
		Int64("driver_id", n.DriverID).
		Int64("officer_id", n.OfficerID).
		Msg("correction notice issued")
	return &n, nil
}

// Update applies patch; any foreign key present in the patch is re-validated.
func (s *CorrectionNoticeService) Update(ctx context.Context, id int64, patch domain.CorrectionNoticePatch) (*domain.CorrectionNotice, error) {
	n, err := s.notices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, patch.DriverID, patch.VehicleID, patch.OfficerID); err != nil {
		return nil, err
	}

	patch.Apply(n)
	if err := s.notices.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// Delete removes the notice and its notice violations.
func (s *CorrectionNoticeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.notices.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.notices.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("correction_notice_id", id).Msg("correction notice deleted")
	return nil
}

// Violations lists the notice violations recorded on a notice.
func (s *CorrectionNoticeService) Violations(ctx context.Context, noticeID int64) ([]*domain.NoticeViolation, error) {
	if _, err := s.notices.FindByID(ctx, noticeID); err != nil {
		return nil, err
	}
	return s.violations.ListByNotice(ctx, noticeID)
}

// checkReferences verifies every non-nil foreign key, in driver, vehicle,
// officer order.
func (s *CorrectionNoticeService) checkReferences(ctx context.Context, driverID, vehicleID, officerID *int64) error {
	if driverID != nil {
		if _, err := s.drivers.FindByID(ctx, *driverID); err != nil {
			return err
		}
	}
	if vehicleID != nil {
		if _, err := s.vehicles.FindByID(ctx, *vehicleID); err != nil {
			return err
		}
	}
	if officerID != nil {
		if _, err := s.officers.FindByID(ctx, *officerID); err != nil {
			return err
		}
	}
	return nil
}

type NoticeViolationService struct {
	violations ports.NoticeViolationRepository
	notices    ports.CorrectionNoticeRepository
	types      ports.ViolationTypeRepository
	replay     replayer
	log        zerolog.Logger
}

func NewNoticeViolationService(store ports.Store, idem ports.IdempotencyStore, log zerolog.Logger) *NoticeViolationService {
	return &NoticeViolationService{
		violations: store.NoticeViolations,
		notices:    store.CorrectionNotices,
		types:      store.ViolationTypes,
		replay:     replayer{store: idem, log: log},
		log:        log,
	}
}

func (s *NoticeViolationService) Get(ctx context.Context, id int64) (*domain.NoticeViolation, error) {
	return s.violations.FindByID(ctx, id)
}

func (s *NoticeViolationService) Create(ctx context.Context, nv domain.NoticeViolation, idempotencyKey string) (*domain.NoticeViolation, error) {
	replay, id, replayed, err := s.replay.begin(ctx, noticeViolationResource, idempotencyKey)
	if err != nil {
		return nil, err
	}
	if replayed {
		if existing, err := s.violations.FindByID(ctx, id); err == nil {
			return existing, nil
		}
	}
	defer replay.release(ctx)

	if _, err := s.notices.FindByID(ctx, nv.CorrectionNoticeID); err != nil {
		return nil, err
	}
	if _, err := s.types.FindByID(ctx, nv.ViolationTypeID); err != nil {
		return nil, err
	}

	nv.ID = 0
	if err := s.violations.Create(ctx, &nv); err != nil {
		return nil, err
	}
	replay.complete(ctx, nv.ID)
	return &nv, nil
}

func (s *NoticeViolationService) Delete(ctx context.Context, id int64) error {
	if _, err := s.violations.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.violations.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("notice_violation_id", id).Msg("notice violation deleted")
	return nil
}

type ViolationTypeService struct {
	types ports.ViolationTypeRepository
}

func NewViolationTypeService(types ports.ViolationTypeRepository) *ViolationTypeService {
	return &ViolationTypeService{types: types}
}

func (s *ViolationTypeService) List(ctx context.Context) ([]*domain.ViolationType, error) {
	return s.types.List(ctx)
}
