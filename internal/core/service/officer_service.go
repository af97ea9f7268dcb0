package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/nysp/correction-notices/internal/core/domain"
	"github.com/nysp/correction-notices/internal/core/ports"
)

const officerResource = "officers"

type OfficerService struct {
	officers ports.OfficerRepository
	replay   replayer
	log      zerolog.Logger
}

func NewOfficerService(officers ports.OfficerRepository, idem ports.IdempotencyStore, log zerolog.Logger) *OfficerService {
	return &OfficerService{officers: officers, replay: replayer{store: idem, log: log}, log: log}
}

func (s *OfficerService) Get(ctx context.Context, id int64) (*domain.Officer, error) {
	return s.officers.FindByID(ctx, id)
}

// Create stores an officer. Personnel numbers are unique.
func (s *OfficerService) Create(ctx context.Context, o domain.Officer, idempotencyKey string) (*domain.Officer, error) {
	replay, id, replayed, err := s.replay.begin(ctx, officerResource, idempotencyKey)
	if err != nil {
		return nil, err
	}
	if replayed {
		if existing, err := s.officers.FindByID(ctx, id); err == nil {
			return existing, nil
		}
	}
	defer replay.release(ctx)

	_, err = s.officers.FindByPersonnelNumber(ctx, o.PersonnelNumber)
	switch {
	case err == nil:
		return nil, domain.ErrDuplicatePersonnelNumber
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	o.ID = 0
	if err := s.officers.Create(ctx, &o); err != nil {
		return nil, err
	}
	replay.complete(ctx, o.ID)

	s.log.Info().Int64("officer_id", o.ID).Msg("officer created")
	return &o, nil
}
