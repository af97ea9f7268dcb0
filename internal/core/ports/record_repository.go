package ports

import (
	"context"

	"github.com/nysp/correction-notices/internal/core/domain"
)

// Repositories return the entity-specific domain.ErrXNotFound sentinel for a
// missing key, and wrap unexpected failures with domain.StorageError.
// Create assigns the record ID.

type DriverRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Driver, error)
	// FindByLicence returns domain.ErrDriverNotFound when no driver holds licence.
	FindByLicence(ctx context.Context, licence string) (*domain.Driver, error)
	Create(ctx context.Context, d *domain.Driver) error
	Update(ctx context.Context, d *domain.Driver) error
	Delete(ctx context.Context, id int64) error
	// FrequentOffenders returns drivers with strictly more than minViolations
	// notice violations across all of their correction notices.
	FrequentOffenders(ctx context.Context, minViolations int) ([]*domain.Driver, error)
}

type OfficerRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Officer, error)
	FindByPersonnelNumber(ctx context.Context, number string) (*domain.Officer, error)
	Create(ctx context.Context, o *domain.Officer) error
}

type VehicleOwnerRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.VehicleOwner, error)
	FindByUsername(ctx context.Context, username string) (*domain.VehicleOwner, error)
	Create(ctx context.Context, o *domain.VehicleOwner) error
}

type VehicleRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	FindByVIN(ctx context.Context, vin string) (*domain.Vehicle, error)
	Create(ctx context.Context, v *domain.Vehicle) error
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id int64) error
}

type ViolationTypeRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.ViolationType, error)
	List(ctx context.Context) ([]*domain.ViolationType, error)
	Create(ctx context.Context, vt *domain.ViolationType) error
}

type CorrectionNoticeRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.CorrectionNotice, error)
	Create(ctx context.Context, n *domain.CorrectionNotice) error
	Update(ctx context.Context, n *domain.CorrectionNotice) error
	// Delete removes the notice together with its notice violations.
	Delete(ctx context.Context, id int64) error
	CountByDriver(ctx context.Context, driverID int64) (int64, error)
	CountByVehicle(ctx context.Context, vehicleID int64) (int64, error)
}

type NoticeViolationRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.NoticeViolation, error)
	ListByNotice(ctx context.Context, noticeID int64) ([]*domain.NoticeViolation, error)
	Create(ctx context.Context, nv *domain.NoticeViolation) error
	Delete(ctx context.Context, id int64) error
}

// Store bundles every repository the services need.
type Store struct {
	Accounts          AccountRepository
	Drivers           DriverRepository
	Officers          OfficerRepository
	VehicleOwners     VehicleOwnerRepository
	Vehicles          VehicleRepository
	ViolationTypes    ViolationTypeRepository
	CorrectionNotices CorrectionNoticeRepository
	NoticeViolations  NoticeViolationRepository
}
