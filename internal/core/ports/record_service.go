package ports

import (
	"context"

	"github.com/nysp/correction-notices/internal/core/domain"
)

// Create methods take the client's Idempotency-Key; an empty key disables replay.

type DriverService interface {
	Get(ctx context.Context, id int64) (*domain.Driver, error)
	Create(ctx context.Context, d domain.Driver, idempotencyKey string) (*domain.Driver, error)
	Update(ctx context.Context, id int64, patch domain.DriverPatch) (*domain.Driver, error)
	Delete(ctx context.Context, id int64) error
	FrequentOffenders(ctx context.Context, minViolations int) ([]*domain.Driver, error)
}

type OfficerService interface {
	Get(ctx context.Context, id int64) (*domain.Officer, error)
	Create(ctx context.Context, o domain.Officer, idempotencyKey string) (*domain.Officer, error)
}

type VehicleOwnerService interface {
	Get(ctx context.Context, id int64) (*domain.VehicleOwner, error)
	Create(ctx context.Context, o domain.VehicleOwner, idempotencyKey string) (*domain.VehicleOwner, error)
}

type VehicleService interface {
	Get(ctx context.Context, id int64) (*domain.Vehicle, error)
	Create(ctx context.Context, v domain.Vehicle, idempotencyKey string) (*domain.Vehicle, error)
	Update(ctx context.Context, id int64, patch domain.VehiclePatch) (*domain.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

type ViolationTypeService interface {
	List(ctx context.Context) ([]*domain.ViolationType, error)
}

type CorrectionNoticeService interface {
	Get(ctx context.Context, id int64) (*domain.CorrectionNotice, error)
	Create(ctx context.Context, n domain.CorrectionNotice, idempotencyKey string) (*domain.CorrectionNotice, error)
	Update(ctx context.Context, id int64, patch domain.CorrectionNoticePatch) (*domain.CorrectionNotice, error)
	Delete(ctx context.Context, id int64) error
	Violations(ctx context.Context, noticeID int64) ([]*domain.NoticeViolation, error)
}

type NoticeViolationService interface {
	Get(ctx context.Context, id int64) (*domain.NoticeViolation, error)
	Create(ctx context.Context, nv domain.NoticeViolation, idempotencyKey string) (*domain.NoticeViolation, error)
	Delete(ctx context.Context, id int64) error
}
