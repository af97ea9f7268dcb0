package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nysp/correction-notices/internal/core/domain"
)

type CorrectionNoticeRepository struct {
	notices    collection[domain.CorrectionNotice]
	violations *mongo.Collection
}

func NewCorrectionNoticeRepository(db *mongo.Database, seq *sequence) *CorrectionNoticeRepository {
	return &CorrectionNoticeRepository{
		notices:    newCollection[domain.CorrectionNotice](db, seq, collCorrectionNotices, domain.ErrCorrectionNoticeNotFound, nil),
		violations: db.Collection(collNoticeViolations),
	}
}

func (r *CorrectionNoticeRepository) FindByID(ctx context.Context, id int64) (*domain.CorrectionNotice, error) {
	return r.notices.findByID(ctx, id)
}

func (r *CorrectionNoticeRepository) Create(ctx context.Context, n *domain.CorrectionNotice) error {
	return r.notices.insert(ctx, n, func(id int64) { n.ID = id })
}

func (r *CorrectionNoticeRepository) Update(ctx context.Context, n *domain.CorrectionNotice) error {
	return r.notices.replace(ctx, n.ID, n)
}

// Delete removes the notice's violations first so a failure never leaves
// violations pointing at a missing notice.
func (r *CorrectionNoticeRepository) Delete(ctx context.Context, id int64) error {
	delCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.violations.DeleteMany(delCtx, bson.M{"correction_notice_id": id}); err != nil {
		return domain.StorageError("delete notice violations", err)
	}
	return r.notices.deleteByID(ctx, id)
}

func (r *CorrectionNoticeRepository) CountByDriver(ctx context.Context, driverID int64) (int64, error) {
	return r.notices.count(ctx, bson.M{"driver_id": driverID})
}

func (r *CorrectionNoticeRepository) CountByVehicle(ctx context.Context, vehicleID int64) (int64, error) {
	return r.notices.count(ctx, bson.M{"vehicle_id": vehicleID})
}

type NoticeViolationRepository struct {
	violations collection[domain.NoticeViolation]
}

func NewNoticeViolationRepository(db *mongo.Database, seq *sequence) *NoticeViolationRepository {
	return &NoticeViolationRepository{
		violations: newCollection[domain.NoticeViolation](db, seq, collNoticeViolations, domain.ErrNoticeViolationNotFound, nil),
	}
}

func (r *NoticeViolationRepository) FindByID(ctx context.Context, id int64) (*domain.NoticeViolation, error) {
	return r.violations.findByID(ctx, id)
}

func (r *NoticeViolationRepository) ListByNotice(ctx context.Context, noticeID int64) ([]*domain.NoticeViolation, error) {
	return r.violations.findMany(ctx, bson.M{"correction_notice_id": noticeID})
}

func (r *NoticeViolationRepository) Create(ctx context.Context, nv *domain.NoticeViolation) error {
	return r.violations.insert(ctx, nv, func(id int64) { nv.ID = id })
}

func (r *NoticeViolationRepository) Delete(ctx context.Context, id int64) error {
	return r.violations.deleteByID(ctx, id)
}
