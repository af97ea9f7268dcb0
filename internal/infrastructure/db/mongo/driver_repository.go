package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nysp/correction-notices/internal/core/domain"
)

type DriverRepository struct {
	drivers collection[domain.Driver]
	notices *mongo.Collection
}

func NewDriverRepository(db *mongo.Database, seq *sequence) *DriverRepository {
	return &DriverRepository{
		drivers: newCollection[domain.Driver](db, seq, collDrivers, domain.ErrDriverNotFound, domain.ErrDuplicateLicence),
		notices: db.Collection(collCorrectionNotices),
	}
}

func (r *DriverRepository) FindByID(ctx context.Context, id int64) (*domain.Driver, error) {
	return r.drivers.findByID(ctx, id)
}

func (r *DriverRepository) FindByLicence(ctx context.Context, licence string) (*domain.Driver, error) {
	return r.drivers.findOne(ctx, bson.M{"drivers_licence": licence})
}

func (r *DriverRepository) Create(ctx context.Context, d *domain.Driver) error {
	return r.drivers.insert(ctx, d, func(id int64) { d.ID = id })
}

func (r *DriverRepository) Update(ctx context.Context, d *domain.Driver) error {
	return r.drivers.replace(ctx, d.ID, d)
}

// Delete does not look at correction_notices. The in-use check runs in the
// service as a separate query, so a notice inserted between that check and
// this delete can leave a dangling driver_id.
func (r *DriverRepository) Delete(ctx context.Context, id int64) error {
	return r.drivers.deleteByID(ctx, id)
}

// FrequentOffenders counts notice violations per driver by joining
// correction_notices to notice_violations, then loads the matching drivers.
func (r *DriverRepository) FrequentOffenders(ctx context.Context, minViolations int) ([]*domain.Driver, error) {
	aggCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         collNoticeViolations,
			"localField":   "_id",
			"foreignField": "correction_notice_id",
			"as":           "violations",
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$driver_id",
			"count": bson.M{"$sum": bson.M{"$size": "$violations"}},
		}}},
		{{Key: "$match", Value: bson.M{"count": bson.M{"$gt": minViolations, "$gte": 1}}}},
	}

	cur, err := r.notices.Aggregate(aggCtx, pipeline)
	if err != nil {
		return nil, domain.StorageError("aggregate offenders", err)
	}
	var rows []struct {
		DriverID int64 `bson:"_id"`
	}
	if err := cur.All(aggCtx, &rows); err != nil {
		return nil, domain.StorageError("decode offenders", err)
	}
	if len(rows) == 0 {
		return []*domain.Driver{}, nil
	}

	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.DriverID
	}
	return r.drivers.findMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
}
