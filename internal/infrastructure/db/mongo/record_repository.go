package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nysp/correction-notices/internal/core/domain"
)

type OfficerRepository struct {
	officers collection[domain.Officer]
}

func NewOfficerRepository(db *mongo.Database, seq *sequence) *OfficerRepository {
	return &OfficerRepository{
		officers: newCollection[domain.Officer](db, seq, collOfficers, domain.ErrOfficerNotFound, domain.ErrDuplicatePersonnelNumber),
	}
}

func (r *OfficerRepository) FindByID(ctx context.Context, id int64) (*domain.Officer, error) {
	return r.officers.findByID(ctx, id)
}

func (r *OfficerRepository) FindByPersonnelNumber(ctx context.Context, number string) (*domain.Officer, error) {
	return r.officers.findOne(ctx, bson.M{"personnel_number": number})
}

func (r *OfficerRepository) Create(ctx context.Context, o *domain.Officer) error {
	return r.officers.insert(ctx, o, func(id int64) { o.ID = id })
}

type VehicleOwnerRepository struct {
	owners collection[domain.VehicleOwner]
}

func NewVehicleOwnerRepository(db *mongo.Database, seq *sequence) *VehicleOwnerRepository {
	return &VehicleOwnerRepository{
		owners: newCollection[domain.VehicleOwner](db, seq, collVehicleOwners, domain.ErrVehicleOwnerNotFound, domain.ErrDuplicateOwnerUsername),
	}
}

func (r *VehicleOwnerRepository) FindByID(ctx context.Context, id int64) (*domain.VehicleOwner, error) {
	return r.owners.findByID(ctx, id)
}

func (r *VehicleOwnerRepository) FindByUsername(ctx context.Context, username string) (*domain.VehicleOwner, error) {
	return r.owners.findOne(ctx, bson.M{"username": username})
}

func (r *VehicleOwnerRepository) Create(ctx context.Context, o *domain.VehicleOwner) error {
	return r.owners.insert(ctx, o, func(id int64) { o.ID = id })
}

type VehicleRepository struct {
	vehicles collection[domain.Vehicle]
}

func NewVehicleRepository(db *mongo.Database, seq *sequence) *VehicleRepository {
	return &VehicleRepository{
		vehicles: newCollection[domain.Vehicle](db, seq, collVehicles, domain.ErrVehicleNotFound, domain.ErrDuplicateVIN),
	}
}

func (r *VehicleRepository) FindByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return r.vehicles.findByID(ctx, id)
}

func (r *VehicleRepository) FindByVIN(ctx context.Context, vin string) (*domain.Vehicle, error) {
	return r.vehicles.findOne(ctx, bson.M{"vin": vin})
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	return r.vehicles.insert(ctx, v, func(id int64) { v.ID = id })
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	return r.vehicles.replace(ctx, v.ID, v)
}

// Delete has the same unguarded window as DriverRepository.Delete.
func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	return r.vehicles.deleteByID(ctx, id)
}

type ViolationTypeRepository struct {
	types collection[domain.ViolationType]
}

func NewViolationTypeRepository(db *mongo.Database, seq *sequence) *ViolationTypeRepository {
	return &ViolationTypeRepository{
		types: newCollection[domain.ViolationType](db, seq, collViolationTypes, domain.ErrViolationTypeNotFound, domain.ErrDuplicateViolationType),
	}
}

func (r *ViolationTypeRepository) FindByID(ctx context.Context, id int64) (*domain.ViolationType, error) {
	return r.types.findByID(ctx, id)
}

func (r *ViolationTypeRepository) List(ctx context.Context) ([]*domain.ViolationType, error) {
	return r.types.findMany(ctx, bson.M{})
}

func (r *ViolationTypeRepository) Create(ctx context.Context, vt *domain.ViolationType) error {
	return r.types.insert(ctx, vt, func(id int64) { vt.ID = id })
}
