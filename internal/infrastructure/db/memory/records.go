package memory

import (
	"context"

	"github.com/nysp/correction-notices/internal/core/domain"
)

type DriverRepository struct{ db *DB }

func (r *DriverRepository) FindByID(_ context.Context, id int64) (*domain.Driver, error) {
	return find(r.db, r.db.drivers, id, domain.ErrDriverNotFound)
}

func (r *DriverRepository) FindByLicence(_ context.Context, licence string) (*domain.Driver, error) {
	return findWhere(r.db, r.db.drivers, func(d domain.Driver) bool {
		return d.DriversLicence == licence
	}, domain.ErrDriverNotFound)
}

func (r *DriverRepository) Create(_ context.Context, d *domain.Driver) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.drivers {
		if existing.DriversLicence == d.DriversLicence {
			return domain.ErrDuplicateLicence
		}
	}
	d.ID = r.db.nextID("drivers")
	r.db.drivers[d.ID] = *d
	return nil
}

func (r *DriverRepository) Update(_ context.Context, d *domain.Driver) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.drivers[d.ID]; !ok {
		return domain.ErrDriverNotFound
	}
	for id, existing := range r.db.drivers {
		if id != d.ID && existing.DriversLicence == d.DriversLicence {
			return domain.ErrDuplicateLicence
		}
	}
	r.db.drivers[d.ID] = *d
	return nil
}

func (r *DriverRepository) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.drivers[id]; !ok {
		return domain.ErrDriverNotFound
	}
	for _, n := range r.db.notices {
		if n.DriverID == id {
			return domain.ErrDriverInUse
		}
	}
	delete(r.db.drivers, id)
	return nil
}

func (r *DriverRepository) FrequentOffenders(_ context.Context, minViolations int) ([]*domain.Driver, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	counts := make(map[int64]int)
	for _, nv := range r.db.violations {
		if n, ok := r.db.notices[nv.CorrectionNoticeID]; ok {
			counts[n.DriverID]++
		}
	}

	out := []*domain.Driver{}
	for _, id := range sortedIDs(r.db.drivers) {
		if c, ok := counts[id]; ok && c > minViolations {
			d := r.db.drivers[id]
			out = append(out, &d)
		}
	}
	return out, nil
}

type OfficerRepository struct{ db *DB }

func (r *OfficerRepository) FindByID(_ context.Context, id int64) (*domain.Officer, error) {
	return find(r.db, r.db.officers, id, domain.ErrOfficerNotFound)
}

func (r *OfficerRepository) FindByPersonnelNumber(_ context.Context, number string) (*domain.Officer, error) {
	return findWhere(r.db, r.db.officers, func(o domain.Officer) bool {
		return o.PersonnelNumber == number
	}, domain.ErrOfficerNotFound)
}

func (r *OfficerRepository) Create(_ context.Context, o *domain.Officer) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.officers {
		if existing.PersonnelNumber == o.PersonnelNumber {
			return domain.ErrDuplicatePersonnelNumber
		}
	}
	o.ID = r.db.nextID("officers")
	r.db.officers[o.ID] = *o
	return nil
}

type VehicleOwnerRepository struct{ db *DB }

func (r *VehicleOwnerRepository) FindByID(_ context.Context, id int64) (*domain.VehicleOwner, error) {
	return find(r.db, r.db.owners, id, domain.ErrVehicleOwnerNotFound)
}

func (r *VehicleOwnerRepository) FindByUsername(_ context.Context, username string) (*domain.VehicleOwner, error) {
	return findWhere(r.db, r.db.owners, func(o domain.VehicleOwner) bool {
		return o.Username == username
	}, domain.ErrVehicleOwnerNotFound)
}

func (r *VehicleOwnerRepository) Create(_ context.Context, o *domain.VehicleOwner) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.owners {
		if existing.Username == o.Username {
			return domain.ErrDuplicateOwnerUsername
		}
	}
	o.ID = r.db.nextID("vehicle_owners")
	r.db.owners[o.ID] = *o
	return nil
}

type VehicleRepository struct{ db *DB }

func (r *VehicleRepository) FindByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	return find(r.db, r.db.vehicles, id, domain.ErrVehicleNotFound)
}

func (r *VehicleRepository) FindByVIN(_ context.Context, vin string) (*domain.Vehicle, error) {
	return findWhere(r.db, r.db.vehicles, func(v domain.Vehicle) bool {
		return v.VIN == vin
	}, domain.ErrVehicleNotFound)
}

func (r *VehicleRepository) Create(_ context.Context, v *domain.Vehicle) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.vehicles {
		if existing.VIN == v.VIN {
			return domain.ErrDuplicateVIN
		}
	}
	v.ID = r.db.nextID("vehicles")
	r.db.vehicles[v.ID] = *v
	return nil
}

func (r *VehicleRepository) Update(_ context.Context, v *domain.Vehicle) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.vehicles[v.ID]; !ok {
		return domain.ErrVehicleNotFound
	}
	for id, existing := range r.db.vehicles {
		if id != v.ID && existing.VIN == v.VIN {
			return domain.ErrDuplicateVIN
		}
	}
	r.db.vehicles[v.ID] = *v
	return nil
}

func (r *VehicleRepository) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.vehicles[id]; !ok {
		return domain.ErrVehicleNotFound
	}
	for _, n := range r.db.notices {
		if n.VehicleID == id {
			return domain.ErrVehicleInUse
		}
	}
	delete(r.db.vehicles, id)
	return nil
}

type ViolationTypeRepository struct{ db *DB }

func (r *ViolationTypeRepository) FindByID(_ context.Context, id int64) (*domain.ViolationType, error) {
	return find(r.db, r.db.violationTypes, id, domain.ErrViolationTypeNotFound)
}

func (r *ViolationTypeRepository) List(_ context.Context) ([]*domain.ViolationType, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := make([]*domain.ViolationType, 0, len(r.db.violationTypes))
	for _, id := range sortedIDs(r.db.violationTypes) {
		vt := r.db.violationTypes[id]
		out = append(out, &vt)
	}
	return out, nil
}

func (r *ViolationTypeRepository) Create(_ context.Context, vt *domain.ViolationType) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.violationTypes {
		if existing.Description == vt.Description {
			return domain.ErrDuplicateViolationType
		}
	}
	vt.ID = r.db.nextID("violation_types")
	r.db.violationTypes[vt.ID] = *vt
	return nil
}

type CorrectionNoticeRepository struct{ db *DB }

func (r *CorrectionNoticeRepository) FindByID(_ context.Context, id int64) (*domain.CorrectionNotice, error) {
	return find(r.db, r.db.notices, id, domain.ErrCorrectionNoticeNotFound)
}

func (r *CorrectionNoticeRepository) Create(_ context.Context, n *domain.CorrectionNotice) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.references(n); err != nil {
		return err
	}
	n.ID = r.db.nextID("correction_notices")
	r.db.notices[n.ID] = *n
	return nil
}

func (r *CorrectionNoticeRepository) Update(_ context.Context, n *domain.CorrectionNotice) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.notices[n.ID]; !ok {
		return domain.ErrCorrectionNoticeNotFound
	}
	if err := r.references(n); err != nil {
		return err
	}
	r.db.notices[n.ID] = *n
	return nil
}

// references rechecks, under the write lock, the rows a notice points at that
// can be deleted concurrently. Caller holds r.db.mu.
func (r *CorrectionNoticeRepository) references(n *domain.CorrectionNotice) error {
	if _, ok := r.db.drivers[n.DriverID]; !ok {
		return domain.ErrDriverNotFound
	}
	if _, ok := r.db.vehicles[n.VehicleID]; !ok {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *CorrectionNoticeRepository) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.notices[id]; !ok {
		return domain.ErrCorrectionNoticeNotFound
	}
	for nvID, nv := range r.db.violations {
		if nv.CorrectionNoticeID == id {
			delete(r.db.violations, nvID)
		}
	}
	delete(r.db.notices, id)
	return nil
}

func (r *CorrectionNoticeRepository) CountByDriver(_ context.Context, driverID int64) (int64, error) {
	return r.count(func(n domain.CorrectionNotice) bool { return n.DriverID == driverID }), nil
}

func (r *CorrectionNoticeRepository) CountByVehicle(_ context.Context, vehicleID int64) (int64, error) {
	return r.count(func(n domain.CorrectionNotice) bool { return n.VehicleID == vehicleID }), nil
}

func (r *CorrectionNoticeRepository) count(match func(domain.CorrectionNotice) bool) int64 {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var n int64
	for _, notice := range r.db.notices {
		if match(notice) {
			n++
		}
	}
	return n
}

type NoticeViolationRepository struct{ db *DB }

func (r *NoticeViolationRepository) FindByID(_ context.Context, id int64) (*domain.NoticeViolation, error) {
	return find(r.db, r.db.violations, id, domain.ErrNoticeViolationNotFound)
}

func (r *NoticeViolationRepository) ListByNotice(_ context.Context, noticeID int64) ([]*domain.NoticeViolation, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := []*domain.NoticeViolation{}
	for _, id := range sortedIDs(r.db.violations) {
		if nv := r.db.violations[id]; nv.CorrectionNoticeID == noticeID {
			out = append(out, &nv)
		}
	}
	return out, nil
}

func (r *NoticeViolationRepository) Create(_ context.Context, nv *domain.NoticeViolation) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.notices[nv.CorrectionNoticeID]; !ok {
		return domain.ErrCorrectionNoticeNotFound
	}
	nv.ID = r.db.nextID("notice_violations")
	r.db.violations[nv.ID] = *nv
	return nil
}

func (r *NoticeViolationRepository) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.violations[id]; !ok {
		return domain.ErrNoticeViolationNotFound
	}
	delete(r.db.violations, id)
	return nil
}
