package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/nysp/correction-notices/internal/core/domain"
	"github.com/nysp/correction-notices/internal/core/ports"
)

func TestDriverRepository_FrequentOffenders(t *testing.T) {
	ctx := context.Background()
	store := NewDB().Store()

	a := &domain.Driver{DriversLicence: "A"}
	b := &domain.Driver{DriversLicence: "B"}
	c := &domain.Driver{DriversLicence: "C"}
	for _, d := range []*domain.Driver{a, b, c} {
		if err := store.Drivers.Create(ctx, d); err != nil {
			t.Fatalf("create driver: %v", err)
		}
	}
	car := &domain.Vehicle{VIN: "1HGCM82633A004352"}
	if err := store.Vehicles.Create(ctx, car); err != nil {
		t.Fatalf("create vehicle: %v", err)
	}

	addViolations := func(driverID int64, n int) {
		notice := &domain.CorrectionNotice{DriverID: driverID, VehicleID: car.ID}
		if err := store.CorrectionNotices.Create(ctx, notice); err != nil {
			t.Fatalf("create notice: %v", err)
		}
		for i := 0; i < n; i++ {
			if err := store.NoticeViolations.Create(ctx, &domain.NoticeViolation{CorrectionNoticeID: notice.ID, ViolationTypeID: 1}); err != nil {
				t.Fatalf("create violation: %v", err)
			}
		}
	}
	addViolations(a.ID, 1)
	addViolations(b.ID, 2)
	addViolations(b.ID, 1)

	got, err := store.Drivers.FrequentOffenders(ctx, 1)
	if err != nil {
		t.Fatalf("FrequentOffenders: %v", err)
	}
	if len(got) != 1 || got[0].ID != b.ID {
		t.Fatalf("expected only driver %d, got %+v", b.ID, got)
	}

	got, _ = store.Drivers.FrequentOffenders(ctx, 0)
	if len(got) != 2 {
		t.Fatalf("expected 2 offenders with min 0, got %d", len(got))
	}
}

func TestCorrectionNoticeRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	store := NewDB().Store()

	notice := seedNotice(t, store)
	nv := &domain.NoticeViolation{CorrectionNoticeID: notice.ID, ViolationTypeID: 1}
	if err := store.NoticeViolations.Create(ctx, nv); err != nil {
		t.Fatalf("create violation: %v", err)
	}

	if err := store.CorrectionNotices.Delete(ctx, notice.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.NoticeViolations.FindByID(ctx, nv.ID); !errors.Is(err, domain.ErrNoticeViolationNotFound) {
		t.Fatalf("expected violation to be removed, got %v", err)
	}
}

func seedNotice(t *testing.T, store ports.Store) *domain.CorrectionNotice {
	t.Helper()
	ctx := context.Background()
	d := &domain.Driver{DriversLicence: "D-1"}
	if err := store.Drivers.Create(ctx, d); err != nil {
		t.Fatalf("create driver: %v", err)
	}
	v := &domain.Vehicle{VIN: "2T1BURHE0JC000001"}
	if err := store.Vehicles.Create(ctx, v); err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	n := &domain.CorrectionNotice{DriverID: d.ID, VehicleID: v.ID}
	if err := store.CorrectionNotices.Create(ctx, n); err != nil {
		t.Fatalf("create notice: %v", err)
	}
	return n
}

func TestDeleteRefusesReferencedRows(t *testing.T) {
	ctx := context.Background()
	store := NewDB().Store()
	n := seedNotice(t, store)

	if err := store.Drivers.Delete(ctx, n.DriverID); !errors.Is(err, domain.ErrDriverInUse) {
		t.Fatalf("expected ErrDriverInUse, got %v", err)
	}
	if err := store.Vehicles.Delete(ctx, n.VehicleID); !errors.Is(err, domain.ErrVehicleInUse) {
		t.Fatalf("expected ErrVehicleInUse, got %v", err)
	}

	if err := store.CorrectionNotices.Delete(ctx, n.ID); err != nil {
		t.Fatalf("delete notice: %v", err)
	}
	if err := store.Drivers.Delete(ctx, n.DriverID); err != nil {
		t.Fatalf("expected unreferenced driver to delete, got %v", err)
	}
	if err := store.Vehicles.Delete(ctx, n.VehicleID); err != nil {
		t.Fatalf("expected unreferenced vehicle to delete, got %v", err)
	}
}

func TestNoticeWritesRecheckReferences(t *testing.T) {
	ctx := context.Background()
	store := NewDB().Store()
	n := seedNotice(t, store)

	if err := store.CorrectionNotices.Create(ctx, &domain.CorrectionNotice{DriverID: 99, VehicleID: n.VehicleID}); !errors.Is(err, domain.ErrDriverNotFound) {
		t.Fatalf("expected ErrDriverNotFound, got %v", err)
	}
	moved := *n
	moved.VehicleID = 99
	if err := store.CorrectionNotices.Update(ctx, &moved); !errors.Is(err, domain.ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
	if err := store.NoticeViolations.Create(ctx, &domain.NoticeViolation{CorrectionNoticeID: 99, ViolationTypeID: 1}); !errors.Is(err, domain.ErrCorrectionNoticeNotFound) {
		t.Fatalf("expected ErrCorrectionNoticeNotFound, got %v", err)
	}
}

func TestAccountRepository_UniqueUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewDB().Store().Accounts

	if _, err := repo.Create(ctx, &domain.Account{Username: "alice", Role: domain.RoleOfficer}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, &domain.Account{Username: "alice", Role: domain.RoleCitizen}); !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
	if _, err := repo.FindByUsername(ctx, "Alice"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("lookup must be case-sensitive, got %v", err)
	}
}

func TestIdempotencyStore_ReserveCompleteRelease(t *testing.T) {
	ctx := context.Background()
	s := NewIdempotencyStore()

	if _, claimed, _ := s.Reserve(ctx, "drivers", "k"); !claimed {
		t.Fatal("expected first reserve to claim the key")
	}
	if id, claimed, _ := s.Reserve(ctx, "drivers", "k"); claimed || id != 0 {
		t.Fatalf("expected held key, got id=%d claimed=%v", id, claimed)
	}

	_ = s.Complete(ctx, "drivers", "k", 5)
	_ = s.Complete(ctx, "drivers", "k", 9)
	_ = s.Release(ctx, "drivers", "k")
	if id, claimed, _ := s.Reserve(ctx, "drivers", "k"); claimed || id != 5 {
		t.Fatalf("expected first completed id 5 to survive, got id=%d claimed=%v", id, claimed)
	}

	_, _, _ = s.Reserve(ctx, "vehicles", "k")
	_ = s.Release(ctx, "vehicles", "k")
	if _, claimed, _ := s.Reserve(ctx, "vehicles", "k"); !claimed {
		t.Fatal("expected a released key to be claimable again")
	}
}

func TestViolationTypeRepository_UniqueDescription(t *testing.T) {
	ctx := context.Background()
	repo := NewDB().Store().ViolationTypes

	if err := repo.Create(ctx, &domain.ViolationType{Description: "Speeding"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, &domain.ViolationType{Description: "Speeding"})
	if !errors.Is(err, domain.ErrDuplicateViolationType) || !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrDuplicateViolationType, got %v", err)
	}
}
