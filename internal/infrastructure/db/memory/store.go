// Package memory is an in-process implementation of every repository port.
// It is used for local runs with STORAGE=memory and as a test double.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/nysp/correction-notices/internal/core/domain"
	"github.com/nysp/correction-notices/internal/core/ports"
)

// DB holds all tables behind one lock so cross-table operations stay atomic.
type DB struct {
	mu sync.RWMutex

	accounts       map[string]domain.Account
	drivers        map[int64]domain.Driver
	officers       map[int64]domain.Officer
	owners         map[int64]domain.VehicleOwner
	vehicles       map[int64]domain.Vehicle
	violationTypes map[int64]domain.ViolationType
	notices        map[int64]domain.CorrectionNotice
	violations     map[int64]domain.NoticeViolation

	seq map[string]int64
}

func NewDB() *DB {
	return &DB{
		accounts:       make(map[string]domain.Account),
		drivers:        make(map[int64]domain.Driver),
		officers:       make(map[int64]domain.Officer),
		owners:         make(map[int64]domain.VehicleOwner),
		vehicles:       make(map[int64]domain.Vehicle),
		violationTypes: make(map[int64]domain.ViolationType),
		notices:        make(map[int64]domain.CorrectionNotice),
		violations:     make(map[int64]domain.NoticeViolation),
		seq:            make(map[string]int64),
	}
}

// Store returns every repository backed by db.
func (db *DB) Store() ports.Store {
	return ports.Store{
		Accounts:          &AccountRepository{db: db},
		Drivers:           &DriverRepository{db: db},
		Officers:          &OfficerRepository{db: db},
		VehicleOwners:     &VehicleOwnerRepository{db: db},
		Vehicles:          &VehicleRepository{db: db},
		ViolationTypes:    &ViolationTypeRepository{db: db},
		CorrectionNotices: &CorrectionNoticeRepository{db: db},
		NoticeViolations:  &NoticeViolationRepository{db: db},
	}
}

// nextID must be called with db.mu held for writing.
func (db *DB) nextID(table string) int64 {
	db.seq[table]++
	return db.seq[table]
}

func find[T any](db *DB, rows map[int64]T, id int64, notFound error) (*T, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	row, ok := rows[id]
	if !ok {
		return nil, notFound
	}
	return &row, nil
}

func findWhere[T any](db *DB, rows map[int64]T, match func(T) bool, notFound error) (*T, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	for _, id := range sortedIDs(rows) {
		if row := rows[id]; match(row) {
			return &row, nil
		}
	}
	return nil, notFound
}

func sortedIDs[T any](rows map[int64]T) []int64 {
	ids := make([]int64, 0, len(rows))
	for id := range rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type AccountRepository struct{ db *DB }

func (r *AccountRepository) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	a, ok := r.db.accounts[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &a, nil
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, exists := r.db.accounts[account.Username]; exists {
		return nil, domain.ErrAccountExists
	}
	a := *account
	a.ID = r.db.nextID("accounts")
	r.db.accounts[a.Username] = a
	return &a, nil
}

// Delete removes an account. Only used to exercise tokens that outlive their account.
func (r *AccountRepository) Delete(_ context.Context, username string) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.accounts, username)
}

func (r *AccountRepository) Count(_ context.Context) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return int64(len(r.db.accounts)), nil
}
