package domain

import (
	"errors"
	"fmt"
)

// Base categories. Handlers classify with errors.Is against these.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("could not validate credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrStorage            = errors.New("storage failure")
)

var (
	ErrAccountNotFound          = fmt.Errorf("account %w", ErrNotFound)
	ErrDriverNotFound           = fmt.Errorf("driver %w", ErrNotFound)
	ErrOfficerNotFound          = fmt.Errorf("officer %w", ErrNotFound)
	ErrVehicleOwnerNotFound     = fmt.Errorf("vehicle owner %w", ErrNotFound)
	ErrVehicleNotFound          = fmt.Errorf("vehicle %w", ErrNotFound)
	ErrViolationTypeNotFound    = fmt.Errorf("violation type %w", ErrNotFound)
	ErrCorrectionNoticeNotFound = fmt.Errorf("correction notice %w", ErrNotFound)
	ErrNoticeViolationNotFound  = fmt.Errorf("notice violation %w", ErrNotFound)
)

var (
	ErrAccountExists            = fmt.Errorf("%w: account already exists", ErrConflict)
	ErrDuplicateLicence         = fmt.Errorf("%w: a driver with this licence already exists", ErrConflict)
	ErrDuplicateVIN             = fmt.Errorf("%w: a vehicle with this vin already exists", ErrConflict)
	ErrDuplicatePersonnelNumber = fmt.Errorf("%w: an officer with this personnel number already exists", ErrConflict)
	ErrDuplicateOwnerUsername   = fmt.Errorf("%w: a vehicle owner with this username already exists", ErrConflict)
	ErrDuplicateViolationType   = fmt.Errorf("%w: a violation type with this description already exists", ErrConflict)
	ErrDriverInUse              = fmt.Errorf("%w: driver is referenced by correction notices", ErrConflict)
	ErrVehicleInUse             = fmt.Errorf("%w: vehicle is referenced by correction notices", ErrConflict)
	ErrIdempotencyInFlight      = fmt.Errorf("%w: a request with this idempotency key is still in progress", ErrConflict)
)

// StorageError wraps an unexpected persistence failure so it classifies as ErrStorage
// while keeping the cause for logs.
func StorageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
