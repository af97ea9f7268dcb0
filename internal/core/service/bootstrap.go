package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nysp/correction-notices/internal/core/domain"
	"github.com/nysp/correction-notices/internal/core/ports"
)

// Seed accounts created on an empty credential store.
const (
	SeedOfficerUsername = "s_scott@localhost"
	SeedCitizenUsername = "d_kroenke@localhost"
)

// DefaultViolationTypes is the catalogue loaded into an empty violation_types store.
var DefaultViolationTypes = []domain.ViolationType{
	{Description: "Speeding", ViolationCode: "VTL-1180"},
	{Description: "Failure to stop at stop sign", ViolationCode: "VTL-1172"},
	{Description: "Disobeyed traffic control device", ViolationCode: "VTL-1110"},
	{Description: "Inadequate or no headlamps", ViolationCode: "VTL-375-2"},
	{Description: "Uninspected motor vehicle", ViolationCode: "VTL-306B"},
	{Description: "Seat belt not worn", ViolationCode: "VTL-1229C"},
	{Description: "Mobile phone use while driving", ViolationCode: "VTL-1225C"},
}

// Bootstrap seeds one officer and one citizen account when no accounts exist,
// and the violation type catalogue when it is empty.
type Bootstrap struct {
	auth     *AuthService
	accounts ports.AccountRepository
	types    ports.ViolationTypeRepository
	log      zerolog.Logger
}

func NewBootstrap(auth *AuthService, accounts ports.AccountRepository, types ports.ViolationTypeRepository, log zerolog.Logger) *Bootstrap {
	return &Bootstrap{auth: auth, accounts: accounts, types: types, log: log}
}

// Run is idempotent: stores that already hold data are left untouched.
func (b *Bootstrap) Run(ctx context.Context, seedPassword string) error {
	n, err := b.accounts.Count(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: count accounts: %w", err)
	}
	if n == 0 {
		seeds := []struct {
			username string
			role     domain.Role
		}{
			{SeedOfficerUsername, domain.RoleOfficer},
			{SeedCitizenUsername, domain.RoleCitizen},
		}
		for _, seed := range seeds {
			if _, err := b.auth.CreateAccount(ctx, seed.username, seedPassword, seed.role); err != nil {
				return fmt.Errorf("bootstrap: seed %s: %w", seed.role, err)
			}
			b.log.Warn().Str("username", seed.username).Str("role", seed.role.String()).Msg("seeded account with well-known password")
		}
	}

	types, err := b.types.List(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: list violation types: %w", err)
	}
	if len(types) == 0 {
		for i := range DefaultViolationTypes {
			vt := DefaultViolationTypes[i]
			if err := b.types.Create(ctx, &vt); err != nil {
				return fmt.Errorf("bootstrap: seed violation type %s: %w", vt.ViolationCode, err)
			}
		}
		b.log.Info().Int("count", len(DefaultViolationTypes)).Msg("seeded violation types")
	}
	return nil
}
