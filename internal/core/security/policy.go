package security

import (
	"github.com/nysp/correction-notices/internal/core/domain"
)

// Resource names a record type guarded by the policy.
type Resource string

const (
	ResourceDriver           Resource = "driver"
	ResourceOfficer          Resource = "officer"
	ResourceVehicleOwner     Resource = "vehicle_owner"
	ResourceVehicle          Resource = "vehicle"
	ResourceViolationType    Resource = "violation_type"
	ResourceCorrectionNotice Resource = "correction_notice"
	ResourceNoticeViolation  Resource = "notice_violation"
)

// Operation is the kind of access requested on a resource.
type Operation string

const (
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// requirement is the identity needed for an operation. public means no
// identity at all is required.
type requirement struct {
	role   domain.Role
	public bool
}

var (
	publicRead   = requirement{public: true}
	officersOnly = requirement{role: domain.RoleOfficer}
)

// Policy maps (resource, operation) pairs to the identity they require.
// Pairs missing from the table are denied.
type Policy struct {
	rules map[Resource]map[Operation]requirement
}

// NewPolicy returns the reference policy: reads are public and every mutation
// requires an officer.
func NewPolicy() *Policy {
	crud := func() map[Operation]requirement {
		return map[Operation]requirement{
			OpRead:   publicRead,
			OpCreate: officersOnly,
			OpUpdate: officersOnly,
			OpDelete: officersOnly,
		}
	}
	return &Policy{rules: map[Resource]map[Operation]requirement{
		ResourceDriver:           crud(),
		ResourceOfficer:          crud(),
		ResourceVehicleOwner:     crud(),
		ResourceVehicle:          crud(),
		ResourceViolationType:    {OpRead: publicRead},
		ResourceCorrectionNotice: crud(),
		ResourceNoticeViolation:  crud(),
	}}
}

// RequireRole fails with domain.ErrForbidden unless identity holds exactly
// the required role. Unknown roles never match.
func (p *Policy) RequireRole(identity *domain.Account, required domain.Role) error {
	if identity == nil || !required.Valid() || !identity.Role.Valid() {
		return domain.ErrForbidden
	}
	if identity.Role != required {
		return domain.ErrForbidden
	}
	return nil
}

// IsPublic reports whether op on res needs no identity.
func (p *Policy) IsPublic(res Resource, op Operation) bool {
	req, ok := p.rules[res][op]
	return ok && req.public
}

// Authorize checks identity against the requirement for op on res. A nil
// identity is only accepted for public operations.
func (p *Policy) Authorize(identity *domain.Account, res Resource, op Operation) error {
	req, ok := p.rules[res][op]
	if ok && req.public {
		return nil
	}
	if identity == nil {
		return domain.ErrUnauthenticated
	}
	if !ok {
		return domain.ErrForbidden
	}
	return p.RequireRole(identity, req.role)
}
