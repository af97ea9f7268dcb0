package domain

import (
	"fmt"
	"time"
)

// MaxUsernameLength bounds account usernames.
const MaxUsernameLength = 32

// Role is the coarse permission class attached to an Account.
// The zero value is RoleUnknown and carries no privilege.
type Role int

const (
	RoleUnknown Role = iota
	RoleOfficer
	RoleCitizen
)

// ParseRole converts the wire/storage representation into a Role.
// Unrecognised strings yield RoleUnknown and an error.
func ParseRole(s string) (Role, error) {
	switch s {
	case "officer":
		return RoleOfficer, nil
	case "citizen":
		return RoleCitizen, nil
	default:
		return RoleUnknown, fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether r is one of the system's roles.
func (r Role) Valid() bool {
	return r == RoleOfficer || r == RoleCitizen
}

func (r Role) String() string {
	switch r {
	case RoleOfficer:
		return "officer"
	case RoleCitizen:
		return "citizen"
	default:
		return "unknown"
	}
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Account models an API identity. Role is fixed at creation.
type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
