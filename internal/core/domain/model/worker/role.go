package worker

import (
	"fmt"

	"fieldops/internal/pkg/errs"
)

// Role describes a worker's position in the organization.
// Managers review leave requests; employees only fulfil orders.
type Role string

const (
	// RoleEmployee is a regular field worker.
	RoleEmployee Role = "employee"
	// RoleManager can additionally review leave requests.
	RoleManager Role = "manager"
)

// RoleFromString parses a role from its persisted representation.
func RoleFromString(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// String returns the persisted representation of the role.
func (r Role) String() string {
	return string(r)
}

// Validate checks the role is one of the defined values.
func (r Role) Validate() error {
	switch r {
	case RoleEmployee, RoleManager:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}
