package auth

import "fleet-dispatch/internal/pkg/errs"

var (
	ErrInvalidRole    = errs.NewKind(errs.ErrValidation, "invalid role")
	ErrEmptySubject   = errs.NewKind(errs.ErrValidation, "subject cannot be empty")
	ErrRoleNotAllowed = errs.NewKind(errs.ErrForbidden, "role not allowed for this operation")
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleOperator, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Principal is the authenticated caller. Subject is the customer id for
// customers and the operator id for operators.
type Principal struct {
	Subject string
	Role    Role
}

func NewPrincipal(subject string, role Role) (Principal, error) {
	if subject == "" {
		return Principal{}, ErrEmptySubject
	}
	if !role.IsValid() {
		return Principal{}, ErrInvalidRole
	}
	return Principal{Subject: subject, Role: role}, nil
}

// ActingOperator resolves which operator a capability change applies to.
// Operators always act on themselves; admins must name the operator.
func (p Principal) ActingOperator(requested string) (string, error) {
	switch p.Role {
	case RoleOperator:
		if requested != "" && requested != p.Subject {
			return "", ErrRoleNotAllowed
		}
		return p.Subject, nil
	case RoleAdmin:
		if requested == "" {
			return "", errs.Mark(errs.New("operator_id is required for admin callers"), errs.ErrValidation)
		}
		return requested, nil
	default:
		return "", ErrRoleNotAllowed
	}
}
