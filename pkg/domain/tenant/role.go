// Package tenant defines tenant-scoped identity concepts shared across the
// console: the role tiers a member can hold and their ordering.
package tenant

// Role represents a user's role within a tenant.
//
// The four predefined roles form a strict total order used by minimum-role
// checks. Custom role strings are accepted everywhere a Role is, but have no
// position in the order and derive no permissions on their own.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

// AllRoles lists the predefined roles from highest to lowest rank.
var AllRoles = []Role{RoleOwner, RoleAdmin, RoleMember, RoleViewer}

// IsValid reports whether the role is one of the four predefined roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember, RoleViewer:
		return true
	}
	return false
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// Rank returns the role's position in the hierarchy (higher = more authority).
// Unknown roles rank -1 so comparisons against them are always well-defined.
func (r Role) Rank() int {
	switch r {
	case RoleOwner:
		return 3
	case RoleAdmin:
		return 2
	case RoleMember:
		return 1
	case RoleViewer:
		return 0
	default:
		return -1
	}
}

// IsAtLeast reports whether r satisfies a minimum-role requirement.
// Unknown roles never satisfy a minimum-role check and are never satisfied
// by one: if either side is not a predefined role the answer is false.
func (r Role) IsAtLeast(required Role) bool {
	if !r.IsValid() || !required.IsValid() {
		return false
	}
	return r.Rank() >= required.Rank()
}

// IsElevated reports whether the role carries the implicit permission bypass
// (owner and admin hold virtually all permissions regardless of any explicit
// permission list on the session).
func (r Role) IsElevated() bool {
	return r == RoleOwner || r == RoleAdmin
}

// ParseRole parses a string to a Role, reporting whether it is predefined.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}
