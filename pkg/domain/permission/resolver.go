package permission

import "github.com/secposture/console-api/pkg/domain/tenant"

// Set is the effective permission set attributed to a session.
//
// It is computed, never stored: a pure function of the session's role and its
// optional explicit permission list, so it only changes when those change
// (e.g. on token refresh).
//
// Resolution cascade, first match wins:
//  1. explicit permission list on the session, when non-empty
//  2. the predefined role's default permissions, when the role is recognized
//  3. the empty set
//
// Owner and admin additionally hold an implicit bypass: Can reports true for
// any permission regardless of the explicit list, including an explicitly
// empty one. The bypass does not extend to module entitlement checks. A
// custom role without an explicit list resolves to the empty set, the
// fail-closed side of the same deliberate asymmetry.
type Set struct {
	role  tenant.Role
	perms map[Permission]struct{}
	list  []Permission
}

// Resolve computes the effective permission set for a session.
func Resolve(role tenant.Role, explicit []Permission) *Set {
	var source []Permission
	switch {
	case len(explicit) > 0:
		source = explicit
	case role.IsValid():
		source = RolePermissions[role]
	}

	s := &Set{
		role:  role,
		perms: make(map[Permission]struct{}, len(source)),
		list:  make([]Permission, 0, len(source)),
	}
	for _, p := range source {
		if _, seen := s.perms[p]; seen {
			continue
		}
		s.perms[p] = struct{}{}
		s.list = append(s.list, p)
	}
	return s
}

// ResolveStrings is Resolve for callers holding raw claim values.
func ResolveStrings(role string, explicit []string) *Set {
	return Resolve(tenant.Role(role), FromStrings(explicit))
}

// Role returns the session role the set was resolved for.
func (s *Set) Role() tenant.Role {
	return s.role
}

// Permissions returns the resolved permissions in resolution order.
// The returned slice is a copy.
func (s *Set) Permissions() []Permission {
	out := make([]Permission, len(s.list))
	copy(out, s.list)
	return out
}

// Len returns the number of resolved permissions.
func (s *Set) Len() int {
	return len(s.list)
}

// Can reports whether the session holds the permission. Owner and admin
// always can.
func (s *Set) Can(p Permission) bool {
	if s.role.IsElevated() {
		return true
	}
	_, ok := s.perms[p]
	return ok
}

// CanAny reports whether the session holds at least one of the permissions.
func (s *Set) CanAny(perms ...Permission) bool {
	if s.role.IsElevated() {
		return true
	}
	for _, p := range perms {
		if _, ok := s.perms[p]; ok {
			return true
		}
	}
	return false
}

// CanAll reports whether the session holds every one of the permissions.
func (s *Set) CanAll(perms ...Permission) bool {
	if s.role.IsElevated() {
		return true
	}
	for _, p := range perms {
		if _, ok := s.perms[p]; !ok {
			return false
		}
	}
	return true
}

// Cannot is the negation of Can.
func (s *Set) Cannot(p Permission) bool {
	return !s.Can(p)
}
