// Package permission defines the granular permission catalog for the console
// and resolves a session's effective permission set.
//
// Permission naming follows a hierarchical pattern:
//
//	{module}:{action}
//	{module}:{subfeature}:{action}
//
// Examples:
//   - assets:write (manage scope targets and assets)
//   - findings:credentials:read (view leaked credentials)
//   - team:roles:assign (assign roles to members)
//
// The catalog is defined at build time and never mutated at runtime. It is a
// client-facing duplication of the authorization authority: the API issuing
// tokens remains the source of truth and re-validates every request, this
// catalog only decides what the console offers to render.
package permission

import "slices"

// Permission represents a granular capability for an action on a resource.
type Permission string

// String returns the string representation of the permission.
func (p Permission) String() string {
	return string(p)
}

// Core permissions.
const (
	DashboardRead Permission = "dashboard:read"
	AuditRead     Permission = "audit:read"
)

// Assets module (scope targets, discovered assets).
const (
	AssetsRead   Permission = "assets:read"
	AssetsWrite  Permission = "assets:write"
	AssetsDelete Permission = "assets:delete"
)

// Attack surface scoping.
const (
	ScopeRead   Permission = "attack_surface:scope:read"
	ScopeWrite  Permission = "attack_surface:scope:write"
	ScopeDelete Permission = "attack_surface:scope:delete"
)

// Findings module.
const (
	FindingsRead   Permission = "findings:read"
	FindingsWrite  Permission = "findings:write"
	FindingsDelete Permission = "findings:delete"

	// Credential leak permissions (findings:credentials:*)
	CredentialsRead  Permission = "findings:credentials:read"
	CredentialsWrite Permission = "findings:credentials:write"

	// Remediation permissions (findings:remediation:*)
	RemediationRead  Permission = "findings:remediation:read"
	RemediationWrite Permission = "findings:remediation:write"
)

// Scans module.
const (
	ScansRead    Permission = "scans:read"
	ScansWrite   Permission = "scans:write"
	ScansExecute Permission = "scans:execute"
)

// Team module (access control).
const (
	TeamRead   Permission = "team:read"
	TeamUpdate Permission = "team:update"
	TeamDelete Permission = "team:delete"

	MembersRead   Permission = "team:members:read"
	MembersInvite Permission = "team:members:invite"
	MembersWrite  Permission = "team:members:write"

	RolesRead   Permission = "team:roles:read"
	RolesWrite  Permission = "team:roles:write"
	RolesAssign Permission = "team:roles:assign"
)

// Integrations module.
const (
	IntegrationsRead   Permission = "integrations:read"
	IntegrationsManage Permission = "integrations:manage"
)

// Settings module.
const (
	BillingRead  Permission = "settings:billing:read"
	BillingWrite Permission = "settings:billing:write"
)

// Reports module.
const (
	ReportsRead  Permission = "reports:read"
	ReportsWrite Permission = "reports:write"
)

// AllPermissions returns every permission in the catalog.
func AllPermissions() []Permission {
	return []Permission{
		DashboardRead,
		AuditRead,

		AssetsRead, AssetsWrite, AssetsDelete,
		ScopeRead, ScopeWrite, ScopeDelete,

		FindingsRead, FindingsWrite, FindingsDelete,
		CredentialsRead, CredentialsWrite,
		RemediationRead, RemediationWrite,

		ScansRead, ScansWrite, ScansExecute,

		TeamRead, TeamUpdate, TeamDelete,
		MembersRead, MembersInvite, MembersWrite,
		RolesRead, RolesWrite, RolesAssign,

		IntegrationsRead, IntegrationsManage,

		BillingRead, BillingWrite,

		ReportsRead, ReportsWrite,
	}
}

// IsValid checks if the permission is in the catalog. Unknown permission
// strings are still accepted by the resolver (forward compatible), they just
// cannot be validated here.
func (p Permission) IsValid() bool {
	return slices.Contains(AllPermissions(), p)
}

// ParsePermission parses a string to a Permission.
func ParsePermission(s string) (Permission, bool) {
	p := Permission(s)
	return p, p.IsValid()
}

// ToStrings converts a slice of Permissions to strings.
func ToStrings(perms []Permission) []string {
	result := make([]string, len(perms))
	for i, p := range perms {
		result[i] = p.String()
	}
	return result
}

// FromStrings converts strings to Permissions without catalog validation,
// preserving unknown permission strings.
func FromStrings(strs []string) []Permission {
	result := make([]Permission, 0, len(strs))
	for _, s := range strs {
		result = append(result, Permission(s))
	}
	return result
}

// Contains checks if a permission slice contains a specific permission.
func Contains(perms []Permission, target Permission) bool {
	return slices.Contains(perms, target)
}
