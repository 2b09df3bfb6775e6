package permission

import "github.com/secposture/console-api/pkg/domain/tenant"

// RolePermissions defines the default permissions for each predefined role.
//
// Permission hierarchy:
//   - Owner: full access including team deletion and billing management
//   - Admin: full resource access + member management (billing read-only, no team delete)
//   - Member: read + write on resources (no delete, no member management)
//   - Viewer: read-only on resources
//
// Custom roles have no entry here: they derive no permissions unless the
// session carries an explicit permission list.
var RolePermissions = map[tenant.Role][]Permission{
	tenant.RoleOwner: {
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
	},

	tenant.RoleAdmin: {
		DashboardRead,
		AuditRead,
		AssetsRead, AssetsWrite, AssetsDelete,
		ScopeRead, ScopeWrite, ScopeDelete,
		FindingsRead, FindingsWrite, FindingsDelete,
		CredentialsRead, CredentialsWrite,
		RemediationRead, RemediationWrite,
		ScansRead, ScansWrite, ScansExecute,
		// Team (no team:delete)
		TeamRead, TeamUpdate,
		MembersRead, MembersInvite, MembersWrite,
		RolesRead, RolesWrite, RolesAssign,
		IntegrationsRead, IntegrationsManage,
		// Billing read only
		BillingRead,
		ReportsRead, ReportsWrite,
	},

	tenant.RoleMember: {
		DashboardRead,
		AssetsRead, AssetsWrite,
		ScopeRead, ScopeWrite,
		FindingsRead, FindingsWrite,
		CredentialsRead, CredentialsWrite,
		RemediationRead, RemediationWrite,
		ScansRead, ScansWrite, ScansExecute,
		TeamRead,
		MembersRead,
		RolesRead,
		IntegrationsRead,
		ReportsRead, ReportsWrite,
	},

	tenant.RoleViewer: {
		DashboardRead,
		AssetsRead,
		ScopeRead,
		FindingsRead,
		CredentialsRead,
		RemediationRead,
		ScansRead,
		TeamRead,
		MembersRead,
		RolesRead,
		IntegrationsRead,
		ReportsRead,
	},
}

// PermissionsForRole returns the default permission list for a role, or nil
// for roles without a predefined mapping.
func PermissionsForRole(role tenant.Role) []Permission {
	return RolePermissions[role]
}
