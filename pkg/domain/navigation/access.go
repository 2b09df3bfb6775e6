package navigation

import (
	"github.com/secposture/console-api/pkg/domain/module"
	"github.com/secposture/console-api/pkg/domain/permission"
	"github.com/secposture/console-api/pkg/domain/tenant"
)

// Access bundles the resolved session state the filter evaluates rules
// against: the caller's role, their effective permission set, and the
// tenant's module entitlement snapshot.
//
// Access carries no I/O and no framework types; the data-fetching layer
// builds one per request (or per render) and hands it in.
type Access struct {
	role    tenant.Role
	perms   *permission.Set
	modules module.Snapshot
}

// NewAccess builds an Access from raw session values. A session that has not
// arrived yet is represented by an empty role, a nil/empty explicit list and
// a pending snapshot, which denies everything privileged.
func NewAccess(role tenant.Role, explicit []permission.Permission, modules module.Snapshot) Access {
	return Access{
		role:    role,
		perms:   permission.Resolve(role, explicit),
		modules: modules,
	}
}

// Role returns the session role.
func (a Access) Role() tenant.Role {
	return a.role
}

// Permissions returns the session's effective permission set.
func (a Access) Permissions() *permission.Set {
	return a.perms
}

// Modules returns the entitlement snapshot.
func (a Access) Modules() module.Snapshot {
	return a.modules
}

// ModuleStatus resolves the visibility of the rule's module gate. Rules
// without a module gate are trivially visible with no release status.
func (a Access) ModuleStatus(rule Rule) module.Status {
	if rule.Module == "" {
		return module.Status{Visible: true}
	}
	return module.ResolveStatus(a.modules, rule.Module)
}

// Allows evaluates a single node's rule against the session: the node
// itself only, never its children.
//
// Evaluation order: module gate, then min-role, then exact role, then
// permissions. Every set dimension must pass.
func (a Access) Allows(rule Rule) bool {
	if !a.ModuleStatus(rule).Visible {
		return false
	}
	return a.allowsIdentity(rule)
}

// allowsIdentity checks the non-module dimensions of a rule.
func (a Access) allowsIdentity(rule Rule) bool {
	if rule.MinRole != "" && !a.role.IsAtLeast(rule.MinRole) {
		return false
	}

	if len(rule.Roles) > 0 {
		matched := false
		for _, r := range rule.Roles {
			if a.role == r {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(rule.Permissions) > 0 && !a.perms.CanAny(rule.Permissions...) {
		return false
	}

	return true
}
