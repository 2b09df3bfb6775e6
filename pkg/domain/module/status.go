package module

// Status is the resolved visibility of one module for one tenant.
type Status struct {
	Visible bool
	// ReleaseStatus is set when the module is visible; coming_soon and beta
	// mean "render as a disabled/badged preview", not a fully interactive
	// entry. Empty when the module is hidden.
	ReleaseStatus ReleaseStatus
}

// ResolveStatus decides whether a module-gated item is visible for the
// snapshot's tenant.
//
// Rules, in order:
//  1. Pending snapshot: hidden. Entitlements that have not arrived must not
//     grant anything, not even previews: the catalog data is part of the
//     same fetch.
//  2. Module unknown to the snapshot: hidden (fail closed).
//  3. coming_soon/beta release status: visible as preview regardless of plan
//     entitlement or the admin toggle.
//  4. Administratively disabled (Active false): hidden tenant-wide.
//  5. Not included in the tenant's plan: hidden.
//  6. Otherwise visible with the module's release status.
//
// There is no role bypass here: owner and admin see exactly what the tenant
// is entitled to.
func ResolveStatus(snap Snapshot, moduleID string) Status {
	if snap.Pending() {
		return Status{}
	}

	e, ok := snap.Get(moduleID)
	if !ok {
		return Status{}
	}

	if e.ReleaseStatus.IsPreview() {
		return Status{Visible: true, ReleaseStatus: e.ReleaseStatus}
	}

	if !e.Active {
		return Status{}
	}
	if !e.IncludedInPlan {
		return Status{}
	}

	return Status{Visible: true, ReleaseStatus: e.ReleaseStatus}
}
