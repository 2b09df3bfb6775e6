package module

import "sort"

// Entitlement is the per-tenant record for one catalog module: whether the
// tenant's plan includes it, whether an administrator left it enabled, and
// the module's release status.
type Entitlement struct {
	ModuleID       string        `json:"module_id"`
	IncludedInPlan bool          `json:"included_in_plan"`
	Active         bool          `json:"is_active"`
	ReleaseStatus  ReleaseStatus `json:"release_status"`
}

// Snapshot is the tenant's entitlement state as seen by the resolution core.
//
// A snapshot is either pending (the entitlement source has not produced data
// yet, or failed) or loaded. The two states are deliberately distinct: a
// pending snapshot hides every module-gated item so the UI never flashes
// content that a later fetch retracts, while a loaded-but-empty snapshot is a
// valid answer that fails closed on entitlement but still honors the
// coming-soon/beta preview carve-out.
type Snapshot struct {
	loaded  bool
	records map[string]Entitlement
}

// PendingSnapshot returns a snapshot in the not-yet-loaded state.
func PendingSnapshot() Snapshot {
	return Snapshot{}
}

// NewSnapshot builds a loaded snapshot from entitlement records.
// The input slice is copied; later mutation of it does not affect the snapshot.
func NewSnapshot(entitlements []Entitlement) Snapshot {
	records := make(map[string]Entitlement, len(entitlements))
	for _, e := range entitlements {
		records[e.ModuleID] = e
	}
	return Snapshot{loaded: true, records: records}
}

// Pending reports whether the entitlement source has not been loaded.
func (s Snapshot) Pending() bool {
	return !s.loaded
}

// Loaded reports whether the snapshot carries fetched data (possibly empty).
func (s Snapshot) Loaded() bool {
	return s.loaded
}

// Get returns the entitlement record for a module ID.
func (s Snapshot) Get(moduleID string) (Entitlement, bool) {
	e, ok := s.records[moduleID]
	return e, ok
}

// Entitlements returns all records sorted by module ID. The slice is a copy.
func (s Snapshot) Entitlements() []Entitlement {
	out := make([]Entitlement, 0, len(s.records))
	for _, e := range s.records {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ModuleID < out[j].ModuleID })
	return out
}

// EntitledModuleIDs returns the IDs of modules that are in the tenant's plan
// and not administratively disabled, sorted.
func (s Snapshot) EntitledModuleIDs() []string {
	ids := make([]string, 0, len(s.records))
	for id, e := range s.records {
		if e.IncludedInPlan && e.Active {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// PreviewModuleIDs returns the IDs of modules visible only as previews
// (coming soon or beta), sorted.
func (s Snapshot) PreviewModuleIDs() []string {
	ids := make([]string, 0)
	for id, e := range s.records {
		if e.ReleaseStatus.IsPreview() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
