package module

import "testing"

func snapshotWith(entitlements ...Entitlement) Snapshot {
	return NewSnapshot(entitlements)
}

func TestResolveStatusPendingHidesEverything(t *testing.T) {
	snap := PendingSnapshot()

	for _, id := range []string{ModuleAssets, ModuleFindings, "anything"} {
		if st := ResolveStatus(snap, id); st.Visible {
			t.Errorf("pending snapshot: module %s visible, want hidden", id)
		}
	}
}

func TestResolveStatusLoadedEmptyFailsClosed(t *testing.T) {
	snap := NewSnapshot(nil)

	if !snap.Loaded() {
		t.Fatal("snapshot of zero entitlements must count as loaded")
	}
	if st := ResolveStatus(snap, ModuleAssets); st.Visible {
		t.Error("loaded-empty snapshot: module visible, want hidden")
	}
}

func TestResolveStatusComingSoonVisibleWithoutEntitlement(t *testing.T) {
	snap := snapshotWith(Entitlement{
		ModuleID:       ModuleRemediation,
		IncludedInPlan: false,
		Active:         true,
		ReleaseStatus:  ReleaseStatusComingSoon,
	})

	st := ResolveStatus(snap, ModuleRemediation)
	if !st.Visible {
		t.Fatal("coming_soon module must be visible even when not in plan")
	}
	if st.ReleaseStatus != ReleaseStatusComingSoon {
		t.Errorf("release status = %s, want coming_soon", st.ReleaseStatus)
	}
}

func TestResolveStatusBetaOverridesAdminToggle(t *testing.T) {
	snap := snapshotWith(Entitlement{
		ModuleID:       ModuleScans,
		IncludedInPlan: false,
		Active:         false,
		ReleaseStatus:  ReleaseStatusBeta,
	})

	st := ResolveStatus(snap, ModuleScans)
	if !st.Visible || st.ReleaseStatus != ReleaseStatusBeta {
		t.Errorf("beta module: got %+v, want visible beta preview", st)
	}
}

func TestResolveStatusAdminDisabledHidden(t *testing.T) {
	snap := snapshotWith(Entitlement{
		ModuleID:       ModuleFindings,
		IncludedInPlan: true,
		Active:         false,
		ReleaseStatus:  ReleaseStatusReleased,
	})

	if st := ResolveStatus(snap, ModuleFindings); st.Visible {
		t.Error("admin-disabled module visible, want hidden")
	}
}

func TestResolveStatusNotInPlanHidden(t *testing.T) {
	snap := snapshotWith(Entitlement{
		ModuleID:       ModuleReports,
		IncludedInPlan: false,
		Active:         true,
		ReleaseStatus:  ReleaseStatusReleased,
	})

	if st := ResolveStatus(snap, ModuleReports); st.Visible {
		t.Error("non-entitled released module visible, want hidden")
	}
}

func TestResolveStatusEntitledVisible(t *testing.T) {
	snap := snapshotWith(Entitlement{
		ModuleID:       ModuleAssets,
		IncludedInPlan: true,
		Active:         true,
		ReleaseStatus:  ReleaseStatusReleased,
	})

	st := ResolveStatus(snap, ModuleAssets)
	if !st.Visible {
		t.Fatal("entitled active module hidden, want visible")
	}
	if st.ReleaseStatus != ReleaseStatusReleased {
		t.Errorf("release status = %s, want released", st.ReleaseStatus)
	}
}

func TestResolveStatusUnknownModuleHidden(t *testing.T) {
	snap := snapshotWith(Entitlement{
		ModuleID:       ModuleAssets,
		IncludedInPlan: true,
		Active:         true,
		ReleaseStatus:  ReleaseStatusReleased,
	})

	if st := ResolveStatus(snap, "not-a-module"); st.Visible {
		t.Error("module absent from snapshot visible, want hidden")
	}
}

func TestSnapshotIDHelpers(t *testing.T) {
	snap := snapshotWith(
		Entitlement{ModuleID: ModuleAssets, IncludedInPlan: true, Active: true, ReleaseStatus: ReleaseStatusReleased},
		Entitlement{ModuleID: ModuleFindings, IncludedInPlan: true, Active: false, ReleaseStatus: ReleaseStatusReleased},
		Entitlement{ModuleID: ModuleRemediation, IncludedInPlan: false, Active: true, ReleaseStatus: ReleaseStatusComingSoon},
		Entitlement{ModuleID: ModuleScans, IncludedInPlan: false, Active: true, ReleaseStatus: ReleaseStatusBeta},
	)

	entitled := snap.EntitledModuleIDs()
	if len(entitled) != 1 || entitled[0] != ModuleAssets {
		t.Errorf("EntitledModuleIDs = %v, want [assets]", entitled)
	}

	previews := snap.PreviewModuleIDs()
	if len(previews) != 2 || previews[0] != ModuleRemediation || previews[1] != ModuleScans {
		t.Errorf("PreviewModuleIDs = %v, want [remediation scans]", previews)
	}
}

func TestNewSnapshotCopiesInput(t *testing.T) {
	ents := []Entitlement{
		{ModuleID: ModuleAssets, IncludedInPlan: true, Active: true, ReleaseStatus: ReleaseStatusReleased},
	}
	snap := NewSnapshot(ents)

	ents[0].IncludedInPlan = false
	if e, _ := snap.Get(ModuleAssets); !e.IncludedInPlan {
		t.Error("snapshot must copy entitlements, not alias the caller's slice")
	}
}
