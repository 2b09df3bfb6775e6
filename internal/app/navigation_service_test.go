package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secposture/console-api/pkg/domain/module"
	"github.com/secposture/console-api/pkg/domain/navigation"
	"github.com/secposture/console-api/pkg/domain/permission"
)

type fakeSnapshotProvider struct {
	snap module.Snapshot
}

func (f *fakeSnapshotProvider) Snapshot(context.Context, string) module.Snapshot {
	return f.snap
}

func allEntitled() module.Snapshot {
	ids := []string{
		module.ModuleDashboard, module.ModuleAssets, module.ModuleScope,
		module.ModuleFindings, module.ModuleCredentials, module.ModuleRemediation,
		module.ModuleScans, module.ModuleReports, module.ModuleAudit,
		module.ModuleTeam, module.ModuleIntegrations, module.ModuleBilling,
	}
	ents := make([]module.Entitlement, 0, len(ids))
	for _, id := range ids {
		ents = append(ents, module.Entitlement{
			ModuleID:       id,
			IncludedInPlan: true,
			Active:         true,
			ReleaseStatus:  module.ReleaseStatusReleased,
		})
	}
	return module.NewSnapshot(ents)
}

func TestEffectivePermissionsExplicitListWins(t *testing.T) {
	svc := NewNavigationService(&fakeSnapshotProvider{snap: allEntitled()}, navigation.DefaultTree(), testLogger())

	set := svc.EffectivePermissions("viewer", []string{"findings:write"})

	assert.True(t, set.Can(permission.FindingsWrite))
	assert.False(t, set.Can(permission.FindingsRead), "explicit list replaces role defaults")
}

func TestEffectivePermissionsRoleFallback(t *testing.T) {
	svc := NewNavigationService(&fakeSnapshotProvider{snap: allEntitled()}, navigation.DefaultTree(), testLogger())

	set := svc.EffectivePermissions("viewer", nil)

	assert.True(t, set.Can(permission.FindingsRead))
	assert.False(t, set.Can(permission.FindingsWrite))
}

func TestModuleStatusesResolveVisibility(t *testing.T) {
	snap := module.NewSnapshot([]module.Entitlement{
		{ModuleID: module.ModuleScans, IncludedInPlan: true, Active: true, ReleaseStatus: module.ReleaseStatusReleased},
		{ModuleID: module.ModuleReports, IncludedInPlan: false, Active: true, ReleaseStatus: module.ReleaseStatusComingSoon},
		{ModuleID: module.ModuleBilling, IncludedInPlan: true, Active: false, ReleaseStatus: module.ReleaseStatusReleased},
	})
	svc := NewNavigationService(&fakeSnapshotProvider{snap: snap}, navigation.DefaultTree(), testLogger())

	statuses := svc.ModuleStatuses(context.Background(), "t1")
	byID := make(map[string]ModuleStatus, len(statuses))
	for _, st := range statuses {
		byID[st.ModuleID] = st
	}

	require.Len(t, statuses, 3)
	assert.True(t, byID[module.ModuleScans].Visible)
	assert.True(t, byID[module.ModuleReports].Visible, "coming_soon previews stay visible without entitlement")
	assert.Equal(t, module.ReleaseStatusComingSoon, byID[module.ModuleReports].ReleaseStatus)
	assert.False(t, byID[module.ModuleBilling].Visible, "disabled module is hidden")
}

func TestSidebarFiltersByRole(t *testing.T) {
	svc := NewNavigationService(&fakeSnapshotProvider{snap: allEntitled()}, navigation.DefaultTree(), testLogger())

	ownerTree := svc.Sidebar(context.Background(), "t1", "owner", nil)
	viewerTree := svc.Sidebar(context.Background(), "t1", "viewer", nil)

	require.NotEmpty(t, ownerTree.Groups)
	ownerItems := 0
	for _, g := range ownerTree.Groups {
		ownerItems += len(g.Items)
	}
	viewerItems := 0
	for _, g := range viewerTree.Groups {
		viewerItems += len(g.Items)
	}
	assert.Greater(t, ownerItems, viewerItems)
}

func TestSidebarPendingSnapshotHidesModuleGated(t *testing.T) {
	svc := NewNavigationService(&fakeSnapshotProvider{snap: module.PendingSnapshot()}, navigation.DefaultTree(), testLogger())

	tree := svc.Sidebar(context.Background(), "t1", "owner", nil)

	for _, g := range tree.Groups {
		for _, item := range g.Items {
			assert.Empty(t, item.Rule.Module, "module-gated %q must be hidden while pending", item.Title)
		}
	}
}
