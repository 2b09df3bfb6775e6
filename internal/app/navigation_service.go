package app

import (
	"context"
	"time"

	"github.com/secposture/console-api/internal/metrics"
	"github.com/secposture/console-api/pkg/domain/module"
	"github.com/secposture/console-api/pkg/domain/navigation"
	"github.com/secposture/console-api/pkg/domain/permission"
	"github.com/secposture/console-api/pkg/domain/tenant"
	"github.com/secposture/console-api/pkg/logger"
)

// SnapshotProvider resolves entitlement snapshots per tenant.
type SnapshotProvider interface {
	Snapshot(ctx context.Context, tenantID string) module.Snapshot
}

// ModuleStatus pairs a module ID with its resolved visibility for a tenant.
type ModuleStatus struct {
	ModuleID      string               `json:"module_id"`
	Visible       bool                 `json:"visible"`
	ReleaseStatus module.ReleaseStatus `json:"release_status,omitempty"`
}

// NavigationService resolves effective permissions, module visibility and
// the filtered sidebar tree for a session.
type NavigationService struct {
	entitlements SnapshotProvider
	catalog      navigation.Tree
	logger       *logger.Logger
}

// NewNavigationService creates a new NavigationService serving the given
// sidebar catalog.
func NewNavigationService(entitlements SnapshotProvider, catalog navigation.Tree, log *logger.Logger) *NavigationService {
	return &NavigationService{
		entitlements: entitlements,
		catalog:      catalog,
		logger:       log.With("service", "navigation"),
	}
}

// EffectivePermissions resolves the session's permission set: the explicit
// list when present, otherwise the role's defaults.
func (s *NavigationService) EffectivePermissions(role string, explicit []string) *permission.Set {
	return permission.ResolveStrings(role, explicit)
}

// ModuleStatuses resolves the visibility of every catalog module for the
// tenant. The returned order follows the entitlement snapshot.
func (s *NavigationService) ModuleStatuses(ctx context.Context, tenantID string) []ModuleStatus {
	snap := s.entitlements.Snapshot(ctx, tenantID)

	ents := snap.Entitlements()
	statuses := make([]ModuleStatus, 0, len(ents))
	for _, e := range ents {
		st := module.ResolveStatus(snap, e.ModuleID)
		statuses = append(statuses, ModuleStatus{
			ModuleID:      e.ModuleID,
			Visible:       st.Visible,
			ReleaseStatus: st.ReleaseStatus,
		})
	}
	return statuses
}

// Sidebar returns the sidebar tree filtered down to what the session can
// see: permission and role rules applied, module-gated entries resolved
// against the tenant's entitlement snapshot.
func (s *NavigationService) Sidebar(ctx context.Context, tenantID, role string, explicitPerms []string) navigation.Tree {
	start := time.Now()

	snap := s.entitlements.Snapshot(ctx, tenantID)
	access := navigation.NewAccess(tenant.Role(role), permission.FromStrings(explicitPerms), snap)
	filtered := navigation.Filter(s.catalog, access)

	metrics.NavigationFilterDuration.Observe(time.Since(start).Seconds())

	outcome := "ok"
	if snap.Pending() {
		outcome = "pending"
	}
	metrics.NavigationResolutionsTotal.WithLabelValues(tenantID, outcome).Inc()

	s.logger.Debug("sidebar resolved",
		"tenant_id", tenantID,
		"role", role,
		"groups", len(filtered.Groups),
		"outcome", outcome,
	)
	return filtered
}
