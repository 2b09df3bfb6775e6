// Package app contains the application services that tie the domain model
// to persistence, caching and transport.
package app

import (
	"context"
	"fmt"

	"github.com/secposture/console-api/internal/metrics"
	"github.com/secposture/console-api/pkg/domain/module"
	"github.com/secposture/console-api/pkg/logger"
)

// EntitlementRepository loads entitlement records from the backing store.
type EntitlementRepository interface {
	GetTenantEntitlements(ctx context.Context, tenantID string) ([]module.Entitlement, error)
	ListActiveTenantIDs(ctx context.Context) ([]string, error)
}

// SnapshotCache caches entitlement records per tenant. Get returns ok=false
// on a miss; a cache failure is returned as an error.
type SnapshotCache interface {
	Get(ctx context.Context, tenantID string) ([]module.Entitlement, bool, error)
	Set(ctx context.Context, tenantID string, records []module.Entitlement) error
	Delete(ctx context.Context, tenantID string) error
}

// EntitlementService resolves per-tenant module entitlement snapshots.
//
// Lookups never fail: when neither the cache nor the store can produce
// records, the service returns a pending snapshot so callers hide
// module-gated features instead of exposing them.
type EntitlementService struct {
	repo   EntitlementRepository
	cache  SnapshotCache
	logger *logger.Logger
}

// NewEntitlementService creates a new EntitlementService. The cache is
// optional; without one every lookup goes to the store.
func NewEntitlementService(repo EntitlementRepository, cache SnapshotCache, log *logger.Logger) *EntitlementService {
	return &EntitlementService{
		repo:   repo,
		cache:  cache,
		logger: log.With("service", "entitlement"),
	}
}

// Snapshot returns the tenant's entitlement snapshot, preferring the cache.
// A load failure yields a pending snapshot, never an error.
func (s *EntitlementService) Snapshot(ctx context.Context, tenantID string) module.Snapshot {
	if s.cache != nil {
		records, ok, err := s.cache.Get(ctx, tenantID)
		if err != nil {
			s.logger.Warn("entitlement cache read failed", "tenant_id", tenantID, "error", err)
		} else if ok {
			metrics.EntitlementCacheHits.Inc()
			return module.NewSnapshot(records)
		} else {
			metrics.EntitlementCacheMisses.Inc()
		}
	}

	records, err := s.repo.GetTenantEntitlements(ctx, tenantID)
	if err != nil {
		s.logger.Error("entitlement load failed, serving pending snapshot",
			"tenant_id", tenantID, "error", err)
		metrics.EntitlementFallbacksTotal.WithLabelValues(tenantID).Inc()
		return module.PendingSnapshot()
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, tenantID, records); err != nil {
			s.logger.Warn("entitlement cache write failed", "tenant_id", tenantID, "error", err)
		}
	}
	return module.NewSnapshot(records)
}

// Refresh reloads a tenant's entitlements from the store into the cache.
func (s *EntitlementService) Refresh(ctx context.Context, tenantID string) error {
	records, err := s.repo.GetTenantEntitlements(ctx, tenantID)
	if err != nil {
		metrics.EntitlementRefreshesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("refresh entitlements for %s: %w", tenantID, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, tenantID, records); err != nil {
			metrics.EntitlementRefreshesTotal.WithLabelValues("error").Inc()
			return fmt.Errorf("cache entitlements for %s: %w", tenantID, err)
		}
	}

	metrics.EntitlementRefreshesTotal.WithLabelValues("ok").Inc()
	s.logger.Debug("entitlement snapshot refreshed", "tenant_id", tenantID, "records", len(records))
	return nil
}

// RefreshAll refreshes the snapshot of every tenant with an active
// subscription. Individual failures are logged and counted, not fatal.
func (s *EntitlementService) RefreshAll(ctx context.Context) error {
	tenantIDs, err := s.repo.ListActiveTenantIDs(ctx)
	if err != nil {
		return fmt.Errorf("list tenants for refresh: %w", err)
	}

	var failed int
	for _, id := range tenantIDs {
		if err := s.Refresh(ctx, id); err != nil {
			s.logger.Warn("tenant refresh failed", "tenant_id", id, "error", err)
			failed++
		}
	}

	s.logger.Info("entitlement sweep complete", "tenants", len(tenantIDs), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("entitlement sweep: %d of %d tenants failed", failed, len(tenantIDs))
	}
	return nil
}

// Invalidate drops a tenant's cached snapshot so the next lookup reloads.
func (s *EntitlementService) Invalidate(ctx context.Context, tenantID string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, tenantID)
}
