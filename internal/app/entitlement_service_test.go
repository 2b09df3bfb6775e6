package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secposture/console-api/pkg/domain/module"
	"github.com/secposture/console-api/pkg/logger"
)

type fakeEntitlementRepo struct {
	records   map[string][]module.Entitlement
	tenantIDs []string
	err       error
	calls     int
}

func (f *fakeEntitlementRepo) GetTenantEntitlements(_ context.Context, tenantID string) ([]module.Entitlement, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records[tenantID], nil
}

func (f *fakeEntitlementRepo) ListActiveTenantIDs(_ context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tenantIDs, nil
}

type fakeSnapshotCache struct {
	data    map[string][]module.Entitlement
	getErr  error
	setErr  error
	setKeys []string
}

func (f *fakeSnapshotCache) Get(_ context.Context, tenantID string) ([]module.Entitlement, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	records, ok := f.data[tenantID]
	return records, ok, nil
}

func (f *fakeSnapshotCache) Set(_ context.Context, tenantID string, records []module.Entitlement) error {
	if f.setErr != nil {
		return f.setErr
	}
	if f.data == nil {
		f.data = make(map[string][]module.Entitlement)
	}
	f.data[tenantID] = records
	f.setKeys = append(f.setKeys, tenantID)
	return nil
}

func (f *fakeSnapshotCache) Delete(_ context.Context, tenantID string) error {
	delete(f.data, tenantID)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error"})
}

func scansEntitlement() module.Entitlement {
	return module.Entitlement{
		ModuleID:       module.ModuleScans,
		IncludedInPlan: true,
		Active:         true,
		ReleaseStatus:  module.ReleaseStatusReleased,
	}
}

func TestSnapshotCacheHitSkipsStore(t *testing.T) {
	repo := &fakeEntitlementRepo{}
	cache := &fakeSnapshotCache{data: map[string][]module.Entitlement{
		"t1": {scansEntitlement()},
	}}
	svc := NewEntitlementService(repo, cache, testLogger())

	snap := svc.Snapshot(context.Background(), "t1")

	require.True(t, snap.Loaded())
	_, ok := snap.Get(module.ModuleScans)
	assert.True(t, ok)
	assert.Zero(t, repo.calls, "cache hit must not touch the store")
}

func TestSnapshotMissLoadsAndCaches(t *testing.T) {
	repo := &fakeEntitlementRepo{records: map[string][]module.Entitlement{
		"t1": {scansEntitlement()},
	}}
	cache := &fakeSnapshotCache{}
	svc := NewEntitlementService(repo, cache, testLogger())

	snap := svc.Snapshot(context.Background(), "t1")

	require.True(t, snap.Loaded())
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, []string{"t1"}, cache.setKeys)
}

func TestSnapshotStoreFailureYieldsPending(t *testing.T) {
	repo := &fakeEntitlementRepo{err: errors.New("connection refused")}
	svc := NewEntitlementService(repo, nil, testLogger())

	snap := svc.Snapshot(context.Background(), "t1")

	assert.True(t, snap.Pending())
	assert.False(t, snap.Loaded())
}

func TestSnapshotCacheErrorFallsThroughToStore(t *testing.T) {
	repo := &fakeEntitlementRepo{records: map[string][]module.Entitlement{
		"t1": {scansEntitlement()},
	}}
	cache := &fakeSnapshotCache{getErr: errors.New("redis down")}
	svc := NewEntitlementService(repo, cache, testLogger())

	snap := svc.Snapshot(context.Background(), "t1")

	assert.True(t, snap.Loaded())
	assert.Equal(t, 1, repo.calls)
}

func TestRefreshAllContinuesPastFailures(t *testing.T) {
	repo := &fakeEntitlementRepo{
		tenantIDs: []string{"t1", "t2"},
		records:   map[string][]module.Entitlement{"t1": {scansEntitlement()}},
	}
	cache := &fakeSnapshotCache{}
	svc := NewEntitlementService(repo, cache, testLogger())

	err := svc.RefreshAll(context.Background())

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"t1", "t2"}, cache.setKeys)
}

func TestRefreshAllReportsFailureCount(t *testing.T) {
	repo := &fakeEntitlementRepo{tenantIDs: []string{"t1"}}
	cache := &fakeSnapshotCache{setErr: errors.New("redis down")}
	svc := NewEntitlementService(repo, cache, testLogger())

	err := svc.RefreshAll(context.Background())
	assert.Error(t, err)
}

func TestInvalidateDropsCachedSnapshot(t *testing.T) {
	repo := &fakeEntitlementRepo{records: map[string][]module.Entitlement{}}
	cache := &fakeSnapshotCache{data: map[string][]module.Entitlement{
		"t1": {scansEntitlement()},
	}}
	svc := NewEntitlementService(repo, cache, testLogger())

	require.NoError(t, svc.Invalidate(context.Background(), "t1"))

	_, ok := cache.data["t1"]
	assert.False(t, ok)
}
