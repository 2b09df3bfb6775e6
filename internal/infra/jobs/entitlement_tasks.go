package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/secposture/console-api/pkg/logger"
)

// Entitlement task types
const (
	TypeEntitlementRefresh = "entitlement:refresh"
	TypeEntitlementSweep   = "entitlement:sweep"
)

// QueueEntitlements is the queue entitlement tasks run on.
const QueueEntitlements = "entitlements"

// Uniqueness windows keep duplicate refreshes from piling up when the
// scheduler and API enqueue for the same tenant close together.
const (
	refreshUniqueWindow = time.Minute
	sweepUniqueWindow   = 5 * time.Minute
)

// EntitlementRefreshPayload is the payload for single-tenant refresh tasks.
type EntitlementRefreshPayload struct {
	TenantID string `json:"tenant_id"`
}

// NewEntitlementRefreshTask creates a refresh task for one tenant.
func NewEntitlementRefreshTask(tenantID string) (*asynq.Task, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("tenant_id is required")
	}
	payload, err := json.Marshal(EntitlementRefreshPayload{TenantID: tenantID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return asynq.NewTask(TypeEntitlementRefresh, payload), nil
}

// NewEntitlementSweepTask creates a sweep task covering all active tenants.
func NewEntitlementSweepTask() (*asynq.Task, error) {
	return asynq.NewTask(TypeEntitlementSweep, nil), nil
}

// EntitlementRefresher refreshes entitlement snapshots.
type EntitlementRefresher interface {
	Refresh(ctx context.Context, tenantID string) error
	RefreshAll(ctx context.Context) error
}

// EntitlementTaskHandler handles entitlement background tasks.
type EntitlementTaskHandler struct {
	refresher EntitlementRefresher
	logger    *logger.Logger
}

// NewEntitlementTaskHandler creates a new EntitlementTaskHandler.
func NewEntitlementTaskHandler(refresher EntitlementRefresher, log *logger.Logger) *EntitlementTaskHandler {
	return &EntitlementTaskHandler{
		refresher: refresher,
		logger:    log.With("component", "entitlement_task_handler"),
	}
}

// RegisterHandlers registers the entitlement task handlers on a mux.
func (h *EntitlementTaskHandler) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeEntitlementRefresh, h.HandleRefresh)
	mux.HandleFunc(TypeEntitlementSweep, h.HandleSweep)
}

// HandleRefresh handles a single-tenant refresh task.
func (h *EntitlementTaskHandler) HandleRefresh(ctx context.Context, task *asynq.Task) error {
	var payload EntitlementRefreshPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.TenantID == "" {
		return fmt.Errorf("tenant_id is required: %w", asynq.SkipRetry)
	}

	h.logger.Info("refreshing entitlement snapshot", "tenant_id", payload.TenantID)

	if err := h.refresher.Refresh(ctx, payload.TenantID); err != nil {
		h.logger.Error("entitlement refresh failed",
			"tenant_id", payload.TenantID,
			"error", err,
		)
		return err
	}
	return nil
}

// HandleSweep handles the all-tenant sweep task.
func (h *EntitlementTaskHandler) HandleSweep(ctx context.Context, task *asynq.Task) error {
	h.logger.Info("starting entitlement sweep")

	if err := h.refresher.RefreshAll(ctx); err != nil {
		h.logger.Error("entitlement sweep failed", "error", err)
		return err
	}

	h.logger.Info("entitlement sweep finished")
	return nil
}
