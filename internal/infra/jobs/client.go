// Package jobs contains the background task plumbing: an Asynq client for
// enqueueing work, a worker that processes it, and a cron scheduler for
// the periodic entitlement sweep.
package jobs

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/secposture/console-api/pkg/logger"
)

// Client manages enqueueing background jobs using Asynq.
type Client struct {
	client *asynq.Client
	logger *logger.Logger
}

// ClientConfig contains configuration for the job client.
type ClientConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// NewClient creates a new job client for enqueueing tasks.
func NewClient(cfg ClientConfig, log *logger.Logger) *Client {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &Client{
		client: client,
		logger: log.With("component", "job_client"),
	}
}

// Close closes the client connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueEntitlementRefresh enqueues a snapshot refresh for one tenant.
func (c *Client) EnqueueEntitlementRefresh(ctx context.Context, tenantID string) error {
	task, err := NewEntitlementRefreshTask(tenantID)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueEntitlements),
		asynq.Unique(refreshUniqueWindow),
	)
	if err != nil {
		c.logger.Error("failed to enqueue entitlement refresh",
			"tenant_id", tenantID,
			"error", err,
		)
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	c.logger.Info("entitlement refresh queued",
		"task_id", info.ID,
		"tenant_id", tenantID,
		"queue", info.Queue,
	)
	return nil
}

// EnqueueEntitlementSweep enqueues a refresh of every active tenant.
func (c *Client) EnqueueEntitlementSweep(ctx context.Context) error {
	task, err := NewEntitlementSweepTask()
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueEntitlements),
		asynq.Unique(sweepUniqueWindow),
	)
	if err != nil {
		c.logger.Error("failed to enqueue entitlement sweep", "error", err)
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	c.logger.Info("entitlement sweep queued", "task_id", info.ID, "queue", info.Queue)
	return nil
}
