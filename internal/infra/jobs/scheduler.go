package jobs

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/secposture/console-api/pkg/logger"
)

// Scheduler enqueues the periodic entitlement sweep on a cron schedule.
type Scheduler struct {
	cron   *cron.Cron
	client *Client
	logger *logger.Logger
}

// NewScheduler creates a scheduler that enqueues a sweep per the standard
// five-field cron expression.
func NewScheduler(client *Client, schedule string, log *logger.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(),
		client: client,
		logger: log.With("component", "scheduler"),
	}

	_, err := s.cron.AddFunc(schedule, func() {
		if err := s.client.EnqueueEntitlementSweep(context.Background()); err != nil {
			s.logger.Error("scheduled sweep enqueue failed", "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}

	return s, nil
}

// ValidateSchedule checks a cron expression with the same parser the
// scheduler uses.
func ValidateSchedule(expr string) error {
	if expr == "" {
		return fmt.Errorf("schedule is required")
	}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(expr); err != nil {
		return fmt.Errorf("cannot parse schedule %q: %w", expr, err)
	}
	return nil
}

// Start begins scheduling.
func (s *Scheduler) Start() {
	s.logger.Info("starting entitlement sweep scheduler")
	s.cron.Start()
}

// Stop stops the scheduler and waits for any running enqueue to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping entitlement sweep scheduler")
	<-s.cron.Stop().Done()
}
