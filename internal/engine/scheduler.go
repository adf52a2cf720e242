package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dealscout/dealscout/internal/metrics"
)

// Scheduler reruns the scoring heuristic over the stored listings on a fixed
// interval, keeping scores fresh as listings age (DOM-driven factors change
// even when nothing new is ingested).
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger
}

// NewScheduler creates a Scheduler that rescores every stored VIN on the
// given interval.
func NewScheduler(
	eng *Engine,
	rescoreInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	if _, err := c.AddFunc(
		"@every "+rescoreInterval.String(),
		s.runRescore,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runRescore() {
	ctx := context.Background()
	s.log.Info("scheduled rescore starting")
	metrics.SchedulerRunsTotal.Inc()
	if _, err := s.engine.RescoreAll(ctx); err != nil {
		s.log.Error("scheduled rescore failed", "error", err)
	}
}
