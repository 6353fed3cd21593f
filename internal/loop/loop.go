// Package loop drives the fixed-cadence frame schedule.
//
// Pacing is a fixed sleep after each tick, not adjusted for the time spent in
// the tick itself, so the actual rate drifts below the target under load.
// That is the language's baseline semantics and is kept on purpose; a
// measured-remainder scheduler is a product decision, not a bug fix.
package loop

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Scheduler runs a tick function at an approximate fixed rate until its
// context is canceled.
type Scheduler struct {
	interval time.Duration
	log      *zap.Logger
}

// NewScheduler creates a scheduler with the given post-tick sleep interval.
func NewScheduler(interval time.Duration, log *zap.Logger) *Scheduler {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &Scheduler{interval: interval, log: log}
}

// Run invokes tick with the elapsed wall-clock seconds since the previous
// iteration, then sleeps the fixed interval, until ctx is canceled.
// Cancellation is a normal stop: Run logs it and returns nil.
func (s *Scheduler) Run(ctx context.Context, tick func(dt float64)) error {
	s.log.Info("frame loop started", zap.Duration("interval", s.interval))

	last := time.Now()
	for {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		tick(dt)

		select {
		case <-ctx.Done():
			s.log.Info("frame loop stopped")
			return nil
		case <-time.After(s.interval):
		}
	}
}
