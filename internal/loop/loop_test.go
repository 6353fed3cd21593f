package loop

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestRunStopsCleanlyOnCancel(t *testing.T) {
	s := NewScheduler(time.Millisecond, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	ticks := 0
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, func(dt float64) {
			ticks++
			if ticks == 3 {
				cancel()
			}
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if ticks < 3 {
		t.Fatalf("ticks = %d, want >= 3", ticks)
	}
}

func TestRunReportsPositiveDeltaAfterFirstTick(t *testing.T) {
	s := NewScheduler(time.Millisecond, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	var deltas []float64
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, func(dt float64) {
			deltas = append(deltas, dt)
			if len(deltas) == 4 {
				cancel()
			}
		})
	}()
	<-done

	// First delta may be ~0 (clock read to clock read); the rest cover at
	// least one sleep interval.
	for i, dt := range deltas[1:] {
		if dt <= 0 {
			t.Fatalf("delta %d = %v, want > 0", i+1, dt)
		}
	}
}

func TestNewSchedulerDefaultsInterval(t *testing.T) {
	s := NewScheduler(0, zap.NewNop())
	if s.interval != 16*time.Millisecond {
		t.Fatalf("interval = %v, want 16ms", s.interval)
	}
}
