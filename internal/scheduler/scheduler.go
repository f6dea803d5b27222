// Package scheduler runs the recurring bill-payment loop: one pass over
// the due bills per poll interval, on a dedicated goroutine, stopping
// cooperatively on context cancellation.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Russell0014/MCBA-Internet-Banking/internal/service"
)

// DefaultPollInterval is the reference polling cadence. It is a tunable,
// not a correctness requirement.
const DefaultPollInterval = time.Minute

// BillProcessor is the slice of the bill-pay service the loop needs.
type BillProcessor interface {
	ProcessDue(ctx context.Context) (service.CycleResult, error)
}

// Scheduler polls for due bills at a fixed interval.
type Scheduler struct {
	Bills    BillProcessor
	Interval time.Duration
	Logger   *zap.Logger
}

// Run processes due bills immediately and then once per interval until
// ctx is cancelled. A cycle in flight finishes before Run returns; the
// loop never aborts mid-bill. A failing cycle is logged and the loop
// keeps going.
func (s *Scheduler) Run(ctx context.Context) error {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("bill-pay scheduler running", zap.Duration("interval", interval))

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("bill-pay scheduler stopped")
			return ctx.Err()
		case <-timer.C:
		}

		start := time.Now()
		res, err := s.Bills.ProcessDue(ctx)
		if err != nil && ctx.Err() == nil {
			logger.Error("bill-pay cycle failed", zap.Error(err))
		} else if res.Due > 0 {
			logger.Info("bill-pay cycle complete",
				zap.Int("due", res.Due),
				zap.Int("completed", res.Completed),
				zap.Int("failed", res.Failed),
				zap.Int("skipped", res.Skipped),
				zap.Duration("elapsed", time.Since(start)))
		}

		timer.Reset(interval)
	}
}
