// Package scheduler runs the daily sentiment trend report on a fixed cron
// schedule.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the recurring report job.
type Scheduler struct {
	cron       *cron.Cron
	ctx        context.Context
	cancel     context.CancelFunc
	reportFunc func(ctx context.Context) error
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetReportFunction sets the job invoked on each tick.
func (s *Scheduler) SetReportFunction(f func(ctx context.Context) error) {
	s.reportFunc = f
}

// Start registers the daily job and starts the cron loop.
func (s *Scheduler) Start() error {
	if s.reportFunc == nil {
		slog.Warn("report function not set, scheduler will not generate reports")
		return nil
	}

	// Daily at 21:00 UTC
	_, err := s.cron.AddFunc("0 21 * * *", func() {
		slog.Info("triggered daily sentiment report")
		if err := s.reportFunc(s.ctx); err != nil {
			slog.Error("daily sentiment report failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	s.cron.Start()
	slog.Info("scheduler started, daily sentiment reports at 21:00 UTC")
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	slog.Info("scheduler stopped")
}

// IsRunning reports whether the scheduler has registered jobs.
func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
