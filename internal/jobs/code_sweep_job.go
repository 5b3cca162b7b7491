package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// codeSweeper drops expired confirmation codes.
// Satisfied by codes.Store.
type codeSweeper interface {
	Sweep() int
}

// CodeSweepJob periodically removes expired delivery confirmation codes so
// abandoned orders do not accumulate entries in the code store.
type CodeSweepJob struct {
	sweeper codeSweeper
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCodeSweepJob creates a job sweeping the code store every minute.
func NewCodeSweepJob(sweeper codeSweeper, logger *slog.Logger) *CodeSweepJob {
	return &CodeSweepJob{
		sweeper: sweeper,
		cron:    cron.New(),
		logger:  logger.With("component", "code_sweep_job"),
	}
}

// Start schedules the job to run every minute.
func (j *CodeSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		if removed := j.sweeper.Sweep(); removed > 0 {
			j.logger.DebugContext(context.Background(), "Swept expired confirmation codes",
				"removed", removed)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Code sweep job started (running every minute)")
	return nil
}

// Stop stops the job.
func (j *CodeSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Code sweep job stopped")
}
