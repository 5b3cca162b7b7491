package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	settlementJob *SettlementReconciliationJob
	codeSweepJob  *CodeSweepJob
}

// NewJobManager creates a job manager with the jobs the configuration calls
// for. The settlement reconciliation job backstops the engine-driven
// settlement mode only; under SettleOnPayment the payment collaborator owns
// the settle call and no job is scheduled for it.
func NewJobManager(
	uowFactory commands.SettlementUoWFactory,
	settleHandler *commands.SettleOrderCommandHandler,
	sweeper codeSweeper,
	trigger commands.SettlementTrigger,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{
		codeSweepJob: NewCodeSweepJob(sweeper, logger),
	}
	if trigger == commands.SettleOnCompletion {
		jm.settlementJob = NewSettlementReconciliationJob(uowFactory, settleHandler, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.settlementJob != nil {
		if err := jm.settlementJob.Start(); err != nil {
			return fmt.Errorf("failed to start settlement reconciliation job: %w", err)
		}
	}

	if err := jm.codeSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		if jm.settlementJob != nil {
			jm.settlementJob.Stop()
		}
		return fmt.Errorf("failed to start code sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.settlementJob != nil {
		jm.settlementJob.Stop()
	}
	jm.codeSweepJob.Stop()
}
