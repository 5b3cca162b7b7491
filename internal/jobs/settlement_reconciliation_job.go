package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/ledger"

	"github.com/robfig/cron/v3"
)

// reconciliationBatchSize caps how many orders one run re-drives through
// settlement. A crashed deployment with a large backlog catches up over a few
// runs instead of one long transaction burst.
const reconciliationBatchSize = 50

// orderSettler drives one order through settlement.
// Satisfied by commands.SettleOrderCommandHandler.
type orderSettler interface {
	Handle(ctx context.Context, cmd commands.SettleOrderCommand) error
}

// SettlementReconciliationJob periodically settles completed orders that have
// no ledger entries. It closes the crash window between an order completing
// and its settlement committing: settlement failures at completion time are
// only logged, and this job retries them.
type SettlementReconciliationJob struct {
	uowFactory commands.SettlementUoWFactory
	settler    orderSettler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewSettlementReconciliationJob creates a job that re-drives unsettled
// completed orders through the settlement handler every minute.
func NewSettlementReconciliationJob(
	uowFactory commands.SettlementUoWFactory,
	settler orderSettler,
	logger *slog.Logger,
) *SettlementReconciliationJob {
	return &SettlementReconciliationJob{
		uowFactory: uowFactory,
		settler:    settler,
		cron:       cron.New(),
		logger:     logger.With("component", "settlement_reconciliation_job"),
	}
}

// Start schedules the job to run every minute.
func (j *SettlementReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.runOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settlement reconciliation job started (running every minute)")
	return nil
}

// Stop stops the job.
func (j *SettlementReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Settlement reconciliation job stopped")
}

func (j *SettlementReconciliationJob) runOnce(ctx context.Context) {
	uow := j.uowFactory.Create()

	orders, err := uow.OrderRepository().GetCompletedUnsettled(ctx, reconciliationBatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list unsettled orders", "error", err)
		return
	}

	for _, ord := range orders {
		cmd, err := commands.NewSettleOrderCommand(ord.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build settle command",
				"order_id", ord.ID().String(), "error", err)
			continue
		}

		if err := j.settler.Handle(ctx, cmd); err != nil {
			// A concurrent settlement finishing first is not a failure.
			if errors.Is(err, ledger.ErrDuplicateSettlement) {
				continue
			}
			j.logger.ErrorContext(ctx, "Failed to reconcile settlement",
				"order_id", ord.ID().String(), "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Reconciled settlement", "order_id", ord.ID().String())
	}
}
