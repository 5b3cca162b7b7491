// Package jobs provides scheduled background tasks for the fulfillment engine.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SettlementReconciliationJob - Runs every minute to settle completed
// orders that have no ledger entries, closing the crash window between an
// order completing and its settlement committing.
//
// 2. CodeSweepJob - Runs every minute to drop expired delivery confirmation
// codes from the in-memory store.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, settleHandler, codeStore, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reconciliation job treats a concurrent settlement winning the race as
// success and logs every other failure; the next run retries. Failed job
// starts stop any already running jobs.
package jobs
