// Package jobs provides scheduled background tasks for the catering order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field form with a leading seconds field.
//
// # Available Jobs
//
// 1. SnapshotFlushJob - retries saving the order collection while the last save failed
// 2. OrderExportJob - writes the whole collection as CSV into an export directory
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderStore, exportHandler, jobs.Config{
//		FlushSchedule:  "*/30 * * * * *",
//		ExportSchedule: "0 0 18 * * *",
//		ExportDir:      "exports",
//	}, clock, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Failed runs are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
