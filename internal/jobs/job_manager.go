package jobs

import (
	"fmt"
	"log/slog"

	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
)

// Config selects job schedules. An empty ExportSchedule disables the export job.
type Config struct {
	FlushSchedule  string
	ExportSchedule string
	ExportDir      string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	snapshotFlushJob *SnapshotFlushJob
	orderExportJob   *OrderExportJob
}

// NewJobManager creates the flush job and, when scheduled, the export job.
func NewJobManager(
	store Flusher,
	exportHandler queries.ExportOrdersQueryHandler,
	cfg Config,
	clock kernel.Clock,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{
		snapshotFlushJob: NewSnapshotFlushJob(store, cfg.FlushSchedule, logger),
	}
	if cfg.ExportSchedule != "" {
		jm.orderExportJob = NewOrderExportJob(exportHandler, cfg.ExportDir, cfg.ExportSchedule, clock, logger)
	}
	return jm
}

// ExportEnabled reports whether an export schedule was configured.
func (jm *JobManager) ExportEnabled() bool {
	return jm.orderExportJob != nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.snapshotFlushJob.Start(); err != nil {
		return fmt.Errorf("failed to start snapshot flush job: %w", err)
	}

	if jm.orderExportJob != nil {
		if err := jm.orderExportJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.snapshotFlushJob.Stop()
			return fmt.Errorf("failed to start order export job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones.
func (jm *JobManager) StopAll() {
	if jm.orderExportJob != nil {
		jm.orderExportJob.Stop()
	}
	jm.snapshotFlushJob.Stop()
}
