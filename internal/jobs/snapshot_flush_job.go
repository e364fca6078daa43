package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultFlushSchedule runs the flush check every 30 seconds.
const DefaultFlushSchedule = "*/30 * * * * *"

const flushTimeout = 20 * time.Second

// Flusher is the part of the order store the flush job drives.
type Flusher interface {
	Dirty() bool
	Flush(ctx context.Context) error
}

// SnapshotFlushJob saves the order collection again while the store reports
// changes that never reached persistence.
type SnapshotFlushJob struct {
	store    Flusher
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSnapshotFlushJob creates a flush job. An empty schedule means DefaultFlushSchedule.
func NewSnapshotFlushJob(store Flusher, schedule string, logger *slog.Logger) *SnapshotFlushJob {
	if schedule == "" {
		schedule = DefaultFlushSchedule
	}
	return &SnapshotFlushJob{
		store:    store,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "snapshot_flush_job"),
	}
}

// Run performs one flush if the store is dirty. It reports whether a flush was attempted.
func (j *SnapshotFlushJob) Run(ctx context.Context) (bool, error) {
	if !j.store.Dirty() {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, flushTimeout)
	defer cancel()

	if err := j.store.Flush(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Snapshot flush failed", "error", err)
		return true, err
	}

	j.logger.InfoContext(ctx, "Snapshot flushed")
	return true, nil
}

// Start schedules Run.
func (j *SnapshotFlushJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot flush job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running flush to finish.
func (j *SnapshotFlushJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Snapshot flush job stopped")
}
