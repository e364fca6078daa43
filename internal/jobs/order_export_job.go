package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

const exportTimestampLayout = "20060102T150405Z"

// OrderExportJob writes the full order collection, newest first, to
// <dir>/orders-<timestamp>.csv.
type OrderExportJob struct {
	handler  queries.ExportOrdersQueryHandler
	dir      string
	schedule string
	clock    kernel.Clock
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOrderExportJob(
	handler queries.ExportOrdersQueryHandler,
	dir, schedule string,
	clock kernel.Clock,
	logger *slog.Logger,
) *OrderExportJob {
	if clock == nil {
		clock = kernel.SystemClock()
	}
	return &OrderExportJob{
		handler:  handler,
		dir:      dir,
		schedule: schedule,
		clock:    clock,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_export_job"),
	}
}

// Run writes one export file and returns its path.
func (j *OrderExportJob) Run(ctx context.Context) (string, error) {
	query := queries.NewExportOrdersQuery(services.FilterAll(), kernel.Date{}, services.Newest)
	export, err := j.handler.Handle(ctx, query)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	name := fmt.Sprintf("orders-%s.csv", j.clock.Now().UTC().Format(exportTimestampLayout))
	path := filepath.Join(j.dir, name)
	if err := os.WriteFile(path, []byte(export.Body), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}

	j.logger.InfoContext(ctx, "Orders exported", "path", path, "rows", export.Rows)
	return path, nil
}

// Start schedules Run.
func (j *OrderExportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order export job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order export job started", "schedule", j.schedule, "dir", j.dir)
	return nil
}

// Stop stops scheduling and waits for a running export to finish.
func (j *OrderExportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order export job stopped")
}
