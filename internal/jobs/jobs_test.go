package jobs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"catering/internal/adapters/out/csvexport"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/jobs"
	"catering/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFlusher struct{ mock.Mock }

func (m *MockFlusher) Dirty() bool {
	return m.Called().Bool(0)
}

func (m *MockFlusher) Flush(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type listReader []order.Order

func (r listReader) List() []order.Order {
	return append([]order.Order(nil), r...)
}

func (r listReader) Get(string) (order.Order, error) {
	return order.Order{}, errors.New("not used")
}

func newOrder(t *testing.T, id string, createdAt time.Time) order.Order {
	t.Helper()

	line, err := order.NewConsumptionLine("std-snack", "Snack Box Standar", "box", 10)
	require.NoError(t, err)

	o, err := order.NewOrder(id, order.Details{
		EventName:    "Rapat " + id,
		DeliveryDate: kernel.NewDate(2026, time.May, 4),
		TimeSlot:     kernel.Morning,
		Location:     "Aula",
		GuestTier:    kernel.Standard,
		RequestedBy:  "Rina",
		Department:   "SDM",
		ApproverName: "Agus",
	}, []order.ConsumptionLine{line}, createdAt)
	require.NoError(t, err)
	return o
}

func exportHandler(orders ...order.Order) queries.ExportOrdersQueryHandler {
	return queries.NewExportOrdersQueryHandler(listReader(orders), services.NewQueryEngine(), csvexport.NewExporter())
}

func TestSnapshotFlushJob_Run(t *testing.T) {
	t.Run("clean store is left alone", func(t *testing.T) {
		store := &MockFlusher{}
		store.On("Dirty").Return(false)

		attempted, err := jobs.NewSnapshotFlushJob(store, "", logging.Discard()).Run(t.Context())

		require.NoError(t, err)
		assert.False(t, attempted)
		store.AssertNotCalled(t, "Flush", mock.Anything)
	})

	t.Run("dirty store is flushed", func(t *testing.T) {
		store := &MockFlusher{}
		store.On("Dirty").Return(true)
		store.On("Flush", mock.Anything).Return(nil).Once()

		attempted, err := jobs.NewSnapshotFlushJob(store, "", logging.Discard()).Run(t.Context())

		require.NoError(t, err)
		assert.True(t, attempted)
		store.AssertExpectations(t)
	})

	t.Run("flush failure is returned", func(t *testing.T) {
		boom := errors.New("disk full")
		store := &MockFlusher{}
		store.On("Dirty").Return(true)
		store.On("Flush", mock.Anything).Return(boom)

		attempted, err := jobs.NewSnapshotFlushJob(store, "", logging.Discard()).Run(t.Context())

		require.ErrorIs(t, err, boom)
		assert.True(t, attempted)
	})
}

func TestSnapshotFlushJob_StartRejectsBadSchedule(t *testing.T) {
	job := jobs.NewSnapshotFlushJob(&MockFlusher{}, "every now and then", logging.Discard())
	require.Error(t, job.Start())
}

func TestOrderExportJob_Run(t *testing.T) {
	// Given
	dir := filepath.Join(t.TempDir(), "exports")
	base := time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC)
	handler := exportHandler(newOrder(t, "P-001", base), newOrder(t, "P-002", base.Add(time.Hour)))
	clock := kernel.FixedClock(time.Date(2026, time.May, 1, 18, 0, 0, 0, time.UTC))

	// When
	path, err := jobs.NewOrderExportJob(handler, dir, "@daily", clock, logging.Discard()).Run(t.Context())

	// Then
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "orders-20260501T180000Z.csv"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\r\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], `"P-002"`), "newest first")
	assert.True(t, strings.HasPrefix(lines[2], `"P-001"`))
}

func TestOrderExportJob_RunFailsOnUnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := jobs.NewOrderExportJob(exportHandler(), file, "@daily", nil, logging.Discard()).Run(t.Context())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create export dir")
}

func TestJobManager(t *testing.T) {
	store := &MockFlusher{}
	store.On("Dirty").Return(false).Maybe()

	t.Run("export disabled without schedule", func(t *testing.T) {
		jm := jobs.NewJobManager(store, exportHandler(), jobs.Config{}, nil, logging.Discard())
		assert.False(t, jm.ExportEnabled())

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("bad export schedule stops the flush job", func(t *testing.T) {
		jm := jobs.NewJobManager(store, exportHandler(), jobs.Config{
			ExportSchedule: "not a schedule",
			ExportDir:      t.TempDir(),
		}, nil, logging.Discard())
		assert.True(t, jm.ExportEnabled())

		err := jm.StartAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "order export job")
	})
}
