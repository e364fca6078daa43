package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"catering/internal/adapters/out/filestore"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedOrder(t *testing.T) order.Order {
	t.Helper()
	created := time.Date(2025, 10, 28, 8, 0, 0, 0, time.UTC)
	at, err := kernel.ParseClockTime("12:00")
	require.NoError(t, err)
	line, err := order.NewConsumptionLine("vip-prasmanan", "Prasmanan VIP", "pax", 40)
	require.NoError(t, err)
	free, err := order.NewConsumptionLine("", "Buah Potong", "nampan", 3)
	require.NoError(t, err)

	o, err := order.NewOrder("P-012", order.Details{
		EventName:    "Kunjungan Direksi",
		RequestDate:  kernel.NewDate(2025, 10, 28),
		DeliveryDate: kernel.NewDate(2025, 11, 4),
		TimeSlot:     kernel.Noon,
		DeliveryTime: at,
		Location:     "Ruang VIP",
		GuestTier:    kernel.VIP,
		RequestedBy:  "Ani",
		Department:   "Sekretariat",
		ApproverName: "Budi",
		Note:         `Meja "U"`,
	}, []order.ConsumptionLine{line, free}, created)
	require.NoError(t, err)

	o, err = o.TransitionTo(order.Approved, "Budi", created.Add(time.Hour))
	require.NoError(t, err)
	o, err = o.TransitionTo(order.Completed, "Citra", created.Add(26*time.Hour))
	require.NoError(t, err)
	return o
}

func TestStore_LoadMissingFile(t *testing.T) {
	s, err := filestore.NewStore(filepath.Join(t.TempDir(), "orders.json"))
	require.NoError(t, err)

	orders, err := s.Load(t.Context())

	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "orders.json")
	s, err := filestore.NewStore(path)
	require.NoError(t, err)
	original := completedOrder(t)

	require.NoError(t, s.Save(t.Context(), []order.Order{original}))
	loaded, err := s.Load(t.Context())

	require.NoError(t, err)
	require.Len(t, loaded, 1)
	got := loaded[0]
	assert.Equal(t, original.ID(), got.ID())
	assert.Equal(t, original.Status(), got.Status())
	assert.Equal(t, original.CreatedAt(), got.CreatedAt())
	assert.Equal(t, original.Details(), got.Details())
	assert.Equal(t, original.Lines(), got.Lines())
	require.Len(t, got.History(), 3)
	for n, h := range original.History() {
		assert.Equal(t, h.Status(), got.History()[n].Status())
		assert.True(t, h.Timestamp().Equal(got.History()[n].Timestamp()))
		assert.Equal(t, h.Actor(), got.History()[n].Actor())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must be cleaned up")
}

func TestStore_SaveReplacesDocument(t *testing.T) {
	s, _ := filestore.NewStore(filepath.Join(t.TempDir(), "orders.json"))
	require.NoError(t, s.Save(t.Context(), []order.Order{completedOrder(t)}))

	require.NoError(t, s.Save(t.Context(), nil))
	loaded, err := s.Load(t.Context())

	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStore_LoadRejectsBrokenDocuments(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "not json",
			content: "{",
			check:   func(t *testing.T, err error) { assert.Contains(t, err.Error(), "decode") },
		},
		{
			name:    "unknown version",
			content: `{"version": 7, "orders": []}`,
			check:   func(t *testing.T, err error) { assert.ErrorIs(t, err, errs.ErrValueIsInvalid) },
		},
		{
			name: "history does not match status",
			content: `{"version":1,"orders":[{"id":"P-001","eventName":"E","requestDate":"2025-10-28",
				"deliveryDate":"2025-11-01","timeSlot":"Noon","deliveryTime":"","location":"L","guestTier":"Standard",
				"requestedBy":"A","department":"D","approverName":"B",
				"lines":[{"displayName":"Box","unit":"box","quantity":1}],"status":"Approved",
				"history":[{"status":"Pending","timestamp":"2025-10-28T08:00:00Z","actor":"A"}],
				"createdAt":"2025-10-28T08:00:00Z"}]}`,
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "order P-001")
				assert.Contains(t, err.Error(), "last entry is Pending but status is Approved")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "orders.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			s, _ := filestore.NewStore(path)

			_, err := s.Load(t.Context())

			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestStore_HonoursCancelledContext(t *testing.T) {
	s, _ := filestore.NewStore(filepath.Join(t.TempDir(), "orders.json"))
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	require.ErrorIs(t, s.Save(ctx, nil), context.Canceled)
	_, err := s.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewStore_RequiresPath(t *testing.T) {
	_, err := filestore.NewStore("")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
