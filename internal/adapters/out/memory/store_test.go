package memory_test

import (
	"context"
	"testing"
	"time"

	"catering/internal/adapters/out/memory"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anOrder(t *testing.T, id string) order.Order {
	t.Helper()
	line, err := order.NewConsumptionLine("", "Tumpeng", "buah", 1)
	require.NoError(t, err)
	o, err := order.NewOrder(id, order.Details{
		EventName:    "Syukuran",
		DeliveryDate: kernel.NewDate(2025, 11, 10),
		TimeSlot:     kernel.Noon,
		Location:     "Kantin",
		GuestTier:    kernel.Standard,
		RequestedBy:  "Ani",
		Department:   "Umum",
		ApproverName: "Budi",
	}, []order.ConsumptionLine{line}, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func TestStore(t *testing.T) {
	t.Run("should start empty", func(t *testing.T) {
		got, err := memory.NewStore().Load(t.Context())

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("should return seeded orders", func(t *testing.T) {
		got, err := memory.NewStore(anOrder(t, "P-001")).Load(t.Context())

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "P-001", got[0].ID())
	})

	t.Run("should isolate saved snapshots from caller slices", func(t *testing.T) {
		s := memory.NewStore()
		orders := []order.Order{anOrder(t, "P-001")}
		require.NoError(t, s.Save(t.Context(), orders))

		orders[0] = anOrder(t, "P-999")
		got, _ := s.Load(t.Context())

		assert.Equal(t, "P-001", got[0].ID())
		assert.Equal(t, 1, s.Saves())
	})

	t.Run("should honour cancelled contexts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		require.ErrorIs(t, memory.NewStore().Save(ctx, nil), context.Canceled)
	})
}
