package commands_test

import (
	"testing"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderWriter struct{ mock.Mock }

func (m *MockOrderWriter) Create(draft order.Draft) (order.Order, error) {
	args := m.Called(draft)
	return args.Get(0).(order.Order), args.Error(1)
}

func (m *MockOrderWriter) UpdateStatus(id string, target order.Status, actor string) (order.Order, error) {
	args := m.Called(id, target, actor)
	return args.Get(0).(order.Order), args.Error(1)
}

func (m *MockOrderWriter) Delete(id string) error {
	return m.Called(id).Error(0)
}

func validDraft() order.Draft {
	return order.Draft{
		Details: order.Details{
			EventName:    "Pelatihan K3",
			DeliveryDate: kernel.NewDate(2025, 11, 5),
			TimeSlot:     kernel.Morning,
			Location:     "Workshop",
			GuestTier:    kernel.Standard,
			RequestedBy:  "Ani",
			Department:   "HSE",
			ApproverName: "Budi",
		},
		Lines: []order.LineDraft{{CatalogItemID: "std-snack", Quantity: 30}},
	}
}

func sampleOrder(t *testing.T) order.Order {
	t.Helper()
	line, err := order.NewConsumptionLine("std-snack", "Snack Standar", "box", 30)
	require.NoError(t, err)
	o, err := order.NewOrder("P-001", validDraft().Details, []order.ConsumptionLine{line},
		time.Date(2025, 10, 28, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}
