package services_test

import (
	"testing"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 10, 28, 8, 0, 0, 0, time.UTC)

type orderFixture struct {
	id        string
	status    order.Status
	createdAt time.Time
	delivery  kernel.Date
}

func buildOrder(t *testing.T, fx orderFixture) order.Order {
	t.Helper()

	delivery := fx.delivery
	if delivery.IsZero() {
		delivery = kernel.NewDate(2025, 11, 1)
	}
	details := order.Details{
		EventName:    "Rapat " + fx.id,
		DeliveryDate: delivery,
		TimeSlot:     kernel.Noon,
		Location:     "Aula",
		GuestTier:    kernel.Regular,
		RequestedBy:  "Ani",
		Department:   "Umum",
		ApproverName: "Budi",
	}
	line, err := order.NewConsumptionLine("reg-nasi", "Nasi Kotak Reguler", "kotak", 3)
	require.NoError(t, err)

	o, err := order.NewOrder(fx.id, details, []order.ConsumptionLine{line}, fx.createdAt)
	require.NoError(t, err)

	path := map[order.Status][]order.Status{
		order.Approved:  {order.Approved},
		order.Rejected:  {order.Rejected},
		order.Completed: {order.Approved, order.Completed},
	}
	for _, next := range path[fx.status] {
		o, err = o.TransitionTo(next, "Budi", fx.createdAt.Add(time.Minute))
		require.NoError(t, err)
	}
	return o
}

func ids(orders []order.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID())
	}
	return out
}
