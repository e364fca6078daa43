package queries_test

import (
	"testing"
	"time"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 10, 28, 8, 0, 0, 0, time.UTC)

type stubReader struct {
	orders []order.Order
}

func (s stubReader) List() []order.Order {
	return append([]order.Order(nil), s.orders...)
}

func (s stubReader) Get(id string) (order.Order, error) {
	for _, o := range s.orders {
		if o.ID() == id {
			return o, nil
		}
	}
	return order.Order{}, errs.NewObjectNotFoundError("order", id)
}

type MockExporter struct{ mock.Mock }

func (m *MockExporter) ContentType() string {
	return m.Called().String(0)
}

func (m *MockExporter) Export(orders []order.Order) (string, error) {
	args := m.Called(orders)
	return args.String(0), args.Error(1)
}

func makeOrder(t *testing.T, id string, status order.Status, createdAt time.Time, delivery kernel.Date) order.Order {
	t.Helper()
	line, err := order.NewConsumptionLine("std-kopi", "Kopi", "pax", 4)
	require.NoError(t, err)
	o, err := order.NewOrder(id, order.Details{
		EventName:    "Event " + id,
		DeliveryDate: delivery,
		TimeSlot:     kernel.Morning,
		Location:     "Lobby",
		GuestTier:    kernel.Standard,
		RequestedBy:  "Ani",
		Department:   "Umum",
		ApproverName: "Budi",
	}, []order.ConsumptionLine{line}, createdAt)
	require.NoError(t, err)

	steps := map[order.Status][]order.Status{
		order.Approved:  {order.Approved},
		order.Rejected:  {order.Rejected},
		order.Completed: {order.Approved, order.Completed},
	}
	for _, s := range steps[status] {
		o, err = o.TransitionTo(s, "Budi", createdAt)
		require.NoError(t, err)
	}
	return o
}

func fixtureOrders(t *testing.T) []order.Order {
	day1 := kernel.NewDate(2025, 11, 1)
	day2 := kernel.NewDate(2025, 11, 2)
	return []order.Order{
		makeOrder(t, "P-001", order.Pending, t0, day1),
		makeOrder(t, "P-002", order.Approved, t0.Add(time.Hour), day2),
		makeOrder(t, "P-003", order.Rejected, t0.Add(2*time.Hour), day1),
		makeOrder(t, "P-004", order.Completed, t0.Add(3*time.Hour), day1),
	}
}

func orderIDs(orders []order.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID())
	}
	return out
}

func fixtureResolver(t *testing.T) services.CatalogResolver {
	t.Helper()
	kopi, err := catalog.NewItem("std-kopi", "Kopi", kernel.Standard, []kernel.TimeSlot{kernel.Morning, kernel.Sahur}, "pax")
	require.NoError(t, err)
	tea, err := catalog.NewItem("vvip-snack", "Snack VVIP (High Tea)", kernel.VVIP, []kernel.TimeSlot{kernel.Morning}, "set")
	require.NoError(t, err)
	c, err := catalog.NewCatalog([]catalog.Item{kopi, tea})
	require.NoError(t, err)
	return services.NewCatalogResolver(c)
}
