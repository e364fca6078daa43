package queries_test

import (
	"testing"

	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	handler := queries.NewListOrdersQueryHandler(stubReader{orders: fixtureOrders(t)}, services.NewQueryEngine())

	tests := []struct {
		name  string
		query queries.ListOrdersQuery
		want  []string
	}{
		{
			name:  "all newest first",
			query: queries.NewListOrdersQuery(services.FilterAll(), kernel.Date{}, services.Newest),
			want:  []string{"P-004", "P-003", "P-002", "P-001"},
		},
		{
			name:  "active only",
			query: queries.NewListOrdersQuery(services.FilterActive(), kernel.Date{}, services.Oldest),
			want:  []string{"P-001", "P-002"},
		},
		{
			name:  "completed on a date",
			query: queries.NewListOrdersQuery(services.FilterByStatus(order.Completed), kernel.NewDate(2025, 11, 1), services.Newest),
			want:  []string{"P-004"},
		},
		{
			name:  "date with nothing on it",
			query: queries.NewListOrdersQuery(services.FilterAll(), kernel.NewDate(2026, 1, 1), services.Newest),
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := handler.Handle(t.Context(), tt.query)

			require.NoError(t, err)
			assert.Equal(t, tt.want, orderIDs(got))
		})
	}

	t.Run("should reject unconstructed query", func(t *testing.T) {
		_, err := handler.Handle(t.Context(), queries.ListOrdersQuery{})

		require.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
	})
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	handler := queries.NewGetOrderQueryHandler(stubReader{orders: fixtureOrders(t)})

	t.Run("should return the order", func(t *testing.T) {
		q, err := queries.NewGetOrderQuery("P-002")
		require.NoError(t, err)

		got, err := handler.Handle(t.Context(), q)

		require.NoError(t, err)
		assert.Equal(t, order.Approved, got.Status())
	})

	t.Run("should return not found", func(t *testing.T) {
		q, _ := queries.NewGetOrderQuery("P-999")

		_, err := handler.Handle(t.Context(), q)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should require an id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGetOrderCountsQueryHandler_Handle(t *testing.T) {
	orders := append(fixtureOrders(t), makeOrder(t, "P-005", order.Pending, t0, kernel.NewDate(2025, 11, 9)))
	handler := queries.NewGetOrderCountsQueryHandler(stubReader{orders: orders}, services.NewQueryEngine())

	got, err := handler.Handle(t.Context(), queries.NewGetOrderCountsQuery())

	require.NoError(t, err)
	assert.Equal(t, 5, got.Total)
	assert.Equal(t, map[order.Status]int{
		order.Pending:   2,
		order.Approved:  1,
		order.Rejected:  1,
		order.Completed: 1,
	}, got.ByStatus)

	_, err = handler.Handle(t.Context(), queries.GetOrderCountsQuery{})
	require.ErrorIs(t, err, queries.ErrGetOrderCountsQueryIsNotConstructed)
}
