package queries_test

import (
	"errors"
	"testing"

	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExportOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("should export the filtered view in view order", func(t *testing.T) {
		exporter := new(MockExporter)
		exporter.On("Export", mock.MatchedBy(func(orders []order.Order) bool {
			ids := orderIDs(orders)
			return len(ids) == 2 && ids[0] == "P-002" && ids[1] == "P-001"
		})).Return("csv-body", nil).Once()
		exporter.On("ContentType").Return("text/csv; charset=utf-8").Once()

		handler := queries.NewExportOrdersQueryHandler(stubReader{orders: fixtureOrders(t)}, services.NewQueryEngine(), exporter)
		got, err := handler.Handle(t.Context(),
			queries.NewExportOrdersQuery(services.FilterActive(), kernel.Date{}, services.Newest))

		require.NoError(t, err)
		assert.Equal(t, "csv-body", got.Body)
		assert.Equal(t, "text/csv; charset=utf-8", got.ContentType)
		assert.Equal(t, 2, got.Rows)
		exporter.AssertExpectations(t)
	})

	t.Run("should surface exporter failures", func(t *testing.T) {
		exporter := new(MockExporter)
		exporter.On("Export", mock.Anything).Return("", errors.New("boom")).Once()

		handler := queries.NewExportOrdersQueryHandler(stubReader{}, services.NewQueryEngine(), exporter)
		_, err := handler.Handle(t.Context(),
			queries.NewExportOrdersQuery(services.FilterAll(), kernel.Date{}, services.Newest))

		require.EqualError(t, err, "boom")
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		handler := queries.NewExportOrdersQueryHandler(stubReader{}, services.NewQueryEngine(), new(MockExporter))

		_, err := handler.Handle(t.Context(), queries.ExportOrdersQuery{})

		require.ErrorIs(t, err, queries.ErrExportOrdersQueryIsNotConstructed)
	})
}
