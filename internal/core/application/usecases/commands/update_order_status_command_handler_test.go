package commands_test

import (
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pending := sampleOrder(t)
	approved, err := pending.TransitionTo(order.Approved, "Budi", pending.CreatedAt())
	require.NoError(t, err)
	cmd, _ := commands.NewUpdateOrderStatusCommand("P-001", order.Approved, "Budi")

	writer := new(MockOrderWriter)
	writer.On("UpdateStatus", "P-001", order.Approved, "Budi").Return(approved, nil).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(writer)
	got, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Approved, got.Status())
	writer.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_PropagatesErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"invalid transition", errs.NewStatusTransitionIsInvalidError(order.Pending, order.Completed), errs.ErrStatusTransitionIsInvalid},
		{"not found", errs.NewObjectNotFoundError("order", "P-404"), errs.ErrObjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := commands.NewUpdateOrderStatusCommand("P-404", order.Completed, "System")
			writer := new(MockOrderWriter)
			writer.On("UpdateStatus", "P-404", order.Completed, "System").Return(order.Order{}, tt.err).Once()

			h := commands.NewUpdateOrderStatusCommandHandler(writer)
			_, err := h.Handle(t.Context(), cmd)

			require.ErrorIs(t, err, tt.want)
			writer.AssertExpectations(t)
		})
	}
}

func TestUpdateOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	writer := new(MockOrderWriter)
	h := commands.NewUpdateOrderStatusCommandHandler(writer)

	_, err := h.Handle(t.Context(), commands.UpdateOrderStatusCommand{})

	require.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	writer.AssertNotCalled(t, "UpdateStatus")
}
