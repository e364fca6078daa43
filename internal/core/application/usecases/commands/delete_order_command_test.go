package commands_test

import (
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrderCommand(t *testing.T) {
	cmd, err := commands.NewDeleteOrderCommand("P-003")
	require.NoError(t, err)
	assert.Equal(t, "P-003", cmd.OrderID())

	_, err = commands.NewDeleteOrderCommand(" ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should delete through the store", func(t *testing.T) {
		cmd, _ := commands.NewDeleteOrderCommand("P-003")
		writer := new(MockOrderWriter)
		writer.On("Delete", "P-003").Return(nil).Once()

		h := commands.NewDeleteOrderCommandHandler(writer)

		require.NoError(t, h.Handle(t.Context(), cmd))
		writer.AssertExpectations(t)
	})

	t.Run("should surface not found", func(t *testing.T) {
		cmd, _ := commands.NewDeleteOrderCommand("P-404")
		writer := new(MockOrderWriter)
		writer.On("Delete", "P-404").Return(errs.NewObjectNotFoundError("order", "P-404")).Once()

		h := commands.NewDeleteOrderCommandHandler(writer)

		require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrObjectNotFound)
	})

	t.Run("should reject unconstructed commands", func(t *testing.T) {
		h := commands.NewDeleteOrderCommandHandler(new(MockOrderWriter))

		require.ErrorIs(t, h.Handle(t.Context(), commands.DeleteOrderCommand{}), commands.ErrDeleteOrderCommandIsNotConstructed)
	})
}
