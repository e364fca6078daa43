package order_test

import (
	"fmt"
	"testing"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Approved))
		assert.Equal(t, 3, int(order.Rejected))
		assert.Equal(t, 4, int(order.Completed))
	})

	t.Run("should list valid statuses in lifecycle order", func(t *testing.T) {
		assert.Equal(t,
			[]order.Status{order.Pending, order.Approved, order.Rejected, order.Completed},
			order.AllStatuses())
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.AllStatuses() {
		t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(5), order.Status(100)} {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		}
	})
}

func TestStatus_StringAndLabel(t *testing.T) {
	tests := []struct {
		status order.Status
		name   string
		label  string
	}{
		{order.Pending, "Pending", "Menunggu"},
		{order.Approved, "Approved", "Disetujui"},
		{order.Rejected, "Rejected", "Ditolak"},
		{order.Completed, "Completed", "Selesai"},
		{order.Unknown, "Unknown", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.status.String())
			assert.Equal(t, tt.label, tt.status.Label())
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should accept names and labels in any case", func(t *testing.T) {
		inputs := map[string]order.Status{
			"Pending":    order.Pending,
			"menunggu":   order.Pending,
			"APPROVED":   order.Approved,
			"Disetujui":  order.Approved,
			" rejected ": order.Rejected,
			"Ditolak":    order.Rejected,
			"completed":  order.Completed,
			"Selesai":    order.Completed,
		}

		for input, want := range inputs {
			got, err := order.ParseStatus(input)
			require.NoError(t, err, input)
			assert.Equal(t, want, got, input)
		}
	})

	t.Run("should reject unknown text", func(t *testing.T) {
		got, err := order.ParseStatus("Cancelled")

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.Equal(t, order.Unknown, got)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	legal := map[order.Status][]order.Status{
		order.Pending:  {order.Approved, order.Rejected},
		order.Approved: {order.Completed},
	}

	for _, from := range order.AllStatuses() {
		for _, to := range order.AllStatuses() {
			allowed := false
			for _, next := range legal[from] {
				if next == to {
					allowed = true
				}
			}

			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				got, err := from.TransitionTo(to)

				assert.Equal(t, allowed, from.CanTransitionTo(to))
				if allowed {
					require.NoError(t, err)
					assert.Equal(t, to, got)
					return
				}
				require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)
				assert.Equal(t, order.Unknown, got)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s -> %s", from, to))
			})
		}
	}

	t.Run("should not leave Unknown", func(t *testing.T) {
		_, err := order.Unknown.TransitionTo(order.Pending)

		require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)
	})
}

func TestStatus_Shortcuts(t *testing.T) {
	t.Run("should approve, reject and complete along legal edges", func(t *testing.T) {
		approved, err := order.Pending.Approve()
		require.NoError(t, err)
		assert.Equal(t, order.Approved, approved)

		rejected, err := order.Pending.Reject()
		require.NoError(t, err)
		assert.Equal(t, order.Rejected, rejected)

		completed, err := approved.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.Completed, completed)
	})

	t.Run("should refuse to complete a pending order", func(t *testing.T) {
		_, err := order.Pending.Complete()

		require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)
	})
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, order.Pending.IsActive())
	assert.True(t, order.Approved.IsActive())
	assert.False(t, order.Rejected.IsActive())
	assert.False(t, order.Completed.IsActive())

	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Approved.IsTerminal())
	assert.True(t, order.Rejected.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.False(t, order.Unknown.IsTerminal())
}

func TestStatus_Text(t *testing.T) {
	text, err := order.Approved.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Approved", string(text))

	var s order.Status
	require.NoError(t, s.UnmarshalText([]byte("Ditolak")))
	assert.Equal(t, order.Rejected, s)

	_, err = order.Unknown.MarshalText()
	require.Error(t, err)
}
