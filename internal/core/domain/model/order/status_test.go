package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Next(t *testing.T) {
	t.Run("should follow the linear lifecycle without skipping", func(t *testing.T) {
		expected := []order.Status{
			order.Assigned,
			order.Shipped,
			order.InTransit,
			order.Received,
			order.OutForDelivery,
			order.Completed,
		}

		current := order.Placed
		for _, want := range expected {
			next, err := current.Next()

			require.NoError(t, err)
			assert.Equal(t, want, next)
			current = next
		}
		assert.Equal(t, order.Completed, current)
	})

	t.Run("should fail on completed order", func(t *testing.T) {
		_, err := order.Completed.Next()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrAlreadyTerminal)
	})

	t.Run("should fail on cancelled order", func(t *testing.T) {
		_, err := order.Cancelled.Next()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrAlreadyTerminal)
	})

	t.Run("should fail on unknown status", func(t *testing.T) {
		_, err := order.Unknown.Next()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestStatus_CanCancel(t *testing.T) {
	t.Run("should allow cancel from every non-terminal status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Placed,
			order.Assigned,
			order.Shipped,
			order.InTransit,
			order.Received,
			order.OutForDelivery,
		} {
			assert.True(t, s.CanCancel(), "expected cancel to be allowed from %s", s)
		}
	})

	t.Run("should reject cancel from terminal statuses", func(t *testing.T) {
		assert.False(t, order.Completed.CanCancel())
		assert.False(t, order.Cancelled.CanCancel())
	})

	t.Run("should reject cancel from unknown status", func(t *testing.T) {
		assert.False(t, order.Unknown.CanCancel())
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Placed, order.Assigned, order.Shipped, order.InTransit,
			order.Received, order.OutForDelivery, order.Completed, order.Cancelled,
		} {
			assert.NoError(t, s.Validate())
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should name all statuses", func(t *testing.T) {
		assert.Equal(t, "Placed", order.Placed.String())
		assert.Equal(t, "OutForDelivery", order.OutForDelivery.String())
		assert.Equal(t, "Completed", order.Completed.String())
		assert.Equal(t, "Cancelled", order.Cancelled.String())
	})

	t.Run("should fall back to Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Placed.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
}
