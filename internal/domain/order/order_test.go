//go:build unit

package order_test

import (
	"testing"

	"laman-client/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("absent status defaults to NEW", func(t *testing.T) {
		st, err := order.ParseStatus(nil)
		require.NoError(t, err)
		assert.Equal(t, order.StatusNew, st)

		empty := ""
		st, err = order.ParseStatus(&empty)
		require.NoError(t, err)
		assert.Equal(t, order.StatusNew, st)
	})

	t.Run("closed set", func(t *testing.T) {
		for _, s := range []string{"NEW", "NEEDS_CONFIRMATION", "CONFIRMED", "IN_PROGRESS", "DELIVERED", "CANCELLED"} {
			st, err := order.ParseStatus(&s)
			require.NoError(t, err)
			assert.Equal(t, order.Status(s), st)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		bad := "SHIPPED"
		_, err := order.ParseStatus(&bad)
		require.ErrorIs(t, err, order.ErrInvalidStatus)
	})
}

func TestParsePaymentMethod(t *testing.T) {
	for _, s := range []string{"CASH", "TRANSFER"} {
		pm, err := order.ParsePaymentMethod(s)
		require.NoError(t, err)
		assert.Equal(t, order.PaymentMethod(s), pm)
	}

	_, err := order.ParsePaymentMethod("CARD")
	require.ErrorIs(t, err, order.ErrInvalidPaymentMethod)
}

func TestIsCancellable(t *testing.T) {
	cases := []struct {
		status order.Status
		want   bool
	}{
		{order.StatusNew, true},
		{order.StatusNeedsConfirmation, true},
		{order.StatusConfirmed, true},
		{order.StatusInProgress, true},
		{order.StatusDelivered, false},
		{order.StatusCancelled, false},
	}
	for _, tc := range cases {
		o := order.Order{Status: tc.status}
		assert.Equal(t, tc.want, o.IsCancellable(), "status %s", tc.status)
	}
}
