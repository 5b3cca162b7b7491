package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress(t *testing.T, zoneCode string) kernel.Address {
	t.Helper()
	zone, err := kernel.NewZone(zoneCode)
	require.NoError(t, err)
	addr, err := kernel.NewAddress("12 Station Road", "Townsville", zone)
	require.NoError(t, err)
	return addr
}

func validBreakdown(t *testing.T, total, commission, seller string) order.PriceBreakdown {
	t.Helper()
	tm, err := kernel.NewMoneyFromString(total)
	require.NoError(t, err)
	cm, err := kernel.NewMoneyFromString(commission)
	require.NoError(t, err)
	sm, err := kernel.NewMoneyFromString(seller)
	require.NoError(t, err)
	b, err := order.NewPriceBreakdown(tm, cm, sm)
	require.NoError(t, err)
	return b
}

func validOrder(t *testing.T) *order.Order {
	t.Helper()
	unit, _ := kernel.NewMoneyFromString("100.00")
	charge, _ := kernel.NewMoneyFromString("20.00")
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		3, unit,
		validBreakdown(t, "300.00", "30.00", "270.00"),
		charge,
		validAddress(t, "north"), validAddress(t, "south"),
		order.NewScanToken(),
	)
	require.NoError(t, err)
	return o
}

func TestNewPriceBreakdown(t *testing.T) {
	t.Run("should enforce balance invariant", func(t *testing.T) {
		total, _ := kernel.NewMoneyFromString("300.00")
		commission, _ := kernel.NewMoneyFromString("30.00")
		seller, _ := kernel.NewMoneyFromString("270.00")

		b, err := order.NewPriceBreakdown(total, commission, seller)

		require.NoError(t, err)
		assert.True(t, b.Commission().Add(b.Seller()).IsEqual(b.Total()))
	})

	t.Run("should reject unbalanced breakdown", func(t *testing.T) {
		total, _ := kernel.NewMoneyFromString("300.00")
		commission, _ := kernel.NewMoneyFromString("30.00")
		seller, _ := kernel.NewMoneyFromString("200.00")

		_, err := order.NewPriceBreakdown(total, commission, seller)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrUnbalancedBreakdown)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var b order.PriceBreakdown

		require.Error(t, b.Validate())
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in Placed status with version 1", func(t *testing.T) {
		o := validOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, 1, o.Version())
		assert.Nil(t, o.SourceCarrier())
		assert.Nil(t, o.DestinationCarrier())
		assert.Nil(t, o.DeliveryAgent())
		assert.Nil(t, o.Distance())
		assert.Empty(t, o.BillURL())
	})

	t.Run("should snapshot the price breakdown", func(t *testing.T) {
		o := validOrder(t)

		assert.Equal(t, "300.00", o.TotalPrice().String())
		assert.Equal(t, "30.00", o.CommissionAmount().String())
		assert.Equal(t, "270.00", o.SellerAmount().String())
		assert.True(t, o.CommissionAmount().Add(o.SellerAmount()).IsEqual(o.TotalPrice()))
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		unit, _ := kernel.NewMoneyFromString("100.00")
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			0, unit,
			validBreakdown(t, "0.00", "0.00", "0.00"),
			kernel.ZeroMoney(),
			validAddress(t, "north"), validAddress(t, "south"),
			order.NewScanToken(),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity is invalid")
	})

	t.Run("should fail when breakdown total disagrees with unit price times quantity", func(t *testing.T) {
		unit, _ := kernel.NewMoneyFromString("100.00")
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			3, unit,
			validBreakdown(t, "200.00", "20.00", "180.00"),
			kernel.ZeroMoney(),
			validAddress(t, "north"), validAddress(t, "south"),
			order.NewScanToken(),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "price breakdown")
	})

	t.Run("should fail with unconstructed buyer ID", func(t *testing.T) {
		var badID kernel.UUID
		unit, _ := kernel.NewMoneyFromString("100.00")
		_, err := order.NewOrder(
			kernel.NewUUID(), badID, kernel.NewUUID(), kernel.NewUUID(),
			3, unit,
			validBreakdown(t, "300.00", "30.00", "270.00"),
			kernel.ZeroMoney(),
			validAddress(t, "north"), validAddress(t, "south"),
			order.NewScanToken(),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "buyer ID")
	})

	t.Run("should fail with unconstructed scan token", func(t *testing.T) {
		var badToken order.ScanToken
		unit, _ := kernel.NewMoneyFromString("100.00")
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			3, unit,
			validBreakdown(t, "300.00", "30.00", "270.00"),
			kernel.ZeroMoney(),
			validAddress(t, "north"), validAddress(t, "south"),
			badToken,
		)

		require.Error(t, err)
		assert.Equal(t, order.ErrScanTokenIsNotConstructed, err)
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("should visit each status exactly once before Completed", func(t *testing.T) {
		o := validOrder(t)
		seen := []order.Status{o.Status()}

		for !o.Status().IsTerminal() {
			next, err := o.Advance()
			require.NoError(t, err)
			seen = append(seen, next)
		}

		assert.Equal(t, []order.Status{
			order.Placed, order.Assigned, order.Shipped, order.InTransit,
			order.Received, order.OutForDelivery, order.Completed,
		}, seen)
	})

	t.Run("should fail on completed order", func(t *testing.T) {
		o := validOrder(t)
		for !o.Status().IsTerminal() {
			_, err := o.Advance()
			require.NoError(t, err)
		}

		_, err := o.Advance()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrAlreadyTerminal)
	})

	t.Run("should fail on cancelled order", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.Cancel())

		_, err := o.Advance()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrAlreadyTerminal)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel from any non-terminal status", func(t *testing.T) {
		o := validOrder(t)
		_, err := o.Advance() // Assigned
		require.NoError(t, err)
		_, err = o.Advance() // Shipped
		require.NoError(t, err)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should fail on completed order", func(t *testing.T) {
		o := validOrder(t)
		for !o.Status().IsTerminal() {
			_, err := o.Advance()
			require.NoError(t, err)
		}

		err := o.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrAlreadyTerminal)
	})

	t.Run("should fail on already cancelled order", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.Cancel())

		err := o.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrAlreadyTerminal)
	})
}

func TestOrder_AssignCarriers(t *testing.T) {
	t.Run("should assign both carriers while placed", func(t *testing.T) {
		o := validOrder(t)
		source := kernel.NewUUID()
		dest := kernel.NewUUID()

		require.NoError(t, o.AssignCarriers(&source, &dest))
		assert.True(t, o.SourceCarrier().IsEqual(source))
		assert.True(t, o.DestinationCarrier().IsEqual(dest))
	})

	t.Run("should tolerate missing carriers", func(t *testing.T) {
		o := validOrder(t)

		require.NoError(t, o.AssignCarriers(nil, nil))
		assert.Nil(t, o.SourceCarrier())
		assert.Nil(t, o.DestinationCarrier())
	})

	t.Run("should allow re-assignment before shipment", func(t *testing.T) {
		o := validOrder(t)
		first := kernel.NewUUID()
		require.NoError(t, o.AssignCarriers(&first, &first))
		_, err := o.Advance() // Assigned
		require.NoError(t, err)

		replacement := kernel.NewUUID()
		require.NoError(t, o.AssignCarriers(&replacement, &replacement))
		assert.True(t, o.SourceCarrier().IsEqual(replacement))
	})

	t.Run("should reject re-assignment after shipment", func(t *testing.T) {
		o := validOrder(t)
		_, err := o.Advance() // Assigned
		require.NoError(t, err)
		_, err = o.Advance() // Shipped
		require.NoError(t, err)

		id := kernel.NewUUID()
		err = o.AssignCarriers(&id, &id)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrCarrierChangeAfterShipment)
	})

	t.Run("should reject unconstructed carrier ID", func(t *testing.T) {
		o := validOrder(t)
		var badID kernel.UUID

		require.Error(t, o.AssignCarriers(&badID, nil))
	})
}

func TestOrder_SetDistanceEstimate(t *testing.T) {
	t.Run("should attach estimate", func(t *testing.T) {
		o := validOrder(t)

		require.NoError(t, o.SetDistanceEstimate(order.DistanceEstimate{
			DistanceKm:      42.5,
			DurationMinutes: 95,
		}))

		require.NotNil(t, o.Distance())
		assert.InDelta(t, 42.5, o.Distance().DistanceKm, 0.001)
		assert.Equal(t, 95, o.Distance().DurationMinutes)
	})

	t.Run("should reject negative distance", func(t *testing.T) {
		o := validOrder(t)

		err := o.SetDistanceEstimate(order.DistanceEstimate{DistanceKm: -1})

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rehydrate order with persisted status and version", func(t *testing.T) {
		source := kernel.NewUUID()
		unit, _ := kernel.NewMoneyFromString("100.00")
		charge, _ := kernel.NewMoneyFromString("20.00")

		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:              kernel.NewUUID(),
			BuyerID:         kernel.NewUUID(),
			SellerID:        kernel.NewUUID(),
			ProductID:       kernel.NewUUID(),
			Quantity:        3,
			UnitPrice:       unit,
			Breakdown:       validBreakdown(t, "300.00", "30.00", "270.00"),
			TransportCharge: charge,
			PickupAddress:   validAddress(t, "north"),
			DeliveryAddress: validAddress(t, "south"),
			ScanToken:       order.NewScanToken(),
			Status:          order.InTransit,
			SourceCarrierID: &source,
			Version:         7,
		})

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, o.Status())
		assert.Equal(t, 7, o.Version())
		assert.True(t, o.SourceCarrier().IsEqual(source))
	})

	t.Run("should reject corrupt rows with unbalanced breakdown", func(t *testing.T) {
		var corrupt order.PriceBreakdown

		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:        kernel.NewUUID(),
			BuyerID:   kernel.NewUUID(),
			SellerID:  kernel.NewUUID(),
			ProductID: kernel.NewUUID(),
			Quantity:  1,
			Breakdown: corrupt,
			Version:   1,
		})

		require.Error(t, err)
	})

	t.Run("should reject non-positive version", func(t *testing.T) {
		unit, _ := kernel.NewMoneyFromString("100.00")

		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:              kernel.NewUUID(),
			BuyerID:         kernel.NewUUID(),
			SellerID:        kernel.NewUUID(),
			ProductID:       kernel.NewUUID(),
			Quantity:        1,
			UnitPrice:       unit,
			Breakdown:       validBreakdown(t, "100.00", "10.00", "90.00"),
			TransportCharge: kernel.ZeroMoney(),
			PickupAddress:   validAddress(t, "north"),
			DeliveryAddress: validAddress(t, "south"),
			ScanToken:       order.NewScanToken(),
			Status:          order.Placed,
			Version:         0,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "version is invalid")
	})
}

func TestScanToken(t *testing.T) {
	t.Run("should generate unique opaque tokens", func(t *testing.T) {
		t1 := order.NewScanToken()
		t2 := order.NewScanToken()

		assert.NotEmpty(t, t1.String())
		assert.False(t, t1.IsEqual(t2))
	})

	t.Run("should round-trip through string form", func(t *testing.T) {
		t1 := order.NewScanToken()

		t2, err := order.ScanTokenFromString(t1.String())

		require.NoError(t, err)
		assert.True(t, t1.IsEqual(t2))
	})

	t.Run("should reject malformed token", func(t *testing.T) {
		_, err := order.ScanTokenFromString("not-a-token")

		require.Error(t, err)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var token order.ScanToken

		require.Error(t, token.Validate())
	})
}
