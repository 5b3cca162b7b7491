package carrier_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarrier(t *testing.T) {
	zone, _ := kernel.NewZone("dhaka")

	t.Run("should create active unverified carrier", func(t *testing.T) {
		c, err := carrier.NewCarrier(kernel.NewUUID(), "Swift Logistics", zone)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Swift Logistics", c.Name())
		assert.True(t, c.Zone().IsEqual(zone))
		assert.True(t, c.IsActive())
		assert.False(t, c.IsVerified())
		assert.False(t, c.IsEligible())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := carrier.NewCarrier(kernel.NewUUID(), "", zone)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "carrier name")
	})

	t.Run("should fail with unconstructed zone", func(t *testing.T) {
		var badZone kernel.Zone

		_, err := carrier.NewCarrier(kernel.NewUUID(), "Swift Logistics", badZone)

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed ID", func(t *testing.T) {
		var badID kernel.UUID

		_, err := carrier.NewCarrier(badID, "Swift Logistics", zone)

		require.Error(t, err)
	})
}

func TestCarrier_Eligibility(t *testing.T) {
	zone, _ := kernel.NewZone("dhaka")

	t.Run("should become eligible once verified", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), "Swift Logistics", zone)

		c.Verify()

		assert.True(t, c.IsEligible())
	})

	t.Run("should lose eligibility when deactivated", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), "Swift Logistics", zone)
		c.Verify()

		c.Deactivate()

		assert.False(t, c.IsEligible())
		assert.True(t, c.IsVerified())
	})

	t.Run("should regain eligibility when reactivated", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), "Swift Logistics", zone)
		c.Verify()
		c.Deactivate()

		c.Activate()

		assert.True(t, c.IsEligible())
	})
}

func TestRestoreCarrier(t *testing.T) {
	zone, _ := kernel.NewZone("dhaka")

	t.Run("should rehydrate persisted flags", func(t *testing.T) {
		c, err := carrier.RestoreCarrier(kernel.NewUUID(), "Swift Logistics", zone, true, false)

		require.NoError(t, err)
		assert.True(t, c.IsVerified())
		assert.False(t, c.IsActive())
		assert.False(t, c.IsEligible())
	})
}

func TestCarrier_Validate(t *testing.T) {
	t.Run("should fail validation for nil carrier", func(t *testing.T) {
		var c *carrier.Carrier

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, carrier.ErrCarrierIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var c carrier.Carrier

		require.Error(t, c.Validate())
	})
}
