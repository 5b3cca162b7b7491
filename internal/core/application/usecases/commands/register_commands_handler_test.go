package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterCarrierCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should persist a verified carrier", func(t *testing.T) {
		cmd, err := commands.NewRegisterCarrierCommand(
			kernel.NewUUID(), "north logistics", testZone(t, "NORTH"), true)
		require.NoError(t, err)

		carrierRepo := new(MockCarrierRepository)
		uow := new(MockUoW)

		var added *carrier.Carrier
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CarrierRepository").Return(carrierRepo).Once(),
			carrierRepo.On("Add", mock.Anything, mock.AnythingOfType("*carrier.Carrier")).
				Run(func(args mock.Arguments) { added = args.Get(1).(*carrier.Carrier) }).
				Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockCarrierUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRegisterCarrierCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		require.NotNil(t, added)
		require.Equal(t, "north logistics", added.Name())
		require.True(t, added.IsVerified())
		require.True(t, added.IsActive())
		uow.AssertExpectations(t)
	})

	t.Run("should leave carrier unverified by default", func(t *testing.T) {
		cmd, err := commands.NewRegisterCarrierCommand(
			kernel.NewUUID(), "south logistics", testZone(t, "SOUTH"), false)
		require.NoError(t, err)

		carrierRepo := new(MockCarrierRepository)
		uow := new(MockUoW)

		var added *carrier.Carrier
		uow.On("Begin", ctx).Return(nil)
		uow.On("CarrierRepository").Return(carrierRepo)
		carrierRepo.On("Add", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { added = args.Get(1).(*carrier.Carrier) }).
			Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)

		factory := new(MockCarrierUoWFactory)
		factory.On("Create").Return(uow)

		h := commands.NewRegisterCarrierCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		require.False(t, added.IsVerified())
		require.False(t, added.IsEligible())
	})

	t.Run("should fail on unconstructed command", func(t *testing.T) {
		factory := new(MockCarrierUoWFactory)
		h := commands.NewRegisterCarrierCommandHandler(factory)

		require.Error(t, h.Handle(ctx, commands.RegisterCarrierCommand{}))
		factory.AssertNotCalled(t, "Create")
	})
}

func TestRegisterProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should persist catalog entry with stock", func(t *testing.T) {
		sellerID := kernel.NewUUID()
		cmd, err := commands.NewRegisterProductCommand(
			kernel.NewUUID(), sellerID, "ceramic mug", testMoney(t, "100.00"), 25)
		require.NoError(t, err)

		prodRepo := new(MockProductRepository)
		uow := new(MockUoW)

		var added *product.Product
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ProductRepository").Return(prodRepo).Once(),
			prodRepo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).
				Run(func(args mock.Arguments) { added = args.Get(1).(*product.Product) }).
				Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockProductUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRegisterProductCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		require.NotNil(t, added)
		require.True(t, added.SellerID().IsEqual(sellerID))
		require.Equal(t, 25, added.Stock())
		uow.AssertExpectations(t)
	})

	t.Run("should reject negative stock", func(t *testing.T) {
		_, err := commands.NewRegisterProductCommand(
			kernel.NewUUID(), kernel.NewUUID(), "mug", testMoney(t, "5.00"), -1)
		require.ErrorIs(t, err, commands.ErrStockIsInvalid)
	})
}
