package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/metrics"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
//
// Within one transaction it snapshots the catalog price, reserves stock,
// splits the total between platform and seller, assigns zone carriers, and
// writes the order with its first tracking event. Distance enrichment and the
// order-changed notification are best effort: their failure never fails the
// order.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	pricing    services.PriceCalculator
	assigner   services.CarrierAssigner
	distance   ports.DistanceClient
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// The distance client and publisher may be nil when those collaborators are
// not configured.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	pricing services.PriceCalculator,
	assigner services.CarrierAssigner,
	distance ports.DistanceClient,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		assigner:   assigner,
		distance:   distance,
		publisher:  publisher,
		logger:     logger.With("component", "create_order"),
	}
}

// Handle processes the order placement command. On success it returns the
// order's scan token, which the caller hands to the seller for label printing.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderCommand,
) (order.ScanToken, error) {
	if err := cmd.Validate(); err != nil {
		return order.ScanToken{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.ScanToken{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	prod, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return order.ScanToken{}, err
	}

	if err = uow.ProductRepository().ReserveStock(ctx, cmd.ProductID(), cmd.Quantity()); err != nil {
		return order.ScanToken{}, err
	}

	total := prod.UnitPrice().MulInt(cmd.Quantity())
	breakdown, err := h.pricing.Split(total)
	if err != nil {
		return order.ScanToken{}, err
	}

	ord, err := order.NewOrder(
		cmd.OrderID(), cmd.BuyerID(), prod.SellerID(), cmd.ProductID(),
		cmd.Quantity(), prod.UnitPrice(), breakdown, cmd.TransportCharge(),
		cmd.PickupAddress(), cmd.DeliveryAddress(), order.NewScanToken())
	if err != nil {
		return order.ScanToken{}, err
	}

	if err = h.assignCarriers(ctx, uow, ord); err != nil {
		return order.ScanToken{}, err
	}

	h.enrichDistance(ctx, ord)

	if err = uow.OrderRepository().Add(ctx, ord); err != nil {
		return order.ScanToken{}, err
	}

	actor, err := tracking.NewActor(cmd.BuyerID(), tracking.RoleBuyer)
	if err != nil {
		return order.ScanToken{}, err
	}
	event, err := tracking.NewEvent(kernel.NewUUID(), ord.ID(), ord.Status(), actor, nil, "")
	if err != nil {
		return order.ScanToken{}, err
	}
	if err = uow.TrackingRepository().Add(ctx, event); err != nil {
		return order.ScanToken{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.ScanToken{}, err
	}

	metrics.OrdersCreated.Inc()
	h.notify(ctx, ord)
	return ord.ScanToken(), nil
}

func (h *CreateOrderCommandHandler) assignCarriers(
	ctx context.Context, uow CreateOrderUoW, ord *order.Order,
) error {
	pickupZone := ord.PickupAddress().Zone()
	deliveryZone := ord.DeliveryAddress().Zone()

	pickupCandidates, err := uow.CarrierRepository().FindVerifiedByZone(ctx, pickupZone)
	if err != nil {
		return err
	}

	var deliveryCandidates []*carrier.Carrier
	if !pickupZone.IsEqual(deliveryZone) {
		deliveryCandidates, err = uow.CarrierRepository().FindVerifiedByZone(ctx, deliveryZone)
		if err != nil {
			return err
		}
	}

	return h.assigner.Assign(ord, pickupCandidates, deliveryCandidates)
}

// enrichDistance attaches the route estimate when the routing collaborator
// answers in time. Absence or failure leaves the order without an estimate.
func (h *CreateOrderCommandHandler) enrichDistance(ctx context.Context, ord *order.Order) {
	if h.distance == nil {
		return
	}

	estimate, err := h.distance.Estimate(ctx, ord.PickupAddress(), ord.DeliveryAddress())
	if err != nil {
		metrics.DistanceFailures.Inc()
		h.logger.Warn("distance enrichment failed",
			"order_id", ord.ID().String(), "error", err)
		return
	}

	if err = ord.SetDistanceEstimate(estimate); err != nil {
		h.logger.Warn("distance estimate rejected",
			"order_id", ord.ID().String(), "error", err)
	}
}

func (h *CreateOrderCommandHandler) notify(ctx context.Context, ord *order.Order) {
	if h.publisher == nil {
		return
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	if err := h.publisher.PublishOrderChanged(publishCtx, ord); err != nil {
		h.logger.Warn("order event publish failed",
			"order_id", ord.ID().String(), "error", err)
	}
}
