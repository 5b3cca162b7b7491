package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/codes"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	advanceOrderHandler    commands.AdvanceOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	scanOrderHandler       commands.ScanOrderCommandHandler
	reassignCarrierHandler commands.ReassignCarrierCommandHandler
	registerCarrierHandler commands.RegisterCarrierCommandHandler
	registerProductHandler commands.RegisterProductCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	getTrackingHandler      queries.GetTrackingQueryHandler
	getCarrierOrdersHandler queries.GetCarrierOrdersQueryHandler
	getLedgerHandler        queries.GetLedgerQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	scanOrderHandler commands.ScanOrderCommandHandler,
	reassignCarrierHandler commands.ReassignCarrierCommandHandler,
	registerCarrierHandler commands.RegisterCarrierCommandHandler,
	registerProductHandler commands.RegisterProductCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getTrackingHandler queries.GetTrackingQueryHandler,
	getCarrierOrdersHandler queries.GetCarrierOrdersQueryHandler,
	getLedgerHandler queries.GetLedgerQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		advanceOrderHandler:     advanceOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		scanOrderHandler:        scanOrderHandler,
		reassignCarrierHandler:  reassignCarrierHandler,
		registerCarrierHandler:  registerCarrierHandler,
		registerProductHandler:  registerProductHandler,
		getOrderHandler:         getOrderHandler,
		getTrackingHandler:      getTrackingHandler,
		getCarrierOrdersHandler: getCarrierOrdersHandler,
		getLedgerHandler:        getLedgerHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromBytes(body.BuyerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid buyer id: "+err.Error())
	}
	productID, err := kernel.UUIDFromBytes(body.ProductId[:])
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}
	pickup, err := toAddress(body.PickupAddress)
	if err != nil {
		return badRequest(ctx, "Invalid pickup address: "+err.Error())
	}
	delivery, err := toAddress(body.DeliveryAddress)
	if err != nil {
		return badRequest(ctx, "Invalid delivery address: "+err.Error())
	}
	charge, err := kernel.NewMoneyFromString(body.TransportCharge)
	if err != nil {
		return badRequest(ctx, "Invalid transport charge: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, buyerID, productID, body.Quantity, pickup, delivery, charge)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	token, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{
		OrderId:   orderID.Bytes(),
		ScanToken: token.String(),
	})
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(resp))
}

// AdvanceOrder handles POST /api/v1/orders/{orderId}/advance - moves an order
// to its next lifecycle status.
func (s *Server) AdvanceOrder(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.TransitionRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	actorID, role, err := toActor(body.ActorId, body.ActorRole)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}
	point, err := toGeoPoint(body.Latitude, body.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid scan location: "+err.Error())
	}

	cmd, err := commands.NewAdvanceOrderCommand(
		orderID, actorID, role, point, deref(body.Note), deref(body.ConfirmationCode))
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if err = s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return s.respondStatus(ctx, orderID)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.CancelRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	actorID, role, err := toActor(body.ActorId, body.ActorRole)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID, role, deref(body.Reason))
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return s.respondStatus(ctx, orderID)
}

// ScanParcel handles POST /api/v1/scans/{token} - advances the order behind
// a scanned parcel label.
func (s *Server) ScanParcel(ctx echo.Context, token string) error {
	var body servers.TransitionRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	scanToken, err := order.ScanTokenFromString(token)
	if err != nil {
		return badRequest(ctx, "Invalid scan token: "+err.Error())
	}
	actorID, role, err := toActor(body.ActorId, body.ActorRole)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}
	point, err := toGeoPoint(body.Latitude, body.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid scan location: "+err.Error())
	}

	cmd, err := commands.NewScanOrderCommand(
		scanToken, actorID, role, point, deref(body.Note), deref(body.ConfirmationCode))
	if err != nil {
		return badRequest(ctx, "Invalid scan data: "+err.Error())
	}

	orderID, err := s.scanOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return s.respondStatus(ctx, orderID)
}

// ReassignOrderCarriers handles PUT /api/v1/orders/{orderId}/carriers -
// overrides the order's carrier assignment.
func (s *Server) ReassignOrderCarriers(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.ReassignRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	actorID, role, err := toActor(body.ActorId, body.ActorRole)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}
	source, err := toOptionalUUID(body.SourceCarrierId)
	if err != nil {
		return badRequest(ctx, "Invalid source carrier id: "+err.Error())
	}
	destination, err := toOptionalUUID(body.DestinationCarrierId)
	if err != nil {
		return badRequest(ctx, "Invalid destination carrier id: "+err.Error())
	}

	cmd, err := commands.NewReassignCarrierCommand(orderID, actorID, role, source, destination)
	if err != nil {
		if errors.Is(err, commands.ErrActorIsNotAdmin) {
			return respondError(ctx, http.StatusForbidden, err)
		}
		return badRequest(ctx, "Invalid re-assignment data: "+err.Error())
	}

	if err = s.reassignCarrierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderTracking handles GET /api/v1/orders/{orderId}/tracking - retrieves
// the order's tracking history, oldest first.
func (s *Server) GetOrderTracking(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetTrackingQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	events, err := s.getTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	response := make([]servers.TrackingEvent, len(events))
	for i, event := range events {
		response[i] = servers.TrackingEvent{
			EventId:    event.EventID.Bytes(),
			Status:     event.Status.String(),
			ActorRole:  event.ActorRole.String(),
			Latitude:   event.Latitude,
			Longitude:  event.Longitude,
			Note:       optionalString(event.Note),
			OccurredAt: event.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterCarrier handles POST /api/v1/carriers - registers a zone carrier.
func (s *Server) RegisterCarrier(ctx echo.Context) error {
	var body servers.NewCarrier
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	zone, err := kernel.NewZone(body.Zone)
	if err != nil {
		return badRequest(ctx, "Invalid zone: "+err.Error())
	}

	verified := false
	if body.Verified != nil {
		verified = *body.Verified
	}

	carrierID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCarrierCommand(carrierID, body.Name, zone, verified)
	if err != nil {
		return badRequest(ctx, "Invalid carrier data: "+err.Error())
	}

	if err = s.registerCarrierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CarrierRegistered{
		CarrierId: carrierID.Bytes(),
	})
}

// GetCarrierOrders handles GET /api/v1/carriers/{carrierId}/orders -
// retrieves the carrier's active orders.
func (s *Server) GetCarrierOrders(ctx echo.Context, carrierId openapi_types.UUID) error {
	carrierID, err := kernel.UUIDFromBytes(carrierId[:])
	if err != nil {
		return badRequest(ctx, "Invalid carrier id: "+err.Error())
	}

	query, err := queries.NewGetCarrierOrdersQuery(carrierID)
	if err != nil {
		return badRequest(ctx, "Invalid carrier id: "+err.Error())
	}

	orders, err := s.getCarrierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	response := make([]servers.CarrierOrder, len(orders))
	for i, ord := range orders {
		response[i] = servers.CarrierOrder{
			OrderId:      ord.OrderID.Bytes(),
			Status:       ord.Status.String(),
			Quantity:     ord.Quantity,
			PickupZone:   ord.PickupZone,
			DeliveryZone: ord.DeliveryZone,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterProduct handles POST /api/v1/products - registers a catalog product.
func (s *Server) RegisterProduct(ctx echo.Context) error {
	var body servers.NewProduct
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sellerID, err := kernel.UUIDFromBytes(body.SellerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid seller id: "+err.Error())
	}
	unitPrice, err := kernel.NewMoneyFromString(body.UnitPrice)
	if err != nil {
		return badRequest(ctx, "Invalid unit price: "+err.Error())
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewRegisterProductCommand(productID, sellerID, body.Name, unitPrice, body.Stock)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if err = s.registerProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.ProductRegistered{
		ProductId: productID.Bytes(),
	})
}

// GetPayeeLedger handles GET /api/v1/ledger/{payeeId} - retrieves a payee's
// ledger movements and balance.
func (s *Server) GetPayeeLedger(ctx echo.Context, payeeId openapi_types.UUID) error {
	payeeID, err := kernel.UUIDFromBytes(payeeId[:])
	if err != nil {
		return badRequest(ctx, "Invalid payee id: "+err.Error())
	}

	query, err := queries.NewGetLedgerQuery(payeeID)
	if err != nil {
		return badRequest(ctx, "Invalid payee id: "+err.Error())
	}

	view, err := s.getLedgerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	movements := make([]servers.LedgerMovement, len(view.Movements))
	for i, m := range view.Movements {
		movements[i] = servers.LedgerMovement{
			EntryId:      m.EntryID.Bytes(),
			OrderId:      m.OrderID.Bytes(),
			MovementType: m.MovementType.String(),
			Amount:       m.Amount.String(),
			CreatedAt:    m.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, servers.Ledger{
		PayeeId:   view.PayeeID.Bytes(),
		Balance:   view.Balance.String(),
		Movements: movements,
	})
}

// respondStatus reads the order's committed status for the transition response.
func (s *Server) respondStatus(ctx echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.StatusChanged{
		OrderId: orderID.Bytes(),
		Status:  resp.Status.String(),
	})
}

func toOrderResponse(resp queries.GetOrderQueryResponse) servers.Order {
	out := servers.Order{
		Id:               resp.ID.Bytes(),
		BuyerId:          resp.BuyerID.Bytes(),
		SellerId:         resp.SellerID.Bytes(),
		ProductId:        resp.ProductID.Bytes(),
		Quantity:         resp.Quantity,
		UnitPrice:        resp.UnitPrice.String(),
		TotalPrice:       resp.TotalPrice.String(),
		CommissionAmount: resp.CommissionAmount.String(),
		SellerAmount:     resp.SellerAmount.String(),
		TransportCharge:  resp.TransportCharge.String(),
		PickupZone:       resp.PickupZone,
		DeliveryZone:     resp.DeliveryZone,
		Status:           resp.Status.String(),
		Version:          resp.Version,
		DistanceKm:       resp.DistanceKm,
		DurationMinutes:  resp.DurationMinutes,
		BillUrl:          optionalString(resp.BillURL),
	}

	if resp.SourceCarrierID != nil {
		id := resp.SourceCarrierID.Bytes()
		out.SourceCarrierId = &id
	}
	if resp.DestinationCarrierID != nil {
		id := resp.DestinationCarrierID.Bytes()
		out.DestinationCarrierId = &id
	}
	if resp.DeliveryAgentID != nil {
		id := resp.DeliveryAgentID.Bytes()
		out.DeliveryAgentId = &id
	}

	return out
}

func toAddress(a servers.Address) (kernel.Address, error) {
	zone, err := kernel.NewZone(a.Zone)
	if err != nil {
		return kernel.Address{}, err
	}
	return kernel.NewAddress(a.Street, a.City, zone)
}

func toActor(id openapi_types.UUID, roleName string) (kernel.UUID, tracking.ActorRole, error) {
	actorID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, tracking.RoleUnknown, err
	}
	role, err := tracking.ActorRoleFromString(roleName)
	if err != nil {
		return kernel.UUID{}, tracking.RoleUnknown, err
	}
	return actorID, role, nil
}

func toGeoPoint(latitude, longitude *float64) (*kernel.GeoPoint, error) {
	if latitude == nil || longitude == nil {
		return nil, nil
	}
	point, err := kernel.NewGeoPoint(*latitude, *longitude)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func toOptionalUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	out, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func respondError(ctx echo.Context, status int, err error) error {
	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}

// mapDomainError translates use case failures into HTTP statuses: missing
// objects map to 404, validation failures to 400, state and concurrency
// conflicts to 409, and confirmation code failures to 403.
func mapDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrUnknownScanToken):
		return respondError(ctx, http.StatusNotFound, err)

	case errors.Is(err, commands.ErrConfirmationCodeRequired),
		errors.Is(err, codes.ErrCodeMismatch):
		return respondError(ctx, http.StatusForbidden, err)

	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, order.ErrAlreadyTerminal),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrCarrierChangeAfterShipment),
		errors.Is(err, commands.ErrCarrierNotEligible),
		errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, ledger.ErrDuplicateSettlement):
		return respondError(ctx, http.StatusConflict, err)

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respondError(ctx, http.StatusBadRequest, err)

	default:
		return respondError(ctx, http.StatusInternalServerError, err)
	}
}
