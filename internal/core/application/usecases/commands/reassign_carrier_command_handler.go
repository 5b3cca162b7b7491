package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tracking"
)

// ErrCarrierNotEligible is returned when a re-assignment names a carrier that
// is unverified or inactive.
var ErrCarrierNotEligible = errors.New("carrier is not verified and active")

// ReassignCarrierCommandHandler applies manual carrier overrides. Each named
// carrier is checked for eligibility; the order itself rejects changes after
// shipment. The override is recorded on the tracking trail.
type ReassignCarrierCommandHandler struct {
	uowFactory ReassignUoWFactory
	logger     *slog.Logger
}

// NewReassignCarrierCommandHandler creates a handler for carrier overrides.
func NewReassignCarrierCommandHandler(
	uowFactory ReassignUoWFactory,
	logger *slog.Logger,
) ReassignCarrierCommandHandler {
	return ReassignCarrierCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "reassign_carrier"),
	}
}

// Handle processes the re-assignment command.
func (h *ReassignCarrierCommandHandler) Handle(ctx context.Context, cmd ReassignCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.checkEligible(ctx, uow, cmd.SourceCarrierID()); err != nil {
		return err
	}
	if err = h.checkEligible(ctx, uow, cmd.DestinationCarrierID()); err != nil {
		return err
	}

	if err = ord.AssignCarriers(cmd.SourceCarrierID(), cmd.DestinationCarrierID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	actor, err := tracking.NewActor(cmd.ActorID(), tracking.RoleAdmin)
	if err != nil {
		return err
	}
	event, err := tracking.NewEvent(
		kernel.NewUUID(), ord.ID(), ord.Status(), actor, nil, "carriers re-assigned")
	if err != nil {
		return err
	}
	if err = uow.TrackingRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *ReassignCarrierCommandHandler) checkEligible(
	ctx context.Context, uow ReassignUoW, carrierID *kernel.UUID,
) error {
	if carrierID == nil {
		return nil
	}

	c, err := uow.CarrierRepository().Get(ctx, *carrierID)
	if err != nil {
		return err
	}
	if !c.IsEligible() {
		return ErrCarrierNotEligible
	}
	return nil
}
