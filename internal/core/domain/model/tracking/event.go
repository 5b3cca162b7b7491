package tracking

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// ErrEventIsNotConstructed is returned when an Event was not created via
// NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

// Event is one row of the order's delivery audit trail: a status transition
// or scan, who performed it, and optionally where. Events are append-only and
// immutable once written; the full history of an order is the ordered
// sequence of its events.
//
// The engine enforces that every status change has exactly one corresponding
// event, written in the same transaction as the status update.
type Event struct {
	id      kernel.UUID
	orderID kernel.UUID
	status  order.Status

	actorID   kernel.UUID
	actorRole ActorRole

	point *kernel.GeoPoint
	note  string

	occurredAt time.Time

	isConstructed bool
}

// NewEvent records a status transition performed by an actor. The timestamp
// is taken server-side at construction; point and note are optional.
func NewEvent(
	id, orderID kernel.UUID,
	status order.Status,
	actor Actor,
	point *kernel.GeoPoint,
	note string,
) (*Event, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		status.Validate(),
		actor.Validate(),
	); err != nil {
		return nil, err
	}

	return &Event{
		id:            id,
		orderID:       orderID,
		status:        status,
		actorID:       actor.ID(),
		actorRole:     actor.Role(),
		point:         point,
		note:          note,
		occurredAt:    time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreEvent reconstructs an event from persistence with its stored timestamp.
func RestoreEvent(
	id, orderID kernel.UUID,
	status order.Status,
	actorID kernel.UUID,
	actorRole ActorRole,
	point *kernel.GeoPoint,
	note string,
	occurredAt time.Time,
) (*Event, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		status.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return nil, err
	}

	return &Event{
		id:            id,
		orderID:       orderID,
		status:        status,
		actorID:       actorID,
		actorRole:     actorRole,
		point:         point,
		note:          note,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Event was created through a constructor.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID { return e.id }

// OrderID returns the order this event belongs to.
func (e *Event) OrderID() kernel.UUID { return e.orderID }

// Status returns the status the order entered with this event.
func (e *Event) Status() order.Status { return e.status }

// ActorID returns who performed the transition.
func (e *Event) ActorID() kernel.UUID { return e.actorID }

// ActorRole returns the role of the performing actor.
func (e *Event) ActorRole() ActorRole { return e.actorRole }

// Point returns the scan location, or nil when none was reported.
func (e *Event) Point() *kernel.GeoPoint { return e.point }

// Note returns the free-text note, such as a cancellation reason.
func (e *Event) Note() string { return e.note }

// OccurredAt returns the server-side timestamp of the event.
func (e *Event) OccurredAt() time.Time { return e.occurredAt }
