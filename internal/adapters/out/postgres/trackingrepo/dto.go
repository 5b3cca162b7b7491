// Package trackingrepo persists the append-only tracking event trail with
// GORM. Events are only ever inserted and read, never updated or deleted.
package trackingrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// EventDTO is the database row for a tracking event. Latitude and longitude
// are nullable as a pair; a row has either both or neither.
type EventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    int
	ActorID   uuid.UUID `gorm:"type:uuid"`
	ActorRole int

	Latitude  *float64
	Longitude *float64
	Note      string

	OccurredAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "tracking_events".
func (EventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a tracking event to its database representation.
func fromDomain(event *tracking.Event) EventDTO {
	dto := EventDTO{
		ID:         event.ID().Bytes(),
		OrderID:    event.OrderID().Bytes(),
		Status:     int(event.Status()),
		ActorID:    event.ActorID().Bytes(),
		ActorRole:  int(event.ActorRole()),
		Note:       event.Note(),
		OccurredAt: event.OccurredAt(),
	}

	if point := event.Point(); point != nil {
		lat := point.Latitude()
		lon := point.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lon
	}

	return dto
}

// toDomain reconstructs a tracking event from a database row.
func toDomain(dto EventDTO) (*tracking.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	var point *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		p, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		point = &p
	}

	return tracking.RestoreEvent(
		id,
		orderID,
		order.Status(dto.Status),
		actorID,
		tracking.ActorRole(dto.ActorRole),
		point,
		dto.Note,
		dto.OccurredAt,
	)
}
