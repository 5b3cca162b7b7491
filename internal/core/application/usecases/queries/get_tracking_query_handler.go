package queries

import (
	"context"
	"database/sql"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrackingQueryHandler reads an order's event trail, oldest first.
type GetTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingQueryHandler creates a handler for tracking-history reads.
func NewGetTrackingQueryHandler(db *gorm.DB) GetTrackingQueryHandler {
	return GetTrackingQueryHandler{db: db}
}

// Handle executes the query. An order with no events yields an empty slice,
// which also covers unknown order ids; callers that need existence checks use
// GetOrderQuery.
func (h GetTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingQuery,
) ([]GetTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, status, actor_role, latitude, longitude, note, occurred_at
		FROM tracking_events
		WHERE order_id = ?
		ORDER BY occurred_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]GetTrackingQueryResponse, 0)

	for rows.Next() {
		var (
			id         uuid.UUID
			status     int
			actorRole  int
			latitude   sql.NullFloat64
			longitude  sql.NullFloat64
			note       string
			occurredAt time.Time
		)

		if err = rows.Scan(&id, &status, &actorRole, &latitude, &longitude, &note, &occurredAt); err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := GetTrackingQueryResponse{
			EventID:    eventID,
			Status:     order.Status(status),
			ActorRole:  tracking.ActorRole(actorRole),
			Note:       note,
			OccurredAt: occurredAt,
		}
		if latitude.Valid {
			resp.Latitude = &latitude.Float64
		}
		if longitude.Valid {
			resp.Longitude = &longitude.Float64
		}

		events = append(events, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
