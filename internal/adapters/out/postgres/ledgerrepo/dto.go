// Package ledgerrepo persists the append-only financial ledger with GORM.
// A composite unique index on (order_id, movement_type) makes settlement
// idempotent: the second writer of the same movement hits the constraint
// instead of double-crediting.
package ledgerrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryDTO is the database row for a ledger movement.
type EntryDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;uniqueIndex:uidx_ledger_order_movement"`

	PayeeID   uuid.UUID `gorm:"type:uuid;index"`
	PayeeRole int

	MovementType     int             `gorm:"uniqueIndex:uidx_ledger_order_movement"`
	Amount           decimal.Decimal `gorm:"type:numeric(12,2)"`
	SettlementStatus int

	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "ledger_entries".
func (EntryDTO) TableName() string {
	return "ledger_entries"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *ledger.Entry) EntryDTO {
	return EntryDTO{
		ID:               entry.ID().Bytes(),
		OrderID:          entry.OrderID().Bytes(),
		PayeeID:          entry.PayeeID().Bytes(),
		PayeeRole:        int(entry.PayeeRole()),
		MovementType:     int(entry.MovementType()),
		Amount:           entry.Amount().Decimal(),
		SettlementStatus: int(entry.SettlementStatus()),
		CreatedAt:        entry.CreatedAt(),
	}
}

// toDomain reconstructs a ledger entry from a database row.
func toDomain(dto EntryDTO) (*ledger.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	payeeID, err := kernel.UUIDFromBytes(dto.PayeeID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return ledger.RestoreEntry(
		id,
		orderID,
		payeeID,
		ledger.PayeeRole(dto.PayeeRole),
		ledger.MovementType(dto.MovementType),
		amount,
		ledger.SettlementStatus(dto.SettlementStatus),
		dto.CreatedAt,
	)
}
