package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLedgerQueryHandler reads a payee's movements and computes the balance.
type GetLedgerQueryHandler struct {
	db *gorm.DB
}

// NewGetLedgerQueryHandler creates a handler for ledger reads.
func NewGetLedgerQueryHandler(db *gorm.DB) GetLedgerQueryHandler {
	return GetLedgerQueryHandler{db: db}
}

// Handle executes the query. A payee with no movements gets a zero balance
// and an empty movement list.
func (h GetLedgerQueryHandler) Handle(
	ctx context.Context,
	query GetLedgerQuery,
) (GetLedgerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLedgerQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, order_id, movement_type, amount, created_at
		FROM ledger_entries
		WHERE payee_id = ?
		ORDER BY created_at DESC, id
	`, query.PayeeID().Bytes()).Rows()
	if err != nil {
		return GetLedgerQueryResponse{}, err
	}
	defer rows.Close()

	resp := GetLedgerQueryResponse{
		PayeeID:   query.PayeeID(),
		Balance:   kernel.ZeroMoney(),
		Movements: make([]LedgerMovement, 0),
	}

	for rows.Next() {
		var (
			id, orderID  uuid.UUID
			movementType int
			amount       string
			createdAt    time.Time
		)

		if err = rows.Scan(&id, &orderID, &movementType, &amount, &createdAt); err != nil {
			return GetLedgerQueryResponse{}, err
		}

		movement := LedgerMovement{
			MovementType: ledger.MovementType(movementType),
			CreatedAt:    createdAt,
		}
		if movement.EntryID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetLedgerQueryResponse{}, err
		}
		if movement.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return GetLedgerQueryResponse{}, err
		}
		if movement.Amount, err = kernel.NewMoneyFromString(amount); err != nil {
			return GetLedgerQueryResponse{}, err
		}

		if movement.MovementType == ledger.WithdrawalDebit {
			resp.Balance = resp.Balance.Sub(movement.Amount)
		} else {
			resp.Balance = resp.Balance.Add(movement.Amount)
		}

		resp.Movements = append(resp.Movements, movement)
	}

	if err = rows.Err(); err != nil {
		return GetLedgerQueryResponse{}, err
	}

	return resp, nil
}
