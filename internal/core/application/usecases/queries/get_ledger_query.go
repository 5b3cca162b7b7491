package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/pkg/guard"
)

var ErrGetLedgerQueryIsNotConstructed = errors.New(
	"GetLedgerQuery must be created via NewGetLedgerQuery constructor",
)

// GetLedgerQuery retrieves a payee's ledger movements and current balance.
type GetLedgerQuery struct {
	payeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLedgerQuery creates a query for a payee's ledger.
func NewGetLedgerQuery(payeeID kernel.UUID) (GetLedgerQuery, error) {
	if err := payeeID.Validate(); err != nil {
		return GetLedgerQuery{}, err
	}
	return GetLedgerQuery{
		payeeID: payeeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLedgerQuery) Validate() error {
	return q.guard.Validate(ErrGetLedgerQueryIsNotConstructed)
}

// PayeeID returns the account whose ledger to fetch.
func (q GetLedgerQuery) PayeeID() kernel.UUID { return q.payeeID }

// LedgerMovement is one row of a payee's ledger view.
type LedgerMovement struct {
	EntryID      kernel.UUID
	OrderID      kernel.UUID
	MovementType ledger.MovementType
	Amount       kernel.Money
	CreatedAt    time.Time
}

// GetLedgerQueryResponse is a payee's ledger view: movements newest first and
// the balance summed from credits minus debits.
type GetLedgerQueryResponse struct {
	PayeeID   kernel.UUID
	Balance   kernel.Money
	Movements []LedgerMovement
}
