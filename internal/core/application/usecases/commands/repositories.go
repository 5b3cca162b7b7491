// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest UoW that covers the repositories it
// touches, so tests only have to mock what the handler actually uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// LedgerRepoFactory provides access to the ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW manages transactions for status-change operations: the order
	// update and its tracking event commit together.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		TrackingRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages the order creation transaction: stock reservation,
	// order insert, carrier lookup, and the first tracking event are atomic.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		CarrierRepoFactory
		TrackingRepoFactory
		ProductRepoFactory
	}

	// CreateOrderUoWFactory creates order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// CancelOrderUoW manages the cancellation transaction: order update,
	// tracking event, stock release, and a compensating refund entry when the
	// order was already settled.
	CancelOrderUoW interface {
		TxManager
		OrderRepoFactory
		TrackingRepoFactory
		LedgerRepoFactory
		ProductRepoFactory
	}

	// CancelOrderUoWFactory creates cancellation unit of work instances.
	CancelOrderUoWFactory interface {
		Create() CancelOrderUoW
	}

	// SettlementUoW manages the settlement transaction: both ledger credits
	// commit together or not at all.
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		LedgerRepoFactory
	}

	// SettlementUoWFactory creates settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// ReassignUoW manages carrier re-assignment: order update and carrier
	// lookups in one transaction.
	ReassignUoW interface {
		TxManager
		OrderRepoFactory
		CarrierRepoFactory
		TrackingRepoFactory
	}

	// ReassignUoWFactory creates re-assignment unit of work instances.
	ReassignUoWFactory interface {
		Create() ReassignUoW
	}

	// CarrierUoW manages transactions for carrier-only operations.
	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
	}

	// CarrierUoWFactory creates carrier unit of work instances.
	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	// ProductUoW manages transactions for catalog-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}
)
