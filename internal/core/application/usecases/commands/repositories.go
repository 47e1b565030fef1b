// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"barbari/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each command declares the narrowest composition it needs, so a handler can
// never reach an aggregate outside its transaction's scope.
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

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// PricingRepoFactory provides access to the pricing repository within a transaction.
	PricingRepoFactory interface {
		PricingRepository() ports.PricingRepository
	}

	// DiscountRepoFactory provides access to the discount repository within a transaction.
	DiscountRepoFactory interface {
		DiscountRepository() ports.DiscountRepository
	}

	// RatingRepoFactory provides access to the rating repository within a transaction.
	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// PricingUoW manages transactions for rate-configuration operations.
	PricingUoW interface {
		TxManager
		PricingRepoFactory
	}

	// PricingUoWFactory creates new pricing unit of work instances.
	PricingUoWFactory interface {
		Create() PricingUoW
	}

	// DiscountUoW manages transactions for discount-code operations.
	DiscountUoW interface {
		TxManager
		DiscountRepoFactory
	}

	// DiscountUoWFactory creates new discount unit of work instances.
	DiscountUoWFactory interface {
		Create() DiscountUoW
	}

	// CreateOrderUoW manages transactions for order creation: the order
	// itself, the active rate configuration it is priced against, and the
	// discount code it may redeem.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		PricingRepoFactory
		DiscountRepoFactory
	}

	// CreateOrderUoWFactory creates new order-creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// LifecycleUoW manages transactions for order status transitions, which
	// may mutate the assigned driver's stats alongside the order.
	LifecycleUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// RatingUoW manages transactions for rating submission, which reads the
	// order, writes the rating, and reaggregates the driver's score.
	RatingUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		RatingRepoFactory
	}

	// RatingUoWFactory creates new rating unit of work instances.
	RatingUoWFactory interface {
		Create() RatingUoW
	}
)
