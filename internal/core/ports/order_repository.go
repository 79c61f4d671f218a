// Package ports defines the persistence contracts consumed by the workflow
// engine. These interfaces establish the boundary between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update is conditional on the aggregate's version: the write only succeeds
// when the stored row still carries the version the caller read, and the
// version is incremented as part of the write. A stale version yields
// errs.ErrConcurrencyConflict, which the transition engine handles with a
// bounded re-read-and-retry loop. No lock is ever taken on the row.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, conditional on
	// the aggregate's version matching the stored row. Returns an error
	// unwrapping to errs.ErrConcurrencyConflict when the row was modified
	// concurrently, and to errs.ErrObjectNotFound when the row is absent.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its current version for subsequent conditional updates.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
