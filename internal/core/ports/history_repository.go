package ports

import (
	"context"

	"atelier/internal/core/domain/model/history"
	"atelier/internal/core/domain/model/kernel"
)

// HistoryRepository defines the persistence contract for the append-only
// audit trail. There is deliberately no update or delete operation: a record,
// once appended, is immutable for the lifetime of the order.
//
// The engine never reads history to validate a transition. Validation runs
// against the order's current stage only, keeping the hot path O(1) against
// order state. History reads serve display and audit.
type HistoryRepository interface {
	// Append persists one audit record. Records are only ever created by the
	// transition engine at commit time, inside the same transaction as the
	// order update.
	Append(ctx context.Context, record history.Record) error

	// GetByOrder retrieves the full audit trail of an order, ordered by the
	// time each stage was entered.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]history.Record, error)
}
