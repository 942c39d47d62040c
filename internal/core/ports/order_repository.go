package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists a status change for an existing order.
	// This is a field-scoped update: only the status and updated_at columns
	// change, never the rest of the row.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOrCreateByCustomer retrieves the order for the named customer,
	// creating it with the given initial status when it does not exist.
	// Used by the demo seeding path.
	GetOrCreateByCustomer(ctx context.Context, customerName string, initial order.Status) (*order.Order, error)
}
