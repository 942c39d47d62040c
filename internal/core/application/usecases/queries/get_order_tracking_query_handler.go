package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler builds the tracking snapshot for one order.
// Reads the order row directly and derives the progress ladder from it, so
// the snapshot always reflects the persisted state at the moment of the read.
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackingQueryHandler creates a handler for tracking queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

// Handle executes the tracking query.
// Returns errs.ObjectNotFoundError if the order does not exist. A stored
// status outside the known lifecycle does not fail the query: the snapshot
// is built with the recovery semantics of the status state machine.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (services.TrackingEvent, error) {
	if err := query.Validate(); err != nil {
		return services.TrackingEvent{}, err
	}

	var customerName, status string
	var createdAt, updatedAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			customer_name,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&customerName, &status, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return services.TrackingEvent{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return services.TrackingEvent{}, err
	}

	trackedOrder, err := order.RestoreOrder(
		query.OrderID(), customerName, order.Status(status), createdAt, updatedAt)
	if err != nil {
		return services.TrackingEvent{}, err
	}

	return services.BuildTrackingEvent(trackedOrder), nil
}
