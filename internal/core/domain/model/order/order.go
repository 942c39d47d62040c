package order

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a tracked customer order. It is the aggregate root that
// manages the order lifecycle from preparation through delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty customer name
//   - Status only changes through ChangeStatus, which refreshes UpdatedAt
//   - Can only be created through NewOrder or RestoreOrder
//
// A stored status outside the known stage set is preserved as-is on
// restore; the state machine's recovery policy (see Status.Next) treats it
// as the first stage when deriving transitions or progress.
type Order struct {
	id           kernel.UUID
	customerName string
	status       Status
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewOrder creates a new Order in the initial Preparing stage.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - customerName: display name of the customer awaiting the order
//
// Returns a validation error if any parameter is invalid.
func NewOrder(id kernel.UUID, customerName string) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Preparing,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence.
//
// The status is intentionally NOT validated here: a stored value outside
// the known stage set must survive rehydration so the recovery policy can
// treat it as the first stage instead of failing the read.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the name of the customer awaiting the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Status returns the current lifecycle stage of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last status change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// NextStatus derives the stage that follows the current one, applying the
// state machine's recovery policy for unknown stored values.
func (o *Order) NextStatus() Status {
	return o.status.Next()
}

// IsCompleted reports whether the order reached the terminal stage.
func (o *Order) IsCompleted() bool {
	return o.status.IsFinal()
}

// ChangeStatus moves the order to the given stage and refreshes UpdatedAt.
// The target stage must be a member of the known stage set; this is the
// only mutation path for the order's status.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}
