package services

import (
	"fmt"

	"ordertrack/internal/core/domain/model/order"
)

// OrderObserver is the capability implemented by synchronous subscribers of
// an order. Notify receives the order after a status change, produces the
// notification message for this subscriber and records it in the
// subscriber's own history.
//
// Observer failures are not isolated: the fan-out in OrderSubject.NotifyAll
// runs observers sequentially, so a panicking observer aborts the remaining
// notifications of that call.
type OrderObserver interface {
	Notify(o *order.Order) string
}

// CustomerObserver is the concrete observer representing the customer
// awaiting the order. It accumulates every message it has ever received
// across its lifetime, not just the latest one.
type CustomerObserver struct {
	name          string
	notifications []string
}

// NewCustomerObserver creates an observer for the named customer.
func NewCustomerObserver(name string) *CustomerObserver {
	return &CustomerObserver{name: name}
}

// Notify builds the customer-facing update message for the order's current
// stage, appends it to the observer's history and returns it.
func (c *CustomerObserver) Notify(o *order.Order) string {
	message := fmt.Sprintf(
		"%s recibe una notificación: tu pedido ahora está '%s'.",
		c.name, o.Status().Label(),
	)
	c.notifications = append(c.notifications, message)
	return message
}

// Name returns the customer name this observer notifies.
func (c *CustomerObserver) Name() string {
	return c.name
}

// Notifications returns a copy of every message received so far, in
// delivery order.
func (c *CustomerObserver) Notifications() []string {
	history := make([]string, len(c.notifications))
	copy(history, c.notifications)
	return history
}
