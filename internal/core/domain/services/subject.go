package services

import (
	"ordertrack/internal/core/domain/model/order"
)

// OrderSubject is a domain service that manages the ordered list of
// observers attached to one order and dispatches notifications to them.
//
// A subject is transient: it is reconstructed per operation, owns its
// observer list only for the duration of that operation and is never
// persisted.
//
// Example usage:
//
//	subject := services.NewOrderSubject(trackedOrder)
//	subject.Attach(services.NewCustomerObserver(trackedOrder.CustomerName()))
//
//	messages := subject.NotifyAll()
//	// one message per attached observer, in attachment order
type OrderSubject struct {
	order     *order.Order
	observers []OrderObserver
}

// NewOrderSubject creates a subject bound to the given order.
func NewOrderSubject(o *order.Order) *OrderSubject {
	return &OrderSubject{order: o}
}

// Order returns the order this subject notifies about.
func (s *OrderSubject) Order() *order.Order {
	return s.order
}

// Attach adds an observer to the list. Attachment is identity-based and
// idempotent: attaching the same observer instance twice is a no-op the
// second time.
func (s *OrderSubject) Attach(observer OrderObserver) {
	for _, existing := range s.observers {
		if existing == observer {
			return
		}
	}
	s.observers = append(s.observers, observer)
}

// Detach removes an observer from the list if present; no-op otherwise.
func (s *OrderSubject) Detach(observer OrderObserver) {
	for i, existing := range s.observers {
		if existing == observer {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// NotifyAll dispatches a notification to every attached observer and
// collects the returned messages in attachment order.
//
// The dispatch iterates a snapshot of the list, so attaching or detaching
// observers while a fan-out is in flight does not affect that dispatch.
func (s *OrderSubject) NotifyAll() []string {
	snapshot := make([]OrderObserver, len(s.observers))
	copy(snapshot, s.observers)

	messages := make([]string, 0, len(snapshot))
	for _, observer := range snapshot {
		messages = append(messages, observer.Notify(s.order))
	}
	return messages
}
