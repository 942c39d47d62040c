package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/metrics"
)

// CompletedOrderNotice is the fixed notification returned when a caller
// tries to advance an order that already reached the terminal stage.
const CompletedOrderNotice = "El pedido ya fue entregado, no hay nuevos cambios que notificar."

// StatusChangeResult carries the outcome of a status transition back to the
// caller: the new stage, the synchronous notification messages and the
// tracking event that was pushed to live subscribers.
type StatusChangeResult struct {
	Status        order.Status
	StatusLabel   string
	Notifications []string
	Completed     bool
	Event         services.TrackingEvent
}

// StatusChangeLocks serializes status transitions per order id. Two
// concurrent transitions on the same order would otherwise both read the
// same current stage and double-apply or diverge; the keyed mutex makes the
// read-modify-write atomic per order while leaving different orders fully
// concurrent.
//
// Mutexes are kept for the lifetime of the process. The map grows with the
// number of distinct orders ever transitioned, which stays small for this
// system's workload.
type StatusChangeLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStatusChangeLocks creates an empty lock registry. One instance must be
// shared by every handler that mutates order status.
func NewStatusChangeLocks() *StatusChangeLocks {
	return &StatusChangeLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutex for the given order id and returns the matching
// unlock function.
func (l *StatusChangeLocks) Lock(id kernel.UUID) func() {
	l.mu.Lock()
	lock, ok := l.locks[id.String()]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[id.String()] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// applyStatusChange performs the orchestrated transition on an already
// loaded order: mutate, persist (field-scoped, committed), broadcast the
// fresh tracking event, then run the observer fan-out.
//
// The caller must hold the order's status-change lock and have an open unit
// of work with the order loaded from it. Persistence always completes
// before the broadcast and the observers read the order, so every
// subscriber sees the post-transition state.
func applyStatusChange(
	ctx context.Context,
	uow OrderUoW,
	broadcaster ports.Broadcaster,
	trackedOrder *order.Order,
	newStatus order.Status,
) (StatusChangeResult, error) {
	if err := trackedOrder.ChangeStatus(newStatus); err != nil {
		return StatusChangeResult{}, err
	}

	if err := uow.OrderRepository().UpdateStatus(ctx, trackedOrder); err != nil {
		return StatusChangeResult{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return StatusChangeResult{}, err
	}

	event := services.BuildTrackingEvent(trackedOrder)
	payload, err := json.Marshal(event)
	if err != nil {
		return StatusChangeResult{}, fmt.Errorf("marshal tracking event: %w", err)
	}
	broadcaster.GroupSend(services.OrderGroup(trackedOrder.ID()), payload)

	subject := services.NewOrderSubject(trackedOrder)
	subject.Attach(services.NewCustomerObserver(trackedOrder.CustomerName()))
	notifications := subject.NotifyAll()

	metrics.StatusTransitions.WithLabelValues(trackedOrder.Status().String()).Inc()
	metrics.NotificationsEmitted.Add(float64(len(notifications)))

	return StatusChangeResult{
		Status:        trackedOrder.Status(),
		StatusLabel:   trackedOrder.Status().Label(),
		Notifications: notifications,
		Completed:     trackedOrder.IsCompleted(),
		Event:         event,
	}, nil
}
