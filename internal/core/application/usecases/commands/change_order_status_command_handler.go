package commands

import (
	"context"

	"ordertrack/internal/core/ports"
)

// ChangeOrderStatusCommandHandler is the notification orchestrator for
// explicit status changes. For every transition it persists the new stage,
// broadcasts the fresh tracking event to the order's live subscribers and
// runs the synchronous observer fan-out, in that order.
//
// Transitions are serialized per order id through the shared
// StatusChangeLocks registry.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, hub, locks)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Shipped)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	// result.Notifications holds one message per attached observer
type ChangeOrderStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	broadcaster ports.Broadcaster
	locks       *StatusChangeLocks
}

// NewChangeOrderStatusCommandHandler creates the orchestrator for explicit
// status changes. The broadcaster must never be nil; deployments without a
// live-push backend inject the null implementation.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	broadcaster ports.Broadcaster,
	locks *StatusChangeLocks,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
		locks:       locks,
	}
}

// Handle loads the order and applies the requested transition. A
// persistence failure aborts the whole operation; the broadcast and the
// observer fan-out only ever see committed state.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (StatusChangeResult, error) {
	if err := cmd.Validate(); err != nil {
		return StatusChangeResult{}, err
	}

	unlock := h.locks.Lock(cmd.OrderID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return StatusChangeResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trackedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return StatusChangeResult{}, err
	}

	return applyStatusChange(ctx, uow, h.broadcaster, trackedOrder, cmd.Status())
}
