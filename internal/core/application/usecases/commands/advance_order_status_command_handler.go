package commands

import (
	"context"

	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/core/ports"
)

// AdvanceOrderStatusCommandHandler moves an order one stage forward. It
// guards the terminal stage: advancing a delivered order never mutates,
// persists or broadcasts anything and instead returns the fixed
// CompletedOrderNotice.
//
// Example:
//
//	handler := NewAdvanceOrderStatusCommandHandler(uowFactory, hub, locks)
//	cmd, _ := NewAdvanceOrderStatusCommand(orderID)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if result.Completed {
//	    // order reached (or already was at) the terminal stage
//	}
type AdvanceOrderStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	broadcaster ports.Broadcaster
	locks       *StatusChangeLocks
}

// NewAdvanceOrderStatusCommandHandler creates the orchestrator for
// single-step transitions. It must share its StatusChangeLocks with every
// other handler mutating order status.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	broadcaster ports.Broadcaster,
	locks *StatusChangeLocks,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
		locks:       locks,
	}
}

// Handle derives the next stage from the order's current status and applies
// the transition. The derivation happens under the order's status-change
// lock, so concurrent advances cannot double-apply the same step.
func (h *AdvanceOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrderStatusCommand,
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

	if trackedOrder.IsCompleted() {
		return StatusChangeResult{
			Status:        trackedOrder.Status(),
			StatusLabel:   trackedOrder.Status().Label(),
			Notifications: []string{CompletedOrderNotice},
			Completed:     true,
			Event:         services.BuildTrackingEvent(trackedOrder),
		}, nil
	}

	return applyStatusChange(ctx, uow, h.broadcaster, trackedOrder, trackedOrder.NextStatus())
}
