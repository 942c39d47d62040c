package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
)

// EnsureDemoOrderCommandHandler resolves the demo customer's order,
// creating it on first use. Returns the order's identifier so callers (the
// progression job, startup logging) can address it later.
type EnsureDemoOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewEnsureDemoOrderCommandHandler creates a handler for demo order
// seeding.
func NewEnsureDemoOrderCommandHandler(uowFactory OrderUoWFactory) EnsureDemoOrderCommandHandler {
	return EnsureDemoOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves or creates the demo order and returns its id.
func (h *EnsureDemoOrderCommandHandler) Handle(
	ctx context.Context,
	cmd EnsureDemoOrderCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	demoOrder, err := uow.OrderRepository().GetOrCreateByCustomer(ctx, cmd.CustomerName(), order.Preparing)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return demoOrder.ID(), nil
}
