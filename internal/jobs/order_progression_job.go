package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// OrderProgressionJob advances the demo order one lifecycle stage per tick.
// Every transition runs through the same status change pipeline as the HTTP
// surface, so live subscribers of the demo order see events appear without
// anyone touching the API. Once the order is delivered the job keeps
// ticking but the pipeline short-circuits without writes.
type OrderProgressionJob struct {
	handler         commands.AdvanceOrderStatusCommandHandler
	orderID         kernel.UUID
	intervalSeconds int
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewOrderProgressionJob creates a job advancing the given order every
// intervalSeconds seconds.
func NewOrderProgressionJob(
	handler commands.AdvanceOrderStatusCommandHandler,
	orderID kernel.UUID,
	intervalSeconds int,
	logger *slog.Logger,
) *OrderProgressionJob {
	return &OrderProgressionJob{
		handler:         handler,
		orderID:         orderID,
		intervalSeconds: intervalSeconds,
		cron:            cron.New(),
		logger:          logger.With("component", "order_progression_job"),
	}
}

// Start begins the progression schedule. The interval is a constant delay
// between ticks, so any positive number of seconds yields an even cadence.
func (j *OrderProgressionJob) Start() error {
	if j.intervalSeconds <= 0 {
		return fmt.Errorf("progression interval must be positive, got %d seconds", j.intervalSeconds)
	}

	j.cron.Schedule(cron.Every(time.Duration(j.intervalSeconds)*time.Second), cron.FuncJob(func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewAdvanceOrderStatusCommand(j.orderID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order progression job misconfigured", "error", cmdErr)
			return
		}

		result, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order progression job failed", "error", handleErr)
			return
		}

		if result.Completed {
			j.logger.DebugContext(ctx, "Demo order already delivered, nothing to advance")
			return
		}

		j.logger.InfoContext(ctx, "Demo order advanced",
			"status", result.Status.String(),
			"label", result.StatusLabel)
	}))

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order progression job started",
		"interval_seconds", j.intervalSeconds)
	return nil
}

// Stop stops the progression schedule.
func (j *OrderProgressionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order progression job stopped")
}
