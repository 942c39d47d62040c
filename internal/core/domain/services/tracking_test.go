package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTrackingEvent(t *testing.T) {
	t.Run("should contain one progress entry per stage", func(t *testing.T) {
		event := services.BuildTrackingEvent(newTestOrder(t, order.Preparing))

		require.Len(t, event.Progress, len(order.Stages()))
		for i, stage := range order.Stages() {
			assert.Equal(t, stage.String(), event.Progress[i].Value)
			assert.Equal(t, stage.Label(), event.Progress[i].Label)
		}
	})

	t.Run("should mark reached stages cumulatively", func(t *testing.T) {
		event := services.BuildTrackingEvent(newTestOrder(t, order.Outside))

		reached := make([]bool, 0, len(event.Progress))
		for _, step := range event.Progress {
			reached = append(reached, step.Reached)
		}
		assert.Equal(t, []bool{true, true, true, false}, reached)
	})

	t.Run("reached entries always form a prefix", func(t *testing.T) {
		for _, stage := range order.Stages() {
			event := services.BuildTrackingEvent(newTestOrder(t, stage))

			seenUnreached := false
			for _, step := range event.Progress {
				if seenUnreached {
					assert.False(t, step.Reached, "stage %s: reached=true after a false entry", stage)
				}
				if !step.Reached {
					seenUnreached = true
				}
			}
		}
	})

	t.Run("should describe the current stage", func(t *testing.T) {
		event := services.BuildTrackingEvent(newTestOrder(t, order.Shipped))

		assert.Equal(t, services.TrackingEventKind, event.Kind)
		assert.Equal(t, "shipped", event.Status)
		assert.Equal(t, "En camino", event.StatusLabel)
	})

	t.Run("should serialize updatedAt as RFC3339", func(t *testing.T) {
		o := newTestOrder(t, order.Shipped)

		event := services.BuildTrackingEvent(o)

		parsed, err := time.Parse(time.RFC3339, event.UpdatedAt)
		require.NoError(t, err)
		assert.WithinDuration(t, o.UpdatedAt(), parsed, time.Second)
	})

	t.Run("should recover unknown status to the first stage", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "Laura", order.Status("legacy-stage"), time.Now(), time.Now())
		require.NoError(t, err)

		event := services.BuildTrackingEvent(o)

		assert.Equal(t, "legacy-stage", event.Status)
		assert.Equal(t, "legacy-stage", event.StatusLabel)
		// only the first stage counts as reached
		assert.True(t, event.Progress[0].Reached)
		for _, step := range event.Progress[1:] {
			assert.False(t, step.Reached)
		}
	})

	t.Run("should marshal with the wire field names", func(t *testing.T) {
		event := services.BuildTrackingEvent(newTestOrder(t, order.Shipped))

		raw, err := json.Marshal(event)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		for _, field := range []string{"kind", "status", "statusLabel", "updatedAt", "progress"} {
			assert.Contains(t, decoded, field)
		}
	})
}

func TestOrderGroup(t *testing.T) {
	t.Run("should key groups by order id", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.Equal(t, "order_"+id.String(), services.OrderGroup(id))
	})
}
