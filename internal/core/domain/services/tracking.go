package services

import (
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
)

// TrackingEventKind identifies tracking payloads on the wire.
const TrackingEventKind = "tracking"

// ProgressStep describes one stage of the lifecycle in a tracking event.
// Reached is cumulative: every stage up to and including the current one is
// marked reached, later stages are not.
type ProgressStep struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Reached bool   `json:"reached"`
}

// TrackingEvent is the serializable snapshot of an order's progress pushed
// to clients. It is derived fresh from the order on every build and never
// stored.
type TrackingEvent struct {
	Kind        string         `json:"kind"`
	Status      string         `json:"status"`
	StatusLabel string         `json:"statusLabel"`
	UpdatedAt   string         `json:"updatedAt"`
	Progress    []ProgressStep `json:"progress"`
}

// BuildTrackingEvent computes the tracking snapshot for the order's current
// state. Pure and synchronous.
//
// An unrecognized status is handled by the same recovery policy as the
// state machine: progress is computed as if the order were at the first
// stage, and the label falls back to the raw status value.
func BuildTrackingEvent(o *order.Order) TrackingEvent {
	currentIndex, _ := o.Status().Index()

	stages := order.Stages()
	progress := make([]ProgressStep, 0, len(stages))
	for i, stage := range stages {
		progress = append(progress, ProgressStep{
			Value:   stage.String(),
			Label:   stage.Label(),
			Reached: i <= currentIndex,
		})
	}

	return TrackingEvent{
		Kind:        TrackingEventKind,
		Status:      o.Status().String(),
		StatusLabel: o.Status().Label(),
		UpdatedAt:   o.UpdatedAt().Format(time.RFC3339),
		Progress:    progress,
	}
}

// OrderGroup returns the broadcast group name for an order. Every live
// subscriber of the order joins this group.
func OrderGroup(id kernel.UUID) string {
	return "order_" + id.String()
}
