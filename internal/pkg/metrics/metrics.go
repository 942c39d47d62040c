// Package metrics exposes the application's Prometheus collectors. All
// collectors are registered on the default registry and served through the
// /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StatusTransitions counts committed order status transitions by
	// target stage.
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordertrack",
		Name:      "status_transitions_total",
		Help:      "Number of committed order status transitions by target stage.",
	}, []string{"status"})

	// NotificationsEmitted counts messages produced by the synchronous
	// observer fan-out.
	NotificationsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ordertrack",
		Name:      "notifications_emitted_total",
		Help:      "Number of notification messages produced by the observer fan-out.",
	})

	// LiveSubscribers tracks currently open WebSocket tracking connections.
	LiveSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "ordertrack",
		Name:      "live_subscribers",
		Help:      "Currently connected WebSocket tracking subscribers.",
	})
)
