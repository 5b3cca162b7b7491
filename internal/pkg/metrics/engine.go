package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Engine-level collectors, registered on the default registry at startup.
var (
	// OrdersCreated counts successfully placed orders.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "engine",
		Name:      "orders_created_total",
		Help:      "Number of orders placed.",
	})

	// StatusTransitions counts lifecycle transitions by resulting status.
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "engine",
		Name:      "status_transitions_total",
		Help:      "Number of order status transitions.",
	}, []string{"status"})

	// SettlementRaces counts settlement attempts that lost the insert race
	// and were absorbed as already settled.
	SettlementRaces = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "engine",
		Name:      "settlement_races_total",
		Help:      "Number of duplicate settlement attempts absorbed.",
	})

	// DistanceFailures counts route enrichments lost to the distance
	// collaborator failing or timing out.
	DistanceFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "engine",
		Name:      "distance_failures_total",
		Help:      "Number of failed distance enrichments.",
	})
)
