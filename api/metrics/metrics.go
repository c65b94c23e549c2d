// Package metrics exposes the Prometheus instruments for the gateway.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OperationsTotal counts gateway operations by resource kind, operation and
// outcome ("ok" or "error").
var OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "stripe_mirror",
	Name:      "operations_total",
	Help:      "Gateway operations by resource, operation and outcome.",
}, []string{"resource", "op", "outcome"})

// Observe records one finished operation.
func Observe(resource, op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	OperationsTotal.WithLabelValues(resource, op, outcome).Inc()
}
