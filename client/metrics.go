package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var callsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "bnet_client",
		Name:      "calls_total",
		Help:      "SDK operations by outcome (ok, config_error, api_error).",
	},
	[]string{"operation", "outcome"},
)

// observeCall records the outcome of one SDK operation.
func observeCall(operation string, err error) {
	callsTotal.WithLabelValues(operation, outcomeLabel(err)).Inc()
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case IsConfigurationError(err):
		return "config_error"
	default:
		return "api_error"
	}
}
