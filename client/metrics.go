package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apollo_client",
			Name:      "requests_total",
			Help:      "Apollo API operations attempted.",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apollo_client",
			Name:      "request_failures_total",
			Help:      "Apollo API operations that returned an error.",
		},
		[]string{"operation", "kind"},
	)
)
