// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics declares the Prometheus collectors exported by the gateway.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shelfscope_gateway_requests_total",
		Help: "Total number of HTTP requests served by the gateway",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shelfscope_gateway_request_duration_seconds",
		Help:    "Duration of gateway HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	UpstreamDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "shelfscope_upstream_request_duration_seconds",
		Help:    "Latency of catalog API calls in seconds",
		Buckets: prometheus.DefBuckets,
	})

	UpstreamFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shelfscope_upstream_failures_total",
		Help: "Catalog API calls that failed for any reason",
	})
)
