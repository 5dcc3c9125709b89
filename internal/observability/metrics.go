// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments used by the service.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	EntitiesMasked  *prometheus.CounterVec
	NERDegraded     prometheus.Counter
	RequestDuration prometheus.Histogram
}

// NewMetrics registers the service instruments under the given
// namespace using the default registry.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Masking requests by outcome.",
		}, []string{"outcome"}),
		EntitiesMasked: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_masked_total",
			Help:      "Masked entities by type.",
		}, []string{"type"}),
		NERDegraded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ner_degraded_total",
			Help:      "Requests that fell back to pattern-only detection because the recognizer failed.",
		}),
		RequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_ms",
			Help:      "End-to-end masking pipeline duration in milliseconds.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
	}
}

// ObserveRequestDuration records one pipeline invocation.
func (m *Metrics) ObserveRequestDuration(d time.Duration) {
	m.RequestDuration.Observe(float64(d.Milliseconds()))
}

// MetricsHandler exposes the default registry for scraping.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
