//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

// Package metrics implements the prometheus metrics of the
// multiplier.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tlmul"

// Collector holds the multiplier metrics. A nil collector discards
// all observations.
type Collector struct {
	Multiplications *prometheus.CounterVec
	Iterations      prometheus.Histogram
	Duration        prometheus.Histogram
	Mismatches      prometheus.Counter
}

// New creates a collector and registers its metrics to reg.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		Multiplications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "multiplications_total",
			Help:      "Number of multiplications by mode",
		}, []string{"mode"}),
		Iterations: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "iterations",
			Help:      "Number of iterations per multiplication",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "multiplication_duration_seconds",
			Help:      "Multiplication latency",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 2, 20),
		}),
		Mismatches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mismatches_total",
			Help:      "Number of products not matching the reference",
		}),
	}
}

// Observe records one multiplication.
func (c *Collector) Observe(mode string, iterations int, d time.Duration) {
	if c == nil {
		return
	}
	c.Multiplications.WithLabelValues(mode).Inc()
	c.Iterations.Observe(float64(iterations))
	c.Duration.Observe(d.Seconds())
}

// Mismatch records a product mismatch.
func (c *Collector) Mismatch() {
	if c == nil {
		return
	}
	c.Mismatches.Inc()
}
