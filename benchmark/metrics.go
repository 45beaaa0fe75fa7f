// Copyright (C) 2024-2026, Modrange Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package benchmark

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/modrange/modrange/utils/metric"
)

type metrics struct {
	drawLatency prometheus.Histogram
	ranges      prometheus.Gauge
	draws       prometheus.Counter
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		drawLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "draw_latency",
			Help:      "Latency of a single draw in nanoseconds",
			Buckets:   metric.NanosecondsBuckets,
		}),
		ranges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ranges",
			Help:      "Number of ranges currently held by the pool",
		}),
		draws: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draws",
			Help:      "Total number of draws performed",
		}),
	}

	collectors := []prometheus.Collector{
		m.drawLatency,
		m.ranges,
		m.draws,
	}
	for _, collector := range collectors {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}
