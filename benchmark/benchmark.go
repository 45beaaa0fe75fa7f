// Copyright (C) 2024-2026, Modrange Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package benchmark

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"go.uber.org/zap"

	"github.com/modrange/modrange/sampler"
	"github.com/modrange/modrange/utils/bitset"
	"github.com/modrange/modrange/utils/logging"
	"github.com/modrange/modrange/utils/timer"
)

var errDuplicateID = errors.New("duplicate id drawn")

type Config struct {
	// Sizes of the domains to benchmark, one full run per entry.
	Sizes []uint64
	// Seed for the entropy source. Runs with the same seed and size draw the
	// same ids in the same order.
	Seed int64
	// Namespace prefixes the registered metrics.
	Namespace string
}

// Runner drives a range pool through full domain consumption while measuring
// per-draw latency and the pool's range count.
type Runner struct {
	config  Config
	log     logging.Logger
	metrics *metrics
}

func New(config Config, log logging.Logger, registerer prometheus.Registerer) (*Runner, error) {
	m, err := newMetrics(config.Namespace, registerer)
	if err != nil {
		return nil, err
	}
	return &Runner{
		config:  config,
		log:     log,
		metrics: m,
	}, nil
}

// RunAll benchmarks every configured domain size in order.
func (r *Runner) RunAll() ([]Result, error) {
	results := make([]Result, 0, len(r.config.Sizes))
	for _, size := range r.config.Sizes {
		result, err := r.Run(size)
		if err != nil {
			return nil, fmt.Errorf("benchmarking size %d: %w", size, err)
		}
		r.log.Info("benchmark finished",
			zap.Uint64("size", result.Size),
			zap.Duration("meanLatency", result.MeanLatency),
			zap.Duration("p95Latency", result.P95Latency),
			zap.Duration("maxLatency", result.MaxLatency),
			zap.Int("maxRanges", result.MaxRanges),
			zap.Uint64("rangeBound", result.RangeBound),
		)
		results = append(results, result)
	}
	return results, nil
}

// Run drains a fresh pool of [size] ids, timing every draw and verifying that
// no id is returned twice.
func (r *Runner) Run(size uint64) (Result, error) {
	pool, err := sampler.NewRangePool(size)
	if err != nil {
		return Result{}, err
	}

	source := sampler.NewSource(r.config.Seed)
	drawn := bitset.New(size)
	latencies := make([]float64, 0, size)
	maxRanges := 0

	progressInterval := size / 10
	if progressInterval == 0 {
		progressInterval = 1
	}

	r.log.Info("starting benchmark",
		zap.Uint64("size", size),
		zap.Int64("seed", r.config.Seed),
	)
	startTime := time.Now()
	for i := uint64(0); i < size; i++ {
		if i != 0 && i%progressInterval == 0 {
			r.log.Info("benchmark progress",
				zap.Uint64("draws", i),
				zap.Uint64("size", size),
				zap.Duration("eta", timer.EstimateETA(startTime, i, size)),
			)
		}

		entropy := source.Uint64()

		drawStart := time.Now()
		id, err := pool.Draw(entropy)
		elapsed := time.Since(drawStart)
		if err != nil {
			return Result{}, err
		}

		latencies = append(latencies, float64(elapsed))
		r.metrics.drawLatency.Observe(float64(elapsed))
		r.metrics.draws.Inc()
		r.metrics.ranges.Set(float64(pool.Len()))

		if pool.Len() > maxRanges {
			maxRanges = pool.Len()
		}
		// This should be unreachable; a duplicate means the pool's partition
		// broke.
		if drawn.Contains(id) {
			return Result{}, fmt.Errorf("%w: %d", errDuplicateID, id)
		}
		drawn.Add(id)
	}

	return makeResult(size, latencies, maxRanges), nil
}
