// Copyright (C) 2024-2026, Modrange Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package benchmark

import (
	"time"

	"golang.org/x/exp/slices"

	"gonum.org/v1/gonum/stat"
)

// Result aggregates the measurements of one benchmark run.
type Result struct {
	Size  uint64
	Draws uint64

	MeanLatency time.Duration
	P95Latency  time.Duration
	MaxLatency  time.Duration

	// MaxRanges is the largest range count the pool reached during the run.
	// RangeBound is the theoretical maximum, ⌈Size/2⌉.
	MaxRanges  int
	RangeBound uint64
}

// makeResult aggregates [latencies], sorting them in place. [latencies] must
// be non-empty, in nanoseconds.
func makeResult(size uint64, latencies []float64, maxRanges int) Result {
	slices.Sort(latencies)
	return Result{
		Size:        size,
		Draws:       uint64(len(latencies)),
		MeanLatency: time.Duration(stat.Mean(latencies, nil)),
		P95Latency:  time.Duration(stat.Quantile(0.95, stat.Empirical, latencies, nil)),
		MaxLatency:  time.Duration(latencies[len(latencies)-1]),
		MaxRanges:   maxRanges,
		RangeBound:  (size + 1) / 2,
	}
}
