// Copyright (C) 2024-2026, Modrange Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package benchmark

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/modrange/modrange/sampler"
	"github.com/modrange/modrange/utils/logging"
)

func TestRunnerRun(t *testing.T) {
	require := require.New(t)

	runner, err := New(
		Config{Seed: 42, Namespace: "test"},
		logging.NoLog{},
		prometheus.NewRegistry(),
	)
	require.NoError(err)

	result, err := runner.Run(1000)
	require.NoError(err)

	require.Equal(uint64(1000), result.Size)
	require.Equal(uint64(1000), result.Draws)
	require.Equal(uint64(500), result.RangeBound)
	require.Positive(result.MaxRanges)
	require.LessOrEqual(uint64(result.MaxRanges), result.RangeBound)
	require.LessOrEqual(result.MeanLatency, result.MaxLatency)
	require.LessOrEqual(result.P95Latency, result.MaxLatency)
}

func TestRunnerRunInvalidSize(t *testing.T) {
	require := require.New(t)

	runner, err := New(
		Config{Namespace: "test"},
		logging.NoLog{},
		prometheus.NewRegistry(),
	)
	require.NoError(err)

	_, err = runner.Run(0)
	require.ErrorIs(err, sampler.ErrInvalidDomain)
}

func TestRunnerRunAll(t *testing.T) {
	require := require.New(t)

	sizes := []uint64{16, 64, 256}
	runner, err := New(
		Config{Sizes: sizes, Seed: 1, Namespace: "test"},
		logging.NoLog{},
		prometheus.NewRegistry(),
	)
	require.NoError(err)

	results, err := runner.RunAll()
	require.NoError(err)
	require.Len(results, len(sizes))
	for i, result := range results {
		require.Equal(sizes[i], result.Size)
		require.Equal(sizes[i], result.Draws)
	}
}

func TestNewDuplicateRegistration(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	_, err := New(Config{Namespace: "test"}, logging.NoLog{}, registry)
	require.NoError(err)

	_, err = New(Config{Namespace: "test"}, logging.NoLog{}, registry)
	require.Error(err)
}

func TestMakeResult(t *testing.T) {
	require := require.New(t)

	// 1ns..100ns, shuffled enough to exercise the sort.
	latencies := make([]float64, 0, 100)
	for i := 100; i >= 1; i-- {
		latencies = append(latencies, float64(i))
	}

	result := makeResult(101, latencies, 3)
	require.Equal(uint64(101), result.Size)
	require.Equal(uint64(100), result.Draws)
	require.Equal(uint64(51), result.RangeBound)
	require.Equal(3, result.MaxRanges)
	require.Equal(int64(50), result.MeanLatency.Nanoseconds())
	require.Equal(int64(95), result.P95Latency.Nanoseconds())
	require.Equal(int64(100), result.MaxLatency.Nanoseconds())
}
