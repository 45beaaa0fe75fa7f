// Copyright (C) 2024-2026, Modrange Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/modrange/modrange/utils/logging"
)

func TestParseSizes(t *testing.T) {
	tests := []struct {
		name     string
		sizes    string
		expected []uint64
		fails    bool
	}{
		{
			name:     "single",
			sizes:    "10000",
			expected: []uint64{10000},
		},
		{
			name:     "multiple with spaces",
			sizes:    "10000, 100000 ,1000000",
			expected: []uint64{10000, 100000, 1000000},
		},
		{
			name:  "empty",
			sizes: "",
			fails: true,
		},
		{
			name:  "not a number",
			sizes: "10,ten",
			fails: true,
		},
		{
			name:  "zero size",
			sizes: "10,0",
			fails: true,
		},
		{
			name:  "negative size",
			sizes: "-5",
			fails: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			sizes, err := parseSizes(test.sizes)
			if test.fails {
				require.Error(err)
				return
			}
			require.NoError(err)
			require.Equal(test.expected, sizes)
		})
	}
}

func TestGetConfigFromViper(t *testing.T) {
	require := require.New(t)

	v := viper.New()
	v.Set(SizesKey, "128,256")
	v.Set(SeedKey, 7)
	v.Set(MetricsNamespaceKey, "bench")
	v.Set(MetricsAddressKey, "127.0.0.1:9090")
	v.Set(LogLevelKey, "debug")
	v.Set(LogDisplayLevelKey, "error")
	v.Set(LogDirKey, "/tmp/modrange-logs")

	config, err := getConfigFromViper(v)
	require.NoError(err)

	require.Equal([]uint64{128, 256}, config.Benchmark.Sizes)
	require.Equal(int64(7), config.Benchmark.Seed)
	require.Equal("bench", config.Benchmark.Namespace)
	require.Equal("127.0.0.1:9090", config.MetricsAddress)
	require.Equal(logging.Debug, config.Logging.LogLevel)
	require.Equal(logging.Error, config.Logging.DisplayLevel)
	require.Equal("/tmp/modrange-logs", config.Logging.Directory)
}

func TestGetConfigFromViperBadLevel(t *testing.T) {
	v := viper.New()
	v.Set(SizesKey, "128")
	v.Set(LogLevelKey, "debug")
	v.Set(LogDisplayLevelKey, "shout")

	_, err := getConfigFromViper(v)
	require.Error(t, err)
}
