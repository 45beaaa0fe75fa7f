// Copyright (C) 2024-2026, Modrange Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/modrange/modrange/benchmark"
	"github.com/modrange/modrange/utils/logging"
)

var errNoSizes = errors.New("no domain sizes provided")

type Config struct {
	Benchmark benchmark.Config
	Logging   logging.Config

	// MetricsAddress is the host:port to serve prometheus metrics on while
	// benchmarks run. Empty disables the HTTP exposition.
	MetricsAddress string
}

func modrangeFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("modrange", flag.ContinueOnError)

	fs.String(ConfigFileKey, "", "Config file specifying benchmark options. Command line flags override the file")

	// Benchmark
	fs.String(SizesKey, "10000,100000,1000000", "Comma separated domain sizes to benchmark")
	fs.Int64(SeedKey, 42, "Seed for the entropy source. Runs with the same seed draw the same ids")
	fs.String(MetricsAddressKey, "", "If non-empty, serve prometheus metrics on this address while benchmarks run")
	fs.String(MetricsNamespaceKey, "modrange", "Namespace prefix of the registered metrics")

	// Logging
	fs.String(LogLevelKey, logging.Debug.String(), "Log level written to the log file")
	fs.String(LogDisplayLevelKey, logging.Info.String(), "Log level written to the console")
	fs.String(LogDirKey, "", "Directory to write rotated log files into. Empty disables file logging")

	return fs
}

// getViper returns the viper environment from parsing the config file given
// on the command line and any parsed command line flags
func getViper() (*viper.Viper, error) {
	v := viper.New()
	fs := modrangeFlagSet()
	pflag.CommandLine.AddGoFlagSet(fs)
	pflag.Parse()
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		return nil, err
	}
	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(os.ExpandEnv(v.GetString(ConfigFileKey)))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// GetConfig parses the command line, and optionally a config file, into a
// Config.
func GetConfig() (Config, error) {
	v, err := getViper()
	if err != nil {
		return Config{}, err
	}
	return getConfigFromViper(v)
}

// getConfigFromViper sets attributes on [Config] based on the values defined
// in the [viper] environment
func getConfigFromViper(v *viper.Viper) (Config, error) {
	sizes, err := parseSizes(v.GetString(SizesKey))
	if err != nil {
		return Config{}, err
	}

	logConfig := logging.DefaultConfig()
	logConfig.Directory = os.ExpandEnv(v.GetString(LogDirKey))
	logConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return Config{}, err
	}
	logConfig.DisplayLevel, err = logging.ToLevel(v.GetString(LogDisplayLevelKey))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Benchmark: benchmark.Config{
			Sizes:     sizes,
			Seed:      v.GetInt64(SeedKey),
			Namespace: v.GetString(MetricsNamespaceKey),
		},
		Logging:        logConfig,
		MetricsAddress: v.GetString(MetricsAddressKey),
	}, nil
}

func parseSizes(s string) ([]uint64, error) {
	parts := strings.Split(s, ",")
	sizes := make([]uint64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		size, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid domain size %q: %w", part, err)
		}
		if size == 0 {
			return nil, fmt.Errorf("invalid domain size %q: must be positive", part)
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return nil, errNoSizes
	}
	return sizes, nil
}
