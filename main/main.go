// Copyright (C) 2024-2026, Modrange Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.uber.org/zap"

	"github.com/modrange/modrange/benchmark"
	"github.com/modrange/modrange/config"
	"github.com/modrange/modrange/utils/logging"
)

// main is the primary entry point to the modrange benchmark.
func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't load config: %s\n", err)
		os.Exit(1)
	}

	log, err := logging.NewLogger("modrange", cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't initialize logger: %s\n", err)
		os.Exit(1)
	}

	exitCode := run(cfg, log)
	log.Stop()
	os.Exit(exitCode)
}

func run(cfg config.Config, log logging.Logger) int {
	registry := prometheus.NewRegistry()
	if cfg.MetricsAddress != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
			log.Info("serving metrics",
				zap.String("address", cfg.MetricsAddress),
			)
			if err := http.ListenAndServe(cfg.MetricsAddress, mux); err != nil {
				log.Error("metrics server exited",
					zap.Error(err),
				)
			}
		}()
	}

	runner, err := benchmark.New(cfg.Benchmark, log, registry)
	if err != nil {
		log.Error("couldn't initialize benchmark",
			zap.Error(err),
		)
		return 1
	}
	if _, err := runner.RunAll(); err != nil {
		log.Error("benchmark failed",
			zap.Error(err),
		)
		return 1
	}
	return 0
}
