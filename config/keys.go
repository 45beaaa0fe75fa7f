// Copyright (C) 2024-2026, Modrange Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey       = "config-file"
	SizesKey            = "sizes"
	SeedKey             = "seed"
	MetricsAddressKey   = "metrics-address"
	MetricsNamespaceKey = "metrics-namespace"
	LogLevelKey         = "log-level"
	LogDisplayLevelKey  = "log-display-level"
	LogDirKey           = "log-dir"
)
