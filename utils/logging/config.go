// Copyright (C) 2024-2026, Modrange Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

type Config struct {
	// Directory to write rotated log files into. Empty disables file logging
	// entirely; output then goes to the console alone.
	Directory string

	// LogLevel is applied to the file core, DisplayLevel to the console core.
	LogLevel     Level
	DisplayLevel Level

	// MaxSize is the size in MiB a log file may reach before rotation.
	MaxSize int
	// MaxFiles is the number of rotated files kept before deletion.
	MaxFiles int
}

func DefaultConfig() Config {
	return Config{
		LogLevel:     Debug,
		DisplayLevel: Info,
		MaxSize:      8,
		MaxFiles:     7,
	}
}
