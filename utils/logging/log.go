// Copyright (C) 2024-2026, Modrange Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gopkg.in/natefinch/lumberjack.v2"
)

var _ Logger = (*log)(nil)

// Logger defines the interface used to keep a record of all events that
// happen to the program.
type Logger interface {
	Fatal(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)

	SetLogLevel(Level)
	SetDisplayLevel(Level)

	// Stop flushes and closes any underlying log file.
	Stop()
}

type log struct {
	internalLogger *zap.Logger
	logLevel       zap.AtomicLevel
	displayLevel   zap.AtomicLevel
	fileWriter     io.Closer
}

// NewLogger returns a logger named [prefix] that tees output between the
// console and, when [config.Directory] is set, a rotated log file.
func NewLogger(prefix string, config Config) (Logger, error) {
	logLevel := zap.NewAtomicLevelAt(zapcore.Level(config.LogLevel))
	displayLevel := zap.NewAtomicLevelAt(zapcore.Level(config.DisplayLevel))

	consoleEncoderConfig := zap.NewProductionEncoderConfig()
	consoleEncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	consoleEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEncoderConfig),
			zapcore.AddSync(os.Stdout),
			displayLevel,
		),
	}

	var fileWriter io.Closer
	if config.Directory != "" {
		if err := os.MkdirAll(config.Directory, 0o755); err != nil {
			return nil, err
		}
		writer := &lumberjack.Logger{
			Filename:   filepath.Join(config.Directory, prefix+".log"),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxFiles,
		}
		fileWriter = writer
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(writer),
			logLevel,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	if prefix != "" {
		logger = logger.Named(prefix)
	}
	return &log{
		internalLogger: logger,
		logLevel:       logLevel,
		displayLevel:   displayLevel,
		fileWriter:     fileWriter,
	}, nil
}

func (l *log) Fatal(msg string, fields ...zap.Field) {
	l.internalLogger.Fatal(msg, fields...)
}

func (l *log) Error(msg string, fields ...zap.Field) {
	l.internalLogger.Error(msg, fields...)
}

func (l *log) Warn(msg string, fields ...zap.Field) {
	l.internalLogger.Warn(msg, fields...)
}

func (l *log) Info(msg string, fields ...zap.Field) {
	l.internalLogger.Info(msg, fields...)
}

func (l *log) Debug(msg string, fields ...zap.Field) {
	l.internalLogger.Debug(msg, fields...)
}

func (l *log) SetLogLevel(level Level) {
	l.logLevel.SetLevel(zapcore.Level(level))
}

func (l *log) SetDisplayLevel(level Level) {
	l.displayLevel.SetLevel(zapcore.Level(level))
}

func (l *log) Stop() {
	_ = l.internalLogger.Sync()
	if l.fileWriter != nil {
		_ = l.fileWriter.Close()
	}
}
