//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

// Package logging creates the structured loggers of the tlmul tools.
package logging

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggerKey is the context key of the logger.
type LoggerKey struct{}

// NewContext returns a copy of ctx holding the logger.
func NewContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey{}, logger)
}

// FromContext returns the logger of ctx. If ctx has no logger,
// FromContext returns a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(LoggerKey{}).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// ParseLevel parses the log level name.
func ParseLevel(name string) (zapcore.Level, error) {
	var level zapcore.Level
	err := level.UnmarshalText([]byte(name))
	return level, err
}

// New creates a logger writing to stderr at level. If logFileName is
// not empty, the logger also writes all debug and higher messages to
// the rotated log file.
func New(level zapcore.LevelEnabler, logFileName string, json bool) *zap.Logger {
	return NewWriter(os.Stderr, level, logFileName, json)
}

// NewWriter creates a logger like New but writes console output to
// out.
func NewWriter(out io.Writer, level zapcore.LevelEnabler, logFileName string,
	json bool) *zap.Logger {

	var encoder zapcore.Encoder
	if json {
		encoder = zapcore.NewJSONEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	consoleSyncer := zapcore.Lock(zapcore.AddSync(out))
	var cores []zapcore.Core
	cores = append(cores, zapcore.NewCore(encoder, consoleSyncer, level))

	if logFileName != "" {
		fileLogger := &lumberjack.Logger{
			Filename: logFileName,
			MaxSize:  100,
			MaxAge:   28,
			Compress: true,
		}
		cores = append(cores, zapcore.NewCore(encoder,
			zapcore.AddSync(fileLogger), zap.DebugLevel))
	}

	return zap.New(zapcore.NewTee(cores...))
}
