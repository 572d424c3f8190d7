// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jeranaias/devguide-tui/internal/config"
)

// Sink selects where log output goes.
type Sink int

const (
	// SinkNone discards everything.
	SinkNone Sink = iota
	// SinkStderr writes human-readable lines to stderr.
	SinkStderr
	// SinkFile appends JSON lines to the configured log file.
	SinkFile
)

// String returns the sink name.
func (s Sink) String() string {
	switch s {
	case SinkStderr:
		return "stderr"
	case SinkFile:
		return "file"
	default:
		return "none"
	}
}

// ParseLevel maps a config level name to a zap level. Empty means info.
func ParseLevel(name string) (zapcore.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return lvl, nil
}

// New builds the logger for a sink using the configured level and path.
// The interactive UI must use SinkFile or SinkNone; stderr would corrupt
// the screen.
func New(cfg *config.Config, sink Sink) (*zap.Logger, error) {
	if sink == SinkNone {
		return zap.NewNop(), nil
	}
	if cfg == nil {
		cfg = config.Default()
	}

	level, err := ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	switch sink {
	case SinkStderr:
		return NewWithWriter(os.Stderr, level, true), nil

	case SinkFile:
		path, err := cfg.LogPath()
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		zc.OutputPaths = []string{path}
		zc.ErrorOutputPaths = []string{path}
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.Sampling = nil

		logger, err := zc.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
		return logger, nil

	default:
		return nil, fmt.Errorf("unknown log sink %d", int(sink))
	}
}

// NewWithWriter builds a logger writing to w. Console encoding is meant for
// people, JSON for files and tests.
func NewWithWriter(w io.Writer, level zapcore.Level, console bool) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if console {
		enc.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(enc)
	} else {
		encoder = zapcore.NewJSONEncoder(enc)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core)
}
