// SPDX-License-Identifier: MIT

// Package config reads the JSON settings that select the numeric backend,
// the logging level, the parallel window and the archive database.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/linalg/archive"
	"github.com/katalvlaran/linalg/kernel"
	"github.com/katalvlaran/linalg/logger"
	"github.com/katalvlaran/linalg/ops"
)

// ParseConfig parses the raw JSON configuration.
func ParseConfig(raw []byte) (config Config, err error) {
	err = json.Unmarshal(raw, &config)
	if err != nil {
		return config, fmt.Errorf("unmarshal config: %w", err)
	}
	return config, nil
}

type Config struct {
	LogLevel LogLevel `json:"log_level"`
	// Implementation is "native", "optimized" or "blas"; empty keeps the
	// compile-time default.
	Implementation string        `json:"implementation"`
	MaxTasks       int           `json:"max_tasks"`
	Archive        ConfigArchive `json:"archive"`
	Database       Database      `json:"database"`
}

type ConfigArchive struct {
	Compress bool `json:"compress"`
	// Level is a zstd command-line level; 0 keeps the archive default.
	Level int `json:"compression_level,omitempty"`
}

// KernelImplementation resolves the configured backend.
func (c Config) KernelImplementation() (kernel.Implementation, error) {
	if c.Implementation == "" {
		return ops.DefaultImplementation, nil
	}
	impl, err := kernel.ParseImplementation(c.Implementation)
	if err != nil {
		return 0, fmt.Errorf("config implementation: %w", err)
	}
	return impl, nil
}

// EngineOptions translates the configuration into ops engine options.
func (c Config) EngineOptions() ([]ops.Option, error) {
	impl, err := c.KernelImplementation()
	if err != nil {
		return nil, err
	}
	if c.MaxTasks < 0 {
		return nil, fmt.Errorf("config max_tasks: negative value %d", c.MaxTasks)
	}
	return []ops.Option{ops.WithImplementation(impl), ops.WithMaxTasks(c.MaxTasks)}, nil
}

// ArchiveOptions translates the archive section into stream options.
func (c Config) ArchiveOptions() []archive.Option {
	switch {
	case c.Archive.Compress && c.Archive.Level > 0:
		return []archive.Option{archive.WithCompressionLevel(c.Archive.Level)}
	case c.Archive.Compress:
		return []archive.Option{archive.WithCompression()}
	}
	return []archive.Option{archive.WithoutCompression()}
}

// Apply installs the configured logger.
func (c Config) Apply() error {
	if err := logger.Configure(c.LogLevel.Zap()); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	logger.Sugar().Debugw("configuration applied", "implementation", c.Implementation, "maxTasks", c.MaxTasks)
	return nil
}
