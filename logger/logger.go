// SPDX-License-Identifier: MIT

// Package logger holds the process-wide zap logger. It is a no-op until
// Configure or Set is called, so library code can log unconditionally.
package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// Configure installs a production JSON logger at the given level.
func Configure(level zap.AtomicLevel) error {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Set(l)

	return nil
}

// Set installs l; a nil logger restores the no-op logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	global.Store(l)
}

// Logger returns the current logger.
func Logger() *zap.Logger { return global.Load() }

// Sugar returns the current logger in its sugared form.
func Sugar() *zap.SugaredLogger { return global.Load().Sugar() }

// Sync flushes buffered entries.
func Sync() error { return global.Load().Sync() }
