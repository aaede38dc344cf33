// Package logging builds the process-wide zap logger.
package logging

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrAlreadyInitialized is returned by Init after the first successful call.
var ErrAlreadyInitialized = errors.New("logging: already initialized")

var (
	mu          sync.Mutex
	initialized bool
)

// Init builds the process logger and installs it as the zap global. It must be
// called once, before the handler is registered with the host.
func Init(level, format string) (*zap.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	if initialized {
		return nil, ErrAlreadyInitialized
	}
	l, err := New(level, format)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	initialized = true
	return l, nil
}

// New builds a logger without touching the global. Unknown levels fall back to
// info; format "console" selects the development encoder, anything else JSON.
func New(level, format string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}
