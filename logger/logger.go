// Package logger holds the process-wide zap logger.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLevel names the environment variable that sets the default level.
const EnvLevel = "PUTTY_LOG_LEVEL"

var (
	mu    sync.RWMutex
	inner = zap.NewNop()
)

// ParseLevel maps DEBUG, INFO, WARN and ERROR (any case) onto zap levels.
// An empty string means info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "INFO":
		return zap.InfoLevel, nil
	case "DEBUG":
		return zap.DebugLevel, nil
	case "WARN", "WARNING":
		return zap.WarnLevel, nil
	case "ERROR":
		return zap.ErrorLevel, nil
	}
	return zap.InfoLevel, fmt.Errorf("unknown log level %q", s)
}

// LevelFromEnv reads EnvLevel, falling back to info on bad values.
func LevelFromEnv() zapcore.Level {
	lvl, err := ParseLevel(os.Getenv(EnvLevel))
	if err != nil {
		return zap.InfoLevel
	}
	return lvl
}

// New builds a logger writing to stderr. console picks the human-readable
// encoder instead of JSON.
func New(level zapcore.Level, console bool) (*zap.Logger, error) {
	encoding := "json"
	encCfg := zap.NewProductionEncoderConfig()
	if console {
		encoding = "console"
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}

// Init replaces the global logger.
func Init(level zapcore.Level, console bool) error {
	l, err := New(level, console)
	if err != nil {
		return err
	}
	Set(l)
	return nil
}

// Set installs l as the global logger; tests use it with zaptest/observer.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	inner = l
	mu.Unlock()
}

// L returns the global logger. It is a no-op logger until Init runs.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return inner
}

// Sync flushes buffered entries. Errors from syncing stderr are ignored.
func Sync() {
	_ = L().Sync()
}
