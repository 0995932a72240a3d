// Package logger bootstraps the process-wide zap logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared logger. It is a no-op until Init succeeds, so code
// paths exercised before setup (or in tests) stay safe.
var Log = zap.NewNop()

// Init builds Log at the given level ("debug", "info", "warn", "error").
func Init(level string) error {
	logLevel := zapcore.InfoLevel
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		return err
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(logLevel)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	built, err := config.Build()
	if err != nil {
		return err
	}
	Log = built
	return nil
}

// Sync flushes any buffered log entries.
func Sync() error {
	return Log.Sync()
}
