// Package log holds the process-wide zap logger. It is a no-op until Set is
// called; a full-screen program must not log to the terminal it draws on,
// so Set writes to a file.
package log

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var defaultLogger = zap.NewNop()

func Get() *zap.Logger {
	return defaultLogger
}

// Set replaces the logger with one writing console-encoded entries to path.
func Set(path string, debug bool) error {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      debug,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}

	l, err := cfg.Build()
	if err != nil {
		return errors.Wrapf(err, "log: build logger for %s", path)
	}
	defaultLogger = l
	return nil
}

func Flush() error {
	return defaultLogger.Sync()
}
