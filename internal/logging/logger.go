// Package logging builds the diagnostic logger hooks write to standard error.
package logging

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel is used when no level is configured or the configured one is invalid.
const DefaultLevel = zapcore.WarnLevel

// New creates a console logger writing to w at the given level.
func New(w io.Writer, level string) (*zap.Logger, error) {
	lvl := DefaultLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return zap.New(newCore(w, DefaultLevel)), fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	return zap.New(newCore(w, lvl)), nil
}

// ForHook tags a logger with the hook name and a fresh invocation id.
func ForHook(l *zap.Logger, hook string) *zap.Logger {
	return l.With(
		zap.String("hook", hook),
		zap.String("invocation_id", uuid.NewString()),
	)
}

func newCore(w io.Writer, lvl zapcore.Level) zapcore.Core {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	return zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), lvl)
}
