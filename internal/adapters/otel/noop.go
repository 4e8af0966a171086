package otel

import (
	"context"
	"time"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordToolUse(ctx context.Context, toolName string, success bool) {}

func (e *NoOpExporter) RecordSessionStart(ctx context.Context, exitCode int) {}

func (e *NoOpExporter) RecordContextEmit(ctx context.Context) {}

func (e *NoOpExporter) RecordDuration(ctx context.Context, hook string, d time.Duration) {}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
