package ports

import (
	"context"
	"time"
)

// MetricsExporter exports hook metrics to an external observability system.
type MetricsExporter interface {
	// RecordToolUse counts one logged tool invocation.
	RecordToolUse(ctx context.Context, toolName string, success bool)
	// RecordSessionStart counts one relayed session start and the CLI exit code.
	RecordSessionStart(ctx context.Context, exitCode int)
	// RecordContextEmit counts one emitted SessionStart payload.
	RecordContextEmit(ctx context.Context)
	// RecordDuration records how long a hook body ran.
	RecordDuration(ctx context.Context, hook string, d time.Duration)
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}
