package ports

import "github.com/straion/straion-claude-plugin/internal/domain"

// LogSink is an append-only destination for tool use log entries.
type LogSink interface {
	// Prepare makes sure the sink can be written to. It is idempotent.
	Prepare() error
	// Append writes one entry. Previously written entries are never modified.
	Append(entry domain.LogEntry) error
}
