package domain

import (
	"time"
	"unicode/utf8"
)

// EventPostToolUse is the event name written on every log entry.
const EventPostToolUse = "PostToolUse"

// PromptPreviewLength is the maximum number of characters kept in prompt_preview.
const PromptPreviewLength = 200

// TimestampLayout matches JavaScript's Date.prototype.toISOString in UTC.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// LogLevel is the severity recorded on a log entry.
type LogLevel string

const (
	LogLevelInfo  LogLevel = "info"
	LogLevelError LogLevel = "error"
)

// LogEntry is one line of the posttooluse.jsonl file.
// Field order is the on-disk key order.
type LogEntry struct {
	Event          string   `json:"event"`
	ToolName       string   `json:"tool_name"`
	FilePath       *string  `json:"file_path"`
	Operation      *string  `json:"operation"`
	PromptPreview  *string  `json:"prompt_preview"`
	PromptLength   int      `json:"prompt_length"`
	Success        bool     `json:"success"`
	SessionID      *string  `json:"session_id"`
	ConversationID *string  `json:"conversation_id"`
	Timestamp      string   `json:"timestamp"`
	LogLevel       LogLevel `json:"log_level"`
}

// NewLogEntry derives the log entry for a completed tool invocation.
// The event's own timestamp is ignored; now is used instead.
func NewLogEntry(event *PostToolUseEvent, now time.Time) LogEntry {
	success := !event.ToolResult.Failed()

	entry := LogEntry{
		Event:          EventPostToolUse,
		ToolName:       event.ToolName,
		Success:        success,
		SessionID:      nullable(event.SessionID),
		ConversationID: nullable(event.ConversationID),
		Timestamp:      now.UTC().Format(TimestampLayout),
		LogLevel:       LogLevelInfo,
	}
	if !success {
		entry.LogLevel = LogLevelError
	}

	if event.ToolInput != nil {
		entry.FilePath = nullable(event.ToolInput.Path)
		entry.Operation = nullable(event.ToolInput.Operation)
	}

	if event.Prompt != "" {
		preview := TruncateRunes(event.Prompt, PromptPreviewLength)
		entry.PromptPreview = &preview
		entry.PromptLength = utf8.RuneCountInString(event.Prompt)
	}

	return entry
}

// TruncateRunes returns the first n characters of s without splitting a code point.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
