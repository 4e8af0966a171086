package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// HookEventBase contains the identifiers the host attaches to every hook event.
type HookEventBase struct {
	SessionID      string `json:"session_id"`
	ConversationID string `json:"conversation_id"`
	HookEventName  string `json:"hook_event_name"`
}

// ToolInput holds the tool parameters the logger cares about. Other keys are ignored,
// and so is any of these keys whose value is not a JSON string.
type ToolInput struct {
	Path        string
	Operation   string
	OldStr      string
	NewStr      string
	Description string
}

// UnmarshalJSON decodes leniently: a tool may pass any shape of input.
func (in *ToolInput) UnmarshalJSON(data []byte) error {
	*in = ToolInput{}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	var raw struct {
		Path        json.RawMessage `json:"path"`
		Operation   json.RawMessage `json:"operation"`
		OldStr      json.RawMessage `json:"old_str"`
		NewStr      json.RawMessage `json:"new_str"`
		Description json.RawMessage `json:"description"`
	}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}

	in.Path = stringValue(raw.Path)
	in.Operation = stringValue(raw.Operation)
	in.OldStr = stringValue(raw.OldStr)
	in.NewStr = stringValue(raw.NewStr)
	in.Description = stringValue(raw.Description)
	return nil
}

// ToolResult is the outcome reported by the tool.
//
// Success is set only when the event carries a JSON boolean. Error is set only when
// the event carries a truthy value: a non-string error is kept as its JSON text.
type ToolResult struct {
	Success *bool
	Status  *string
	Error   *string
	Data    json.RawMessage
}

// UnmarshalJSON decodes leniently so that an unexpected type in one field never
// makes the whole event unparseable.
func (r *ToolResult) UnmarshalJSON(data []byte) error {
	*r = ToolResult{}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	var raw struct {
		Success json.RawMessage `json:"success"`
		Status  json.RawMessage `json:"status"`
		Error   json.RawMessage `json:"error"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}

	r.Data = raw.Data
	if !isNull(raw.Success) {
		var b bool
		if err := json.Unmarshal(raw.Success, &b); err == nil {
			r.Success = &b
		}
	}
	if !isNull(raw.Status) {
		var s string
		if err := json.Unmarshal(raw.Status, &s); err == nil {
			r.Status = &s
		}
	}
	if truthy(raw.Error) {
		var s string
		if err := json.Unmarshal(raw.Error, &s); err != nil {
			s = string(bytes.TrimSpace(raw.Error))
		}
		r.Error = &s
	}
	return nil
}

// Failed reports whether the tool reported an error or an explicit success=false.
// A nil or empty result is a success.
func (r *ToolResult) Failed() bool {
	if r == nil {
		return false
	}
	return r.Error != nil || (r.Success != nil && !*r.Success)
}

// PostToolUseEvent is sent after a tool invocation completes.
type PostToolUseEvent struct {
	HookEventBase
	ToolName   string      `json:"tool_name"`
	ToolInput  *ToolInput  `json:"tool_input"`
	ToolResult *ToolResult `json:"tool_result"`
	Prompt     string      `json:"prompt"`
	// Timestamp is kept as sent, whatever its type. Log entries are stamped at write time.
	Timestamp json.RawMessage `json:"timestamp"`
}

// SessionStartInput is sent when a session starts.
type SessionStartInput struct {
	HookEventBase
	Source string `json:"source"`
}

// ParsePostToolUse parses raw JSON into a PostToolUseEvent.
func ParsePostToolUse(data []byte) (*PostToolUseEvent, error) {
	var event PostToolUseEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("failed to parse PostToolUse event: %w", err)
	}
	return &event, nil
}

// ParseSessionStart parses raw JSON into a SessionStartInput.
func ParseSessionStart(data []byte) (*SessionStartInput, error) {
	var event SessionStartInput
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("failed to parse SessionStart event: %w", err)
	}
	return &event, nil
}

// stringValue returns raw as a string, or "" when it is not a JSON string.
func stringValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// truthy follows JavaScript truthiness for a JSON value.
func truthy(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "false", `""`:
		return false
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err == nil {
		return f != 0
	}
	return true
}
