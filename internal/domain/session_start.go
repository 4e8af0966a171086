package domain

import (
	"encoding/json"
	"fmt"
)

// EventSessionStart is the host's name for the session start lifecycle point.
const EventSessionStart = "SessionStart"

// SessionContext is the additional context injected at session start.
const SessionContext = "Session context provided by the Straion plugin (SessionStart hook: session-context)."

// SessionStartOutput is the hookSpecificOutput block of a SessionStart response.
type SessionStartOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext"`
}

// SessionStartPayload is written to stdout by the session-context hook.
type SessionStartPayload struct {
	HookSpecificOutput SessionStartOutput `json:"hookSpecificOutput"`
}

// NewSessionStartPayload returns the fixed SessionStart payload.
func NewSessionStartPayload() SessionStartPayload {
	return SessionStartPayload{
		HookSpecificOutput: SessionStartOutput{
			HookEventName:     EventSessionStart,
			AdditionalContext: SessionContext,
		},
	}
}

// Encode renders the payload as two-space indented JSON with a trailing newline.
func (p SessionStartPayload) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session start payload: %w", err)
	}
	return append(data, '\n'), nil
}
