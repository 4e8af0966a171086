package domain

import (
	"testing"
)

func TestParsePostToolUse(t *testing.T) {
	input := []byte(`{
		"tool_name": "edit_file",
		"tool_input": {"path": "a.ts", "operation": "replace", "old_str": "x", "new_str": "y"},
		"tool_result": {"success": true, "status": "ok", "data": {"lines": 3}},
		"prompt": "fix bug",
		"timestamp": "2024-01-01T00:00:00Z",
		"session_id": "s1",
		"conversation_id": "c1"
	}`)

	event, err := ParsePostToolUse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertEqual(t, "ToolName", "edit_file", event.ToolName)
	assertEqual(t, "SessionID", "s1", event.SessionID)
	assertEqual(t, "ConversationID", "c1", event.ConversationID)
	assertEqual(t, "Prompt", "fix bug", event.Prompt)
	assertEqual(t, "Timestamp", `"2024-01-01T00:00:00Z"`, string(event.Timestamp))

	if event.ToolInput == nil {
		t.Fatal("expected tool_input")
	}
	assertEqual(t, "Path", "a.ts", event.ToolInput.Path)
	assertEqual(t, "Operation", "replace", event.ToolInput.Operation)
	assertEqual(t, "OldStr", "x", event.ToolInput.OldStr)

	if event.ToolResult == nil || event.ToolResult.Success == nil {
		t.Fatal("expected tool_result.success")
	}
	assertEqual(t, "Success", true, *event.ToolResult.Success)
	assertEqual(t, "Status", "ok", *event.ToolResult.Status)
	assertEqual(t, "Data", `{"lines": 3}`, string(event.ToolResult.Data))
	if event.ToolResult.Error != nil {
		t.Errorf("expected no error, got %q", *event.ToolResult.Error)
	}
}

func TestParsePostToolUse_Malformed(t *testing.T) {
	if _, err := ParsePostToolUse([]byte(`{"tool_name": `)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestParsePostToolUse_NonStringTimestamp(t *testing.T) {
	event, err := ParsePostToolUse([]byte(`{"tool_name":"edit_file","timestamp":1700000000}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, "ToolName", "edit_file", event.ToolName)
	assertEqual(t, "Timestamp", "1700000000", string(event.Timestamp))
}

func TestToolInput_Lenient(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		path      string
		operation string
	}{
		{"all strings", `{"tool_input": {"path": "a.ts", "operation": "replace"}}`, "a.ts", "replace"},
		{"array description", `{"tool_input": {"path": "a.ts", "operation": "replace", "description": ["x"]}}`, "a.ts", "replace"},
		{"numeric old_str", `{"tool_input": {"path": "a.ts", "old_str": 42, "new_str": {"k": 1}}}`, "a.ts", ""},
		{"numeric path", `{"tool_input": {"path": 7, "operation": "create"}}`, "", "create"},
		{"null path", `{"tool_input": {"path": null, "operation": true}}`, "", ""},
		{"extra keys", `{"tool_input": {"path": "b.go", "command": ["ls"], "limit": 10}}`, "b.go", ""},
		{"input not an object", `{"tool_input": "ls -la"}`, "", ""},
		{"input is an array", `{"tool_input": ["a.ts"]}`, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := ParsePostToolUse([]byte(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if event.ToolInput == nil {
				t.Fatal("expected tool_input")
			}
			assertEqual(t, "Path", tt.path, event.ToolInput.Path)
			assertEqual(t, "Operation", tt.operation, event.ToolInput.Operation)
		})
	}
}

func TestToolResult_Failed(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		failed bool
	}{
		{"absent", `{"tool_name": "t"}`, false},
		{"null", `{"tool_result": null}`, false},
		{"empty", `{"tool_result": {}}`, false},
		{"success true", `{"tool_result": {"success": true}}`, false},
		{"success false", `{"tool_result": {"success": false}}`, true},
		{"success false with status", `{"tool_result": {"success": false, "status": "done"}}`, true},
		{"success null", `{"tool_result": {"success": null}}`, false},
		{"success string false", `{"tool_result": {"success": "false"}}`, false},
		{"error string", `{"tool_result": {"error": "boom"}}`, true},
		{"error with success true", `{"tool_result": {"success": true, "error": "boom"}}`, true},
		{"error empty string", `{"tool_result": {"error": ""}}`, false},
		{"error null", `{"tool_result": {"error": null}}`, false},
		{"error false", `{"tool_result": {"error": false}}`, false},
		{"error zero", `{"tool_result": {"error": 0}}`, false},
		{"error number", `{"tool_result": {"error": 2}}`, true},
		{"error object", `{"tool_result": {"error": {"code": 1}}}`, true},
		{"result not an object", `{"tool_result": "ok"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := ParsePostToolUse([]byte(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := event.ToolResult.Failed(); got != tt.failed {
				t.Errorf("Failed() = %v, want %v", got, tt.failed)
			}
		})
	}
}

func TestToolResult_NonStringErrorKeepsJSON(t *testing.T) {
	event, err := ParsePostToolUse([]byte(`{"tool_result": {"error": {"code": 1}}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, "Error", `{"code": 1}`, *event.ToolResult.Error)
}

func TestParseSessionStart(t *testing.T) {
	event, err := ParseSessionStart([]byte(`{"session_id": "abc-123", "hook_event_name": "SessionStart", "source": "startup"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertEqual(t, "SessionID", "abc-123", event.SessionID)
	assertEqual(t, "HookEventName", "SessionStart", event.HookEventName)
	assertEqual(t, "Source", "startup", event.Source)
}

func TestParseSessionStart_Malformed(t *testing.T) {
	if _, err := ParseSessionStart([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func assertEqual[T comparable](t *testing.T, name string, expected, actual T) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", name, expected, actual)
	}
}
