package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

// setupHookEnv isolates a test from the caller's environment and returns a fresh project dir.
func setupHookEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CLAUDE_PROJECT_DIR", dir)
	t.Setenv("STRAION_HOOKS_LOG_LEVEL", "warn")
	t.Setenv("STRAION_OTEL_ENABLED", "false")
	t.Setenv("STRAION_OTEL_ENDPOINT", "")
	t.Setenv("STRAION_BIN", "straion")
	return dir
}

// runCommand executes the root command with the given stdin and arguments.
func runCommand(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func fileExists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	return err == nil
}

type toolUse struct {
	name    string
	success bool
}

// recordingMetrics captures calls made to the metrics exporter.
type recordingMetrics struct {
	mu            sync.Mutex
	toolUses      []toolUse
	sessionStarts []int
	contextEmits  int
	durations     []string
	closed        bool
}

func useRecordingMetrics(t *testing.T) *recordingMetrics {
	t.Helper()
	m := &recordingMetrics{}
	testMetricsOverride = m
	t.Cleanup(func() { testMetricsOverride = nil })
	return m
}

func (m *recordingMetrics) RecordToolUse(ctx context.Context, toolName string, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.toolUses = append(m.toolUses, toolUse{toolName, success})
}

func (m *recordingMetrics) RecordSessionStart(ctx context.Context, exitCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionStarts = append(m.sessionStarts, exitCode)
}

func (m *recordingMetrics) RecordContextEmit(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contextEmits++
}

func (m *recordingMetrics) RecordDuration(ctx context.Context, hook string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durations = append(m.durations, hook)
}

func (m *recordingMetrics) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// fakeSessionStarter records the session ids it is asked to relay.
type fakeSessionStarter struct {
	sessionIDs []string
	code       int
	err        error
}

func useFakeSessionStarter(t *testing.T, code int, err error) *fakeSessionStarter {
	t.Helper()
	f := &fakeSessionStarter{code: code, err: err}
	testSessionStarterOverride = f
	t.Cleanup(func() { testSessionStarterOverride = nil })
	return f
}

func (f *fakeSessionStarter) SessionStart(ctx context.Context, sessionID string) (int, error) {
	f.sessionIDs = append(f.sessionIDs, sessionID)
	return f.code, f.err
}
