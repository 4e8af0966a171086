package cli

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/straion/straion-claude-plugin/internal/adapters/jsonl"
	"github.com/straion/straion-claude-plugin/internal/domain"
	"github.com/straion/straion-claude-plugin/internal/ports"
)

const hookPostToolUse = "post-tool-use"

func newPostToolUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   hookPostToolUse,
		Short: "Append a PostToolUse event to .straion/logs/posttooluse.jsonl",
		Long: `Reads a PostToolUse event from stdin and appends one JSON line to
<project>/.straion/logs/posttooluse.jsonl, where <project> is $CLAUDE_PROJECT_DIR
or the working directory.

Logging is best-effort: every failure is reported on stderr and the command
still exits 0.`,
		Args: cobra.NoArgs,
		RunE: runPostToolUse,
	}
}

func runPostToolUse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	app, err := NewAppContext(ctx, cmd.ErrOrStderr(), hookPostToolUse)
	if err != nil {
		app.Logger.Error("Using default configuration", zap.Error(err))
	}
	defer app.Close(ctx)

	start := time.Now()
	defer func() { app.Metrics.RecordDuration(ctx, hookPostToolUse, time.Since(start)) }()

	sink := jsonl.NewFileSink(app.Config.ProjectDir)
	if err := sink.Prepare(); err != nil {
		app.Logger.Error("Failed to prepare log directory", zap.Error(err))
	}

	input, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		app.Logger.Error("Failed to read stdin", zap.Error(err))
		return nil
	}
	if len(bytes.TrimSpace(input)) == 0 {
		return nil
	}

	if err := logToolUse(ctx, app, sink, input); err != nil {
		app.Logger.Error("Failed to log tool usage", zap.Error(err))
	}
	return nil
}

func logToolUse(ctx context.Context, app *AppContext, sink ports.LogSink, input []byte) error {
	event, err := domain.ParsePostToolUse(input)
	if err != nil {
		return err
	}

	entry := domain.NewLogEntry(event, time.Now())
	if err := sink.Append(entry); err != nil {
		return err
	}

	app.Metrics.RecordToolUse(ctx, entry.ToolName, entry.Success)
	app.Logger.Debug("Logged tool use", zap.String("tool_name", entry.ToolName), zap.Bool("success", entry.Success))
	return nil
}
