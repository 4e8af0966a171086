package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/straion/straion-claude-plugin/internal/adapters/straion"
	"github.com/straion/straion-claude-plugin/internal/domain"
	"github.com/straion/straion-claude-plugin/internal/ports"
)

const hookSessionStart = "session-start"

// testSessionStarterOverride replaces the straion CLI in tests.
var testSessionStarterOverride ports.SessionStarter

func newSessionStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   hookSessionStart,
		Short: "Relay a SessionStart event to `straion session-start`",
		Long: `Reads a SessionStart event from stdin and runs

  straion session-start --session-id <session_id>

with this process's stdin, stdout and stderr. The command exits with the
CLI's exit status, or 1 when the CLI could not be started.`,
		Args: cobra.NoArgs,
		RunE: runSessionStart,
	}
}

func runSessionStart(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	app, err := NewAppContext(ctx, cmd.ErrOrStderr(), hookSessionStart)
	if err != nil {
		app.Close(ctx)
		return err
	}
	defer app.Close(ctx)

	input, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	event, err := domain.ParseSessionStart(input)
	if err != nil {
		return err
	}
	if event.SessionID == "" {
		app.Logger.Warn("Event has no session_id, relaying an empty value")
	}

	code, err := sessionStarter(cmd, app).SessionStart(ctx, event.SessionID)
	app.Metrics.RecordSessionStart(ctx, code)
	if err != nil {
		app.Logger.Error("Failed to run straion CLI", zap.Error(err))
		return &ExitCodeError{Code: 1}
	}
	if code != 0 {
		app.Logger.Debug("straion CLI failed", zap.Int("exit_code", code))
		return &ExitCodeError{Code: code}
	}
	return nil
}

func sessionStarter(cmd *cobra.Command, app *AppContext) ports.SessionStarter {
	if testSessionStarterOverride != nil {
		return testSessionStarterOverride
	}
	starter := straion.NewCLI(app.Config.StraionBin)
	starter.Stdin = cmd.InOrStdin()
	starter.Stdout = cmd.OutOrStdout()
	starter.Stderr = cmd.ErrOrStderr()
	return starter
}
