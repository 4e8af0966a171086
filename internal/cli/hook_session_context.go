package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/straion/straion-claude-plugin/internal/domain"
)

const hookSessionContext = "session-context"

func newSessionContextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   hookSessionContext,
		Short: "Print the SessionStart additional context payload",
		Long: `Writes the fixed SessionStart hookSpecificOutput payload to stdout as
indented JSON. Stdin is not read.`,
		Args: cobra.NoArgs,
		RunE: runSessionContext,
	}
}

func runSessionContext(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	app, err := NewAppContext(ctx, cmd.ErrOrStderr(), hookSessionContext)
	if err != nil {
		app.Close(ctx)
		return err
	}
	defer app.Close(ctx)

	data, err := domain.NewSessionStartPayload().Encode()
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}

	app.Metrics.RecordContextEmit(ctx)
	return nil
}
