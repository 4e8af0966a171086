package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ExitCodeError makes the process exit with Code without printing anything.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps a command error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// NewRootCmd builds the straion-hooks command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "straion-hooks",
		Short: "Hook commands for the Straion plugin",
		Long: `straion-hooks implements the Straion plugin's lifecycle hooks.

Each subcommand is invoked once per event by the host and reads the event
JSON from stdin. Register them in the plugin's hooks configuration:

  {
    "hooks": {
      "PostToolUse":  [{"hooks": [{"type": "command", "command": "straion-hooks post-tool-use"}]}],
      "SessionStart": [{"hooks": [
        {"type": "command", "command": "straion-hooks session-start"},
        {"type": "command", "command": "straion-hooks session-context"}
      ]}]
    }
  }`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newPostToolUseCmd())
	rootCmd.AddCommand(newSessionStartCmd())
	rootCmd.AddCommand(newSessionContextCmd())
	return rootCmd
}

func Execute() {
	err := NewRootCmd().Execute()

	var exitErr *ExitCodeError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(ExitCode(err))
}
