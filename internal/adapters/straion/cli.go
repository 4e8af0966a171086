package straion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// DefaultBinary is the CLI looked up on PATH when no override is configured.
const DefaultBinary = "straion"

// CLI runs the Straion command line tool with the caller's standard streams.
type CLI struct {
	Binary string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewCLI returns a CLI that inherits the current process's standard streams.
func NewCLI(binary string) *CLI {
	if binary == "" {
		binary = DefaultBinary
	}
	return &CLI{
		Binary: binary,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// SessionStartArgs builds the argument vector for `straion session-start`.
// The session id is passed as a discrete argument and never reaches a shell.
func SessionStartArgs(sessionID string) []string {
	return []string{"session-start", "--session-id", sessionID}
}

func (c *CLI) SessionStart(ctx context.Context, sessionID string) (int, error) {
	return c.run(ctx, SessionStartArgs(sessionID)...)
}

// run returns the child's exit code. Launch failures are returned as errors;
// a child terminated by a signal reports exit code 1.
func (c *CLI) run(ctx context.Context, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, c.Binary, args...)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code, nil
		}
		return 1, nil
	}
	return 1, fmt.Errorf("failed to run %s: %w", c.Binary, err)
}
