package ports

import "context"

// SessionStarter notifies the external Straion CLI that a session started.
type SessionStarter interface {
	// SessionStart blocks until the CLI exits and returns its exit code.
	// A non-nil error means the CLI could not be run at all.
	SessionStart(ctx context.Context, sessionID string) (int, error)
}
