package jsonl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/straion/straion-claude-plugin/internal/domain"
)

const (
	logDirName  = ".straion"
	logSubDir   = "logs"
	logFileName = "posttooluse.jsonl"
)

// FileSink appends log entries as JSON lines to <projectDir>/.straion/logs/posttooluse.jsonl.
type FileSink struct {
	dir  string
	path string
}

// NewFileSink returns a sink for the log under projectDir. Nothing is touched on disk
// until Prepare or Append is called.
func NewFileSink(projectDir string) *FileSink {
	dir := filepath.Join(projectDir, logDirName, logSubDir)
	return &FileSink{
		dir:  dir,
		path: filepath.Join(dir, logFileName),
	}
}

// Path returns the log file location.
func (s *FileSink) Path() string {
	return s.path
}

// Prepare creates the log directory, including missing parents. It is safe to call
// when the directory already exists.
func (s *FileSink) Prepare() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

// Append encodes the entry and writes it with a single write call so that
// concurrent appenders never interleave inside a line.
func (s *FileSink) Append(entry domain.LogEntry) error {
	line, err := encodeLine(entry)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if _, err := f.Write(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append log entry: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

func encodeLine(entry domain.LogEntry) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entry); err != nil {
		return nil, fmt.Errorf("failed to marshal log entry: %w", err)
	}
	return buf.Bytes(), nil
}
