// Package logging sets up the structured logger for a game run.
//
// The game owns the terminal while it runs, so logs go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

// LevelEnv names the environment variable consulted when no level is given.
const LevelEnv = "SHOOTER_LOG_LEVEL"

// DefaultLevel is used when neither a flag nor LevelEnv sets a level.
const DefaultLevel = "warn"

// ResolveLevel picks the log level: an explicit value wins, then LevelEnv,
// then DefaultLevel.
func ResolveLevel(explicit string) (log.Level, error) {
	name := explicit
	if name == "" {
		name = config.GetEnv(LevelEnv, DefaultLevel)
	}
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return log.WarnLevel, fmt.Errorf("logging: bad level %q: %w", name, err)
	}
	return level, nil
}

// New creates a logger writing to w. Every record carries the run id.
func New(w io.Writer, level log.Level, runID string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           level,
	})
	return logger.With("run", runID)
}

// Open appends to the log file at path, creating it and its directory if
// needed. A leading ~ expands to the home directory. The returned closer
// must be closed when the run ends.
func Open(path string, level log.Level) (*log.Logger, io.Closer, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory %s: %w", dir, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	return New(f, level, uuid.NewString()), f, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
