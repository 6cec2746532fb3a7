package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/gitdash/internal/paths"
)

// Environment variables through which child processes inherit the debug setup
const (
	DebugEnv       = "GITDASH_DEBUG"
	DebugFileEnv   = "GITDASH_DEBUG_FILE"
	MaxLogFilesEnv = "GITDASH_MAX_LOG_FILES"
)

// DefaultMaxLogFiles is the default number of rotated log files kept
const DefaultMaxLogFiles = 1000

// Logger is the public logger instance accessible from all packages
var Logger = discardLogger()

// Options selects where debug logs go
type Options struct {
	Debug    bool
	File     string // Fixed log file; disables rotation
	MaxFiles int    // Rotated files kept in the log directory, 0 keeps all
}

// inherit fills unset options from the environment a parent gitdash process exported
func (o Options) inherit() Options {
	if os.Getenv(DebugEnv) == "1" {
		o.Debug = true
	}
	if o.File == "" {
		o.File = os.Getenv(DebugFileEnv)
	}
	if v := os.Getenv(MaxLogFilesEnv); v != "" && o.MaxFiles == DefaultMaxLogFiles {
		if parsed, err := strconv.Atoi(v); err == nil {
			o.MaxFiles = parsed
		}
	}
	return o
}

// Initialize points Logger at a debug log file, or discards records when debug is off.
// Returns the path of the log file in use, or "" when logs are discarded.
func Initialize(opts Options) (string, error) {
	opts = opts.inherit()
	if !opts.Debug && opts.File == "" {
		Logger = discardLogger()
		return "", nil
	}

	logFilePath, err := opts.logFilePath()
	if err != nil {
		return "", err
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	// Processes sharing one file are told apart by pid
	Logger = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})).With("pid", os.Getpid())

	// Only announce the file when debug was enabled here, not inherited from a parent process
	if os.Getenv(DebugEnv) == "" {
		Logger.Info("Debug logging initialized", "log_file", logFilePath)
		fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", logFilePath)
	}

	return logFilePath, nil
}

func (o Options) logFilePath() (string, error) {
	if o.File != "" {
		if err := os.MkdirAll(filepath.Dir(o.File), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return o.File, nil
	}

	logDir, err := paths.GetLogDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if o.MaxFiles > 0 {
		if err := rotateLogs(logDir, o.MaxFiles); err != nil {
			// Rotation failure does not prevent logging
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(logDir, uuid.New().String()+".log"), nil
}

// rotateLogs removes the oldest *.log files so that, with the file about to be
// created, at most maxLogFiles remain
func rotateLogs(logDir string, maxLogFiles int) error {
	matches, err := filepath.Glob(filepath.Join(logDir, "*.log"))
	if err != nil {
		return fmt.Errorf("failed to list log files: %w", err)
	}

	type logFile struct {
		path    string
		modTime time.Time
	}
	files := make([]logFile, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, logFile{path: m, modTime: info.ModTime()})
	}
	if len(files) < maxLogFiles {
		return nil
	}

	slices.SortFunc(files, func(a, b logFile) int {
		return a.modTime.Compare(b.modTime)
	})

	var errs []error
	for _, f := range files[:len(files)-maxLogFiles+1] {
		if err := os.Remove(f.path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
