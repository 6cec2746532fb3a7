package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCommandFailed = errors.New("command failed")
	ErrDetachedHead  = errors.New("detached HEAD state")
	ErrNoUpstream    = errors.New("no upstream configured")
	ErrNotGitRepo    = errors.New("not a git repository")
	ErrRefNotFound   = errors.New("reference not found")
	ErrUnknownStore  = errors.New("unknown tracked store backend")
)

// ValidationError reports caller input that was rejected before touching the backend
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError for field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is or wraps a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// CommandError is an external command that exited abnormally
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Stdout   string
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(e.Stdout)
	}
	if msg == "" {
		msg = fmt.Sprintf("exit status %d", e.ExitCode)
	}
	if len(e.Args) > 0 {
		return fmt.Sprintf("git %s: %s", e.Args[0], msg)
	}
	return msg
}

// Unwrap lets errors.Is match ErrCommandFailed
func (e *CommandError) Unwrap() error {
	return ErrCommandFailed
}

// Output returns the combined stderr and stdout, used to recognise specific failures
func (e *CommandError) Output() string {
	return e.Stderr + "\n" + e.Stdout
}
