package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/renato0307/gitdash/internal/domain"
	"github.com/renato0307/gitdash/internal/logging"
	"github.com/renato0307/gitdash/internal/ports"
)

// DefaultBin is the git binary looked up on PATH
const DefaultBin = "git"

var (
	credentialURLPattern = regexp.MustCompile(`(https?://)[^\s/@]+@`)
	secretParamPattern   = regexp.MustCompile(`(?i)(token|secret|password|passwd|bearer)=[^\s]+`)
)

// ExecRunner implements ports.CommandRunner by running the git binary
type ExecRunner struct {
	bin     string
	timeout time.Duration
}

// Verify interface compliance at compile time
var _ ports.CommandRunner = (*ExecRunner)(nil)

// NewExecRunner creates an ExecRunner for bin (DefaultBin when empty).
// A positive timeout bounds every invocation.
func NewExecRunner(bin string, timeout time.Duration) *ExecRunner {
	if strings.TrimSpace(bin) == "" {
		bin = DefaultBin
	}
	return &ExecRunner{bin: bin, timeout: timeout}
}

// Bin returns the binary this runner executes
func (e *ExecRunner) Bin() string {
	return e.bin
}

// Execute implements CommandRunner.Execute
func (e *ExecRunner) Execute(ctx context.Context, dir string, args []string) (domain.ExecResult, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	logging.FromContext(ctx).Debug("Running git command", "bin", e.bin, "args", args, "dir", dir)

	cmd := exec.CommandContext(ctx, e.bin, args...)
	cmd.Dir = dir
	// Fixed locale so failure messages can be recognised; never block on credential prompts
	cmd.Env = append(os.Environ(), "LC_ALL=C", "GIT_TERMINAL_PROMPT=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := domain.ExecResult{
		Stderr: stderr.String(),
		Stdout: stdout.String(),
	}
	if err == nil {
		return result, nil
	}

	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		return result, fmt.Errorf("git %s timed out after %s: %w", subcommand(args), e.timeout, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		logging.Logger.Debug("Git command exited abnormally",
			"bin", e.bin,
			"args", args,
			"exit_code", result.ExitCode,
			"stderr", strings.TrimSpace(redact(result.Stderr)))
		return result, &domain.CommandError{
			Args:     args,
			ExitCode: result.ExitCode,
			Stderr:   redact(result.Stderr),
			Stdout:   redact(result.Stdout),
		}
	}

	return result, fmt.Errorf("failed to run %s: %w", e.bin, err)
}

// subcommand returns the git subcommand name for messages
func subcommand(args []string) string {
	if len(args) == 0 {
		return "<no-args>"
	}
	return args[0]
}

// redact removes obvious credential substrings from command output
func redact(s string) string {
	s = credentialURLPattern.ReplaceAllString(s, "${1}<redacted>@")
	return secretParamPattern.ReplaceAllString(s, "$1=<redacted>")
}
