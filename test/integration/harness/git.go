package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestGitSetup holds paths for a complete git test environment.
// It creates a bare repo (simulating remote/origin) and a clone with origin configured.
type TestGitSetup struct {
	BareRepoPath string // Acts as "origin" remote
	ClonePath    string // Working repo with origin configured
	baseDir      string
	tb           testing.TB
}

// RequireGit skips the test when git is not available
func RequireGit(tb testing.TB) {
	tb.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		tb.Skip("git not available in PATH")
	}
}

// NewTestGitSetup creates a complete git environment with origin.
//  1. Isolates git from the user's global and system config
//  2. Creates a bare repo (simulates remote/origin)
//  3. Clones it and pushes an initial commit on main
//
// Setup structure:
//
//	tb.TempDir()/
//	├── bare/           <- git init --bare (acts as origin)
//	├── clone/          <- git clone bare/ clone/ (has origin remote)
//	└── <name>/         <- extra clones from CloneAgain
func NewTestGitSetup(tb testing.TB) *TestGitSetup {
	tb.Helper()
	RequireGit(tb)

	baseDir := tb.TempDir()
	isolateConfig(tb, baseDir)

	bareRepoPath := filepath.Join(baseDir, "bare")
	clonePath := filepath.Join(baseDir, "clone")

	runGitCommand(tb, baseDir, "init", "-q", "--bare", bareRepoPath)
	runGitCommand(tb, bareRepoPath, "symbolic-ref", "HEAD", "refs/heads/main")
	runGitCommand(tb, baseDir, "clone", "-q", bareRepoPath, clonePath)
	configureUser(tb, clonePath)

	g := &TestGitSetup{
		BareRepoPath: bareRepoPath,
		ClonePath:    clonePath,
		baseDir:      baseDir,
		tb:           tb,
	}

	// Ensure branch is named "main" whatever init.defaultBranch says
	runGitCommand(tb, clonePath, "symbolic-ref", "HEAD", "refs/heads/main")
	g.CommitFile(clonePath, "README.md", "# Test Repo\n", "Initial commit")
	runGitCommand(tb, clonePath, "push", "-q", "-u", "origin", "main")

	return g
}

// isolateConfig points git at an empty global config for the rest of the test
func isolateConfig(tb testing.TB, baseDir string) {
	tb.Helper()
	globalConfig := filepath.Join(baseDir, "gitconfig")
	if err := os.WriteFile(globalConfig, nil, 0644); err != nil {
		tb.Fatalf("Failed to create global git config: %v", err)
	}
	tb.Setenv("GIT_CONFIG_GLOBAL", globalConfig)
	tb.Setenv("GIT_CONFIG_NOSYSTEM", "1")
}

func configureUser(tb testing.TB, dir string) {
	tb.Helper()
	runGitCommand(tb, dir, "config", "user.email", "test@example.com")
	runGitCommand(tb, dir, "config", "user.name", "Test User")
	runGitCommand(tb, dir, "config", "commit.gpgsign", "false")
}

// CloneAgain makes a second working copy of origin, checked out on branch
func (g *TestGitSetup) CloneAgain(name, branch string) string {
	g.tb.Helper()
	path := filepath.Join(g.baseDir, name)
	runGitCommand(g.tb, g.baseDir, "clone", "-q", "--branch", branch, g.BareRepoPath, path)
	configureUser(g.tb, path)
	return path
}

// WriteFile writes content to name inside dir, creating parent directories
func (g *TestGitSetup) WriteFile(dir, name, content string) {
	g.tb.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		g.tb.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		g.tb.Fatalf("Failed to write %s: %v", name, err)
	}
}

// CommitFile writes, stages and commits a single file in dir
func (g *TestGitSetup) CommitFile(dir, name, content, message string) {
	g.tb.Helper()
	g.WriteFile(dir, name, content)
	runGitCommand(g.tb, dir, "add", "--", name)
	runGitCommand(g.tb, dir, "commit", "-q", "-m", message)
}

// CreateBranch creates and checks out a branch in dir
func (g *TestGitSetup) CreateBranch(dir, name string) {
	g.tb.Helper()
	runGitCommand(g.tb, dir, "checkout", "-q", "-b", name)
}

// PushBranch pushes a branch from dir to origin and sets it as upstream
func (g *TestGitSetup) PushBranch(dir, name string) {
	g.tb.Helper()
	runGitCommand(g.tb, dir, "push", "-q", "-u", "origin", name)
}

// Fetch updates the remote-tracking refs of dir
func (g *TestGitSetup) Fetch(dir string) {
	g.tb.Helper()
	runGitCommand(g.tb, dir, "fetch", "-q", "origin")
}

// AddSubmodule adds a fresh repository as a submodule of the clone at path and commits it
func (g *TestGitSetup) AddSubmodule(path string) {
	g.tb.Helper()

	source := filepath.Join(g.baseDir, "submodule-source")
	runGitCommand(g.tb, g.baseDir, "init", "-q", source)
	configureUser(g.tb, source)
	g.CommitFile(source, "lib.txt", "lib\n", "lib init")

	runGitCommand(g.tb, g.ClonePath, "-c", "protocol.file.allow=always", "submodule", "add", "-q", source, path)
	runGitCommand(g.tb, g.ClonePath, "commit", "-q", "-m", "Add submodule "+path)
}

// RefExists reports whether ref resolves in the repository at dir
func RefExists(tb testing.TB, dir, ref string) bool {
	tb.Helper()
	cmd := exec.Command("git", "rev-parse", "--verify", "--quiet", ref)
	cmd.Dir = dir
	return cmd.Run() == nil
}

// GitOutput runs a git command in dir and returns its trimmed stdout
func GitOutput(tb testing.TB, dir string, args ...string) string {
	tb.Helper()
	return strings.TrimSpace(runGitCommand(tb, dir, args...))
}

// RunGitCommand executes a git command in the specified directory (exported for tests).
func RunGitCommand(tb testing.TB, dir string, args ...string) {
	tb.Helper()
	runGitCommand(tb, dir, args...)
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, args ...string) string {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
	return string(output)
}
