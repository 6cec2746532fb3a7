package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Environment variables that relocate gitdash files
const (
	HomeEnv     = "GITDASH_HOME"
	StateDirEnv = "XDG_STATE_HOME"
)

// GetGitdashHome returns $GITDASH_HOME or the ~/.gitdash default
func GetGitdashHome() string {
	if home := os.Getenv(HomeEnv); home != "" {
		return ExpandPath(home)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gitdash"
	}
	return filepath.Join(homeDir, ".gitdash")
}

// GetDBPath returns the sqlite tracked-pending database path
func GetDBPath() string {
	return filepath.Join(GetGitdashHome(), "tracked.db")
}

// GetSettingsPath returns the settings file path
func GetSettingsPath() string {
	return filepath.Join(GetGitdashHome(), "settings.json")
}

// GetLogDir returns the OS-specific directory that holds rotated debug logs
func GetLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "gitdash"), nil
	case "linux":
		stateHome := os.Getenv(StateDirEnv)
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "gitdash"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "gitdash", "logs"), nil
	default:
		return filepath.Join(GetGitdashHome(), "logs"), nil
	}
}

// ResolveRepoPath turns a user supplied repository location into an absolute path.
// An empty location means the working directory. The path need not be a repository
// root; the git adapter walks up from it.
func ResolveRepoPath(repo string) (string, error) {
	repo = strings.TrimSpace(repo)
	if repo == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(ExpandPath(repo))
	if err != nil {
		return "", fmt.Errorf("failed to resolve repository path %q: %w", repo, err)
	}
	return abs, nil
}

// ExpandPath expands a leading ~ or ~/ to the home directory. ~user is left alone.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[1:])
}
