package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/renato0307/gitdash/internal/config"
	"github.com/renato0307/gitdash/internal/logging"
	"github.com/renato0307/gitdash/internal/paths"
	"github.com/renato0307/gitdash/internal/services"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version      kong.VersionFlag `help:"Show version information"`
	Debug        bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile    string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	GitBin       string           `help:"git binary used for mutations and diff stats" env:"GIT_BIN"`
	MaxLogFiles  int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Repo         string           `help:"Repository to inspect (default: current directory)" short:"r" env:"GIT_DASHBOARD_REPO"`
	TrackedStore string           `help:"Tracked-pending store backend (json or sqlite)"`

	Serve    ServeCmd    `cmd:"" help:"Serve the dashboard JSON API (default)" default:"1"`
	State    StateCmd    `cmd:"state" help:"Print the repository snapshot as JSON"`
	Status   StatusCmd   `cmd:"status" help:"Show working tree counts for tmux status bar" hidden:""`
	Branches BranchesCmd `cmd:"branches" help:"List local branches"`
	Add      AddCmd      `cmd:"add" help:"Stage all changes, modified files only, or one file"`
	Unstage  UnstageCmd  `cmd:"unstage" help:"Unstage everything or one file"`
	Track    TrackCmd    `cmd:"track" help:"Mark untracked files as tracked-pending"`
	Commit   CommitCmd   `cmd:"commit" help:"Commit staged changes"`
	Push     PushCmd     `cmd:"push" help:"Push the current branch"`
	Checkout CheckoutCmd `cmd:"checkout" help:"Switch to or create a branch"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Kong has already applied flags and env tags, so only empty/default values are filled in
	if c.settings == nil {
		c.settings = &config.Settings{}
	}

	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv(logging.MaxLogFilesEnv); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv(logging.DebugEnv); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	if c.Repo == "" {
		c.Repo = c.settings.RepoPath
	}
	if c.GitBin == "" {
		c.GitBin = c.settings.GitBin
	}
	if c.TrackedStore == "" {
		c.TrackedStore = c.settings.TrackedStore
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(logging.Options{
		Debug:    c.Debug,
		File:     c.DebugFile,
		MaxFiles: c.MaxLogFiles,
	})
	if err != nil {
		return err
	}

	// Child processes (git hooks, editors) inherit the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.DebugEnv, "1")
		if logFilePath != "" {
			os.Setenv(logging.DebugFileEnv, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.MaxLogFilesEnv, fmt.Sprintf("%d", c.MaxLogFiles))
	}

	repo, err := paths.ResolveRepoPath(c.Repo)
	if err != nil {
		return err
	}
	c.Repo = repo

	// Create container AFTER logging is initialized so the gorm logger bridge has a target
	container, err := NewContainer(c.containerOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

func (c *CLI) containerOptions() ContainerOptions {
	opts := ContainerOptions{
		CommitScanDepth: services.DefaultCommitScanDepth,
		DBPath:          c.settings.DBPath,
		GitBin:          c.GitBin,
		MaxCommitRows:   services.DefaultMaxCommitRows,
		TrackedStore:    c.TrackedStore,
	}
	if v := c.settings.CommandTimeoutSeconds; v != nil {
		opts.CommandTimeout = time.Duration(*v) * time.Second
	}
	if v := c.settings.CommitScanDepth; v != nil {
		opts.CommitScanDepth = *v
	}
	if v := c.settings.EnrichConcurrency; v != nil {
		opts.EnrichConcurrency = *v
	}
	if v := c.settings.MaxCommitRows; v != nil {
		opts.MaxCommitRows = *v
	}
	return opts
}
