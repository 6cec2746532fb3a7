package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/renato0307/gitdash/internal/domain"
	"github.com/renato0307/gitdash/internal/paths"
)

// Tracked-pending store backends
const (
	TrackedStoreJSON   = "json"
	TrackedStoreSQLite = "sqlite"
)

// Settings represents the structure of $GITDASH_HOME/settings.json.
// Every field is optional; nil means "not set".
type Settings struct {
	AssetDir              string `json:"asset_dir,omitempty"`
	CommandTimeoutSeconds *int   `json:"command_timeout_seconds,omitempty"`
	CommitScanDepth       *int   `json:"commit_scan_depth,omitempty"`
	DBPath                string `json:"db_path,omitempty"`
	Debug                 *bool  `json:"debug,omitempty"`
	EnrichConcurrency     *int   `json:"enrich_concurrency,omitempty"`
	GitBin                string `json:"git_bin,omitempty"`
	ListenAddress         string `json:"listen_address,omitempty"`
	MaxCommitRows         *int   `json:"max_commit_rows,omitempty"`
	MaxLogFiles           *int   `json:"max_log_files,omitempty"`
	Port                  *int   `json:"port,omitempty"`
	RepoPath              string `json:"repo_path,omitempty"`
	TrackedStore          string `json:"tracked_store,omitempty"`
}

// LoadSettings loads settings from $GITDASH_HOME/settings.json (or ~/.gitdash/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := paths.GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	// Expand paths that start with ~
	settings.AssetDir = paths.ExpandPath(settings.AssetDir)
	settings.DBPath = paths.ExpandPath(settings.DBPath)
	settings.GitBin = paths.ExpandPath(settings.GitBin)
	settings.RepoPath = paths.ExpandPath(settings.RepoPath)

	return &settings, nil
}

// SaveSettings saves settings to $GITDASH_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := paths.GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Validate rejects values no component can work with
func (s *Settings) Validate() error {
	switch s.TrackedStore {
	case "", TrackedStoreJSON, TrackedStoreSQLite:
	default:
		return fmt.Errorf("tracked_store %q: %w", s.TrackedStore, domain.ErrUnknownStore)
	}

	for name, v := range map[string]*int{
		"command_timeout_seconds": s.CommandTimeoutSeconds,
		"commit_scan_depth":       s.CommitScanDepth,
		"enrich_concurrency":      s.EnrichConcurrency,
		"max_commit_rows":         s.MaxCommitRows,
		"max_log_files":           s.MaxLogFiles,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}

	if s.Port != nil && (*s.Port < 0 || *s.Port > 65535) {
		return fmt.Errorf("port %d out of range", *s.Port)
	}

	return nil
}
