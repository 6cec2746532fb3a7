package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitdash/internal/domain"
)

func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("GITDASH_HOME", home)
	return home
}

func TestLoadSettings_MissingFile(t *testing.T) {
	withHome(t)

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := withHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()
	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestLoadSettings_UnknownStore(t *testing.T) {
	home := withHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(`{"tracked_store":"redis"}`), 0644))

	_, err := LoadSettings()
	assert.ErrorIs(t, err, domain.ErrUnknownStore)
}

func TestSaveAndLoadSettings(t *testing.T) {
	withHome(t)
	port := 9000
	rows := 50

	require.NoError(t, SaveSettings(&Settings{
		GitBin:        "/opt/git/bin/git",
		MaxCommitRows: &rows,
		Port:          &port,
		TrackedStore:  TrackedStoreSQLite,
	}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "/opt/git/bin/git", settings.GitBin)
	require.NotNil(t, settings.Port)
	assert.Equal(t, 9000, *settings.Port)
	assert.Equal(t, 50, *settings.MaxCommitRows)
	assert.Equal(t, TrackedStoreSQLite, settings.TrackedStore)
	assert.Nil(t, settings.Debug)
}

func TestSettingsValidate(t *testing.T) {
	negative := -1
	bigPort := 70000

	tests := []struct {
		name     string
		settings Settings
		wantErr  bool
	}{
		{name: "empty", settings: Settings{}},
		{name: "json store", settings: Settings{TrackedStore: TrackedStoreJSON}},
		{name: "negative concurrency", settings: Settings{EnrichConcurrency: &negative}, wantErr: true},
		{name: "port out of range", settings: Settings{Port: &bigPort}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	for _, key := range []string{"repo_path", "git_bin", "port", "max_commit_rows", "tracked_store", "debug"} {
		assert.Contains(t, example, key)
	}
	assert.Equal(t, 300, example["commit_scan_depth"])
	assert.Equal(t, false, example["debug"])
}
