package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterstorage "github.com/renato0307/gitdash/internal/adapters/storage"
	"github.com/renato0307/gitdash/internal/config"
	"github.com/renato0307/gitdash/internal/domain"
	"github.com/renato0307/gitdash/internal/services"
)

func TestNewTrackedStore(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		store, err := newTrackedStore("", "")
		require.NoError(t, err)
		assert.IsType(t, &adapterstorage.JSONTrackedStore{}, store)
	})

	t.Run("sqlite at db path", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "nested", "tracked.db")
		store, err := newTrackedStore(config.TrackedStoreSQLite, dbPath)
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })
		assert.IsType(t, &adapterstorage.SQLiteTrackedStore{}, store)
		assert.FileExists(t, dbPath)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := newTrackedStore("redis", "")
		assert.ErrorIs(t, err, domain.ErrUnknownStore)
	})
}

func TestNewContainer(t *testing.T) {
	c, err := NewContainer(ContainerOptions{GitBin: "/opt/git/bin/git"})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	assert.NotNil(t, c.SnapshotService)
	assert.NotNil(t, c.MutationService)
}

func TestContainerOptions_FromSettings(t *testing.T) {
	timeout, depth, concurrency, rows := 5, 50, 4, 20
	cli := &CLI{
		GitBin:       "/usr/local/bin/git",
		TrackedStore: config.TrackedStoreSQLite,
		settings: &config.Settings{
			CommandTimeoutSeconds: &timeout,
			CommitScanDepth:       &depth,
			DBPath:                "/tmp/tracked.db",
			EnrichConcurrency:     &concurrency,
			MaxCommitRows:         &rows,
		},
	}

	assert.Equal(t, ContainerOptions{
		CommandTimeout:    5 * time.Second,
		CommitScanDepth:   50,
		DBPath:            "/tmp/tracked.db",
		EnrichConcurrency: 4,
		GitBin:            "/usr/local/bin/git",
		MaxCommitRows:     20,
		TrackedStore:      config.TrackedStoreSQLite,
	}, cli.containerOptions())
}

func TestContainerOptions_Defaults(t *testing.T) {
	cli := &CLI{settings: &config.Settings{}}

	opts := cli.containerOptions()

	assert.Equal(t, services.DefaultMaxCommitRows, opts.MaxCommitRows)
	assert.Equal(t, services.DefaultCommitScanDepth, opts.CommitScanDepth)
	assert.Zero(t, opts.CommandTimeout)
	assert.Zero(t, opts.EnrichConcurrency)
}
