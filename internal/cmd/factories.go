package cmd

import (
	"fmt"
	"time"

	adaptergit "github.com/renato0307/gitdash/internal/adapters/git"
	adapterstorage "github.com/renato0307/gitdash/internal/adapters/storage"
	"github.com/renato0307/gitdash/internal/config"
	"github.com/renato0307/gitdash/internal/domain"
	"github.com/renato0307/gitdash/internal/logging"
	"github.com/renato0307/gitdash/internal/paths"
	"github.com/renato0307/gitdash/internal/ports"
	"github.com/renato0307/gitdash/internal/services"
)

// ContainerOptions are the resolved runtime options the container is wired from
type ContainerOptions struct {
	CommandTimeout    time.Duration
	CommitScanDepth   int
	DBPath            string
	EnrichConcurrency int
	GitBin            string
	MaxCommitRows     int
	TrackedStore      string
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	MutationService *services.MutationService
	SnapshotService *services.SnapshotService

	// Internal - for cleanup only
	store ports.TrackedStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	store, err := newTrackedStore(opts.TrackedStore, opts.DBPath)
	if err != nil {
		return nil, err
	}

	// Mutations go through the configured binary only; diff stats retry with the
	// binary on PATH when a custom one is configured
	runner := adaptergit.NewExecRunner(opts.GitBin, opts.CommandTimeout)
	var fallback ports.CommandRunner
	if runner.Bin() != adaptergit.DefaultBin {
		fallback = adaptergit.NewExecRunner(adaptergit.DefaultBin, opts.CommandTimeout)
	}

	opener := adaptergit.NewGoGitOpener()
	stats := adaptergit.NewNumstatReader(runner, fallback)

	divergence := services.NewDivergenceResolver(opts.MaxCommitRows, opts.CommitScanDepth)
	enricher := services.NewDiffStatEnricher(stats, opts.EnrichConcurrency)
	snapshotService := services.NewSnapshotService(opener, store, divergence, enricher)
	mutationService := services.NewMutationService(opener, runner, store, snapshotService)

	logging.Logger.Debug("Container initialized",
		"git_bin", runner.Bin(),
		"fallback", fallback != nil,
		"tracked_store", opts.TrackedStore,
		"command_timeout", opts.CommandTimeout)

	return &Container{
		MutationService: mutationService,
		SnapshotService: snapshotService,
		store:           store,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}

func newTrackedStore(kind, dbPath string) (ports.TrackedStore, error) {
	switch kind {
	case "", config.TrackedStoreJSON:
		return adapterstorage.NewJSONTrackedStore(), nil
	case config.TrackedStoreSQLite:
		if dbPath == "" {
			dbPath = paths.GetDBPath()
		}
		store, err := adapterstorage.NewSQLiteTrackedStore(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open tracked store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("tracked store %q: %w", kind, domain.ErrUnknownStore)
	}
}
