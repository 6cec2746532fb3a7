package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/renato0307/gitdash/internal/logging"
	"github.com/renato0307/gitdash/internal/ports"
)

const (
	// SidecarFileName is the record name inside the repository metadata directory
	SidecarFileName = "gitdash-tracked.json"
	// RootSidecarFileName is the record name used in the working-tree root when there is no metadata directory
	RootSidecarFileName = ".gitdash-tracked.json"
)

// JSONTrackedStore keeps one small JSON record per repository next to the repository
// itself. Every call loads and saves the record as a unit; writers are serialized with
// an exclusive lock on a companion .lock file and replace the record atomically.
type JSONTrackedStore struct{}

// Verify interface compliance at compile time
var _ ports.TrackedStore = (*JSONTrackedStore)(nil)

type sidecarRecord struct {
	TrackedPending []string `json:"trackedPending"`
}

// NewJSONTrackedStore creates a new JSONTrackedStore
func NewJSONTrackedStore() *JSONTrackedStore {
	return &JSONTrackedStore{}
}

// SidecarPath returns the record path for a repository
func SidecarPath(repo ports.RepoLocation) string {
	if repo.MetadataDir != "" {
		return filepath.Join(repo.MetadataDir, SidecarFileName)
	}
	return filepath.Join(repo.Root, RootSidecarFileName)
}

// Read returns the sorted tracked-pending paths
func (s *JSONTrackedStore) Read(ctx context.Context, repo ports.RepoLocation) ([]string, error) {
	return load(SidecarPath(repo)), nil
}

// Add unions paths into the record
func (s *JSONTrackedStore) Add(ctx context.Context, repo ports.RepoLocation, paths []string) ([]string, error) {
	return s.update(repo, func(current []string) []string {
		return union(current, paths)
	})
}

// Remove drops paths from the record
func (s *JSONTrackedStore) Remove(ctx context.Context, repo ports.RepoLocation, paths []string) ([]string, error) {
	return s.update(repo, func(current []string) []string {
		return subtract(current, paths)
	})
}

// Prune keeps only paths that are still untracked
func (s *JSONTrackedStore) Prune(ctx context.Context, repo ports.RepoLocation, untracked []string) ([]string, error) {
	return s.update(repo, func(current []string) []string {
		return intersect(current, untracked)
	})
}

// Close is a no-op; no handles are kept between calls
func (s *JSONTrackedStore) Close() error {
	return nil
}

// update runs fn under the record lock and persists the result when it changed
func (s *JSONTrackedStore) update(repo ports.RepoLocation, fn func(current []string) []string) ([]string, error) {
	path := SidecarPath(repo)

	// Records are replaced by rename, so an unlocked read is consistent.
	// No-op updates never create the lock file.
	if current := load(path); equal(current, fn(current)) {
		return current, nil
	}

	lock, err := os.OpenFile(path+".lock", os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}
	defer lock.Close()

	if err := lockFile(lock); err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(lock)

	current := load(path)
	next := fn(current)
	if equal(current, next) {
		return next, nil
	}

	if err := save(path, next); err != nil {
		return nil, err
	}

	logging.Logger.Debug("Tracked-pending record saved", "path", path, "count", len(next))
	return next, nil
}

// load reads a record, treating a missing or corrupt file as empty
func load(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to read tracked-pending record", "path", path, "error", err)
		}
		return []string{}
	}

	var record sidecarRecord
	if err := json.Unmarshal(data, &record); err != nil {
		logging.Logger.Warn("Ignoring corrupt tracked-pending record", "path", path, "error", err)
		return []string{}
	}

	return normalize(record.TrackedPending)
}

func save(path string, paths []string) error {
	data, err := json.MarshalIndent(sidecarRecord{TrackedPending: normalize(paths)}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tracked-pending record: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write tracked-pending record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace tracked-pending record: %w", err)
	}
	return nil
}
