package ports

import "context"

// TrackedStore persists, per repository, the paths a user opted to track from the
// untracked bucket. Every call loads and saves the record as a unit.
type TrackedStore interface {
	// Read returns the sorted tracked-pending paths; missing or corrupt records read as empty
	Read(ctx context.Context, repo RepoLocation) ([]string, error)
	// Add unions paths into the record
	Add(ctx context.Context, repo RepoLocation, paths []string) ([]string, error)
	// Remove drops paths from the record
	Remove(ctx context.Context, repo RepoLocation, paths []string) ([]string, error)
	// Prune drops every path not present in untracked and returns what remains
	Prune(ctx context.Context, repo RepoLocation, untracked []string) ([]string, error)
	Close() error
}

// RepoLocation identifies a repository for keyed stores
type RepoLocation struct {
	MetadataDir string // e.g. /path/to/repo/.git, empty when there is none
	Root        string // absolute working-tree root
}
