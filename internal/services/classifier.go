package services

import (
	"context"

	"github.com/renato0307/gitdash/internal/domain"
	"github.com/renato0307/gitdash/internal/logging"
)

// IgnoreChecker evaluates ignore rules for a single working-copy path
type IgnoreChecker interface {
	IsIgnored(ctx context.Context, path string) (bool, error)
}

// ClassifyStatusMatrix splits status rows into staged, modified and untracked buckets.
// A row may land in more than one bucket. Ignore rules are only evaluated for rows
// that exist solely in the working copy; a failed evaluation keeps the path visible.
// Every returned row carries zero stats.
func ClassifyStatusMatrix(ctx context.Context, rows []domain.StatusRow, ignore IgnoreChecker) Classification {
	result := Classification{
		Modified:  []domain.FileDelta{},
		Staged:    []domain.FileDelta{},
		Untracked: []domain.UntrackedEntry{},
	}

	for _, row := range rows {
		if row.IsUntrackedCandidate() {
			ignored, err := ignore.IsIgnored(ctx, row.Path)
			if err != nil {
				logging.Logger.Warn("Failed to evaluate ignore rules", "path", row.Path, "error", err)
			}
			if !ignored {
				result.Untracked = append(result.Untracked, domain.UntrackedEntry{Path: row.Path})
			}
			continue
		}
		if row.IsStaged() {
			result.Staged = append(result.Staged, domain.FileDelta{Path: row.Path})
		}
		if row.IsModified() {
			result.Modified = append(result.Modified, domain.FileDelta{Path: row.Path})
		}
	}

	return result
}

// UntrackedPaths returns the paths of the untracked bucket
func (c Classification) UntrackedPaths() []string {
	paths := make([]string, 0, len(c.Untracked))
	for _, u := range c.Untracked {
		paths = append(paths, u.Path)
	}
	return paths
}
