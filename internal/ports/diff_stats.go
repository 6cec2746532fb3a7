package ports

import (
	"context"

	"github.com/renato0307/gitdash/internal/domain"
)

// DiffStatReader computes numeric line statistics for the diff buckets of a repository.
// Implementations decide how to degrade; callers treat any error as zero stats.
type DiffStatReader interface {
	// StagedStat returns index-vs-HEAD stats for one path
	StagedStat(ctx context.Context, dir, path string) (domain.FileStat, error)
	// UnstagedStat returns working-copy-vs-index stats for one path
	UnstagedStat(ctx context.Context, dir, path string) (domain.FileStat, error)
	// CommitStats returns per-file stats of a commit against its first parent.
	// An empty parentID diffs against the empty tree.
	CommitStats(ctx context.Context, dir, commitID, parentID string) ([]domain.FileDelta, error)
}
