package services

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/gitdash/internal/domain"
	"github.com/renato0307/gitdash/internal/logging"
	"github.com/renato0307/gitdash/internal/ports"
)

// DiffStatEnricher fills in addition/deletion counts for file and commit rows.
// Each row is an independent task; a failing task leaves its row at zero.
type DiffStatEnricher struct {
	concurrency int
	stats       ports.DiffStatReader
}

// NewDiffStatEnricher creates an enricher. A concurrency of 0 means unbounded.
func NewDiffStatEnricher(stats ports.DiffStatReader, concurrency int) *DiffStatEnricher {
	return &DiffStatEnricher{
		concurrency: concurrency,
		stats:       stats,
	}
}

type commitStat struct {
	additions int
	deletions int
	files     []domain.FileDelta
}

// Enrich computes stats for staged rows (index vs HEAD), modified rows (working copy vs
// index) and every commit list in place. A commit shared by several lists is computed once.
func (e *DiffStatEnricher) Enrich(
	ctx context.Context,
	dir string,
	staged []domain.FileDelta,
	modified []domain.FileDelta,
	commitLists ...[]domain.CommitRecord,
) {
	g, ctx := errgroup.WithContext(ctx)
	if e.concurrency > 0 {
		g.SetLimit(e.concurrency)
	}

	for i := range staged {
		g.Go(func() error {
			stat, err := e.stats.StagedStat(ctx, dir, staged[i].Path)
			if err != nil {
				logging.Logger.Debug("Staged stats unavailable", "path", staged[i].Path, "error", err)
				return nil
			}
			staged[i].Additions = stat.Additions
			staged[i].Deletions = stat.Deletions
			return nil
		})
	}

	for i := range modified {
		g.Go(func() error {
			stat, err := e.stats.UnstagedStat(ctx, dir, modified[i].Path)
			if err != nil {
				logging.Logger.Debug("Unstaged stats unavailable", "path", modified[i].Path, "error", err)
				return nil
			}
			modified[i].Additions = stat.Additions
			modified[i].Deletions = stat.Deletions
			return nil
		})
	}

	var mu sync.Mutex
	results := make(map[string]commitStat)
	seen := make(map[string]bool)

	for _, list := range commitLists {
		for _, commit := range list {
			if seen[commit.ID] {
				continue
			}
			seen[commit.ID] = true

			g.Go(func() error {
				files, err := e.stats.CommitStats(ctx, dir, commit.ID, commit.FirstParent())
				if err != nil {
					logging.Logger.Debug("Commit stats unavailable", "commit", commit.ID, "error", err)
					return nil
				}

				stat := commitStat{files: []domain.FileDelta{}}
				for _, f := range files {
					stat.additions += f.Additions
					stat.deletions += f.Deletions
					stat.files = append(stat.files, f)
				}

				mu.Lock()
				results[commit.ID] = stat
				mu.Unlock()
				return nil
			})
		}
	}

	// Tasks never return errors
	_ = g.Wait()

	for _, list := range commitLists {
		for i := range list {
			stat, ok := results[list[i].ID]
			if !ok {
				continue
			}
			list[i].Additions = stat.additions
			list[i].Deletions = stat.deletions
			list[i].Files = stat.files
		}
	}
}
