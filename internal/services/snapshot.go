package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/gitdash/internal/domain"
	"github.com/renato0307/gitdash/internal/logging"
	"github.com/renato0307/gitdash/internal/ports"
)

// SnapshotService derives a complete RepoSnapshot on every call. Nothing but the
// tracked-pending record survives between calls.
type SnapshotService struct {
	divergence *DivergenceResolver
	enricher   *DiffStatEnricher
	maxRows    int
	opener     ports.RepoOpener
	store      ports.TrackedStore
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(
	opener ports.RepoOpener,
	store ports.TrackedStore,
	divergence *DivergenceResolver,
	enricher *DiffStatEnricher,
) *SnapshotService {
	return &SnapshotService{
		divergence: divergence,
		enricher:   enricher,
		maxRows:    divergence.maxRows,
		opener:     opener,
		store:      store,
	}
}

// Snapshot opens the repository containing repoPath and aggregates its state.
// Only a failure to open the repository is returned; every other backend failure
// degrades to safe defaults.
func (s *SnapshotService) Snapshot(ctx context.Context, repoPath string) (*domain.RepoSnapshot, error) {
	repo, err := s.opener.Open(ctx, repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return s.Build(ctx, repo), nil
}

// Build aggregates the state of an already opened repository
func (s *SnapshotService) Build(ctx context.Context, repo ports.RepoReader) *domain.RepoSnapshot {
	root := repo.Root()
	log := logging.FromContext(ctx).With("root", root)
	log.Debug("Building snapshot")

	snap := domain.NewEmptySnapshot(filepath.Base(root), root)
	snap.Branch = currentBranch(ctx, repo)

	var (
		classification Classification
		divergence     DivergenceResult
		recent         []domain.CommitRecord
	)

	// Classification, divergence and recent history are independent reads
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		classification = s.classify(gctx, repo)
		return nil
	})
	g.Go(func() error {
		divergence = s.divergence.Resolve(gctx, repo, snap.Branch)
		return nil
	})
	g.Go(func() error {
		commits, err := repo.WalkCommits(gctx, "HEAD", s.maxRows)
		if err != nil {
			logging.Logger.Debug("Failed to walk recent history", "error", err)
			commits = []domain.CommitRecord{}
		}
		recent = commits
		return nil
	})
	_ = g.Wait()

	s.enricher.Enrich(ctx, root,
		classification.Staged,
		classification.Modified,
		divergence.AheadCommits,
		divergence.BehindCommits,
		recent)

	location := ports.RepoLocation{MetadataDir: repo.MetadataDir(), Root: root}
	tracked, err := s.store.Prune(ctx, location, classification.UntrackedPaths())
	if err != nil {
		log.Warn("Failed to prune tracked-pending record", "error", err)
		tracked = []string{}
	}

	snap.Counts = domain.Counts{
		Ahead:     divergence.Ahead,
		Behind:    divergence.Behind,
		Modified:  len(classification.Modified),
		Recent:    len(recent),
		Staged:    len(classification.Staged),
		Untracked: len(classification.Untracked),
	}
	snap.Details = domain.Details{
		Ahead:     divergence.AheadCommits,
		Behind:    divergence.BehindCommits,
		Modified:  classification.Modified,
		Recent:    recent,
		Staged:    classification.Staged,
		Untracked: classification.Untracked,
	}
	snap.Meta = domain.Meta{
		AheadMode:      divergence.Mode,
		TrackedPending: nonNil(tracked),
	}

	log.Debug("Snapshot built",
		"branch", snap.Branch,
		"staged", snap.Counts.Staged,
		"modified", snap.Counts.Modified,
		"untracked", snap.Counts.Untracked,
		"ahead", snap.Counts.Ahead,
		"behind", snap.Counts.Behind,
		"mode", snap.Meta.AheadMode)

	return snap
}

// Branches lists local branches together with the current branch name
func (s *SnapshotService) Branches(ctx context.Context, repoPath string) (*domain.BranchList, error) {
	repo, err := s.opener.Open(ctx, repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	branches, err := repo.ListBranches(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to list branches", "root", repo.Root(), "error", err)
		branches = []string{}
	}

	return &domain.BranchList{
		Branches: nonNil(branches),
		Current:  currentBranch(ctx, repo),
	}, nil
}

func (s *SnapshotService) classify(ctx context.Context, repo ports.RepoReader) Classification {
	rows, err := repo.StatusMatrix(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to read status matrix", "root", repo.Root(), "error", err)
		rows = nil
	}
	return ClassifyStatusMatrix(ctx, rows, repo)
}

func currentBranch(ctx context.Context, repo ports.RepoReader) string {
	branch, err := repo.CurrentBranch(ctx)
	switch {
	case errors.Is(err, domain.ErrDetachedHead):
		return domain.BranchDetached
	case err != nil:
		logging.Logger.Debug("Failed to read current branch", "error", err)
		return domain.BranchUnknown
	case branch == "":
		return domain.BranchDetached
	}
	return branch
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
