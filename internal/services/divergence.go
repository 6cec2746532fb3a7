package services

import (
	"context"
	"errors"
	"strings"

	"github.com/renato0307/gitdash/internal/domain"
	"github.com/renato0307/gitdash/internal/logging"
	"github.com/renato0307/gitdash/internal/ports"
)

const (
	// DefaultMaxCommitRows caps every commit list of a snapshot
	DefaultMaxCommitRows = 100
	// DefaultCommitScanDepth bounds the history walked when searching for a shared commit
	DefaultCommitScanDepth = 300
)

const (
	headsPrefix   = "refs/heads/"
	remotesPrefix = "refs/remotes/"
	defaultRemote = "origin"
)

// DivergenceResolver computes ahead/behind relative to an upstream ref using a bounded
// linear scan for the first shared commit. It is not a merge-base computation: with
// unrelated or very deep histories no shared commit is found and both sides read 0.
type DivergenceResolver struct {
	maxRows   int
	scanDepth int
}

// NewDivergenceResolver creates a resolver. Non-positive values select the defaults.
func NewDivergenceResolver(maxRows, scanDepth int) *DivergenceResolver {
	if maxRows <= 0 {
		maxRows = DefaultMaxCommitRows
	}
	if scanDepth <= 0 {
		scanDepth = DefaultCommitScanDepth
	}
	return &DivergenceResolver{
		maxRows:   maxRows,
		scanDepth: scanDepth,
	}
}

// Resolve computes divergence for branch. Placeholder branches and branches without a
// resolvable upstream fall back to local mode.
func (d *DivergenceResolver) Resolve(ctx context.Context, repo ports.RepoReader, branch string) DivergenceResult {
	if domain.IsPlaceholderBranch(branch) {
		return d.local(ctx, repo)
	}

	localRef := headsPrefix + branch
	if _, err := repo.ResolveRef(ctx, localRef); err != nil {
		logging.Logger.Debug("Local branch does not resolve", "ref", localRef, "error", err)
		return d.local(ctx, repo)
	}

	upstreamRef := d.upstreamRef(ctx, repo, branch)
	if upstreamRef == "" {
		return d.local(ctx, repo)
	}

	return d.upstream(ctx, repo, localRef, upstreamRef)
}

// upstreamRef picks the first resolvable candidate: the configured tracking ref,
// then origin/<branch>, then origin/HEAD
func (d *DivergenceResolver) upstreamRef(ctx context.Context, repo ports.RepoReader, branch string) string {
	for _, candidate := range upstreamCandidates(ctx, repo, branch) {
		if _, err := repo.ResolveRef(ctx, candidate); err == nil {
			return candidate
		} else if !errors.Is(err, domain.ErrRefNotFound) {
			logging.Logger.Warn("Failed to resolve upstream candidate", "ref", candidate, "error", err)
		}
	}
	logging.Logger.Debug("No upstream resolved", "branch", branch)
	return ""
}

func upstreamCandidates(ctx context.Context, repo ports.RepoReader, branch string) []string {
	var candidates []string

	remote, merge, err := repo.BranchUpstream(ctx, branch)
	switch {
	case err == nil && strings.HasPrefix(merge, headsPrefix):
		name := strings.TrimPrefix(merge, headsPrefix)
		if remote == "." {
			candidates = append(candidates, headsPrefix+name)
		} else {
			candidates = append(candidates, remotesPrefix+remote+"/"+name)
		}
	case err != nil && !errors.Is(err, domain.ErrNoUpstream):
		logging.Logger.Warn("Failed to read branch tracking config", "branch", branch, "error", err)
	}

	conventional := remotesPrefix + defaultRemote + "/" + branch
	if len(candidates) == 0 || candidates[0] != conventional {
		candidates = append(candidates, conventional)
	}
	return append(candidates, remotesPrefix+defaultRemote+"/HEAD")
}

func (d *DivergenceResolver) local(ctx context.Context, repo ports.RepoReader) DivergenceResult {
	commits, err := repo.WalkCommits(ctx, "HEAD", d.maxRows)
	if err != nil {
		logging.Logger.Debug("Failed to walk local history", "error", err)
		commits = []domain.CommitRecord{}
	}
	return DivergenceResult{
		Ahead:         len(commits),
		AheadCommits:  commits,
		BehindCommits: []domain.CommitRecord{},
		Mode:          domain.AheadModeLocal,
	}
}

func (d *DivergenceResolver) upstream(ctx context.Context, repo ports.RepoReader, localRef, upstreamRef string) DivergenceResult {
	localCommits := d.walk(ctx, repo, localRef)
	upstreamCommits := d.walk(ctx, repo, upstreamRef)

	upstreamDepth := make(map[string]int, len(upstreamCommits))
	for i, c := range upstreamCommits {
		upstreamDepth[c.ID] = i
	}

	ahead, behind := 0, 0
	for i, c := range localCommits {
		if depth, ok := upstreamDepth[c.ID]; ok {
			ahead, behind = i, depth
			break
		}
	}

	logging.Logger.Debug("Divergence resolved",
		"local", localRef,
		"upstream", upstreamRef,
		"ahead", ahead,
		"behind", behind)

	return DivergenceResult{
		Ahead:         ahead,
		AheadCommits:  capCommits(localCommits, ahead, d.maxRows),
		Behind:        behind,
		BehindCommits: capCommits(upstreamCommits, behind, d.maxRows),
		Mode:          domain.AheadModeUpstream,
		UpstreamRef:   upstreamRef,
	}
}

func (d *DivergenceResolver) walk(ctx context.Context, repo ports.RepoReader, ref string) []domain.CommitRecord {
	commits, err := repo.WalkCommits(ctx, ref, d.scanDepth)
	if err != nil {
		logging.Logger.Debug("Failed to walk history", "ref", ref, "error", err)
		return nil
	}
	return commits
}

func capCommits(commits []domain.CommitRecord, count, maxRows int) []domain.CommitRecord {
	n := min(count, maxRows, len(commits))
	out := make([]domain.CommitRecord, n)
	copy(out, commits[:n])
	return out
}
