package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/renato0307/gitdash/internal/domain"
	"github.com/renato0307/gitdash/internal/ports"
)

// fakeRepo is an in-memory RepoReader
type fakeRepo struct {
	branch      string
	branchErr   error
	branches    []string
	history     map[string][]domain.CommitRecord // newest first, keyed by ref
	ignored     map[string]bool
	metadataDir string
	root        string
	rows        []domain.StatusRow
	statusErr   error
	upstreams   map[string][2]string // branch -> remote, merge

	mu          sync.Mutex
	ignoreCalls []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		branch:      "main",
		history:     map[string][]domain.CommitRecord{},
		ignored:     map[string]bool{},
		metadataDir: "/work/demo/.git",
		root:        "/work/demo",
		upstreams:   map[string][2]string{},
	}
}

func (f *fakeRepo) Root() string        { return f.root }
func (f *fakeRepo) MetadataDir() string { return f.metadataDir }

func (f *fakeRepo) CurrentBranch(ctx context.Context) (string, error) {
	return f.branch, f.branchErr
}

func (f *fakeRepo) StatusMatrix(ctx context.Context) ([]domain.StatusRow, error) {
	return f.rows, f.statusErr
}

func (f *fakeRepo) IsIgnored(ctx context.Context, path string) (bool, error) {
	f.mu.Lock()
	f.ignoreCalls = append(f.ignoreCalls, path)
	f.mu.Unlock()
	return f.ignored[path], nil
}

func (f *fakeRepo) ResolveRef(ctx context.Context, ref string) (string, error) {
	commits, ok := f.history[ref]
	if !ok || len(commits) == 0 {
		return "", fmt.Errorf("%s: %w", ref, domain.ErrRefNotFound)
	}
	return commits[0].ID, nil
}

func (f *fakeRepo) WalkCommits(ctx context.Context, ref string, depth int) ([]domain.CommitRecord, error) {
	commits, ok := f.history[ref]
	if !ok {
		return nil, fmt.Errorf("%s: %w", ref, domain.ErrRefNotFound)
	}
	n := min(depth, len(commits))
	out := make([]domain.CommitRecord, n)
	copy(out, commits[:n])
	return out, nil
}

func (f *fakeRepo) BranchUpstream(ctx context.Context, branch string) (string, string, error) {
	u, ok := f.upstreams[branch]
	if !ok {
		return "", "", domain.ErrNoUpstream
	}
	return u[0], u[1], nil
}

func (f *fakeRepo) ListBranches(ctx context.Context) ([]string, error) {
	return f.branches, nil
}

// setRef points ref (and HEAD when head is set) at commits
func (f *fakeRepo) setRef(ref string, commits []domain.CommitRecord, head bool) {
	f.history[ref] = commits
	if head {
		f.history["HEAD"] = commits
	}
}

type fakeOpener struct {
	repo  ports.RepoReader
	err   error
	opens int
}

func (o *fakeOpener) Open(ctx context.Context, path string) (ports.RepoReader, error) {
	o.opens++
	if o.err != nil {
		return nil, o.err
	}
	return o.repo, nil
}

// zeroStats is a DiffStatReader reporting nothing
type zeroStats struct{}

func (zeroStats) StagedStat(ctx context.Context, dir, path string) (domain.FileStat, error) {
	return domain.FileStat{}, nil
}

func (zeroStats) UnstagedStat(ctx context.Context, dir, path string) (domain.FileStat, error) {
	return domain.FileStat{}, nil
}

func (zeroStats) CommitStats(ctx context.Context, dir, commitID, parentID string) ([]domain.FileDelta, error) {
	return nil, nil
}

// history builds a linear chain of n commits named prefix-n..prefix-1 on top of base,
// newest first
func history(prefix string, n int, base []domain.CommitRecord) []domain.CommitRecord {
	commits := make([]domain.CommitRecord, 0, n+len(base))
	for i := n; i >= 1; i-- {
		var parents []string
		if i > 1 {
			parents = []string{fmt.Sprintf("%s-%d", prefix, i-1)}
		} else if len(base) > 0 {
			parents = []string{base[0].ID}
		}
		id := fmt.Sprintf("%s-%d", prefix, i)
		commits = append(commits, domain.NewCommitRecord(id, "commit "+id, int64(1000+i), parents))
	}
	return append(commits, base...)
}

func staticLocation(repo *fakeRepo) ports.RepoLocation {
	return ports.RepoLocation{MetadataDir: repo.metadataDir, Root: repo.root}
}
