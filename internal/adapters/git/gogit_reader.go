package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/renato0307/gitdash/internal/domain"
	"github.com/renato0307/gitdash/internal/logging"
	"github.com/renato0307/gitdash/internal/ports"
)

// GoGitOpener implements ports.RepoOpener with go-git
type GoGitOpener struct{}

// Verify interface compliance at compile time
var _ ports.RepoOpener = (*GoGitOpener)(nil)

// NewGoGitOpener creates a new GoGitOpener
func NewGoGitOpener() *GoGitOpener {
	return &GoGitOpener{}
}

// Open implements RepoOpener.Open
func (o *GoGitOpener) Open(ctx context.Context, path string) (ports.RepoReader, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotGitRepo, abs)
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open worktree: %w", err)
	}

	root := wt.Filesystem.Root()
	logging.Logger.Debug("Opened repository", "path", abs, "root", root)

	return &GoGitReader{
		metadataDir: findMetadataDir(root),
		repo:        repo,
		root:        root,
		worktree:    wt,
	}, nil
}

// findMetadataDir locates the metadata directory of a working tree.
// Linked worktrees and submodules have a .git file pointing elsewhere.
func findMetadataDir(root string) string {
	dotGit := filepath.Join(root, ".git")
	info, err := os.Stat(dotGit)
	if err != nil {
		return ""
	}
	if info.IsDir() {
		return dotGit
	}

	data, err := os.ReadFile(dotGit)
	if err != nil {
		return ""
	}
	line := strings.TrimSpace(string(data))
	target, ok := strings.CutPrefix(line, "gitdir:")
	if !ok {
		return ""
	}
	target = strings.TrimSpace(target)
	if !filepath.IsAbs(target) {
		target = filepath.Join(root, target)
	}
	return filepath.Clean(target)
}

// GoGitReader implements ports.RepoReader for one repository.
// go-git repositories are not safe for concurrent use, so calls are serialized.
type GoGitReader struct {
	metadataDir string
	mu          sync.Mutex
	repo        *gogit.Repository
	root        string
	worktree    *gogit.Worktree

	ignoreOnce    sync.Once
	ignoreMatcher gitignore.Matcher
}

// Verify interface compliance at compile time
var _ ports.RepoReader = (*GoGitReader)(nil)

// Root implements RepoReader.Root
func (r *GoGitReader) Root() string {
	return r.root
}

// MetadataDir implements RepoReader.MetadataDir
func (r *GoGitReader) MetadataDir() string {
	return r.metadataDir
}

// CurrentBranch implements RepoReader.CurrentBranch.
// Works on unborn branches since HEAD is read without being resolved.
func (r *GoGitReader) CurrentBranch(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	head, err := r.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", domain.ErrDetachedHead
	}
	return head.Target().Short(), nil
}

// ResolveRef implements RepoReader.ResolveRef
func (r *GoGitReader) ResolveRef(ctx context.Context, ref string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hash, err := r.resolve(ref)
	if err != nil {
		return "", err
	}
	return hash.String(), nil
}

func (r *GoGitReader) resolve(ref string) (plumbing.Hash, error) {
	if ref == "HEAD" || strings.HasPrefix(ref, "refs/") {
		resolved, err := r.repo.Reference(plumbing.ReferenceName(ref), true)
		if err != nil {
			if errors.Is(err, plumbing.ErrReferenceNotFound) {
				return plumbing.ZeroHash, fmt.Errorf("%w: %s", domain.ErrRefNotFound, ref)
			}
			return plumbing.ZeroHash, fmt.Errorf("failed to resolve %s: %w", ref, err)
		}
		return resolved.Hash(), nil
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("%w: %s", domain.ErrRefNotFound, ref)
	}
	return *hash, nil
}

// WalkCommits implements RepoReader.WalkCommits.
// Commits are ordered by committer time, newest first.
func (r *GoGitReader) WalkCommits(ctx context.Context, ref string, depth int) ([]domain.CommitRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if depth <= 0 {
		return []domain.CommitRecord{}, nil
	}

	from, err := r.resolve(ref)
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Log(&gogit.LogOptions{From: from, Order: gogit.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", ref, err)
	}
	defer iter.Close()

	commits := make([]domain.CommitRecord, 0, depth)
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		parents := make([]string, 0, len(c.ParentHashes))
		for _, p := range c.ParentHashes {
			parents = append(parents, p.String())
		}
		commits = append(commits, domain.NewCommitRecord(c.Hash.String(), c.Message, c.Committer.When.Unix(), parents))
		if len(commits) >= depth {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", ref, err)
	}

	return commits, nil
}

// BranchUpstream implements RepoReader.BranchUpstream
func (r *GoGitReader) BranchUpstream(ctx context.Context, branch string) (string, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg, err := r.repo.Config()
	if err != nil {
		return "", "", fmt.Errorf("failed to read config: %w", err)
	}

	b, ok := cfg.Branches[branch]
	if !ok || b.Remote == "" || b.Merge == "" {
		return "", "", domain.ErrNoUpstream
	}
	return b.Remote, b.Merge.String(), nil
}

// ListBranches implements RepoReader.ListBranches
func (r *GoGitReader) ListBranches(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	iter, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer iter.Close()

	branches := []string{}
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		branches = append(branches, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	sort.Strings(branches)
	return branches, nil
}
