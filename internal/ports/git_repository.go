package ports

import (
	"context"

	"github.com/renato0307/gitdash/internal/domain"
)

// RepoReader is the structured read API of the version-control backend for one repository
type RepoReader interface {
	// Root returns the absolute working-tree root
	Root() string
	// MetadataDir returns the repository metadata directory (e.g. .git), or "" if there is none
	MetadataDir() string
	// CurrentBranch returns the short branch name HEAD points at.
	// Returns domain.ErrDetachedHead when HEAD is not symbolic.
	CurrentBranch(ctx context.Context) (string, error)
	// StatusMatrix returns the HEAD/index/working-copy states of every touched path
	StatusMatrix(ctx context.Context) ([]domain.StatusRow, error)
	// IsIgnored evaluates ignore rules for a working-copy path
	IsIgnored(ctx context.Context, path string) (bool, error)
	// ResolveRef resolves a full or short ref to a commit id.
	// Returns domain.ErrRefNotFound when the ref does not exist.
	ResolveRef(ctx context.Context, ref string) (string, error)
	// WalkCommits returns up to depth commits reachable from ref, newest first
	WalkCommits(ctx context.Context, ref string, depth int) ([]domain.CommitRecord, error)
	// BranchUpstream returns the configured remote and merge ref of a branch.
	// Returns domain.ErrNoUpstream when the branch has no tracking configuration.
	BranchUpstream(ctx context.Context, branch string) (remote, merge string, err error)
	// ListBranches returns local branch names, sorted
	ListBranches(ctx context.Context) ([]string, error)
}

// RepoOpener opens a RepoReader for a path inside a working tree.
// Readers are opened per request and never cached.
type RepoOpener interface {
	Open(ctx context.Context, path string) (RepoReader, error)
}

// CommandRunner executes backend commands, used for mutations and numeric diff statistics.
// A non-zero exit returns a *domain.CommandError alongside the captured result.
type CommandRunner interface {
	Execute(ctx context.Context, dir string, args []string) (domain.ExecResult, error)
}
