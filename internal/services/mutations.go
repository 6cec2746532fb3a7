package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/renato0307/gitdash/internal/domain"
	"github.com/renato0307/gitdash/internal/logging"
	"github.com/renato0307/gitdash/internal/ports"
)

// MutationService runs a backend command and then re-derives the whole snapshot.
// Mutations are not serialized against each other; the backend's own locking decides
// which concurrent call wins.
type MutationService struct {
	opener    ports.RepoOpener
	runner    ports.CommandRunner
	snapshots *SnapshotService
	store     ports.TrackedStore
}

// NewMutationService creates a new MutationService
func NewMutationService(
	opener ports.RepoOpener,
	runner ports.CommandRunner,
	store ports.TrackedStore,
	snapshots *SnapshotService,
) *MutationService {
	return &MutationService{
		opener:    opener,
		runner:    runner,
		snapshots: snapshots,
		store:     store,
	}
}

type mutation func(ctx context.Context, repo ports.RepoReader, result *domain.MutationResult) error

// mutate detaches from caller cancellation so a half-applied mutation is never abandoned
func (s *MutationService) mutate(ctx context.Context, repoPath, name string, apply mutation) (*domain.MutationResult, error) {
	ctx = logging.WithContext(context.WithoutCancel(ctx), "mutation", name)

	repo, err := s.opener.Open(ctx, repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	result := &domain.MutationResult{}
	if err := apply(ctx, repo, result); err != nil {
		logging.FromContext(ctx).Error("Mutation failed", "root", repo.Root(), "error", err)
		return nil, err
	}

	// Reopen so the snapshot sees refs and index written by the command
	snap, err := s.snapshots.Snapshot(ctx, repo.Root())
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("Mutation applied", "root", repo.Root())
	result.OK = true
	result.State = snap
	return result, nil
}

func (s *MutationService) git(ctx context.Context, repo ports.RepoReader, args ...string) (domain.ExecResult, error) {
	return s.runner.Execute(ctx, repo.Root(), args)
}

func hasHead(ctx context.Context, repo ports.RepoReader) bool {
	_, err := repo.ResolveRef(ctx, "HEAD")
	return err == nil
}

// StageAll stages every change including untracked files and reports how many
// untracked paths were picked up
func (s *MutationService) StageAll(ctx context.Context, repoPath string) (*domain.MutationResult, error) {
	return s.mutate(ctx, repoPath, "add-all", func(ctx context.Context, repo ports.RepoReader, result *domain.MutationResult) error {
		added := len(s.snapshots.classify(ctx, repo).Untracked)
		if _, err := s.git(ctx, repo, "add", "-A"); err != nil {
			return err
		}
		result.AddedUntracked = &added
		return nil
	})
}

// UnstageAll resets the index to HEAD and reports how many paths were staged before.
// Without a HEAD commit every path is removed from the index instead.
func (s *MutationService) UnstageAll(ctx context.Context, repoPath string) (*domain.MutationResult, error) {
	return s.mutate(ctx, repoPath, "unstage-all", func(ctx context.Context, repo ports.RepoReader, result *domain.MutationResult) error {
		changed := len(s.snapshots.classify(ctx, repo).Staged)
		result.Changed = &changed
		if changed == 0 {
			return nil
		}

		var err error
		if hasHead(ctx, repo) {
			_, err = s.git(ctx, repo, "reset", "-q")
		} else {
			_, err = s.git(ctx, repo, "rm", "--cached", "-r", "-q", ".")
		}
		return err
	})
}

// StageModifiedOnly stages modifications and deletions of tracked files
func (s *MutationService) StageModifiedOnly(ctx context.Context, repoPath string) (*domain.MutationResult, error) {
	return s.mutate(ctx, repoPath, "stage-modified", func(ctx context.Context, repo ports.RepoReader, _ *domain.MutationResult) error {
		_, err := s.git(ctx, repo, "add", "-u")
		return err
	})
}

// StagePath stages or unstages a single path
func (s *MutationService) StagePath(ctx context.Context, repoPath string, params StagePathParams) (*domain.MutationResult, error) {
	if strings.TrimSpace(params.Path) == "" {
		return nil, domain.NewValidationError("file", "file is required")
	}

	return s.mutate(ctx, repoPath, "file-stage", func(ctx context.Context, repo ports.RepoReader, _ *domain.MutationResult) error {
		// File names are matched literally, never as globs
		pathspec := ":(literal)" + params.Path

		var err error
		switch {
		case params.Stage:
			_, err = s.git(ctx, repo, "add", "-A", "--", pathspec)
		case hasHead(ctx, repo):
			_, err = s.git(ctx, repo, "reset", "-q", "--", pathspec)
		default:
			_, err = s.git(ctx, repo, "rm", "--cached", "-q", "--", pathspec)
		}
		return err
	})
}

// TrackPath adds a path to, or removes it from, the tracked-pending record.
// The backend index is not touched.
func (s *MutationService) TrackPath(ctx context.Context, repoPath string, params TrackPathParams) (*domain.MutationResult, error) {
	if strings.TrimSpace(params.Path) == "" {
		return nil, domain.NewValidationError("file", "file is required")
	}

	return s.mutate(ctx, repoPath, "file-track", func(ctx context.Context, repo ports.RepoReader, _ *domain.MutationResult) error {
		location := ports.RepoLocation{MetadataDir: repo.MetadataDir(), Root: repo.Root()}
		var err error
		if params.Track {
			_, err = s.store.Add(ctx, location, []string{params.Path})
		} else {
			_, err = s.store.Remove(ctx, location, []string{params.Path})
		}
		if err != nil {
			return fmt.Errorf("failed to update tracked-pending record: %w", err)
		}
		return nil
	})
}

// TrackAllUntracked adds every current untracked path to the tracked-pending record
func (s *MutationService) TrackAllUntracked(ctx context.Context, repoPath string) (*domain.MutationResult, error) {
	return s.mutate(ctx, repoPath, "track-all", func(ctx context.Context, repo ports.RepoReader, _ *domain.MutationResult) error {
		paths := s.snapshots.classify(ctx, repo).UntrackedPaths()
		if len(paths) == 0 {
			return nil
		}
		location := ports.RepoLocation{MetadataDir: repo.MetadataDir(), Root: repo.Root()}
		if _, err := s.store.Add(ctx, location, paths); err != nil {
			return fmt.Errorf("failed to update tracked-pending record: %w", err)
		}
		return nil
	})
}

// Commit records the staged changes. A blank message is rejected before any command runs.
func (s *MutationService) Commit(ctx context.Context, repoPath, message string) (*domain.MutationResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.NewValidationError("message", "commit message is required")
	}

	return s.mutate(ctx, repoPath, "commit", func(ctx context.Context, repo ports.RepoReader, _ *domain.MutationResult) error {
		_, err := s.git(ctx, repo, "commit", "-m", message)
		return err
	})
}

// Push pushes the current branch. When the branch has no upstream the push is retried
// once against origin/<branch> with --set-upstream.
func (s *MutationService) Push(ctx context.Context, repoPath string) (*domain.MutationResult, error) {
	return s.mutate(ctx, repoPath, "push", func(ctx context.Context, repo ports.RepoReader, result *domain.MutationResult) error {
		usedFallback := false
		result.UsedUpstreamFallback = &usedFallback

		_, err := s.git(ctx, repo, "push")
		if err == nil {
			return nil
		}
		if !isMissingUpstream(err) {
			return err
		}

		branch := currentBranch(ctx, repo)
		if domain.IsPlaceholderBranch(branch) {
			return fmt.Errorf("cannot set upstream for %s: %w", branch, err)
		}

		logging.FromContext(ctx).Info("Push has no upstream, retrying with --set-upstream", "branch", branch)
		if _, err := s.git(ctx, repo, "push", "--set-upstream", defaultRemote, branch); err != nil {
			return err
		}
		usedFallback = true
		return nil
	})
}

// Checkout switches to branch, creating it first when params.Create is set
func (s *MutationService) Checkout(ctx context.Context, repoPath string, params CheckoutParams) (*domain.MutationResult, error) {
	branch := strings.TrimSpace(params.Branch)
	if branch == "" {
		return nil, domain.NewValidationError("branch", "branch is required")
	}
	if err := domain.ValidateBranchName(branch); err != nil {
		return nil, err
	}

	return s.mutate(ctx, repoPath, "checkout", func(ctx context.Context, repo ports.RepoReader, _ *domain.MutationResult) error {
		args := []string{"checkout"}
		if params.Create {
			args = append(args, "-b")
		}
		_, err := s.git(ctx, repo, append(args, branch)...)
		return err
	})
}

// isMissingUpstream reports whether a push failed because the branch tracks nothing.
// Commands run with LC_ALL=C so the message is not localized.
func isMissingUpstream(err error) bool {
	var cmdErr *domain.CommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	out := strings.ToLower(cmdErr.Output())
	return strings.Contains(out, "has no upstream branch") ||
		strings.Contains(out, "no upstream") ||
		strings.Contains(out, "--set-upstream")
}
