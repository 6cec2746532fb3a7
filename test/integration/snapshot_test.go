package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitdash/internal/domain"
	"github.com/renato0307/gitdash/test/integration/harness"
)

func messages(commits []domain.CommitRecord) []string {
	out := make([]string, 0, len(commits))
	for _, c := range commits {
		out = append(out, c.Message)
	}
	return out
}

func TestSnapshot_StagedNewFile(t *testing.T) {
	g := harness.NewTestGitSetup(t)
	g.WriteFile(g.ClonePath, "a.txt", "one\ntwo\nthree\n")
	harness.RunGitCommand(t, g.ClonePath, "add", "a.txt")

	snap, err := newContainer(t).SnapshotService.Snapshot(context.Background(), g.ClonePath)
	require.NoError(t, err)

	assert.Equal(t, "clone", snap.Repository)
	assert.Equal(t, "main", snap.Branch)
	assert.Equal(t, domain.AheadModeUpstream, snap.Meta.AheadMode)
	assert.Equal(t, domain.Counts{Recent: 1, Staged: 1}, snap.Counts)
	assert.Equal(t, []domain.FileDelta{{Additions: 3, Path: "a.txt"}}, snap.Details.Staged)
	assert.Empty(t, snap.Details.Modified)
	assert.Empty(t, snap.Details.Untracked)
}

func TestSnapshot_DivergedFromTrackingBranch(t *testing.T) {
	g := harness.NewTestGitSetup(t)
	g.CreateBranch(g.ClonePath, "feature")
	g.CommitFile(g.ClonePath, "base.txt", "base\n", "feature base")
	g.PushBranch(g.ClonePath, "feature")

	other := g.CloneAgain("other", "feature")
	g.CommitFile(other, "remote.txt", "remote\n", "remote work")
	g.PushBranch(other, "feature")

	g.CommitFile(g.ClonePath, "one.txt", "1\n", "local one")
	g.CommitFile(g.ClonePath, "two.txt", "2\n2\n", "local two")
	g.Fetch(g.ClonePath)

	snap, err := newContainer(t).SnapshotService.Snapshot(context.Background(), g.ClonePath)
	require.NoError(t, err)

	assert.Equal(t, "feature", snap.Branch)
	assert.Equal(t, domain.AheadModeUpstream, snap.Meta.AheadMode)
	assert.Equal(t, 2, snap.Counts.Ahead)
	assert.Equal(t, 1, snap.Counts.Behind)
	assert.Equal(t, []string{"local two", "local one"}, messages(snap.Details.Ahead))
	assert.Equal(t, []string{"remote work"}, messages(snap.Details.Behind))

	// Commit rows carry numstat totals from the real diff
	assert.Equal(t, 2, snap.Details.Ahead[0].Additions)
	assert.Equal(t, []domain.FileDelta{{Additions: 1, Path: "remote.txt"}}, snap.Details.Behind[0].Files)
}

func TestSnapshot_DetachedHeadCountsLocalHistory(t *testing.T) {
	g := harness.NewTestGitSetup(t)
	for _, name := range []string{"b.txt", "c.txt", "d.txt", "e.txt"} {
		g.CommitFile(g.ClonePath, name, name+"\n", "add "+name)
	}
	harness.RunGitCommand(t, g.ClonePath, "checkout", "-q", "--detach")

	snap, err := newContainer(t).SnapshotService.Snapshot(context.Background(), g.ClonePath)
	require.NoError(t, err)

	assert.Equal(t, domain.BranchDetached, snap.Branch)
	assert.Equal(t, domain.AheadModeLocal, snap.Meta.AheadMode)
	assert.Equal(t, 5, snap.Counts.Ahead)
	assert.Equal(t, 0, snap.Counts.Behind)
	assert.Len(t, snap.Details.Ahead, 5)
	assert.Empty(t, snap.Details.Behind)
}

func TestSnapshot_IgnoredFilesAreNotUntracked(t *testing.T) {
	g := harness.NewTestGitSetup(t)
	g.CommitFile(g.ClonePath, ".gitignore", "secret.env\n", "ignore secrets")
	g.WriteFile(g.ClonePath, "secret.env", "TOKEN=x\n")
	g.WriteFile(g.ClonePath, "notes.txt", "todo\n")

	snap, err := newContainer(t).SnapshotService.Snapshot(context.Background(), g.ClonePath)
	require.NoError(t, err)

	assert.Equal(t, 1, snap.Counts.Untracked)
	assert.Equal(t, []domain.UntrackedEntry{{Path: "notes.txt"}}, snap.Details.Untracked)
}

func TestSnapshot_CleanSubmoduleHasNoRows(t *testing.T) {
	g := harness.NewTestGitSetup(t)
	g.AddSubmodule(filepath.Join("vendor", "sub"))

	snap, err := newContainer(t).SnapshotService.Snapshot(context.Background(), g.ClonePath)
	require.NoError(t, err)

	assert.Equal(t, 0, snap.Counts.Staged)
	assert.Equal(t, 0, snap.Counts.Modified)
	assert.Equal(t, 0, snap.Counts.Untracked)
}

func TestSnapshot_NonASCIIPathHasStats(t *testing.T) {
	g := harness.NewTestGitSetup(t)
	g.CommitFile(g.ClonePath, "café.txt", "one\n", "add café")
	g.WriteFile(g.ClonePath, "café.txt", "one\ntwo\n")

	snap, err := newContainer(t).SnapshotService.Snapshot(context.Background(), g.ClonePath)
	require.NoError(t, err)

	assert.Equal(t, []domain.FileDelta{{Additions: 1, Path: "café.txt"}}, snap.Details.Modified)
	assert.Equal(t, []domain.FileDelta{{Additions: 1, Path: "café.txt"}}, snap.Details.Recent[0].Files)
}

func TestSnapshot_NotARepository(t *testing.T) {
	harness.RequireGit(t)

	_, err := newContainer(t).SnapshotService.Snapshot(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, domain.ErrNotGitRepo)
}
