package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitdash/internal/domain"
)

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, string(out))
	return string(out)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

// newTestRepo creates an empty repository on branch main
func newTestRepo(t *testing.T) string {
	t.Helper()
	requireGit(t)
	dir := t.TempDir()
	runGit(t, dir, "init", "-q")
	runGit(t, dir, "symbolic-ref", "HEAD", "refs/heads/main")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")
	runGit(t, dir, "config", "commit.gpgsign", "false")
	return dir
}

func commitFile(t *testing.T, dir, name, content, message string) {
	t.Helper()
	writeFile(t, dir, name, content)
	runGit(t, dir, "add", name)
	runGit(t, dir, "commit", "-q", "-m", message)
}

func openReader(t *testing.T, dir string) *GoGitReader {
	t.Helper()
	reader, err := NewGoGitOpener().Open(context.Background(), dir)
	require.NoError(t, err)
	return reader.(*GoGitReader)
}

func rowFor(rows []domain.StatusRow, path string) (domain.StatusRow, bool) {
	for _, r := range rows {
		if r.Path == path {
			return r, true
		}
	}
	return domain.StatusRow{}, false
}

func TestOpen_NotARepository(t *testing.T) {
	requireGit(t)
	_, err := NewGoGitOpener().Open(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, domain.ErrNotGitRepo)
}

func TestOpen_FromSubdirectory(t *testing.T) {
	dir := newTestRepo(t)
	commitFile(t, dir, "pkg/a.go", "package pkg\n", "init")

	reader := openReader(t, filepath.Join(dir, "pkg"))
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(reader.Root())
	require.NoError(t, err)
	assert.Equal(t, resolved, got)
	assert.Equal(t, filepath.Join(reader.Root(), ".git"), reader.MetadataDir())
}

func TestStatusMatrix_UnbornBranchWithStagedFile(t *testing.T) {
	dir := newTestRepo(t)
	writeFile(t, dir, "a.txt", "one\ntwo\nthree\n")
	runGit(t, dir, "add", "a.txt")

	reader := openReader(t, dir)
	rows, err := reader.StatusMatrix(context.Background())
	require.NoError(t, err)

	row, ok := rowFor(rows, "a.txt")
	require.True(t, ok)
	assert.False(t, row.Head.Present)
	assert.True(t, row.Index.Present)
	assert.True(t, row.IsStaged())
	assert.False(t, row.IsModified())

	branch, err := reader.CurrentBranch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestStatusMatrix_ModifiedAndDeleted(t *testing.T) {
	dir := newTestRepo(t)
	commitFile(t, dir, "a.txt", "one\n", "first")
	commitFile(t, dir, "b.txt", "bee\n", "second")
	commitFile(t, dir, "c.txt", "sea\n", "third")

	writeFile(t, dir, "a.txt", "one\ntwo\n")
	require.NoError(t, os.Remove(filepath.Join(dir, "b.txt")))
	writeFile(t, dir, "new.txt", "fresh\n")

	rows, err := openReader(t, dir).StatusMatrix(context.Background())
	require.NoError(t, err)

	a, _ := rowFor(rows, "a.txt")
	assert.True(t, a.IsModified(), "content change must be detected")
	assert.False(t, a.IsStaged())

	b, _ := rowFor(rows, "b.txt")
	assert.True(t, b.IsModified(), "deletion from working copy is a modification")
	assert.False(t, b.Work.Present)

	c, _ := rowFor(rows, "c.txt")
	assert.False(t, c.IsModified())
	assert.False(t, c.IsStaged())

	n, _ := rowFor(rows, "new.txt")
	assert.True(t, n.IsUntrackedCandidate())
}

func TestStatusMatrix_SkipsIgnoredDirectories(t *testing.T) {
	dir := newTestRepo(t)
	commitFile(t, dir, ".gitignore", "build/\n*.env\n", "ignore")
	writeFile(t, dir, "build/out.bin", "binary")
	writeFile(t, dir, "secret.env", "KEY=1\n")

	reader := openReader(t, dir)
	rows, err := reader.StatusMatrix(context.Background())
	require.NoError(t, err)

	_, found := rowFor(rows, "build/out.bin")
	assert.False(t, found, "files under ignored directories are not walked")

	secret, found := rowFor(rows, "secret.env")
	require.True(t, found, "ignored files are still reported as candidates")
	assert.True(t, secret.IsUntrackedCandidate())

	ignored, err := reader.IsIgnored(context.Background(), "secret.env")
	require.NoError(t, err)
	assert.True(t, ignored)

	ignored, err = reader.IsIgnored(context.Background(), "build/nested/file.txt")
	require.NoError(t, err)
	assert.True(t, ignored, "parent directory rules apply")

	ignored, err = reader.IsIgnored(context.Background(), "notes.txt")
	require.NoError(t, err)
	assert.False(t, ignored)
}

func TestIsIgnored_InfoExclude(t *testing.T) {
	dir := newTestRepo(t)
	writeFile(t, dir, ".git/info/exclude", "# local only\nscratch.txt\n")

	ignored, err := openReader(t, dir).IsIgnored(context.Background(), "scratch.txt")
	require.NoError(t, err)
	assert.True(t, ignored)
}

func TestCurrentBranch_Detached(t *testing.T) {
	dir := newTestRepo(t)
	commitFile(t, dir, "a.txt", "one\n", "first")
	commitFile(t, dir, "a.txt", "two\n", "second")
	runGit(t, dir, "checkout", "-q", "--detach", "HEAD~1")

	_, err := openReader(t, dir).CurrentBranch(context.Background())
	assert.ErrorIs(t, err, domain.ErrDetachedHead)
}

func TestWalkCommits_NewestFirstAndBounded(t *testing.T) {
	dir := newTestRepo(t)
	commitFile(t, dir, "a.txt", "1\n", "first")
	commitFile(t, dir, "a.txt", "2\n", "second")
	commitFile(t, dir, "a.txt", "3\n", "third")

	reader := openReader(t, dir)
	commits, err := reader.WalkCommits(context.Background(), "HEAD", 10)
	require.NoError(t, err)
	require.Len(t, commits, 3)
	assert.Equal(t, "third", commits[0].Message)
	assert.Equal(t, "first", commits[2].Message)
	assert.Equal(t, commits[1].ID, commits[0].FirstParent())
	assert.Empty(t, commits[2].ParentIDs)

	bounded, err := reader.WalkCommits(context.Background(), "refs/heads/main", 2)
	require.NoError(t, err)
	assert.Len(t, bounded, 2)

	_, err = reader.WalkCommits(context.Background(), "refs/heads/missing", 2)
	assert.ErrorIs(t, err, domain.ErrRefNotFound)
}

func TestResolveRef(t *testing.T) {
	dir := newTestRepo(t)

	reader := openReader(t, dir)
	_, err := reader.ResolveRef(context.Background(), "HEAD")
	assert.ErrorIs(t, err, domain.ErrRefNotFound, "unborn HEAD does not resolve")

	commitFile(t, dir, "a.txt", "1\n", "first")
	expected := runGit(t, dir, "rev-parse", "HEAD")

	reader = openReader(t, dir)
	id, err := reader.ResolveRef(context.Background(), "refs/heads/main")
	require.NoError(t, err)
	assert.Equal(t, expected[:40], id)

	id, err = reader.ResolveRef(context.Background(), "main")
	require.NoError(t, err)
	assert.Equal(t, expected[:40], id)
}

func TestBranchUpstreamAndList(t *testing.T) {
	requireGit(t)
	base := t.TempDir()
	bare := filepath.Join(base, "bare")
	runGit(t, base, "init", "-q", "--bare", bare)

	dir := newTestRepo(t)
	runGit(t, dir, "remote", "add", "origin", bare)
	commitFile(t, dir, "a.txt", "1\n", "first")
	runGit(t, dir, "push", "-q", "-u", "origin", "main")
	runGit(t, dir, "branch", "feature")

	reader := openReader(t, dir)
	remote, merge, err := reader.BranchUpstream(context.Background(), "main")
	require.NoError(t, err)
	assert.Equal(t, "origin", remote)
	assert.Equal(t, "refs/heads/main", merge)

	_, _, err = reader.BranchUpstream(context.Background(), "feature")
	assert.ErrorIs(t, err, domain.ErrNoUpstream)

	branches, err := reader.ListBranches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"feature", "main"}, branches)

	_, err = reader.ResolveRef(context.Background(), "refs/remotes/origin/main")
	assert.NoError(t, err)
}

// addSubmodule commits a one-file repository as a submodule of dir at path
func addSubmodule(t *testing.T, dir, path string) string {
	t.Helper()
	sub := newTestRepo(t)
	commitFile(t, sub, "lib.txt", "lib\n", "lib")

	runGit(t, dir, "-c", "protocol.file.allow=always", "submodule", "add", "-q", sub, path)
	runGit(t, dir, "commit", "-q", "-m", "add submodule")

	checkout := filepath.Join(dir, filepath.FromSlash(path))
	runGit(t, checkout, "config", "user.email", "test@example.com")
	runGit(t, checkout, "config", "user.name", "Test User")
	runGit(t, checkout, "config", "commit.gpgsign", "false")
	return checkout
}

func TestStatusMatrix_SubmoduleIsLeaf(t *testing.T) {
	dir := newTestRepo(t)
	commitFile(t, dir, "README.md", "hello\n", "init")
	checkout := addSubmodule(t, dir, "vendor/sub")

	t.Run("clean checkout", func(t *testing.T) {
		rows, err := openReader(t, dir).StatusMatrix(context.Background())
		require.NoError(t, err)

		for _, row := range rows {
			assert.False(t, row.IsStaged(), "staged: %s", row.Path)
			assert.False(t, row.IsModified(), "modified: %s", row.Path)
			assert.False(t, row.IsUntrackedCandidate(), "untracked: %s", row.Path)
		}

		row, ok := rowFor(rows, "vendor/sub")
		require.True(t, ok)
		assert.True(t, row.Head.Present)
		_, ok = rowFor(rows, "vendor/sub/lib.txt")
		assert.False(t, ok, "submodule contents must not be walked")
	})

	t.Run("new commit in submodule is modified", func(t *testing.T) {
		commitFile(t, checkout, "more.txt", "more\n", "more")

		rows, err := openReader(t, dir).StatusMatrix(context.Background())
		require.NoError(t, err)

		row, ok := rowFor(rows, "vendor/sub")
		require.True(t, ok)
		assert.True(t, row.IsModified())
		assert.False(t, row.IsStaged())
	})
}

func TestStatusMatrix_FileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no executable bit")
	}
	dir := newTestRepo(t)
	commitFile(t, dir, "run.sh", "#!/bin/sh\n", "script")
	writeFile(t, dir, "tool.sh", "#!/bin/sh\n")
	require.NoError(t, os.Chmod(filepath.Join(dir, "tool.sh"), 0755))
	runGit(t, dir, "add", "tool.sh")
	runGit(t, dir, "commit", "-q", "-m", "tool")

	t.Run("committed executable is clean", func(t *testing.T) {
		rows, err := openReader(t, dir).StatusMatrix(context.Background())
		require.NoError(t, err)
		row, ok := rowFor(rows, "tool.sh")
		require.True(t, ok)
		assert.False(t, row.IsModified())
		assert.False(t, row.IsStaged())
	})

	t.Run("chmod is modified", func(t *testing.T) {
		require.NoError(t, os.Chmod(filepath.Join(dir, "run.sh"), 0755))

		rows, err := openReader(t, dir).StatusMatrix(context.Background())
		require.NoError(t, err)
		row, ok := rowFor(rows, "run.sh")
		require.True(t, ok)
		assert.True(t, row.IsModified())
	})

	t.Run("core.fileMode false ignores the bit", func(t *testing.T) {
		runGit(t, dir, "config", "core.fileMode", "false")

		rows, err := openReader(t, dir).StatusMatrix(context.Background())
		require.NoError(t, err)
		row, ok := rowFor(rows, "run.sh")
		require.True(t, ok)
		assert.False(t, row.IsModified())
	})
}
