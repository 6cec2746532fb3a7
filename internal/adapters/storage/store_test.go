package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/renato0307/gitdash/internal/ports"
)

func newLocation(t *testing.T) ports.RepoLocation {
	t.Helper()
	root := t.TempDir()
	metadataDir := filepath.Join(root, ".git")
	require.NoError(t, os.MkdirAll(metadataDir, 0755))
	return ports.RepoLocation{MetadataDir: metadataDir, Root: root}
}

func newSQLiteStore(t *testing.T) *SQLiteTrackedStore {
	t.Helper()
	store, err := NewSQLiteTrackedStore(filepath.Join(t.TempDir(), "db", "gitdash.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func storeBackends() map[string]func(t *testing.T) ports.TrackedStore {
	return map[string]func(t *testing.T) ports.TrackedStore{
		"json": func(t *testing.T) ports.TrackedStore { return NewJSONTrackedStore() },
		"sqlite": func(t *testing.T) ports.TrackedStore {
			return newSQLiteStore(t)
		},
	}
}

func TestTrackedStore_Contract(t *testing.T) {
	ctx := context.Background()

	for name, newStore := range storeBackends() {
		t.Run(name, func(t *testing.T) {
			t.Run("missing record reads empty", func(t *testing.T) {
				paths, err := newStore(t).Read(ctx, newLocation(t))
				require.NoError(t, err)
				assert.Equal(t, []string{}, paths)
			})

			t.Run("add is a sorted set union", func(t *testing.T) {
				store := newStore(t)
				repo := newLocation(t)

				_, err := store.Add(ctx, repo, []string{"z.txt", "a.txt"})
				require.NoError(t, err)
				paths, err := store.Add(ctx, repo, []string{"m.txt", "a.txt", ""})
				require.NoError(t, err)
				assert.Equal(t, []string{"a.txt", "m.txt", "z.txt"}, paths)

				read, err := store.Read(ctx, repo)
				require.NoError(t, err)
				assert.Equal(t, paths, read)
			})

			t.Run("remove", func(t *testing.T) {
				store := newStore(t)
				repo := newLocation(t)

				_, err := store.Add(ctx, repo, []string{"a.txt", "b.txt"})
				require.NoError(t, err)
				paths, err := store.Remove(ctx, repo, []string{"a.txt", "missing.txt"})
				require.NoError(t, err)
				assert.Equal(t, []string{"b.txt"}, paths)
			})

			t.Run("prune keeps only untracked", func(t *testing.T) {
				store := newStore(t)
				repo := newLocation(t)

				_, err := store.Add(ctx, repo, []string{"x.txt", "y.txt"})
				require.NoError(t, err)

				// x.txt was committed out of band
				paths, err := store.Prune(ctx, repo, []string{"y.txt", "other.txt"})
				require.NoError(t, err)
				assert.Equal(t, []string{"y.txt"}, paths)

				read, err := store.Read(ctx, repo)
				require.NoError(t, err)
				assert.Equal(t, []string{"y.txt"}, read)
			})

			t.Run("records are scoped per repository", func(t *testing.T) {
				store := newStore(t)
				first, second := newLocation(t), newLocation(t)

				_, err := store.Add(ctx, first, []string{"a.txt"})
				require.NoError(t, err)

				paths, err := store.Read(ctx, second)
				require.NoError(t, err)
				assert.Empty(t, paths)
			})
		})
	}
}

func TestTrackedStore_PruneInvariant(t *testing.T) {
	ctx := context.Background()
	pathGen := rapid.SampledFrom([]string{"a.txt", "b.txt", "c/d.txt", "e.env", "f.go"})

	for name, newStore := range storeBackends() {
		t.Run(name, func(t *testing.T) {
			store := newStore(t)
			repo := newLocation(t)

			rapid.Check(t, func(t *rapid.T) {
				tracked := rapid.SliceOf(pathGen).Draw(t, "tracked")
				untracked := rapid.SliceOf(pathGen).Draw(t, "untracked")

				if _, err := store.Add(ctx, repo, tracked); err != nil {
					t.Fatalf("add: %v", err)
				}
				remaining, err := store.Prune(ctx, repo, untracked)
				if err != nil {
					t.Fatalf("prune: %v", err)
				}

				allowed := toSet(untracked)
				for _, p := range remaining {
					if !allowed[p] {
						t.Fatalf("%q survived prune but is not untracked", p)
					}
				}
				for i := 1; i < len(remaining); i++ {
					if remaining[i-1] >= remaining[i] {
						t.Fatalf("not sorted and unique: %v", remaining)
					}
				}
			})
		})
	}
}

func TestJSONTrackedStore_CorruptRecordReadsEmpty(t *testing.T) {
	repo := newLocation(t)
	require.NoError(t, os.WriteFile(SidecarPath(repo), []byte("{not json"), 0644))

	store := NewJSONTrackedStore()
	paths, err := store.Read(context.Background(), repo)
	require.NoError(t, err)
	assert.Empty(t, paths)

	paths, err = store.Add(context.Background(), repo, []string{"a.txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, paths, "a corrupt record is replaced on the next write")
}

func TestJSONTrackedStore_FileFormat(t *testing.T) {
	repo := newLocation(t)
	_, err := NewJSONTrackedStore().Add(context.Background(), repo, []string{"b.txt", "a.txt"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(repo.MetadataDir, SidecarFileName))
	require.NoError(t, err)
	assert.JSONEq(t, `{"trackedPending": ["a.txt", "b.txt"]}`, string(data))
}

func TestJSONTrackedStore_RootFallback(t *testing.T) {
	repo := ports.RepoLocation{Root: t.TempDir()}
	assert.Equal(t, filepath.Join(repo.Root, RootSidecarFileName), SidecarPath(repo))

	_, err := NewJSONTrackedStore().Add(context.Background(), repo, []string{"a.txt"})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(repo.Root, RootSidecarFileName))
}

func TestJSONTrackedStore_NoOpPruneWritesNothing(t *testing.T) {
	repo := newLocation(t)

	paths, err := NewJSONTrackedStore().Prune(context.Background(), repo, []string{"a.txt"})
	require.NoError(t, err)
	assert.Empty(t, paths)

	entries, err := os.ReadDir(repo.MetadataDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
