package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/renato0307/gitdash/internal/domain"
	"github.com/renato0307/gitdash/internal/logging"
)

// StatusMatrix implements RepoReader.StatusMatrix.
// Only paths present in HEAD or the index are hashed; working-copy-only files just
// report presence since nothing compares their content. A state identity is the
// file mode plus the object hash, so mode-only changes count as changes.
// Submodules are leaves identified by their checked-out commit.
func (r *GoGitReader) StatusMatrix(ctx context.Context) ([]domain.StatusRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	head, err := r.headTree()
	if err != nil {
		return nil, err
	}

	entries, indexModTime := r.indexEntries()

	tracked := make(map[string]bool, len(head)+len(entries))
	for p := range head {
		tracked[p] = true
	}
	for p := range entries {
		tracked[p] = true
	}
	trackedDirs := parentDirs(tracked)

	gitlinks := make(map[string]bool)
	for p, st := range head {
		if st.Mode == filemode.Submodule {
			gitlinks[p] = true
		}
	}
	for p, e := range entries {
		if e.Mode == filemode.Submodule {
			gitlinks[p] = true
		}
	}

	walk := workdirWalk{
		entries:      entries,
		gitlinks:     gitlinks,
		indexModTime: indexModTime,
		tracked:      tracked,
		trackedDirs:  trackedDirs,
		trustExecBit: r.trustExecutableBit(),
	}
	work, err := r.walkWorkdir(ctx, walk)
	if err != nil {
		return nil, err
	}

	paths := make(map[string]bool, len(tracked)+len(work))
	for p := range tracked {
		paths[p] = true
	}
	for p := range work {
		paths[p] = true
	}

	rows := make([]domain.StatusRow, 0, len(paths))
	for p := range paths {
		row := domain.StatusRow{Path: p, Work: work[p]}
		if h, ok := head[p]; ok {
			row.Head = stateOf(h.Mode, h.Hash)
		}
		if e, ok := entries[p]; ok {
			row.Index = stateOf(e.Mode, e.Hash)
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Path < rows[j].Path })

	logging.Logger.Debug("Status matrix computed",
		"root", r.root,
		"head_paths", len(head),
		"index_paths", len(entries),
		"submodules", len(gitlinks),
		"rows", len(rows))

	return rows, nil
}

type treeState struct {
	Hash plumbing.Hash
	Mode filemode.FileMode
}

// headTree maps every non-directory path in the HEAD tree, gitlinks included.
// An unborn branch has an empty HEAD tree.
func (r *GoGitReader) headTree() (map[string]treeState, error) {
	files := make(map[string]treeState)

	hash, err := r.resolve("HEAD")
	if err != nil {
		logging.Logger.Debug("HEAD has no commit, using empty tree", "root", r.root, "error", err)
		return files, nil
	}

	commit, err := r.repo.CommitObject(hash)
	if err != nil {
		return nil, fmt.Errorf("failed to read HEAD commit: %w", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to read HEAD tree: %w", err)
	}

	// Tree.Files skips gitlinks, the walker returns them without descending
	walker := object.NewTreeWalker(tree, true, nil)
	defer walker.Close()
	for {
		name, entry, err := walker.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate HEAD tree: %w", err)
		}
		if entry.Mode == filemode.Dir {
			continue
		}
		files[name] = treeState{Hash: entry.Hash, Mode: entry.Mode}
	}
	return files, nil
}

// indexEntries returns index entries keyed by path, plus the index file mtime
func (r *GoGitReader) indexEntries() (map[string]*index.Entry, time.Time) {
	entries := make(map[string]*index.Entry)

	idx, err := r.repo.Storer.Index()
	if err != nil {
		logging.Logger.Debug("No readable index", "root", r.root, "error", err)
		return entries, time.Time{}
	}

	// Entries are sorted by path then stage; conflicted paths keep their lowest stage
	for _, e := range idx.Entries {
		if _, seen := entries[e.Name]; seen {
			continue
		}
		entries[e.Name] = e
	}

	var modTime time.Time
	if r.metadataDir != "" {
		if info, err := os.Stat(filepath.Join(r.metadataDir, "index")); err == nil {
			modTime = info.ModTime()
		}
	}
	return entries, modTime
}

type workdirWalk struct {
	entries      map[string]*index.Entry
	gitlinks     map[string]bool
	indexModTime time.Time
	tracked      map[string]bool
	trackedDirs  map[string]bool
	trustExecBit bool
}

// walkWorkdir collects working-copy states.
// Directories holding no tracked path are skipped when ignore rules exclude them.
func (r *GoGitReader) walkWorkdir(ctx context.Context, w workdirWalk) (map[string]domain.FileState, error) {
	work := make(map[string]domain.FileState)
	matcher := r.matcher()

	err := filepath.WalkDir(r.root, func(abs string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			logging.Logger.Debug("Skipping unreadable path", "path", abs, "error", walkErr)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(r.root, abs)
		if err != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			if w.gitlinks[rel] {
				work[rel] = submoduleState(abs, w.entries[rel])
				return filepath.SkipDir
			}
			if !w.trackedDirs[rel] && matcher.Match(strings.Split(rel, "/"), true) {
				return filepath.SkipDir
			}
			return nil
		}

		// .git files mark linked worktrees or submodules
		if d.Name() == ".git" {
			return nil
		}

		if !w.tracked[rel] {
			work[rel] = domain.PresentWith("")
			return nil
		}

		state, err := hashWorkFile(abs, d, w.entries[rel], w.indexModTime, w.trustExecBit)
		if err != nil {
			logging.Logger.Debug("Failed to hash working copy file", "path", rel, "error", err)
			return nil
		}
		work[rel] = state
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk working copy: %w", err)
	}

	return work, nil
}

// trustExecutableBit follows core.fileMode; filesystems without an executable bit
// inherit the mode recorded in the index
func (r *GoGitReader) trustExecutableBit() bool {
	cfg, err := r.repo.Config()
	if err == nil && cfg.Raw != nil && cfg.Raw.HasSection("core") {
		switch strings.ToLower(cfg.Raw.Section("core").Option("filemode")) {
		case "false", "no", "off", "0":
			return false
		case "true", "yes", "on", "1":
			return true
		}
	}
	return runtime.GOOS != "windows"
}

// stateOf builds the identity of a tree or index entry
func stateOf(mode filemode.FileMode, hash plumbing.Hash) domain.FileState {
	if mode == filemode.Deprecated {
		mode = filemode.Regular
	}
	return domain.PresentWith(mode.String() + " " + hash.String())
}

// submoduleState identifies a submodule checkout by its HEAD commit.
// An uninitialized submodule reports the recorded commit, as git status does.
func submoduleState(abs string, entry *index.Entry) domain.FileState {
	if sub, err := gogit.PlainOpen(abs); err == nil {
		if head, err := sub.Head(); err == nil {
			return stateOf(filemode.Submodule, head.Hash())
		}
	}
	if entry != nil {
		return stateOf(filemode.Submodule, entry.Hash)
	}
	return domain.PresentWith("")
}

// workMode maps a working-copy file to the mode git would record for it
func workMode(info fs.FileInfo, entry *index.Entry, trustExecBit bool) filemode.FileMode {
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		return filemode.Symlink
	case !trustExecBit && entry != nil && (entry.Mode == filemode.Regular || entry.Mode == filemode.Executable):
		return entry.Mode
	case info.Mode().Perm()&0o111 != 0:
		return filemode.Executable
	default:
		return filemode.Regular
	}
}

// hashWorkFile computes the identity of a working-copy file.
// When mode, size and mtime match the index entry and the file is older than the index
// itself, the index hash is reused the way git's stat cache does.
func hashWorkFile(abs string, d fs.DirEntry, entry *index.Entry, indexModTime time.Time, trustExecBit bool) (domain.FileState, error) {
	info, err := d.Info()
	if err != nil {
		return domain.Absent, err
	}
	mode := workMode(info, entry, trustExecBit)

	if entry != nil && info.Mode().IsRegular() &&
		entry.Mode == mode &&
		int64(entry.Size) == info.Size() &&
		entry.ModifiedAt.Equal(info.ModTime()) &&
		info.ModTime().Before(indexModTime) {
		return stateOf(entry.Mode, entry.Hash), nil
	}

	var content []byte
	if mode == filemode.Symlink {
		target, err := os.Readlink(abs)
		if err != nil {
			return domain.Absent, err
		}
		content = []byte(filepath.ToSlash(target))
	} else {
		content, err = os.ReadFile(abs)
		if err != nil {
			return domain.Absent, err
		}
	}

	return stateOf(mode, plumbing.ComputeHash(plumbing.BlobObject, content)), nil
}

// parentDirs returns every directory that contains at least one of the given paths
func parentDirs(paths map[string]bool) map[string]bool {
	dirs := make(map[string]bool)
	for p := range paths {
		for dir := path.Dir(p); dir != "." && dir != "/" && !dirs[dir]; dir = path.Dir(dir) {
			dirs[dir] = true
		}
	}
	return dirs
}
