package git

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/renato0307/gitdash/internal/logging"
)

// IsIgnored implements RepoReader.IsIgnored.
// A path is ignored when it or any of its parent directories match.
func (r *GoGitReader) IsIgnored(ctx context.Context, p string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	parts := strings.Split(filepath.ToSlash(p), "/")
	m := r.matcher()

	for i := 1; i < len(parts); i++ {
		if m.Match(parts[:i], true) {
			return true, nil
		}
	}
	return m.Match(parts, false), nil
}

// matcher lazily builds the ignore matcher from .gitignore files, info/exclude and
// the global excludes file. Callers must hold r.mu.
func (r *GoGitReader) matcher() gitignore.Matcher {
	r.ignoreOnce.Do(func() {
		var patterns []gitignore.Pattern

		if global, err := gitignore.LoadGlobalPatterns(osfs.New("/")); err == nil {
			patterns = append(patterns, global...)
		} else {
			logging.Logger.Debug("Failed to load global ignore patterns", "error", err)
		}

		if r.metadataDir != "" {
			patterns = append(patterns, readExcludeFile(filepath.Join(r.metadataDir, "info", "exclude"))...)
		}

		local, err := gitignore.ReadPatterns(r.worktree.Filesystem, nil)
		if err != nil {
			logging.Logger.Debug("Failed to read .gitignore patterns", "root", r.root, "error", err)
		}
		patterns = append(patterns, local...)

		r.ignoreMatcher = gitignore.NewMatcher(patterns)
		logging.Logger.Debug("Ignore matcher built", "root", r.root, "patterns", len(patterns))
	})
	return r.ignoreMatcher
}

// readExcludeFile parses a gitignore-format file rooted at the repository top
func readExcludeFile(path string) []gitignore.Pattern {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var patterns []gitignore.Pattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns
}
