package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/renato0307/gitdash/internal/domain"
	"github.com/renato0307/gitdash/internal/logging"
	"github.com/renato0307/gitdash/internal/ports"
)

// EmptyTreeID is the well-known id of the empty tree, used as the base of root commits
const EmptyTreeID = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// NumstatReader computes diff statistics from `git diff --numstat -z` output.
// NUL-terminated records carry paths verbatim, without core.quotePath escaping.
// The primary runner is tried first, then the fallback runner. When both fail the
// caller gets the last error and is expected to use zero stats.
type NumstatReader struct {
	fallback ports.CommandRunner
	primary  ports.CommandRunner
}

// NewNumstatReader creates a NumstatReader. fallback may be nil.
func NewNumstatReader(primary, fallback ports.CommandRunner) *NumstatReader {
	return &NumstatReader{
		fallback: fallback,
		primary:  primary,
	}
}

// StagedStat returns index-vs-HEAD stats for path
func (r *NumstatReader) StagedStat(ctx context.Context, dir, path string) (domain.FileStat, error) {
	deltas, err := r.numstat(ctx, dir, []string{"diff", "--cached", "--numstat", "-z", "--no-renames", "--", literalPathspec(path)})
	if err != nil {
		return domain.FileStat{}, err
	}
	return LookupStat(deltas, path), nil
}

// UnstagedStat returns working-copy-vs-index stats for path
func (r *NumstatReader) UnstagedStat(ctx context.Context, dir, path string) (domain.FileStat, error) {
	deltas, err := r.numstat(ctx, dir, []string{"diff", "--numstat", "-z", "--no-renames", "--", literalPathspec(path)})
	if err != nil {
		return domain.FileStat{}, err
	}
	return LookupStat(deltas, path), nil
}

// CommitStats returns the per-file stats of commitID against parentID
func (r *NumstatReader) CommitStats(ctx context.Context, dir, commitID, parentID string) ([]domain.FileDelta, error) {
	if parentID == "" {
		parentID = EmptyTreeID
	}
	return r.numstat(ctx, dir, []string{"diff", "--numstat", "-z", "--no-renames", parentID, commitID})
}

func (r *NumstatReader) numstat(ctx context.Context, dir string, args []string) ([]domain.FileDelta, error) {
	result, err := r.primary.Execute(ctx, dir, args)
	if err == nil {
		return ParseNumstat(result.Stdout), nil
	}
	logging.Logger.Warn("numstat command failed", "args", args, "dir", dir, "error", err)

	if r.fallback == nil {
		return nil, fmt.Errorf("numstat: %w", err)
	}

	result, err = r.fallback.Execute(ctx, dir, args)
	if err != nil {
		logging.Logger.Debug("Fallback numstat command failed", "args", args, "dir", dir, "error", err)
		return nil, fmt.Errorf("numstat fallback: %w", err)
	}
	return ParseNumstat(result.Stdout), nil
}

// literalPathspec stops git from expanding glob characters in a file name
func literalPathspec(path string) string {
	return ":(literal)" + path
}

// ParseNumstat parses NUL-terminated "ADDED\tDELETED\tPATH" records, preserving output order.
// Binary files report "-" and count as zero. A rename record has an empty path followed by
// the old and new paths as separate fields; the new path is kept. Malformed records are skipped.
func ParseNumstat(raw string) []domain.FileDelta {
	var deltas []domain.FileDelta
	index := make(map[string]int)

	fields := strings.Split(raw, "\x00")
	for i := 0; i < len(fields); i++ {
		record := strings.TrimLeft(fields[i], "\r\n")
		if record == "" {
			continue
		}

		parts := strings.SplitN(record, "\t", 3)
		if len(parts) < 3 {
			continue
		}

		path := parts[2]
		if path == "" {
			if i+2 >= len(fields) {
				break
			}
			path = fields[i+2]
			i += 2
		}

		delta := domain.FileDelta{
			Additions: parseCount(parts[0]),
			Deletions: parseCount(parts[1]),
			Path:      path,
		}

		// Later records for the same path replace earlier ones
		if j, ok := index[delta.Path]; ok {
			deltas[j] = delta
			continue
		}
		index[delta.Path] = len(deltas)
		deltas = append(deltas, delta)
	}

	return deltas
}

func parseCount(field string) int {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// LookupStat finds the stats for path: an exact key match first, then a key ending in
// "/path" or equal to "./path". Returns zero stats when nothing matches.
func LookupStat(deltas []domain.FileDelta, path string) domain.FileStat {
	for _, d := range deltas {
		if d.Path == path {
			return domain.FileStat{Additions: d.Additions, Deletions: d.Deletions}
		}
	}
	for _, d := range deltas {
		if strings.HasSuffix(d.Path, "/"+path) || d.Path == "./"+path {
			return domain.FileStat{Additions: d.Additions, Deletions: d.Deletions}
		}
	}
	return domain.FileStat{}
}
