package storage

import "sort"

// normalize dedupes and sorts paths, dropping empty entries. Never returns nil.
func normalize(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func union(current, add []string) []string {
	return normalize(append(append([]string{}, current...), add...))
}

func subtract(current, remove []string) []string {
	drop := toSet(remove)
	kept := make([]string, 0, len(current))
	for _, p := range current {
		if !drop[p] {
			kept = append(kept, p)
		}
	}
	return normalize(kept)
}

func intersect(current, keep []string) []string {
	allowed := toSet(keep)
	kept := make([]string, 0, len(current))
	for _, p := range current {
		if allowed[p] {
			kept = append(kept, p)
		}
	}
	return normalize(kept)
}

func toSet(paths []string) map[string]bool {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return set
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
