package domain

// MutationResult is returned by every mutation: a freshly re-derived snapshot plus
// operation-specific extras
type MutationResult struct {
	AddedUntracked       *int          `json:"addedUntracked,omitempty"`
	Changed              *int          `json:"changed,omitempty"`
	OK                   bool          `json:"ok"`
	State                *RepoSnapshot `json:"state"`
	UsedUpstreamFallback *bool         `json:"usedUpstreamFallback,omitempty"`
}

// ExecResult is the outcome of one backend command invocation
type ExecResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}
