package domain

// AheadMode tells how the ahead/behind numbers were computed
type AheadMode string

const (
	// AheadModeLocal: no upstream resolved, ahead counts local history only
	AheadModeLocal AheadMode = "local"
	// AheadModeUpstream: ahead/behind are relative to the resolved upstream ref
	AheadModeUpstream AheadMode = "upstream"
)

// Branch placeholders used when HEAD cannot be resolved to a branch
const (
	BranchDetached = "(detached)"
	BranchUnknown  = "(unknown)"
)

// Counts holds the true computed depth of every bucket.
// Commit counts may exceed the length of the capped detail lists.
type Counts struct {
	Ahead     int `json:"ahead"`
	Behind    int `json:"behind"`
	Modified  int `json:"modified"`
	Recent    int `json:"recent"`
	Staged    int `json:"staged"`
	Untracked int `json:"untracked"`
}

// Meta carries snapshot metadata alongside the counts
type Meta struct {
	AheadMode      AheadMode `json:"aheadMode"`
	TrackedPending []string  `json:"trackedPending"`
}

// Details holds the row lists of a snapshot
type Details struct {
	Ahead     []CommitRecord   `json:"ahead"`
	Behind    []CommitRecord   `json:"behind"`
	Modified  []FileDelta      `json:"modified"`
	Recent    []CommitRecord   `json:"recent"`
	Staged    []FileDelta      `json:"staged"`
	Untracked []UntrackedEntry `json:"untracked"`
}

// RepoSnapshot is the full, freshly computed view of a repository
type RepoSnapshot struct {
	Branch         string  `json:"branch"`
	Counts         Counts  `json:"counts"`
	Details        Details `json:"details"`
	Meta           Meta    `json:"meta"`
	Repository     string  `json:"repository"`
	RepositoryPath string  `json:"repositoryPath"`
}

// NewEmptySnapshot returns a snapshot with non-nil empty lists so it serializes as [] not null
func NewEmptySnapshot(repository, repositoryPath string) *RepoSnapshot {
	return &RepoSnapshot{
		Branch: BranchUnknown,
		Details: Details{
			Ahead:     []CommitRecord{},
			Behind:    []CommitRecord{},
			Modified:  []FileDelta{},
			Recent:    []CommitRecord{},
			Staged:    []FileDelta{},
			Untracked: []UntrackedEntry{},
		},
		Meta: Meta{
			AheadMode:      AheadModeLocal,
			TrackedPending: []string{},
		},
		Repository:     repository,
		RepositoryPath: repositoryPath,
	}
}

// BranchList is the result of a branch-list query
type BranchList struct {
	Branches []string `json:"branches"`
	Current  string   `json:"current"`
}

// IsPlaceholderBranch reports whether name is one of the unresolved-branch placeholders
func IsPlaceholderBranch(name string) bool {
	return name == "" || name == BranchDetached || name == BranchUnknown
}
