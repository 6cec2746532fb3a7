package services

import "github.com/renato0307/gitdash/internal/domain"

// Classification is the output of the status matrix classifier
type Classification struct {
	Modified  []domain.FileDelta
	Staged    []domain.FileDelta
	Untracked []domain.UntrackedEntry
}

// DivergenceResult holds ahead/behind numbers and the capped commit lists behind them
type DivergenceResult struct {
	Ahead         int
	AheadCommits  []domain.CommitRecord
	Behind        int
	BehindCommits []domain.CommitRecord
	Mode          domain.AheadMode
	UpstreamRef   string // Empty in local mode
}

// CheckoutParams contains parameters for switching branches
type CheckoutParams struct {
	Branch string
	Create bool
}

// StagePathParams contains parameters for staging or unstaging a single path
type StagePathParams struct {
	Path  string
	Stage bool
}

// TrackPathParams contains parameters for marking or unmarking a single path as tracked-pending
type TrackPathParams struct {
	Path  string
	Track bool
}
