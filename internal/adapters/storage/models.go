package storage

import "time"

// TrackedPathModel is the GORM model for the tracked_paths table.
// Rows are keyed by repository root and path.
type TrackedPathModel struct {
	CreatedAt time.Time
	Path      string `gorm:"primaryKey"`
	RepoRoot  string `gorm:"primaryKey;index:idx_repo_root"`
}

// TableName specifies the table name for GORM
func (TrackedPathModel) TableName() string { return "tracked_paths" }
