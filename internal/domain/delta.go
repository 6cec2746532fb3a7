package domain

// FileDelta is one file's change within the staged or unstaged bucket, or within a commit.
// Zero counts mean either "not computed" or "genuinely zero".
type FileDelta struct {
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Path      string `json:"file"`
}

// UntrackedEntry is a working-copy file that is in neither HEAD nor the index
type UntrackedEntry struct {
	Path string `json:"file"`
}

// FileStat holds numeric diff statistics for a single path
type FileStat struct {
	Additions int
	Deletions int
}
