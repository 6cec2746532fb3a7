package domain

// FileState is the presence and content identity of a path in one of HEAD, index or working copy
type FileState struct {
	Hash    string // Content identity (blob hash); only meaningful when Present
	Present bool
}

// Absent is the state of a path missing from a tree
var Absent = FileState{}

// PresentWith returns a present state with the given content identity
func PresentWith(hash string) FileState {
	return FileState{Hash: hash, Present: true}
}

// Equal compares two states. Two absent states are equal regardless of hash.
func (s FileState) Equal(other FileState) bool {
	if !s.Present || !other.Present {
		return s.Present == other.Present
	}
	return s.Hash == other.Hash
}

// StatusRow is the three-way comparison for one path
type StatusRow struct {
	Head  FileState
	Index FileState
	Path  string
	Work  FileState
}

// IsStaged reports whether the index differs from HEAD (added, staged-modified or staged-deleted)
func (r StatusRow) IsStaged() bool {
	return !r.Index.Equal(r.Head)
}

// IsModified reports whether a path present in HEAD has working-copy changes not in the index
func (r StatusRow) IsModified() bool {
	return r.Head.Present && !r.Work.Equal(r.Index)
}

// IsUntrackedCandidate reports whether the path exists only in the working copy.
// Ignore rules still need to be applied before the path counts as untracked.
func (r StatusRow) IsUntrackedCandidate() bool {
	return !r.Head.Present && !r.Index.Present && r.Work.Present
}
