package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func fileStateGen() *rapid.Generator[FileState] {
	return rapid.Custom(func(t *rapid.T) FileState {
		if !rapid.Bool().Draw(t, "present") {
			return Absent
		}
		return PresentWith(rapid.SampledFrom([]string{"a1", "b2", "c3"}).Draw(t, "hash"))
	})
}

func TestFileStateEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     FileState
		expected bool
	}{
		{"both absent", Absent, Absent, true},
		{"absent with stale hash", FileState{Hash: "x"}, Absent, true},
		{"absent vs present", Absent, PresentWith("x"), false},
		{"same hash", PresentWith("x"), PresentWith("x"), true},
		{"different hash", PresentWith("x"), PresentWith("y"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
			assert.Equal(t, tt.expected, tt.b.Equal(tt.a))
		})
	}
}

func TestStatusRow_Classification(t *testing.T) {
	tests := []struct {
		name      string
		row       StatusRow
		staged    bool
		modified  bool
		untracked bool
	}{
		{
			name:   "new file staged",
			row:    StatusRow{Path: "a.txt", Index: PresentWith("1"), Work: PresentWith("1")},
			staged: true,
		},
		{
			name:     "staged then edited again",
			row:      StatusRow{Path: "a.txt", Head: PresentWith("0"), Index: PresentWith("1"), Work: PresentWith("2")},
			staged:   true,
			modified: true,
		},
		{
			name:     "edited, not staged",
			row:      StatusRow{Path: "a.txt", Head: PresentWith("0"), Index: PresentWith("0"), Work: PresentWith("2")},
			modified: true,
		},
		{
			name:     "deleted from working copy",
			row:      StatusRow{Path: "a.txt", Head: PresentWith("0"), Index: PresentWith("0")},
			modified: true,
		},
		{
			name:   "staged deletion",
			row:    StatusRow{Path: "a.txt", Head: PresentWith("0")},
			staged: true,
		},
		{
			name:      "untracked",
			row:       StatusRow{Path: "a.txt", Work: PresentWith("9")},
			untracked: true,
		},
		{
			name: "unchanged",
			row:  StatusRow{Path: "a.txt", Head: PresentWith("0"), Index: PresentWith("0"), Work: PresentWith("0")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.staged, tt.row.IsStaged(), "staged")
			assert.Equal(t, tt.modified, tt.row.IsModified(), "modified")
			assert.Equal(t, tt.untracked, tt.row.IsUntrackedCandidate(), "untracked")
		})
	}
}

func TestStatusRow_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		row := StatusRow{
			Head:  fileStateGen().Draw(t, "head"),
			Index: fileStateGen().Draw(t, "index"),
			Path:  "f",
			Work:  fileStateGen().Draw(t, "work"),
		}

		if row.IsStaged() != !row.Index.Equal(row.Head) {
			t.Fatalf("staged must match index != head for %+v", row)
		}
		if row.IsModified() != (row.Head.Present && !row.Work.Equal(row.Index)) {
			t.Fatalf("modified must match head present && work != index for %+v", row)
		}
		if row.IsUntrackedCandidate() && (row.IsStaged() || row.IsModified()) {
			t.Fatalf("an untracked candidate can be neither staged nor modified: %+v", row)
		}
	})
}

func TestNewCommitRecord(t *testing.T) {
	c := NewCommitRecord("0123456789abcdef", "  subject\n\nbody\n", 42, []string{"p1", "p2"})
	assert.Equal(t, "subject\n\nbody", c.Message)
	assert.Equal(t, "p1", c.FirstParent())
	assert.NotNil(t, c.Files)

	empty := NewCommitRecord("0123456789abcdef", "   ", 0, nil)
	assert.Equal(t, "0123456", empty.Message)
	assert.Equal(t, "", empty.FirstParent())
}

func TestCommandError(t *testing.T) {
	err := &CommandError{Args: []string{"push"}, ExitCode: 128, Stderr: "fatal: no upstream\n"}
	assert.Equal(t, "git push: fatal: no upstream", err.Error())
	assert.ErrorIs(t, err, ErrCommandFailed)

	bare := &CommandError{ExitCode: 1}
	assert.Equal(t, "exit status 1", bare.Error())
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("message", "commit message is required")))
	assert.False(t, IsValidationError(ErrNoUpstream))
}
