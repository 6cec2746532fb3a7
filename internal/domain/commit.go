package domain

import "strings"

// ShortIDLength is the number of characters used for abbreviated commit ids
const ShortIDLength = 7

// CommitRecord is a single commit row. Identity is ID.
type CommitRecord struct {
	Additions int         `json:"additions"`
	Deletions int         `json:"deletions"`
	Files     []FileDelta `json:"files"`
	ID        string      `json:"oid"`
	Message   string      `json:"message"`
	ParentIDs []string    `json:"-"`
	Timestamp int64       `json:"ts"`
}

// NewCommitRecord builds a commit row with zero stats.
// An empty message is replaced by the abbreviated id.
func NewCommitRecord(id, message string, timestamp int64, parents []string) CommitRecord {
	msg := strings.TrimSpace(message)
	if msg == "" {
		msg = ShortID(id)
	}
	return CommitRecord{
		Files:     []FileDelta{},
		ID:        id,
		Message:   msg,
		ParentIDs: parents,
		Timestamp: timestamp,
	}
}

// FirstParent returns the first parent id, or "" for a root commit
func (c CommitRecord) FirstParent() string {
	if len(c.ParentIDs) == 0 {
		return ""
	}
	return c.ParentIDs[0]
}

// ShortID abbreviates a commit id
func ShortID(id string) string {
	if len(id) <= ShortIDLength {
		return id
	}
	return id[:ShortIDLength]
}
