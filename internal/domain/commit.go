package domain

import "time"

// TokenKind is the semantic class of one graph glyph column
type TokenKind int

const (
	TokenNone TokenKind = iota
	TokenVertical
	TokenHorizontal
	TokenCorner
	TokenMerge
)

// String returns the token kind name
func (k TokenKind) String() string {
	switch k {
	case TokenVertical:
		return "vertical"
	case TokenHorizontal:
		return "horizontal"
	case TokenCorner:
		return "corner"
	case TokenMerge:
		return "merge"
	default:
		return "none"
	}
}

// GraphToken is one decoded column of a row's graph prefix
type GraphToken struct {
	Column        int
	IsMergeMarker bool
	Kind          TokenKind
}

// FileStat holds per-file line counts for a commit
type FileStat struct {
	Additions int
	Deletions int
}

// Commit is one logical commit in the graph store.
// Hash is the identity key. Parents[0] is the first parent.
type Commit struct {
	Author      string
	Date        time.Time // UTC
	Email       string
	Files       []string
	GraphTokens []GraphToken
	Hash        string
	Lane        int
	Message     string
	Parents     []string
	Refs        []string
	ShortHash   string
	Stats       map[string]FileStat
}

// IsMerge returns true if the commit has two or more parents
func (c Commit) IsMerge() bool {
	return len(c.Parents) > 1
}

// IsRoot returns true if the commit has no parents
func (c Commit) IsRoot() bool {
	return len(c.Parents) == 0
}

// CommitDetails is the on-demand detail view of a single commit
type CommitDetails struct {
	Author  string
	Date    time.Time
	Email   string
	Files   []string
	Hash    string
	Message string // full message, including body
	Parents []string
	Stats   map[string]FileStat
}

// TotalChanges sums additions and deletions over all files
func (d CommitDetails) TotalChanges() (additions, deletions int) {
	for _, s := range d.Stats {
		additions += s.Additions
		deletions += s.Deletions
	}
	return additions, deletions
}
