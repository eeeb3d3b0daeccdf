package domain

// RefKind classifies a symbolic reference
type RefKind string

const (
	RefKindBranch       RefKind = "branch"
	RefKindRemoteBranch RefKind = "remote"
	RefKindTag          RefKind = "tag"
	RefKindOther        RefKind = "other"
)

// Reference is a named pointer resolving to a commit hash
type Reference struct {
	Hash string
	Kind RefKind
	Name string
}

// RepoStatus describes the working copy state shown in the header
type RepoStatus struct {
	Branch   string // empty when HEAD is detached
	Detached bool
	Dirty    bool
	Head     string
}
