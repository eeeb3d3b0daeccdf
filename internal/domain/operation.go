package domain

// Operation is a mutating command on a single commit
type Operation int

const (
	OpNone Operation = iota
	OpCheckout
	OpReset
	OpCherryPick
	OpRevert
	OpCreateBranch
	OpCreateTag
)

// String returns a human readable operation name
func (o Operation) String() string {
	switch o {
	case OpCheckout:
		return "checkout"
	case OpReset:
		return "reset"
	case OpCherryPick:
		return "cherry-pick"
	case OpRevert:
		return "revert"
	case OpCreateBranch:
		return "create branch"
	case OpCreateTag:
		return "create tag"
	default:
		return "none"
	}
}

// IsDangerous returns true for operations that discard or move the working copy
func (o Operation) IsDangerous() bool {
	return o == OpCheckout || o == OpReset
}

// NeedsName returns true for operations that create a named reference
func (o Operation) NeedsName() bool {
	return o == OpCreateBranch || o == OpCreateTag
}

// Intent is a request to run an operation on a commit
type Intent struct {
	Hash      string
	Name      string
	Op        Operation
	ShortHash string
}
