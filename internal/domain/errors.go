package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCommitNotFound   = errors.New("commit not found")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrInvalidTime      = errors.New("invalid time")
	ErrNoSelection      = errors.New("no commit selected")
	ErrNotARepository   = errors.New("not a git repository")
	ErrUndecodableLog   = errors.New("log output is not valid UTF-8")
	ErrUnknownOperation = errors.New("unknown operation")
)

// CommandError is returned when the git executable fails.
// Output holds the tool's combined diagnostic text.
type CommandError struct {
	Args   []string
	Err    error
	Output string
}

func (e *CommandError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("git %s: %v", e.Args[0], e.Err)
	}
	return fmt.Sprintf("git %s: %v\nOutput: %s", e.Args[0], e.Err, e.Output)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
