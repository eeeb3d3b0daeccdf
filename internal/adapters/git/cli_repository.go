package git

import (
	"context"
	"errors"
	"os/exec"

	"github.com/renato0307/gittree/internal/domain"
	"github.com/renato0307/gittree/internal/logging"
	"github.com/renato0307/gittree/internal/ports"
)

// CLIRepository implements the log producer and the mutating commands by
// running the git executable inside the repository
type CLIRepository struct {
	defaultRange string
	extraArgs    []string
	gitBinary    string
	repoPath     string
}

// Verify interface compliance at compile time
var (
	_ ports.CommitOperator = (*CLIRepository)(nil)
	_ ports.LogProducer    = (*CLIRepository)(nil)
)

// CLIOption configures a CLIRepository
type CLIOption func(*CLIRepository)

// WithDefaultRange sets the rev range used when the filter has none
func WithDefaultRange(rangeExpr string) CLIOption {
	return func(r *CLIRepository) {
		r.defaultRange = rangeExpr
	}
}

// WithExtraArgs appends arguments to every log invocation
func WithExtraArgs(args []string) CLIOption {
	return func(r *CLIRepository) {
		r.extraArgs = append([]string(nil), args...)
	}
}

// WithGitBinary overrides the git executable
func WithGitBinary(path string) CLIOption {
	return func(r *CLIRepository) {
		r.gitBinary = path
	}
}

// NewCLIRepository creates a CLIRepository for the repository at repoPath
func NewCLIRepository(repoPath string, opts ...CLIOption) *CLIRepository {
	r := &CLIRepository{
		gitBinary: "git",
		repoPath:  repoPath,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadLog implements LogProducer.ReadLog
func (r *CLIRepository) ReadLog(ctx context.Context, filter domain.FilterOptions) (string, error) {
	args := buildLogArgs(filter, r.defaultRange, r.extraArgs)
	logging.Logger.Debug("Reading git log", "repo", r.repoPath, "args", args)

	cmd := exec.CommandContext(ctx, r.gitBinary, args...)
	cmd.Dir = r.repoPath

	output, err := cmd.Output()
	if err != nil {
		var stderr string
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr = string(exitErr.Stderr)
		}
		logging.Logger.Error("git log failed", "error", err, "stderr", stderr)
		return "", &domain.CommandError{Args: args, Err: err, Output: stderr}
	}

	return string(output), nil
}

// Checkout implements CommitOperator.Checkout
func (r *CLIRepository) Checkout(ctx context.Context, hash string) error {
	return r.run(ctx, "checkout", hash)
}

// ResetHard implements CommitOperator.ResetHard
func (r *CLIRepository) ResetHard(ctx context.Context, hash string) error {
	return r.run(ctx, "reset", "--hard", hash)
}

// CherryPick implements CommitOperator.CherryPick
func (r *CLIRepository) CherryPick(ctx context.Context, hash string) error {
	return r.run(ctx, "cherry-pick", hash)
}

// Revert implements CommitOperator.Revert
func (r *CLIRepository) Revert(ctx context.Context, hash string) error {
	return r.run(ctx, "revert", "--no-edit", hash)
}

// CreateBranch implements CommitOperator.CreateBranch
func (r *CLIRepository) CreateBranch(ctx context.Context, name, hash string) error {
	if err := validateRefName("branch", name); err != nil {
		return err
	}
	return r.run(ctx, "branch", name, hash)
}

// CreateTag implements CommitOperator.CreateTag
func (r *CLIRepository) CreateTag(ctx context.Context, name, hash string) error {
	if err := validateRefName("tag", name); err != nil {
		return err
	}
	return r.run(ctx, "tag", name, hash)
}

// run executes a git command and wraps failures with the tool's output
func (r *CLIRepository) run(ctx context.Context, args ...string) error {
	logging.Logger.Info("Running git command", "repo", r.repoPath, "args", args)

	cmd := exec.CommandContext(ctx, r.gitBinary, args...)
	cmd.Dir = r.repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		logging.Logger.Error("git command failed",
			"error", err,
			"args", args,
			"output", string(output))
		return &domain.CommandError{Args: args, Err: err, Output: string(output)}
	}

	logging.Logger.Debug("git command succeeded", "args", args)
	return nil
}
