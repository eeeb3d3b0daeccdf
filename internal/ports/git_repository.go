package ports

import (
	"context"

	"github.com/renato0307/gittree/internal/domain"
)

// LogProducer runs the external log command and returns its raw text
type LogProducer interface {
	ReadLog(ctx context.Context, filter domain.FilterOptions) (string, error)
}

// RefLister lists the symbolic references of the repository
type RefLister interface {
	ListRefs(ctx context.Context) ([]domain.Reference, error)
}

// DetailsProvider looks up files and stats for a single commit
type DetailsProvider interface {
	CommitDetails(ctx context.Context, hash string) (*domain.CommitDetails, error)
}

// StatusProvider reports HEAD and working copy state
type StatusProvider interface {
	Status(ctx context.Context) (*domain.RepoStatus, error)
}

// CommitOperator runs mutating commands against a commit
type CommitOperator interface {
	CherryPick(ctx context.Context, hash string) error
	Checkout(ctx context.Context, hash string) error
	CreateBranch(ctx context.Context, name, hash string) error
	CreateTag(ctx context.Context, name, hash string) error
	ResetHard(ctx context.Context, hash string) error
	Revert(ctx context.Context, hash string) error
}

// RepositoryInspector is the read side served by go-git
type RepositoryInspector interface {
	DetailsProvider
	RefLister
	StatusProvider
}
