package ports

import (
	"context"

	"github.com/renato0307/gittree/internal/domain"
)

// DetailsCache stores commit details by hash.
// Get returns domain.ErrCommitNotFound on a miss.
type DetailsCache interface {
	Close() error
	Get(ctx context.Context, hash string) (*domain.CommitDetails, error)
	Put(ctx context.Context, details *domain.CommitDetails) error
}
