package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/gittree/internal/domain"
	"github.com/renato0307/gittree/internal/graph"
	"github.com/renato0307/gittree/internal/logging"
	"github.com/renato0307/gittree/internal/ports"
)

// Snapshot is one fully built view of the repository history
type Snapshot struct {
	Refs   []domain.Reference
	Status *domain.RepoStatus // nil when status could not be read
	Store  *graph.Store
}

// HistoryService loads commit graphs and runs commit operations
type HistoryService struct {
	cache         ports.DetailsCache
	inspector     ports.RepositoryInspector
	logProducer   ports.LogProducer
	operator      ports.CommitOperator
	parserOptions []graph.ParserOption
}

// HistoryOption configures a HistoryService
type HistoryOption func(*HistoryService)

// WithDetailsCache enables caching of commit details
func WithDetailsCache(cache ports.DetailsCache) HistoryOption {
	return func(s *HistoryService) {
		s.cache = cache
	}
}

// WithParserOptions passes options to the log parser
func WithParserOptions(opts ...graph.ParserOption) HistoryOption {
	return func(s *HistoryService) {
		s.parserOptions = append(s.parserOptions, opts...)
	}
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(
	logProducer ports.LogProducer,
	inspector ports.RepositoryInspector,
	operator ports.CommitOperator,
	opts ...HistoryOption,
) *HistoryService {
	s := &HistoryService{
		inspector:   inspector,
		logProducer: logProducer,
		operator:    operator,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the log, references and status concurrently and builds a store.
// A status failure is logged and leaves Snapshot.Status nil.
func (s *HistoryService) Load(ctx context.Context, filter domain.FilterOptions) (*Snapshot, error) {
	var (
		logText string
		refs    []domain.Reference
		status  *domain.RepoStatus
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := s.logProducer.ReadLog(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to read log: %w", err)
		}
		logText = text
		return nil
	})
	g.Go(func() error {
		r, err := s.inspector.ListRefs(gctx)
		if err != nil {
			return fmt.Errorf("failed to list references: %w", err)
		}
		refs = r
		return nil
	})
	g.Go(func() error {
		st, err := s.inspector.Status(gctx)
		if err != nil {
			logging.Logger.Warn("Failed to read repository status", "error", err)
			return nil
		}
		status = st
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	store, err := graph.Build(logText, refs, filter, s.parserOptions...)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("History loaded", "commits", store.Len(), "refs", len(refs))
	return &Snapshot{Refs: refs, Status: status, Store: store}, nil
}

// Refs returns the repository references
func (s *HistoryService) Refs(ctx context.Context) ([]domain.Reference, error) {
	return s.inspector.ListRefs(ctx)
}

// Details returns files and stats for a commit, serving from the cache when possible
func (s *HistoryService) Details(ctx context.Context, hash string) (*domain.CommitDetails, error) {
	if hash == "" {
		return nil, domain.ErrNoSelection
	}

	if s.cache != nil {
		details, err := s.cache.Get(ctx, hash)
		if err == nil {
			logging.Logger.Debug("Details cache hit", "hash", hash)
			return details, nil
		}
		if !errors.Is(err, domain.ErrCommitNotFound) {
			logging.Logger.Warn("Details cache read failed", "hash", hash, "error", err)
		}
	}

	details, err := s.inspector.CommitDetails(ctx, hash)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, details); err != nil {
			logging.Logger.Warn("Details cache write failed", "hash", hash, "error", err)
		}
	}
	return details, nil
}

// Execute runs the operation described by intent
func (s *HistoryService) Execute(ctx context.Context, intent domain.Intent) error {
	if intent.Hash == "" {
		return domain.ErrNoSelection
	}

	name := strings.TrimSpace(intent.Name)
	if intent.Op.NeedsName() && name == "" {
		return fmt.Errorf("%s: %w", intent.Op, domain.ErrEmptyName)
	}

	logging.Logger.Info("Executing operation", "op", intent.Op.String(), "hash", intent.Hash, "name", name)

	switch intent.Op {
	case domain.OpCheckout:
		return s.operator.Checkout(ctx, intent.Hash)
	case domain.OpReset:
		return s.operator.ResetHard(ctx, intent.Hash)
	case domain.OpCherryPick:
		return s.operator.CherryPick(ctx, intent.Hash)
	case domain.OpRevert:
		return s.operator.Revert(ctx, intent.Hash)
	case domain.OpCreateBranch:
		return s.operator.CreateBranch(ctx, name, intent.Hash)
	case domain.OpCreateTag:
		return s.operator.CreateTag(ctx, name, intent.Hash)
	default:
		return fmt.Errorf("%s: %w", intent.Op, domain.ErrUnknownOperation)
	}
}
