package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gittree/internal/domain"
	portsmocks "github.com/renato0307/gittree/internal/ports/mocks"
)

const sampleLog = "* |h3|c3|Carol|carol@example.com|2024-01-03T00:00:00Z|third|h2\n" +
	"* |h2|c2|Bob|bob@example.com|2024-01-02T00:00:00Z|second|h1\n" +
	"* |h1|c1|Alice|alice@example.com|2024-01-01T00:00:00Z|first|\n"

type historyMocks struct {
	cache     *portsmocks.MockDetailsCache
	inspector *portsmocks.MockRepositoryInspector
	log       *portsmocks.MockLogProducer
	operator  *portsmocks.MockCommitOperator
}

func newHistoryMocks(t *testing.T) historyMocks {
	return historyMocks{
		cache:     portsmocks.NewMockDetailsCache(t),
		inspector: portsmocks.NewMockRepositoryInspector(t),
		log:       portsmocks.NewMockLogProducer(t),
		operator:  portsmocks.NewMockCommitOperator(t),
	}
}

func (m historyMocks) service(withCache bool) *HistoryService {
	var opts []HistoryOption
	if withCache {
		opts = append(opts, WithDetailsCache(m.cache))
	}
	return NewHistoryService(m.log, m.inspector, m.operator, opts...)
}

func commitAt(t *testing.T, snap *Snapshot, i int) domain.Commit {
	t.Helper()
	c, ok := snap.Store.At(i)
	require.True(t, ok)
	return c
}

func TestHistoryService_Load(t *testing.T) {
	m := newHistoryMocks(t)
	filter := domain.FilterOptions{Author: "bob"}

	m.log.EXPECT().ReadLog(mock.Anything, filter).Return(sampleLog, nil)
	m.inspector.EXPECT().ListRefs(mock.Anything).Return([]domain.Reference{
		{Hash: "h3", Kind: domain.RefKindBranch, Name: "main"},
		{Hash: "h1", Kind: domain.RefKindTag, Name: "v1"},
	}, nil)
	m.inspector.EXPECT().Status(mock.Anything).Return(&domain.RepoStatus{Branch: "main", Head: "h3"}, nil)

	snap, err := m.service(false).Load(context.Background(), filter)
	require.NoError(t, err)

	require.Equal(t, 3, snap.Store.Len())
	assert.Equal(t, filter, snap.Store.Filter())
	assert.Equal(t, []string{"main"}, commitAt(t, snap, 0).Refs)
	assert.Equal(t, []string{"v1"}, commitAt(t, snap, 2).Refs)
	assert.Nil(t, commitAt(t, snap, 1).Refs)
	assert.Equal(t, "main", snap.Status.Branch)
	assert.Len(t, snap.Refs, 2)
}

func TestHistoryService_LoadStatusFailureIsNotFatal(t *testing.T) {
	m := newHistoryMocks(t)

	m.log.EXPECT().ReadLog(mock.Anything, mock.Anything).Return(sampleLog, nil)
	m.inspector.EXPECT().ListRefs(mock.Anything).Return(nil, nil)
	m.inspector.EXPECT().Status(mock.Anything).Return(nil, errors.New("no HEAD"))

	snap, err := m.service(false).Load(context.Background(), domain.FilterOptions{})
	require.NoError(t, err)
	assert.Nil(t, snap.Status)
	assert.Equal(t, 3, snap.Store.Len())
}

func TestHistoryService_LoadLogFailure(t *testing.T) {
	m := newHistoryMocks(t)
	logErr := &domain.CommandError{Args: []string{"log"}, Err: errors.New("exit status 128"), Output: "fatal: bad revision"}

	m.log.EXPECT().ReadLog(mock.Anything, mock.Anything).Return("", logErr)
	m.inspector.EXPECT().ListRefs(mock.Anything).Return(nil, nil).Maybe()
	m.inspector.EXPECT().Status(mock.Anything).Return(&domain.RepoStatus{}, nil).Maybe()

	_, err := m.service(false).Load(context.Background(), domain.FilterOptions{})
	var cmdErr *domain.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, err.Error(), "bad revision")
}

func TestHistoryService_LoadUndecodable(t *testing.T) {
	m := newHistoryMocks(t)

	m.log.EXPECT().ReadLog(mock.Anything, mock.Anything).Return("\xff\xfe", nil)
	m.inspector.EXPECT().ListRefs(mock.Anything).Return(nil, nil)
	m.inspector.EXPECT().Status(mock.Anything).Return(nil, nil)

	_, err := m.service(false).Load(context.Background(), domain.FilterOptions{})
	assert.ErrorIs(t, err, domain.ErrUndecodableLog)
}

func TestHistoryService_DetailsCacheHit(t *testing.T) {
	m := newHistoryMocks(t)
	cached := &domain.CommitDetails{Hash: "h1", Message: "cached"}

	m.cache.EXPECT().Get(mock.Anything, "h1").Return(cached, nil)

	got, err := m.service(true).Details(context.Background(), "h1")
	require.NoError(t, err)
	assert.Same(t, cached, got)
}

func TestHistoryService_DetailsCacheMissStores(t *testing.T) {
	m := newHistoryMocks(t)
	fresh := &domain.CommitDetails{Hash: "h1", Message: "fresh"}

	m.cache.EXPECT().Get(mock.Anything, "h1").Return(nil, domain.ErrCommitNotFound)
	m.inspector.EXPECT().CommitDetails(mock.Anything, "h1").Return(fresh, nil)
	m.cache.EXPECT().Put(mock.Anything, fresh).Return(nil)

	got, err := m.service(true).Details(context.Background(), "h1")
	require.NoError(t, err)
	assert.Same(t, fresh, got)
}

func TestHistoryService_DetailsCacheWriteFailureIgnored(t *testing.T) {
	m := newHistoryMocks(t)
	fresh := &domain.CommitDetails{Hash: "h1"}

	m.cache.EXPECT().Get(mock.Anything, "h1").Return(nil, domain.ErrCommitNotFound)
	m.inspector.EXPECT().CommitDetails(mock.Anything, "h1").Return(fresh, nil)
	m.cache.EXPECT().Put(mock.Anything, fresh).Return(errors.New("disk full"))

	got, err := m.service(true).Details(context.Background(), "h1")
	require.NoError(t, err)
	assert.Same(t, fresh, got)
}

func TestHistoryService_DetailsWithoutCache(t *testing.T) {
	m := newHistoryMocks(t)

	m.inspector.EXPECT().CommitDetails(mock.Anything, "h1").Return(nil, domain.ErrCommitNotFound)

	_, err := m.service(false).Details(context.Background(), "h1")
	assert.ErrorIs(t, err, domain.ErrCommitNotFound)

	_, err = m.service(false).Details(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNoSelection)
}

func TestHistoryService_Execute(t *testing.T) {
	tests := []struct {
		name   string
		intent domain.Intent
		setup  func(op *portsmocks.MockCommitOperator)
	}{
		{
			name:   "checkout",
			intent: domain.Intent{Op: domain.OpCheckout, Hash: "h1"},
			setup: func(op *portsmocks.MockCommitOperator) {
				op.EXPECT().Checkout(mock.Anything, "h1").Return(nil)
			},
		},
		{
			name:   "reset",
			intent: domain.Intent{Op: domain.OpReset, Hash: "h1"},
			setup: func(op *portsmocks.MockCommitOperator) {
				op.EXPECT().ResetHard(mock.Anything, "h1").Return(nil)
			},
		},
		{
			name:   "cherry-pick",
			intent: domain.Intent{Op: domain.OpCherryPick, Hash: "h1"},
			setup: func(op *portsmocks.MockCommitOperator) {
				op.EXPECT().CherryPick(mock.Anything, "h1").Return(nil)
			},
		},
		{
			name:   "revert",
			intent: domain.Intent{Op: domain.OpRevert, Hash: "h1"},
			setup: func(op *portsmocks.MockCommitOperator) {
				op.EXPECT().Revert(mock.Anything, "h1").Return(nil)
			},
		},
		{
			name:   "create branch trims name",
			intent: domain.Intent{Op: domain.OpCreateBranch, Hash: "h1", Name: "  feature  "},
			setup: func(op *portsmocks.MockCommitOperator) {
				op.EXPECT().CreateBranch(mock.Anything, "feature", "h1").Return(nil)
			},
		},
		{
			name:   "create tag",
			intent: domain.Intent{Op: domain.OpCreateTag, Hash: "h1", Name: "v1"},
			setup: func(op *portsmocks.MockCommitOperator) {
				op.EXPECT().CreateTag(mock.Anything, "v1", "h1").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newHistoryMocks(t)
			tt.setup(m.operator)

			assert.NoError(t, m.service(false).Execute(context.Background(), tt.intent))
		})
	}
}

func TestHistoryService_ExecuteRejects(t *testing.T) {
	tests := []struct {
		name    string
		intent  domain.Intent
		wantErr error
	}{
		{name: "no selection", intent: domain.Intent{Op: domain.OpCheckout}, wantErr: domain.ErrNoSelection},
		{name: "blank branch name", intent: domain.Intent{Op: domain.OpCreateBranch, Hash: "h1", Name: "  "}, wantErr: domain.ErrEmptyName},
		{name: "unknown operation", intent: domain.Intent{Op: domain.OpNone, Hash: "h1"}, wantErr: domain.ErrUnknownOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newHistoryMocks(t)
			assert.ErrorIs(t, m.service(false).Execute(context.Background(), tt.intent), tt.wantErr)
		})
	}
}

func TestHistoryService_ExecutePropagatesCommandError(t *testing.T) {
	m := newHistoryMocks(t)
	cmdErr := &domain.CommandError{Args: []string{"cherry-pick", "h1"}, Err: errors.New("exit status 1"), Output: "conflict"}
	m.operator.EXPECT().CherryPick(mock.Anything, "h1").Return(cmdErr)

	err := m.service(false).Execute(context.Background(), domain.Intent{Op: domain.OpCherryPick, Hash: "h1"})
	assert.ErrorIs(t, err, cmdErr)
}
