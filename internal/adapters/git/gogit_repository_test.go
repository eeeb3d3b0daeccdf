package git

import (
	"context"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gittree/internal/domain"
)

var testSignature = &object.Signature{
	Name:  "Alice",
	Email: "alice@example.com",
	When:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
}

type testRepo struct {
	fs   billy.Filesystem
	repo *gogit.Repository
	wt   *gogit.Worktree
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	fs := memfs.New()
	repo, err := gogit.Init(memory.NewStorage(), fs)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	return &testRepo{fs: fs, repo: repo, wt: wt}
}

func (r *testRepo) commitFile(t *testing.T, name, content, message string) plumbing.Hash {
	t.Helper()
	f, err := r.fs.Create(name)
	require.NoError(t, err)
	_, err = f.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = r.wt.Add(name)
	require.NoError(t, err)
	hash, err := r.wt.Commit(message, &gogit.CommitOptions{Author: testSignature})
	require.NoError(t, err)
	return hash
}

func TestGoGitRepository_ListRefs(t *testing.T) {
	tr := newTestRepo(t)
	first := tr.commitFile(t, "a.txt", "a\n", "first")
	second := tr.commitFile(t, "b.txt", "b\n", "second")

	_, err := tr.repo.CreateTag("v1", first, nil)
	require.NoError(t, err)
	_, err = tr.repo.CreateTag("v2", second, &gogit.CreateTagOptions{
		Tagger:  testSignature,
		Message: "release",
	})
	require.NoError(t, err)
	require.NoError(t, tr.repo.Storer.SetReference(
		plumbing.NewHashReference(plumbing.NewBranchReferenceName("feature"), first)))

	refs, err := NewGoGitRepository(tr.repo).ListRefs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Reference{
		{Hash: first.String(), Kind: domain.RefKindBranch, Name: "feature"},
		{Hash: second.String(), Kind: domain.RefKindBranch, Name: "master"},
		{Hash: first.String(), Kind: domain.RefKindTag, Name: "v1"},
		{Hash: second.String(), Kind: domain.RefKindTag, Name: "v2"},
	}, refs)
}

func TestGoGitRepository_CommitDetails(t *testing.T) {
	tr := newTestRepo(t)
	first := tr.commitFile(t, "a.txt", "one\ntwo\n", "first")
	second := tr.commitFile(t, "a.txt", "one\nthree\nfour\n", "second\n\nbody text\n")

	g := NewGoGitRepository(tr.repo)

	details, err := g.CommitDetails(context.Background(), second.String())
	require.NoError(t, err)

	assert.Equal(t, "Alice", details.Author)
	assert.Equal(t, "alice@example.com", details.Email)
	assert.Equal(t, second.String(), details.Hash)
	assert.Equal(t, "second\n\nbody text", details.Message)
	assert.Equal(t, []string{first.String()}, details.Parents)
	assert.Equal(t, []string{"a.txt"}, details.Files)
	assert.Equal(t, domain.FileStat{Additions: 2, Deletions: 1}, details.Stats["a.txt"])
	assert.True(t, testSignature.When.Equal(details.Date))

	t.Run("short hash", func(t *testing.T) {
		details, err := g.CommitDetails(context.Background(), first.String()[:7])
		require.NoError(t, err)
		assert.Equal(t, first.String(), details.Hash)
		assert.Empty(t, details.Parents)
	})

	t.Run("unknown hash", func(t *testing.T) {
		_, err := g.CommitDetails(context.Background(), "0123456789012345678901234567890123456789")
		assert.ErrorIs(t, err, domain.ErrCommitNotFound)
	})
}

func TestGoGitRepository_Status(t *testing.T) {
	tr := newTestRepo(t)
	first := tr.commitFile(t, "a.txt", "a\n", "first")
	g := NewGoGitRepository(tr.repo)

	status, err := g.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "master", status.Branch)
	assert.False(t, status.Detached)
	assert.False(t, status.Dirty)
	assert.Equal(t, first.String(), status.Head)

	f, err := tr.fs.Create("a.txt")
	require.NoError(t, err)
	_, err = f.Write([]byte("changed\n"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	status, err = g.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Dirty)

	require.NoError(t, tr.wt.Checkout(&gogit.CheckoutOptions{Hash: first, Force: true}))
	status, err = g.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Detached)
	assert.Empty(t, status.Branch)
}

func TestOpenGoGitRepository_NotARepository(t *testing.T) {
	_, err := OpenGoGitRepository(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrNotARepository)
}
