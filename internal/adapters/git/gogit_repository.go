package git

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/renato0307/gittree/internal/domain"
	"github.com/renato0307/gittree/internal/logging"
	"github.com/renato0307/gittree/internal/ports"
)

// GoGitRepository reads references, commit details and worktree status
// through go-git without spawning processes
type GoGitRepository struct {
	repo *gogit.Repository
}

// Verify interface compliance at compile time
var _ ports.RepositoryInspector = (*GoGitRepository)(nil)

// NewGoGitRepository wraps an already opened repository
func NewGoGitRepository(repo *gogit.Repository) *GoGitRepository {
	return &GoGitRepository{repo: repo}
}

// OpenGoGitRepository opens the repository containing path
func OpenGoGitRepository(path string) (*GoGitRepository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrNotARepository)
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return NewGoGitRepository(repo), nil
}

// ListRefs implements RefLister.ListRefs.
// Annotated tags are peeled to the commit they point at.
func (g *GoGitRepository) ListRefs(ctx context.Context) ([]domain.Reference, error) {
	iter, err := g.repo.References()
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}
	defer iter.Close()

	var refs []domain.Reference
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ref.Type() != plumbing.HashReference {
			return nil
		}

		name := ref.Name()
		kind := refKind(name)
		hash := ref.Hash()

		if kind == domain.RefKindTag {
			if tag, err := g.repo.TagObject(hash); err == nil {
				commit, err := tag.Commit()
				if err != nil {
					logging.Logger.Debug("Skipping tag not pointing to a commit", "tag", name.Short())
					return nil
				}
				hash = commit.Hash
			}
		}

		refs = append(refs, domain.Reference{
			Hash: hash.String(),
			Kind: kind,
			Name: name.Short(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate references: %w", err)
	}

	sortRefs(refs)
	logging.Logger.Debug("Listed references", "count", len(refs))
	return refs, nil
}

// CommitDetails implements DetailsProvider.CommitDetails
func (g *GoGitRepository) CommitDetails(ctx context.Context, hash string) (*domain.CommitDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	commit, err := g.resolveCommit(hash)
	if err != nil {
		return nil, err
	}

	details := &domain.CommitDetails{
		Author:  commit.Author.Name,
		Date:    commit.Author.When.UTC(),
		Email:   commit.Author.Email,
		Hash:    commit.Hash.String(),
		Message: strings.TrimRight(commit.Message, "\n"),
		Stats:   map[string]domain.FileStat{},
	}
	for _, p := range commit.ParentHashes {
		details.Parents = append(details.Parents, p.String())
	}

	stats, err := commit.Stats()
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats for %s: %w", hash, err)
	}
	for _, s := range stats {
		details.Files = append(details.Files, s.Name)
		details.Stats[s.Name] = domain.FileStat{Additions: s.Addition, Deletions: s.Deletion}
	}
	sort.Strings(details.Files)

	return details, nil
}

// Status implements StatusProvider.Status
func (g *GoGitRepository) Status(ctx context.Context) (*domain.RepoStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	head, err := g.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	status := &domain.RepoStatus{Head: head.Hash().String()}
	if head.Name().IsBranch() {
		status.Branch = head.Name().Short()
	} else {
		status.Detached = true
	}

	wt, err := g.repo.Worktree()
	if err != nil {
		// bare repositories have no worktree
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return status, nil
		}
		return nil, fmt.Errorf("failed to open worktree: %w", err)
	}
	wtStatus, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read worktree status: %w", err)
	}
	status.Dirty = !wtStatus.IsClean()

	return status, nil
}

func (g *GoGitRepository) resolveCommit(hash string) (*object.Commit, error) {
	var h plumbing.Hash
	if len(hash) == 40 {
		h = plumbing.NewHash(hash)
	} else {
		resolved, err := g.repo.ResolveRevision(plumbing.Revision(hash))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", hash, domain.ErrCommitNotFound)
		}
		h = *resolved
	}

	commit, err := g.repo.CommitObject(h)
	if err != nil {
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return nil, fmt.Errorf("%s: %w", hash, domain.ErrCommitNotFound)
		}
		return nil, fmt.Errorf("failed to load commit %s: %w", hash, err)
	}
	return commit, nil
}

func refKind(name plumbing.ReferenceName) domain.RefKind {
	switch {
	case name.IsBranch():
		return domain.RefKindBranch
	case name.IsRemote():
		return domain.RefKindRemoteBranch
	case name.IsTag():
		return domain.RefKindTag
	default:
		return domain.RefKindOther
	}
}

var refKindOrder = map[domain.RefKind]int{
	domain.RefKindBranch:       0,
	domain.RefKindRemoteBranch: 1,
	domain.RefKindTag:          2,
	domain.RefKindOther:        3,
}

// sortRefs orders branches, then remotes, then tags, each by name
func sortRefs(refs []domain.Reference) {
	sort.SliceStable(refs, func(i, j int) bool {
		if refKindOrder[refs[i].Kind] != refKindOrder[refs[j].Kind] {
			return refKindOrder[refs[i].Kind] < refKindOrder[refs[j].Kind]
		}
		return refs[i].Name < refs[j].Name
	})
}
