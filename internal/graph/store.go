package graph

import "github.com/renato0307/gittree/internal/domain"

// Store is the ordered, read-only sequence of enriched commits.
// Index 0 is the most recent commit in log order. A Store is never mutated
// after NewStore returns; a new filter builds a new Store.
type Store struct {
	byHash   map[string]int // hash -> first row with that hash
	children map[string]int // hash -> first row listing it as a parent
	commits  []domain.Commit
	filter   domain.FilterOptions
}

// NewStore freezes commits into a Store and builds the lookup indexes
func NewStore(commits []domain.Commit, filter domain.FilterOptions) *Store {
	s := &Store{
		byHash:   make(map[string]int, len(commits)),
		children: make(map[string]int, len(commits)),
		commits:  append([]domain.Commit(nil), commits...),
		filter:   filter,
	}

	// Rows are visited in store order and only the first hit is kept,
	// so ties resolve to the earliest row like a linear scan would
	for i, c := range s.commits {
		if _, seen := s.byHash[c.Hash]; !seen {
			s.byHash[c.Hash] = i
		}
		for _, parent := range c.Parents {
			if _, seen := s.children[parent]; !seen {
				s.children[parent] = i
			}
		}
	}

	return s
}

// Len returns the number of commits. A nil store is empty.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.commits)
}

// At returns the commit at row i.
// Slices inside the returned commit are shared with the store and must not be modified.
func (s *Store) At(i int) (domain.Commit, bool) {
	if i < 0 || i >= s.Len() {
		return domain.Commit{}, false
	}
	return s.commits[i], true
}

// Filter returns the filter this store was built with
func (s *Store) Filter() domain.FilterOptions {
	if s == nil {
		return domain.FilterOptions{}
	}
	return s.filter
}

// IndexOf returns the first row whose hash equals hash
func (s *Store) IndexOf(hash string) (int, bool) {
	if s == nil {
		return 0, false
	}
	i, ok := s.byHash[hash]
	return i, ok
}

// ParentRow returns the row of the first parent of the commit at row i
func (s *Store) ParentRow(i int) (int, bool) {
	c, ok := s.At(i)
	if !ok || len(c.Parents) == 0 {
		return 0, false
	}
	return s.IndexOf(c.Parents[0])
}

// ChildRow returns the earliest row listing the commit at row i as any parent
func (s *Store) ChildRow(i int) (int, bool) {
	c, ok := s.At(i)
	if !ok {
		return 0, false
	}
	row, found := s.children[c.Hash]
	return row, found
}
