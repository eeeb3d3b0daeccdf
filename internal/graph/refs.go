package graph

import "github.com/renato0307/gittree/internal/domain"

// IndexRefs groups reference names by target hash, keeping source order
func IndexRefs(refs []domain.Reference) map[string][]string {
	index := make(map[string][]string, len(refs))
	for _, ref := range refs {
		index[ref.Hash] = append(index[ref.Hash], ref.Name)
	}
	return index
}

// AttachRefs replaces the refs of every commit with the names targeting its hash.
// Each commit gets its own copy of the list. Running it twice gives the same result.
func AttachRefs(commits []domain.Commit, refs []domain.Reference) {
	index := IndexRefs(refs)
	for i := range commits {
		names, ok := index[commits[i].Hash]
		if !ok {
			commits[i].Refs = nil
			continue
		}
		commits[i].Refs = append([]string(nil), names...)
	}
}
