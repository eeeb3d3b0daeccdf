package graph

import "github.com/renato0307/gittree/internal/domain"

// Build runs the parse, lane and reference passes over raw log text and
// freezes the result into a Store
func Build(text string, refs []domain.Reference, filter domain.FilterOptions, opts ...ParserOption) (*Store, error) {
	commits, err := NewParser(opts...).Parse(text)
	if err != nil {
		return nil, err
	}

	AssignLanes(commits)
	AttachRefs(commits, refs)

	return NewStore(commits, filter), nil
}
