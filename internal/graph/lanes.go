package graph

import "github.com/renato0307/gittree/internal/domain"

// LaneOf returns the column of the first vertical or merge token, or 0
func LaneOf(tokens []domain.GraphToken) int {
	for _, token := range tokens {
		if token.Kind == domain.TokenVertical || token.Kind == domain.TokenMerge {
			return token.Column
		}
	}
	return 0
}

// AssignLanes sets the lane of every commit from its graph tokens.
// Lanes are not tracked across rows.
func AssignLanes(commits []domain.Commit) {
	for i := range commits {
		commits[i].Lane = LaneOf(commits[i].GraphTokens)
	}
}
