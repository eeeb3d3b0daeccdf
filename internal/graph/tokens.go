package graph

import "github.com/renato0307/gittree/internal/domain"

// ClassifyGlyph maps one graph character to its token kind.
// Unknown characters are TokenNone.
func ClassifyGlyph(r rune) domain.TokenKind {
	switch r {
	case '|', '*':
		return domain.TokenVertical
	case '-', '_':
		return domain.TokenHorizontal
	case '/', '\\':
		return domain.TokenCorner
	case '+':
		return domain.TokenMerge
	default:
		return domain.TokenNone
	}
}

// DecodeGraph decodes a graph prefix into one token per character column
func DecodeGraph(prefix string) []domain.GraphToken {
	if prefix == "" {
		return nil
	}

	tokens := make([]domain.GraphToken, 0, len(prefix))
	column := 0
	for _, r := range prefix {
		tokens = append(tokens, domain.GraphToken{
			Column:        column,
			IsMergeMarker: r == '+',
			Kind:          ClassifyGlyph(r),
		})
		column++
	}
	return tokens
}
