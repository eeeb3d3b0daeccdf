package render

import (
	"strings"

	"github.com/renato0307/gittree/internal/domain"
)

// GlyphSet maps token kinds to display characters
type GlyphSet struct {
	Corner     string
	Empty      string // shown when a row has no graph tokens
	Horizontal string
	Merge      string
	None       string
	Vertical   string
}

// Built-in glyph sets
var (
	ASCIIGlyphs = GlyphSet{
		Corner:     "\\",
		Empty:      "*",
		Horizontal: "-",
		Merge:      "+",
		None:       " ",
		Vertical:   "|",
	}

	UnicodeGlyphs = GlyphSet{
		Corner:     "└",
		Empty:      "●",
		Horizontal: "─",
		Merge:      "●",
		None:       " ",
		Vertical:   "│",
	}
)

// Glyphs returns the Unicode or ASCII glyph set
func Glyphs(unicode bool) GlyphSet {
	if unicode {
		return UnicodeGlyphs
	}
	return ASCIIGlyphs
}

// For returns the glyph for a token kind
func (g GlyphSet) For(kind domain.TokenKind) string {
	switch kind {
	case domain.TokenVertical:
		return g.Vertical
	case domain.TokenHorizontal:
		return g.Horizontal
	case domain.TokenCorner:
		return g.Corner
	case domain.TokenMerge:
		return g.Merge
	default:
		return g.None
	}
}

// Render concatenates the glyphs of tokens in column order
func (g GlyphSet) Render(tokens []domain.GraphToken) string {
	if len(tokens) == 0 {
		return g.Empty
	}

	var b strings.Builder
	for _, token := range tokens {
		b.WriteString(g.For(token.Kind))
	}
	return b.String()
}
