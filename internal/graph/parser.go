package graph

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/renato0307/gittree/internal/domain"
	"github.com/renato0307/gittree/internal/logging"
)

// DefaultDelimiter separates the fields of a log record
const DefaultDelimiter = '|'

// minFields is graph prefix plus hash, short hash, author, email, date and message
const minFields = 7

// dateLayouts are tried in order, the first match wins
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 -0700",
}

// Parser turns graph-prefixed log text into commit records
type Parser struct {
	delimiter rune
	now       func() time.Time
}

// ParserOption configures a Parser
type ParserOption func(*Parser)

// WithDelimiter sets the field delimiter
func WithDelimiter(delimiter rune) ParserOption {
	return func(p *Parser) {
		p.delimiter = delimiter
	}
}

// WithClock sets the time source used for unparseable dates
func WithClock(now func() time.Time) ParserOption {
	return func(p *Parser) {
		p.now = now
	}
}

// NewParser creates a Parser using DefaultDelimiter unless overridden
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		delimiter: DefaultDelimiter,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse decodes every non-blank line of text.
// Malformed lines are dropped and bad dates default to now; only text that is
// not valid UTF-8 fails the whole parse.
func (p *Parser) Parse(text string) ([]domain.Commit, error) {
	if !utf8.ValidString(text) {
		return nil, domain.ErrUndecodableLog
	}

	lines := strings.Split(text, "\n")
	commits := make([]domain.Commit, 0, len(lines))
	dropped := 0

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		commit, ok := p.ParseLine(line)
		if !ok {
			dropped++
			continue
		}
		commits = append(commits, commit)
	}

	logging.Logger.Debug("Parsed log text",
		"commits", len(commits),
		"dropped_lines", dropped)

	return commits, nil
}

// ParseLine decodes a single record. It returns false for blank lines and for
// lines with fewer than seven fields (graph continuation rows).
func (p *Parser) ParseLine(line string) (domain.Commit, bool) {
	// Only trailing whitespace is trimmed so leading graph columns keep their positions
	line = strings.TrimRight(line, " \t\r\n")
	if strings.TrimSpace(line) == "" {
		return domain.Commit{}, false
	}

	fields := strings.Split(line, string(p.delimiter))
	if len(fields) < minFields {
		return domain.Commit{}, false
	}

	commit := domain.Commit{
		GraphTokens: DecodeGraph(fields[0]),
		Hash:        strings.TrimSpace(fields[1]),
		ShortHash:   strings.TrimSpace(fields[2]),
		Author:      fields[3],
		Email:       fields[4],
		Date:        p.parseDate(fields[5]),
		Message:     fields[6],
	}
	if len(fields) > minFields {
		commit.Parents = strings.Fields(fields[7])
	}

	return commit, true
}

// parseDate returns the UTC timestamp or the current time if no layout matches
func (p *Parser) parseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}

	logging.Logger.Debug("Unparseable commit date, using current time", "value", value)
	return p.now().UTC()
}
