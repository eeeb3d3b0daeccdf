package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timeLayouts are the absolute formats accepted by ParseTimeExpr
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// relativeUnits maps the suffix of a relative expression to its duration
var relativeUnits = map[byte]time.Duration{
	'h': time.Hour,
	'd': 24 * time.Hour,
	'w': 7 * 24 * time.Hour,
}

// ParseTimeExpr parses an absolute timestamp or a relative "<n>h|d|w" expression
// counted back from now. Layouts without a zone are read in now's location.
func ParseTimeExpr(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty value: %w", ErrInvalidTime)
	}

	if unit, ok := relativeUnits[value[len(value)-1]]; ok {
		if n, err := strconv.Atoi(value[:len(value)-1]); err == nil {
			if n <= 0 {
				return time.Time{}, fmt.Errorf("%q must be positive: %w", value, ErrInvalidTime)
			}
			return now.Add(-time.Duration(n) * unit), nil
		}
	}

	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, now.Location()); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%q: %w", value, ErrInvalidTime)
}
