package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	minErrorWidth  = 10
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay word-wraps an error to at most maxErrorLines lines of
// maxWidth runes, the first line carrying errorPrefix. Overflow ends in "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	width := max(maxWidth, minErrorWidth)
	widths := []int{max(width-utf8.RuneCountInString(errorPrefix), minErrorWidth), width}

	var lines []string
	var current []string
	currentLen := 0
	truncated := false

	for i, word := range words {
		lineWidth := widths[min(len(lines), 1)]
		wordLen := utf8.RuneCountInString(word)

		if currentLen > 0 && currentLen+1+wordLen > lineWidth {
			lines = append(lines, strings.Join(current, " "))
			current, currentLen = nil, 0
			if len(lines) == maxErrorLines {
				truncated = i < len(words)
				break
			}
		}

		if currentLen > 0 {
			currentLen++
		}
		current = append(current, word)
		currentLen += wordLen
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}

	if truncated {
		last := []rune(lines[maxErrorLines-1])
		room := width - utf8.RuneCountInString(truncationMark)
		if len(last) > room && room > 0 {
			last = last[:room]
		}
		lines[maxErrorLines-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
