package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// truncate shortens s to max display cells with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= max {
		return s
	}
	if max <= 3 {
		return ansi.Truncate(s, max, "")
	}
	return ansi.Truncate(s, max, "...")
}

// truncateMiddle keeps the start and end of s, which suits URLs and paths.
func truncateMiddle(s string, max int) string {
	if max <= 0 {
		return ""
	}
	width := ansi.StringWidth(s)
	if width <= max {
		return s
	}
	if max <= 5 {
		return ansi.Truncate(s, max, "")
	}
	endLen := (max - 3) * 2 / 3
	startLen := max - 3 - endLen
	return ansi.Truncate(s, startLen, "") + "..." + ansi.TruncateLeft(s, width-endLen, "")
}

// orDash returns "n/a" for blank attribute values.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "n/a"
	}
	return s
}

func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
