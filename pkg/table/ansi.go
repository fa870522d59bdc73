package table

import (
	"regexp"

	runewidth "github.com/mattn/go-runewidth"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape sequences (SGR color codes and friends)
// so that colored cells measure the same as their uncolored text.
func stripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

// cellWidth is the display width of a cell, ignoring escape sequences.
func cellWidth(s string) int {
	return runewidth.StringWidth(stripANSI(s))
}
