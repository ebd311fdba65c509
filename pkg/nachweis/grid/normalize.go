package grid

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares cell text for label comparison: NFC composition,
// unified newlines, trimmed, every whitespace run collapsed to one space.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Join(strings.Fields(s), " ")
}

// fold is Normalize plus lower-casing, for case-insensitive matching.
func fold(s string) string {
	return strings.ToLower(Normalize(s))
}
