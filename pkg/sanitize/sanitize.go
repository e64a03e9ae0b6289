// Package sanitize cleans strings coming from the database before they reach
// PDF rendering or blob-storage key names.
package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// String strips control characters and accents, keeps the printable subset
// that renders safely in PDFs, and collapses whitespace runs.
func String(s string) string {
	s = stripMarks(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsControl(r):
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
			b.WriteRune(r)
		case strings.ContainsRune("-.,!?()/@#$%&*+=:;_", r):
			b.WriteRune(r)
		}
	}
	return collapseSpaces(b.String())
}

// RemoveControlChars drops only control characters, preserving accents.
func RemoveControlChars(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	return collapseSpaces(b.String())
}

// FileName produces a name safe for object-storage keys: accents stripped,
// separators removed, spaces turned into underscores.
func FileName(s string) string {
	s = stripMarks(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsControl(r):
		case strings.ContainsRune(`<>:"/\|?*`, r):
		default:
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
}

// stripMarks decomposes to NFD and removes combining marks ("ç" -> "c").
func stripMarks(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
