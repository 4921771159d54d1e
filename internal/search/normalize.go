package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prepares text for flexible matching: lower-cases, strips
// diacritics, turns '.', '_' and '-' into spaces, drops any other
// non-alphanumeric rune and collapses repeated whitespace.
//
// Normalize("O.C 00491_2023") == "o c 00491 2023"
// Normalize("María") == "maria"
func Normalize(s string) string {
	s = strings.ToLower(s)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(' ')
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// normalizeExpr is the SQL-side counterpart of Normalize, applied to stored
// columns so a normalized term can match them. It lower-cases, folds Spanish
// accented vowels and eñe, and converts '.', '_' and '-' runs to one space.
// Kept intentionally simpler than Normalize: the raw ILIKE branch of the term
// predicate covers whatever this expression misses.
func normalizeExpr(column string) string {
	return "regexp_replace(translate(lower(" + column + "), 'áéíóúüñ', 'aeiouun'), '[._-]+', ' ', 'g')"
}
