// Package textnorm provides the text normalization used by grading and
// option matching. All functions are total: any string in, a string out.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// quoteReplacer maps typographic quotes to their ASCII equivalents so that
// a learner typing straight quotes is never penalized for the content
// source using curly ones (or vice versa).
var quoteReplacer = strings.NewReplacer(
	"‘", "'", // left single
	"’", "'", // right single
	"‚", "'",
	"‛", "'",
	"“", `"`, // left double
	"”", `"`, // right double
	"„", `"`,
	"‟", `"`,
	"«", `"`,
	"»", `"`,
)

// Display normalizes a string for presentation and storage: Unicode NFC,
// straight quotes, collapsed whitespace, and at most one trailing run of
// sentence-ending punctuation removed ("I am here." -> "I am here").
// Idempotent: Display(Display(s)) == Display(s).
func Display(s string) string {
	s = norm.NFC.String(s)
	s = quoteReplacer.Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	return stripTrailingSentencePunct(s)
}

// ComparisonKey derives the string used for equality checks in grading.
// On top of Display it keeps only letters and digits, case-folded, so
// punctuation, spacing, and quote style never affect a verdict.
// Never shown to the learner.
func ComparisonKey(s string) string {
	s = Display(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// SplitMulti tokenizes a multi-select answer. Commas, semicolons, and
// newlines all act as separators; repeated separators collapse and empty
// tokens are dropped.
func SplitMulti(s string) []string {
	f := func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	}
	var out []string
	for _, part := range strings.FieldsFunc(s, f) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// stripTrailingSentencePunct removes one trailing run of sentence-ending
// punctuation. Interior punctuation is untouched.
func stripTrailingSentencePunct(s string) string {
	end := len(s)
	for end > 0 {
		r := rune(s[end-1])
		if r == '.' || r == '!' || r == '?' {
			end--
			continue
		}
		// "…" is multi-byte; check for it explicitly.
		if end >= 3 && s[end-3:end] == "…" {
			end -= 3
			continue
		}
		break
	}
	return strings.TrimRight(s[:end], " ")
}
