// Package extraction implements the heuristic rules that turn a parsed company
// page into structured profile fields. Extractors are pure functions of the
// parsed document (and the link catalog), so two runs over identical HTML
// produce identical output.
package extraction

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// textOf returns the selection's visible text with whitespace runs collapsed
// to single spaces and the ends trimmed.
func textOf(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// runeLen counts characters, not bytes; all length thresholds in the
// extraction rules are character counts.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// truncateRunes returns the first n characters of s.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// containsAny reports whether s contains any of the keywords as a substring.
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// containerOf returns the nearest ancestor of type div/section/article/main,
// the scope used for sibling content extraction around a heading.
func containerOf(heading *goquery.Selection) *goquery.Selection {
	return heading.Closest("div, section, article, main")
}

// limitSelection caps a selection at its first n matches.
func limitSelection(s *goquery.Selection, n int) *goquery.Selection {
	if s.Length() > n {
		return s.Slice(0, n)
	}
	return s
}
