package extraction

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var clientHeadingKeywords = []string{"client", "customer", "partner", "trust", "work with", "portfolio"}

// clientSuffixRe strips decorative suffixes from image alt text, so
// "Acme Corp logo" becomes "Acme Corp".
var clientSuffixRe = regexp.MustCompile(`(?i)\s+(logo|icon|image)$`)

// Clients collects client names near client-like headings: image alt/title
// text first (likely logo walls), then short text mentions. This is a known
// high-false-positive heuristic; no precision filtering is applied beyond the
// length bounds. Results are deduplicated by exact text, insertion order
// preserved.
func Clients(doc *goquery.Document) []string {
	clients := []string{}
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			clients = append(clients, s)
		}
	}

	doc.Find("h1, h2, h3, h4, h5").Each(func(_ int, heading *goquery.Selection) {
		if !containsAny(strings.ToLower(textOf(heading)), clientHeadingKeywords) {
			return
		}
		container := containerOf(heading)
		if container.Length() == 0 {
			return
		}

		container.Find("img").Each(func(_ int, img *goquery.Selection) {
			alt := strings.TrimSpace(img.AttrOr("alt", ""))
			title := strings.TrimSpace(img.AttrOr("title", ""))
			name := alt
			if name == "" {
				name = title
			}
			if n := runeLen(name); n > 2 && n < 100 {
				add(clientSuffixRe.ReplaceAllString(name, ""))
			}
		})

		container.Find("li, span, p, div").Each(func(_ int, elem *goquery.Selection) {
			text := textOf(elem)
			// Only short text is kept; longer runs are prose, not names.
			if n := runeLen(text); n > 2 && n < 50 {
				add(text)
			}
		})
	})

	return clients
}
