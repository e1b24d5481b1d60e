package extraction

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var serviceHeadingKeywords = []string{"service", "solution", "offer", "product", "expertise", "specialization"}

// servicePatternRe matches marketing copy like "We offer end-to-end cloud
// migrations"; the trailing phrase must not cross a sentence boundary.
var servicePatternRe = regexp.MustCompile(`(?i)We (offer|provide|deliver|specialize in) ([^.!?]{10,100})`)

const (
	maxServiceLists = 5
	maxServiceCards = 20
)

// Services extracts service names using two methods: list items and card
// headings inside containers anchored by a service-like heading, then "We
// offer ..." phrases from the page text. Results are deduplicated by exact
// text, insertion order preserved.
func Services(doc *goquery.Document) []string {
	services := []string{}
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			services = append(services, s)
		}
	}

	// Method 1: heading-anchored lists and cards.
	doc.Find("h1, h2, h3, h4, h5").Each(func(_ int, heading *goquery.Selection) {
		if !containsAny(strings.ToLower(textOf(heading)), serviceHeadingKeywords) {
			return
		}
		container := containerOf(heading)
		if container.Length() == 0 {
			return
		}

		limitSelection(container.Find("ul, ol"), maxServiceLists).Each(func(_ int, list *goquery.Selection) {
			list.Find("li").Each(func(_ int, li *goquery.Selection) {
				service := textOf(li)
				if n := runeLen(service); n > 3 && n < 200 {
					add(service)
				}
			})
		})

		limitSelection(container.Find("div[class]"), maxServiceCards).Each(func(_ int, card *goquery.Selection) {
			if n := runeLen(textOf(card)); n <= 10 || n >= 300 {
				return
			}
			// A nested heading marks the div as a service card.
			inner := card.Find("h3, h4, h5").First()
			if inner.Length() == 0 {
				return
			}
			if service := textOf(inner); runeLen(service) > 3 {
				add(service)
			}
		})
	})

	// Method 2: pattern-anchored phrases from the full page text.
	for _, m := range servicePatternRe.FindAllStringSubmatch(doc.Text(), -1) {
		service := strings.TrimSpace(m[2])
		if runeLen(service) > 10 {
			add(service)
		}
	}

	return services
}
