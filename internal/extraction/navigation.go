package extraction

import (
	"net/url"
	"strings"

	"github.com/jonathan/company-profiler/internal/crawling"
)

// NavLinks holds the key page URLs discovered from the link catalog.
// Empty string means not found. Categories are independent; one link may be
// assigned to several of them.
type NavLinks struct {
	About   string
	Contact string
	Careers string
	Privacy string
	Returns string
	Terms   string
}

var (
	contactKeywords = []string{"contact"}
	careersKeywords = []string{"career", "job", "hiring", "join"}
	privacyKeywords = []string{"privacy"}
	returnsKeywords = []string{"return", "refund"}
	termsKeywords   = []string{"term", "condition", "tos"}
)

// Navigation scans the link catalog and selects the key pages. The about
// category scans the whole catalog and keeps the candidate with the shortest
// href path; every other category takes the first link matching its keyword
// set and stops.
func Navigation(catalog []crawling.LinkEntry) NavLinks {
	return NavLinks{
		About:   aboutLink(catalog),
		Contact: firstMatch(catalog, contactKeywords),
		Careers: firstMatch(catalog, careersKeywords),
		Privacy: firstMatch(catalog, privacyKeywords),
		Returns: firstMatch(catalog, returnsKeywords),
		Terms:   firstMatch(catalog, termsKeywords),
	}
}

// aboutLink keeps scanning past the first match: among all links mentioning
// "about", the one whose path has the fewest characters wins, so /about beats
// /about-us/our-story.
func aboutLink(catalog []crawling.LinkEntry) string {
	best := ""
	bestPathLen := 0
	for _, entry := range catalog {
		if !strings.Contains(entry.Href, "about") && !strings.Contains(entry.Text, "about") {
			continue
		}
		pathLen := hrefPathLen(entry.URL)
		if best == "" || pathLen < bestPathLen {
			best = entry.URL
			bestPathLen = pathLen
		}
	}
	return best
}

func hrefPathLen(rawURL string) int {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return len(rawURL)
	}
	return len(parsed.Path)
}

func firstMatch(catalog []crawling.LinkEntry, keywords []string) string {
	for _, entry := range catalog {
		for _, kw := range keywords {
			if strings.Contains(entry.Href, kw) || strings.Contains(entry.Text, kw) {
				return entry.URL
			}
		}
	}
	return ""
}
