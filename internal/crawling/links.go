package crawling

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LinkEntry is one hyperlink from a fetched page, normalized for keyword matching.
type LinkEntry struct {
	URL  string // absolute URL, resolved against the page's final URL
	Text string // lowercased visible anchor text
	Href string // lowercased raw href attribute
}

// blogKeywords identify links that likely lead to a blog or article listing.
var blogKeywords = []string{"blog", "article", "news", "insight", "resource", "post"}

// BuildCatalog enumerates every anchor with a non-empty href on the page and
// returns the same-origin entries in document order. A relative href with no
// network location always counts as same-origin. The catalog keeps duplicates;
// it is rebuilt fresh for each fetched page and never merged across pages.
func BuildCatalog(doc *goquery.Document, finalURL string) ([]LinkEntry, error) {
	base, err := url.Parse(finalURL)
	if err != nil {
		return nil, &CatalogError{
			Message: "failed to parse page URL",
			Cause:   err,
		}
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, &CatalogError{
			Message: fmt.Sprintf("invalid page URL: %s (must have scheme and host)", finalURL),
		}
	}

	catalog := make([]LinkEntry, 0)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}

		hrefURL, err := url.Parse(href)
		if err != nil {
			// Skip malformed URLs
			return
		}

		absolute := base.ResolveReference(hrefURL)

		// Same-origin: resolved network location matches the page's, or the
		// raw href carries no network location at all.
		if absolute.Host != base.Host && hrefURL.Host != "" {
			return
		}

		catalog = append(catalog, LinkEntry{
			URL:  absolute.String(),
			Text: strings.ToLower(collapseText(s.Text())),
			Href: strings.ToLower(href),
		})
	})

	return catalog, nil
}

// BlogCandidates returns the URLs of catalog entries whose href or text
// mentions a blog-like keyword, in catalog order. Only the first candidate is
// ever fetched, but the full list is useful for debug output.
func BlogCandidates(catalog []LinkEntry) []string {
	candidates := make([]string, 0)
	for _, entry := range catalog {
		for _, kw := range blogKeywords {
			if strings.Contains(entry.Href, kw) || strings.Contains(entry.Text, kw) {
				candidates = append(candidates, entry.URL)
				break
			}
		}
	}
	return candidates
}

// collapseText trims a text node and collapses internal whitespace runs to
// single spaces, matching how anchor text reads on the rendered page.
func collapseText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
