package extraction

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// titleSeparators are tried in order when deriving a name from the document
// title; the segment before the first separator wins.
var titleSeparators = []string{"|", "-", "–"}

var logoAltRe = regexp.MustCompile(`(?i)logo`)

// CompanyName derives the company name from the document. Sources are tried
// in order and a later source overrides an earlier one, but only when it
// yields a non-empty result: document title, og:site_name meta tag, then the
// alt text of the first logo image.
func CompanyName(doc *goquery.Document) string {
	name := ""

	if title := textOf(doc.Find("title").First()); title != "" {
		segment := title
		for _, sep := range titleSeparators {
			segment = strings.SplitN(segment, sep, 2)[0]
		}
		if segment = strings.TrimSpace(segment); segment != "" {
			name = segment
		}
	}

	if meta := doc.Find(`meta[property="og:site_name"]`).First(); meta.Length() > 0 {
		if content, ok := meta.Attr("content"); ok {
			if content = strings.TrimSpace(content); content != "" {
				name = content
			}
		}
	}

	doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		alt, ok := img.Attr("alt")
		if !ok || !logoAltRe.MatchString(alt) {
			return true
		}
		cleaned := strings.ReplaceAll(alt, "logo", "")
		cleaned = strings.ReplaceAll(cleaned, "Logo", "")
		if cleaned = strings.TrimSpace(cleaned); cleaned != "" {
			name = cleaned
		}
		return false // only the first logo image is consulted
	})

	return name
}
