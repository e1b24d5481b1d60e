package extraction

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	maxAboutParagraphs = 3
	minParagraphLen    = 50
)

// AboutDescription builds the company description from a fetched about page:
// noise elements are stripped, then the first substantial paragraphs are
// joined with single spaces. The document is modified in place, so callers
// should pass a tree parsed solely for this purpose.
func AboutDescription(doc *goquery.Document) string {
	doc.Find("script, style, nav, footer, header").Remove()

	paragraphs := make([]string, 0, maxAboutParagraphs)
	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if text := textOf(p); runeLen(text) > minParagraphLen {
			paragraphs = append(paragraphs, text)
		}
		return len(paragraphs) < maxAboutParagraphs
	})

	return strings.Join(paragraphs, " ")
}
