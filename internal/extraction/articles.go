package extraction

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/company-profiler/internal/types"
)

const maxArticleNodes = 15

// Articles extracts blog article entries from a fetched blog listing page.
// pageURL is the blog page's final URL; article links resolve against it.
// Entries are deduplicated by full equality of the title/url pair.
func Articles(doc *goquery.Document, pageURL string) []types.Article {
	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	articles := []types.Article{}
	limitSelection(doc.Find("article[class], div[class]"), maxArticleNodes).Each(func(_ int, node *goquery.Selection) {
		titleElem := node.Find("h1, h2, h3, h4, a").First()
		if titleElem.Length() == 0 {
			return
		}
		title := textOf(titleElem)
		if n := runeLen(title); n <= 5 || n >= 200 {
			return
		}

		var articleURL *string
		if goquery.NodeName(titleElem) == "a" && base != nil {
			if href, ok := titleElem.Attr("href"); ok {
				if hrefURL, err := url.Parse(href); err == nil {
					resolved := base.ResolveReference(hrefURL).String()
					articleURL = &resolved
				}
			}
		}

		entry := types.Article{Title: title, URL: articleURL}
		for _, existing := range articles {
			if sameArticle(existing, entry) {
				return
			}
		}
		articles = append(articles, entry)
	})

	return articles
}

func sameArticle(a, b types.Article) bool {
	if a.Title != b.Title {
		return false
	}
	if a.URL == nil || b.URL == nil {
		return a.URL == nil && b.URL == nil
	}
	return *a.URL == *b.URL
}
