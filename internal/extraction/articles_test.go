package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticles_HeadingTitlesHaveNoURL(t *testing.T) {
	doc := parseDoc(t, `
		<html><body>
			<article class="post"><h2>Scaling search infrastructure</h2><p>Intro.</p></article>
			<article class="post"><h2>Lessons from a migration</h2><p>Intro.</p></article>
		</body></html>`)

	articles := Articles(doc, "https://example.com/blog")
	require.Len(t, articles, 2)
	assert.Equal(t, "Scaling search infrastructure", articles[0].Title)
	assert.Nil(t, articles[0].URL)
	assert.Equal(t, "Lessons from a migration", articles[1].Title)
}

func TestArticles_AnchorTitlesResolveAgainstBlogURL(t *testing.T) {
	doc := parseDoc(t, `
		<html><body>
			<div class="post"><a href="/blog/go-profiling">Profiling Go services in production</a></div>
		</body></html>`)

	articles := Articles(doc, "https://example.com/blog")
	require.Len(t, articles, 1)
	require.NotNil(t, articles[0].URL)
	assert.Equal(t, "https://example.com/blog/go-profiling", *articles[0].URL)
}

func TestArticles_TitleLengthBounds(t *testing.T) {
	doc := parseDoc(t, `
		<html><body>
			<div class="post"><h2>Short</h2></div>
			<div class="post"><h2>Long enough to keep</h2></div>
		</body></html>`)

	articles := Articles(doc, "https://example.com/blog")
	require.Len(t, articles, 1)
	assert.Equal(t, "Long enough to keep", articles[0].Title)
}

func TestArticles_DeduplicatesByTitleAndURL(t *testing.T) {
	doc := parseDoc(t, `
		<html><body>
			<div class="post"><a href="/one">Duplicate article title</a></div>
			<div class="teaser"><a href="/one">Duplicate article title</a></div>
			<div class="other"><a href="/two">Duplicate article title</a></div>
		</body></html>`)

	articles := Articles(doc, "https://example.com/blog")
	// Same title with a different URL is a distinct entry.
	require.Len(t, articles, 2)
}

func TestArticles_NoCandidates(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>Nothing here</p></body></html>`)
	assert.Empty(t, Articles(doc, "https://example.com/blog"))
}
