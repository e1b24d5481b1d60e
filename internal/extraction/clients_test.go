package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClients_FromLogoWallImages(t *testing.T) {
	doc := parseDoc(t, `
		<html><body>
			<section>
				<h2>Trusted By</h2>
				<img src="/a.png" alt="Globex logo">
				<img src="/b.png" alt="Initech icon">
				<img src="/c.png" title="Umbrella Corp">
			</section>
		</body></html>`)

	clients := Clients(doc)
	assert.Equal(t, []string{"Globex", "Initech", "Umbrella Corp"}, clients)
}

func TestClients_AltPreferredOverTitle(t *testing.T) {
	doc := parseDoc(t, `
		<html><body>
			<section>
				<h2>Our Clients</h2>
				<img src="/a.png" alt="Globex" title="Ignored Title">
			</section>
		</body></html>`)

	assert.Equal(t, []string{"Globex"}, Clients(doc))
}

func TestClients_ShortTextMentions(t *testing.T) {
	doc := parseDoc(t, `
		<html><body>
			<section>
				<h2>Companies we work with</h2>
				<ul>
					<li>Globex</li>
					<li>Initech</li>
				</ul>
			</section>
		</body></html>`)

	clients := Clients(doc)
	assert.Contains(t, clients, "Globex")
	assert.Contains(t, clients, "Initech")
}

func TestClients_LongTextRejected(t *testing.T) {
	doc := parseDoc(t, `
		<html><body>
			<section>
				<h2>Our Partners</h2>
				<p>This paragraph is far too long to plausibly be a company name, so it must not appear.</p>
			</section>
		</body></html>`)

	assert.Empty(t, Clients(doc))
}

func TestClients_ImagesBeforeTextMentions(t *testing.T) {
	doc := parseDoc(t, `
		<html><body>
			<section>
				<span>Initech</span>
				<h2>Our Clients</h2>
				<img src="/a.png" alt="Globex">
			</section>
		</body></html>`)

	// Within a matched section, logo images are collected before text.
	assert.Equal(t, []string{"Globex", "Initech"}, Clients(doc))
}

func TestClients_NoMatchingHeading(t *testing.T) {
	doc := parseDoc(t, `
		<html><body>
			<section>
				<h2>Contact</h2>
				<img src="/a.png" alt="Globex logo">
			</section>
		</body></html>`)

	assert.Empty(t, Clients(doc))
}
