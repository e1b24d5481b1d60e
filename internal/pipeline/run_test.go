package pipeline

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/company-profiler/internal/report"
)

const primaryPage = `<!DOCTYPE html>
<html>
<head><title>Acme Corp | Home</title></head>
<body>
	<nav>
		<a href="/about">About</a>
		<a href="/blog">Blog</a>
		<a href="/contact">Contact</a>
		<a href="/careers">Careers</a>
		<a href="/privacy">Privacy Policy</a>
	</nav>
	<section>
		<h2>Our Services</h2>
		<ul>
			<li>Web Development</li>
			<li>Cloud Migration</li>
		</ul>
	</section>
	<section>
		<h2>Trusted By</h2>
		<img src="/globex.png" alt="Globex icon">
	</section>
	<p>Contact us at sales@acme.com or call (555) 123-4567.</p>
</body>
</html>`

const aboutPage = `<html><body>
	<p>Founded in 2004, Acme builds logistics software for mid-size retailers across Europe.</p>
	<p>Our teams in Berlin and Lisbon ship software that moves millions of parcels every day.</p>
</body></html>`

const blogPage = `<html><body>
	<div class="post"><a href="/blog/first-post">How we moved our data pipeline to Go</a></div>
	<div class="post"><h3>Why boring technology wins for infrastructure teams</h3></div>
</body></html>`

func newSiteServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(primaryPage))
	})
	mux.HandleFunc("/about", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(aboutPage))
	})
	mux.HandleFunc("/blog", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(blogPage))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRun_FullSite(t *testing.T) {
	srv := newSiteServer(t)

	var out bytes.Buffer
	profile := Run(context.Background(), RunOptions{
		URL:     srv.URL,
		Printer: report.NewPrinter(&out),
	})

	assert.Equal(t, srv.URL, profile.Website)

	require.NotNil(t, profile.CompanyName)
	assert.Equal(t, "Acme Corp", *profile.CompanyName)

	require.NotNil(t, profile.About.PageURL)
	assert.Equal(t, srv.URL+"/about", *profile.About.PageURL)
	require.NotNil(t, profile.About.Description)
	assert.Contains(t, *profile.About.Description, "Founded in 2004")
	assert.Contains(t, *profile.About.Description, "Berlin and Lisbon")

	assert.Equal(t, []string{"Web Development", "Cloud Migration"}, profile.Services)
	assert.Equal(t, []string{"Globex"}, profile.Clients)

	require.Len(t, profile.Articles, 2)
	assert.Equal(t, "How we moved our data pipeline to Go", profile.Articles[0].Title)
	require.NotNil(t, profile.Articles[0].URL)
	assert.Equal(t, srv.URL+"/blog/first-post", *profile.Articles[0].URL)
	assert.Nil(t, profile.Articles[1].URL)

	require.NotNil(t, profile.Contact.ContactPage)
	assert.Equal(t, srv.URL+"/contact", *profile.Contact.ContactPage)
	require.NotNil(t, profile.Contact.Email)
	assert.Equal(t, "sales@acme.com", *profile.Contact.Email)
	require.NotNil(t, profile.Contact.Phone)
	assert.Equal(t, "555-123-4567", *profile.Contact.Phone)

	require.NotNil(t, profile.Careers.PageURL)
	assert.Equal(t, srv.URL+"/careers", *profile.Careers.PageURL)
	require.NotNil(t, profile.Policies.PrivacyPolicy)
	assert.Equal(t, srv.URL+"/privacy", *profile.Policies.PrivacyPolicy)
	assert.Nil(t, profile.Policies.ReturnsPolicy)

	assert.Contains(t, out.String(), "[*] Fetching main page:")
	assert.Contains(t, out.String(), "[+] Company name: Acme Corp")
}

func TestRun_Deterministic(t *testing.T) {
	srv := newSiteServer(t)

	first := Run(context.Background(), RunOptions{URL: srv.URL})
	second := Run(context.Background(), RunOptions{URL: srv.URL})

	a, err := report.EncodeJSON(first)
	require.NoError(t, err)
	b, err := report.EncodeJSON(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_PrimaryFetchFailureReturnsEmptyProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	var out bytes.Buffer
	profile := Run(context.Background(), RunOptions{
		URL:     srv.URL,
		Printer: report.NewPrinter(&out),
	})

	require.NotNil(t, profile)
	assert.Equal(t, srv.URL, profile.Website)
	assert.Nil(t, profile.CompanyName)
	assert.Nil(t, profile.About.Description)
	assert.Empty(t, profile.Services)
	assert.Empty(t, profile.Clients)
	assert.Empty(t, profile.Process)
	assert.Empty(t, profile.Articles)
	assert.Contains(t, out.String(), "[!] Failed to fetch website")
}

func TestRun_SecondaryFailuresAreNonFatal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			// About and blog pages are down.
			http.Error(w, "gone", http.StatusGone)
			return
		}
		w.Write([]byte(primaryPage))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	profile := Run(context.Background(), RunOptions{URL: srv.URL})

	// Primary-page fields survive.
	require.NotNil(t, profile.CompanyName)
	assert.Equal(t, []string{"Web Development", "Cloud Migration"}, profile.Services)
	// Enrichment from the failed pages is simply absent.
	assert.Nil(t, profile.About.Description)
	assert.Empty(t, profile.Articles)
	require.NotNil(t, profile.About.PageURL)
}
