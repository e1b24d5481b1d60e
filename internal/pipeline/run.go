// Package pipeline provides the high-level orchestration for a single
// profiling run: fetch the target page, build the link catalog, run the field
// extractors, enrich from the about and blog pages, and assemble the profile.
package pipeline

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/company-profiler/internal/crawling"
	"github.com/jonathan/company-profiler/internal/extraction"
	"github.com/jonathan/company-profiler/internal/fetch"
	"github.com/jonathan/company-profiler/internal/report"
	"github.com/jonathan/company-profiler/internal/types"
)

// DebugPageSourceFilename is where the parsed primary page is dumped in debug mode.
const DebugPageSourceFilename = "page_source.html"

// RunOptions holds configuration for a profiling run.
type RunOptions struct {
	URL     string
	Debug   bool
	Printer *report.Printer
}

// Run executes the full pipeline for one target URL and returns the assembled
// profile. Fetches are strictly sequential: primary page, then the about page
// and the blog page when discovered. A primary fetch failure is logged and
// yields the still-empty profile; secondary failures only skip their
// enrichment. Run never returns an error to the caller.
func Run(ctx context.Context, opts RunOptions) *types.CompanyProfile {
	printer := opts.Printer
	if printer == nil {
		printer = report.NewPrinter(io.Discard)
	}

	profile := types.NewCompanyProfile(opts.URL)

	printer.Progressf("\n[*] Fetching main page: %s", opts.URL)
	result, err := fetch.URL(ctx, opts.URL, fetch.DefaultOptions())
	if err != nil {
		printer.Progressf("[!] Failed to fetch website: %v", err)
		return profile
	}
	printer.Progressf("[+] Status Code: %d", result.StatusCode)
	printer.Progressf("[+] Final URL: %s", result.FinalURL)
	printer.Progressf("[+] Content Length: %d characters", len(result.HTML))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
	if err != nil {
		printer.Progressf("[!] Failed to parse page: %v", err)
		return profile
	}

	if opts.Debug {
		dumpPageSource(doc, printer)
		printer.PrintPageStructure(doc)
	}

	printer.Progressf("\n[*] Extracting company name...")
	if name := extraction.CompanyName(doc); name != "" {
		profile.CompanyName = &name
		printer.Progressf("[+] Company name: %s", name)
	}

	printer.Progressf("\n[*] Collecting all links...")
	catalog, err := crawling.BuildCatalog(doc, result.FinalURL)
	if err != nil {
		printer.Progressf("[!] Failed to build link catalog: %v", err)
	}
	printer.Progressf("[+] Collected %d links", len(catalog))

	printer.Progressf("\n[*] Identifying key pages...")
	nav := extraction.Navigation(catalog)
	profile.About.PageURL = types.StringPtr(nav.About)
	profile.Contact.ContactPage = types.StringPtr(nav.Contact)
	profile.Careers.PageURL = types.StringPtr(nav.Careers)
	profile.Policies.PrivacyPolicy = types.StringPtr(nav.Privacy)
	profile.Policies.ReturnsPolicy = types.StringPtr(nav.Returns)
	profile.Policies.TermsOfService = types.StringPtr(nav.Terms)
	logKeyPage(printer, "About Us", nav.About)
	logKeyPage(printer, "Contact", nav.Contact)
	logKeyPage(printer, "Careers", nav.Careers)
	logKeyPage(printer, "Privacy Policy", nav.Privacy)
	logKeyPage(printer, "Returns Policy", nav.Returns)
	logKeyPage(printer, "Terms of Service", nav.Terms)

	printer.Progressf("\n[*] Extracting services...")
	profile.Services = extraction.Services(doc)
	printer.Progressf("[+] Total services found: %d", len(profile.Services))

	printer.Progressf("\n[*] Extracting clients...")
	profile.Clients = extraction.Clients(doc)
	printer.Progressf("[+] Total clients found: %d", len(profile.Clients))

	printer.Progressf("\n[*] Extracting process/methodology...")
	profile.Process = extraction.Process(doc)
	printer.Progressf("[+] Total process steps found: %d", len(profile.Process))

	printer.Progressf("\n[*] Extracting articles/blog posts...")
	profile.Articles = scrapeArticles(ctx, catalog, printer)
	printer.Progressf("[+] Total articles found: %d", len(profile.Articles))

	printer.Progressf("\n[*] Extracting contact information...")
	bodyText := doc.Text()
	if email := extraction.Email(bodyText); email != "" {
		profile.Contact.Email = &email
		printer.Progressf("[+] Email: %s", email)
	}
	if phone := extraction.Phone(bodyText); phone != "" {
		profile.Contact.Phone = &phone
		printer.Progressf("[+] Phone: %s", phone)
	}

	if nav.About != "" {
		if description := scrapeAboutPage(ctx, nav.About, printer); description != "" {
			profile.About.Description = &description
		}
	}

	return profile
}

// scrapeArticles fetches the first blog-like link from the catalog and
// extracts article entries from it. Failure is non-fatal.
func scrapeArticles(ctx context.Context, catalog []crawling.LinkEntry, printer *report.Printer) []types.Article {
	candidates := crawling.BlogCandidates(catalog)
	if len(candidates) == 0 {
		return []types.Article{}
	}

	blogURL := candidates[0]
	printer.Progressf("[+] Scraping blog page: %s", blogURL)
	result, err := fetch.URL(ctx, blogURL, fetch.SecondaryOptions())
	if err != nil {
		printer.Progressf("[!] Could not scrape blog: %v", err)
		return []types.Article{}
	}

	blogDoc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
	if err != nil {
		printer.Progressf("[!] Could not parse blog page: %v", err)
		return []types.Article{}
	}

	return extraction.Articles(blogDoc, result.FinalURL)
}

// scrapeAboutPage fetches the discovered about page and extracts the company
// description. Failure is non-fatal.
func scrapeAboutPage(ctx context.Context, aboutURL string, printer *report.Printer) string {
	printer.Progressf("\n[*] Scraping About Us page...")
	result, err := fetch.URL(ctx, aboutURL, fetch.SecondaryOptions())
	if err != nil {
		printer.Progressf("[!] Could not scrape About Us page: %v", err)
		return ""
	}

	aboutDoc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
	if err != nil {
		printer.Progressf("[!] Could not parse About Us page: %v", err)
		return ""
	}

	description := extraction.AboutDescription(aboutDoc)
	if description != "" {
		printer.Progressf("[+] About Us description extracted (%d chars)", len(description))
	}
	return description
}

// dumpPageSource writes the re-rendered parse tree of the primary page for
// offline inspection.
func dumpPageSource(doc *goquery.Document, printer *report.Printer) {
	rendered, err := doc.Html()
	if err != nil {
		printer.Progressf("[!] Could not render page source: %v", err)
		return
	}
	if err := os.WriteFile(DebugPageSourceFilename, []byte(rendered), 0644); err != nil {
		printer.Progressf("[!] Could not write %s: %v", DebugPageSourceFilename, err)
		return
	}
	printer.Progressf("[+] HTML saved to %s for inspection", DebugPageSourceFilename)
}

func logKeyPage(printer *report.Printer, label, url string) {
	if url != "" {
		printer.Progressf("[+] %s: %s", label, url)
	}
}
