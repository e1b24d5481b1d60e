// Package report renders the scraped company profile: a human-readable
// console report, the JSON artifact, an optional spreadsheet export, and the
// debug page-structure analysis.
package report

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/company-profiler/internal/types"
)

const (
	reportWidth = 80

	maxReportServices = 15
	maxReportClients  = 20
	maxReportArticles = 10

	serviceTruncateLen = 150
	processTruncateLen = 150
	aboutPreviewLen    = 300

	debugLinkSamples    = 20
	debugHeadingSamples = 5
	debugImageSamples   = 10
	headingPreviewLen   = 80
	imageSrcPreviewLen  = 60
)

var (
	debugServiceRe = regexp.MustCompile(`(?i)service|solution|offering`)
	debugClientRe  = regexp.MustCompile(`(?i)client|customer|trusted`)
)

// Printer writes console output to an injected writer. All output of a run
// goes through a Printer, so callers control encoding and destination.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Progressf writes a single progress line.
//
//nolint:errcheck // console output; write errors are not recoverable
func (p *Printer) Progressf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) rule() {
	p.Progressf("%s", strings.Repeat("=", reportWidth))
}

// PrintProfile writes the full labeled profile report.
//
//nolint:errcheck // console output; write errors are not recoverable
func (p *Printer) PrintProfile(profile *types.CompanyProfile) {
	p.Progressf("")
	p.rule()
	p.Progressf("COMPREHENSIVE COMPANY PROFILE REPORT")
	p.rule()

	p.Progressf("\n[COMPANY NAME]")
	p.Progressf("  %s", orNotFound(profile.CompanyName))

	p.Progressf("\n[ABOUT US]")
	if profile.About.Description != nil {
		p.Progressf("  %s", truncateWithEllipsis(*profile.About.Description, aboutPreviewLen))
	} else {
		p.Progressf("  Not found")
	}
	p.Progressf("  Page URL: %s", orNotFound(profile.About.PageURL))

	p.Progressf("\n[SERVICES] (%d found)", len(profile.Services))
	if len(profile.Services) > 0 {
		for i, service := range capList(profile.Services, maxReportServices) {
			p.Progressf("  %d. %s", i+1, truncateWithEllipsis(service, serviceTruncateLen))
		}
	} else {
		p.Progressf("  None found")
	}

	p.Progressf("\n[CLIENTS] (%d found)", len(profile.Clients))
	if len(profile.Clients) > 0 {
		for i, client := range capList(profile.Clients, maxReportClients) {
			p.Progressf("  %d. %s", i+1, client)
		}
	} else {
		p.Progressf("  None found")
	}

	p.Progressf("\n[PROCESS/METHODOLOGY] (%d steps)", len(profile.Process))
	if len(profile.Process) > 0 {
		for _, step := range profile.Process {
			p.Progressf("  Step %d: %s", step.Step, truncateWithEllipsis(step.Description, processTruncateLen))
		}
	} else {
		p.Progressf("  None found")
	}

	p.Progressf("\n[ARTICLES/BLOG] (%d found)", len(profile.Articles))
	if len(profile.Articles) > 0 {
		for i, article := range profile.Articles {
			if i >= maxReportArticles {
				break
			}
			p.Progressf("  %d. %s", i+1, article.Title)
			if article.URL != nil {
				p.Progressf("     URL: %s", *article.URL)
			}
		}
	} else {
		p.Progressf("  None found")
	}

	p.Progressf("\n[CONTACT INFORMATION]")
	p.Progressf("  Contact Page: %s", orNotFound(profile.Contact.ContactPage))
	p.Progressf("  Email: %s", orNotFound(profile.Contact.Email))
	p.Progressf("  Phone: %s", orNotFound(profile.Contact.Phone))

	p.Progressf("\n[CAREERS]")
	p.Progressf("  Careers Page: %s", orNotFound(profile.Careers.PageURL))

	p.Progressf("\n[POLICIES]")
	p.Progressf("  Privacy Policy: %s", orNotFound(profile.Policies.PrivacyPolicy))
	p.Progressf("  Returns Policy: %s", orNotFound(profile.Policies.ReturnsPolicy))
	p.Progressf("  Terms of Service: %s", orNotFound(profile.Policies.TermsOfService))

	p.Progressf("")
	p.rule()
}

// PrintPageStructure writes the debug structural analysis of a parsed page:
// link, heading and image samples plus rough keyword occurrence counts.
func (p *Printer) PrintPageStructure(doc *goquery.Document) {
	p.Progressf("")
	p.rule()
	p.Progressf("DEBUG: PAGE STRUCTURE ANALYSIS")
	p.rule()

	links := doc.Find("a[href]")
	p.Progressf("\n[DEBUG] Total links found: %d", links.Length())
	p.Progressf("[DEBUG] Sample links (first %d):", debugLinkSamples)
	links.EachWithBreak(func(i int, link *goquery.Selection) bool {
		if i >= debugLinkSamples {
			return false
		}
		p.Progressf("  %d. Text: '%s' | Href: '%s'", i+1, collapse(link.Text()), link.AttrOr("href", ""))
		return true
	})

	p.Progressf("\n[DEBUG] Headings found:")
	for _, tag := range []string{"h1", "h2", "h3"} {
		headings := doc.Find(tag)
		p.Progressf("  %s: %d found", strings.ToUpper(tag), headings.Length())
		headings.EachWithBreak(func(i int, h *goquery.Selection) bool {
			if i >= debugHeadingSamples {
				return false
			}
			p.Progressf("    - %s", truncate(collapse(h.Text()), headingPreviewLen))
			return true
		})
	}

	bodyText := doc.Text()
	p.Progressf("\n[DEBUG] Looking for common patterns...")
	p.Progressf("  Elements mentioning 'service/solution': %d", len(debugServiceRe.FindAllStringIndex(bodyText, -1)))
	p.Progressf("  Elements mentioning 'client/customer': %d", len(debugClientRe.FindAllStringIndex(bodyText, -1)))

	images := doc.Find("img")
	p.Progressf("\n[DEBUG] Images found: %d", images.Length())
	images.EachWithBreak(func(i int, img *goquery.Selection) bool {
		if i >= debugImageSamples {
			return false
		}
		p.Progressf("  %d. Alt: '%s' | Src: '%s'", i+1, img.AttrOr("alt", "No alt"), truncate(img.AttrOr("src", "No src"), imageSrcPreviewLen))
		return true
	})

	p.Progressf("")
	p.rule()
}

func orNotFound(s *string) string {
	if s == nil || *s == "" {
		return "Not found"
	}
	return *s
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func truncateWithEllipsis(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return truncate(s, n) + "..."
}
