package extraction

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/company-profiler/internal/types"
)

var processHeadingKeywords = []string{"process", "methodology", "approach", "how we", "workflow", "step"}

var digitTokenRe = regexp.MustCompile(`\b\d+\b`)

const (
	maxStepDivs        = 10
	maxStepDescription = 300
)

// Process extracts process steps near process-like headings. Ordered-list
// items become steps numbered by their 1-based list position (short items are
// skipped but still consume their position); step-like class-bearing divs
// continue the numbering from the current count, with the counter advancing
// for every scanned div. Numbering can therefore restart or leave gaps when
// multiple headings match; that behavior is deliberate and preserved.
func Process(doc *goquery.Document) []types.ProcessStep {
	steps := []types.ProcessStep{}

	doc.Find("h1, h2, h3, h4, h5").Each(func(_ int, heading *goquery.Selection) {
		if !containsAny(strings.ToLower(textOf(heading)), processHeadingKeywords) {
			return
		}
		container := containerOf(heading)
		if container.Length() == 0 {
			return
		}

		container.Find("ol").Each(func(_ int, list *goquery.Selection) {
			list.Find("li").Each(func(i int, li *goquery.Selection) {
				description := textOf(li)
				if description != "" && runeLen(description) > 5 {
					steps = append(steps, types.ProcessStep{
						Step:        i + 1,
						Description: description,
					})
				}
			})
		})

		number := len(steps) + 1
		limitSelection(container.Find("div[class], article[class]"), maxStepDivs).Each(func(_ int, div *goquery.Selection) {
			defer func() { number++ }()
			text := textOf(div)
			n := runeLen(text)
			if n <= 10 || n >= 500 {
				return
			}
			// A step either leads with a number or carries its own heading.
			if !digitTokenRe.MatchString(truncateRunes(text, 50)) && div.Find("h3, h4, h5").Length() == 0 {
				return
			}
			steps = append(steps, types.ProcessStep{
				Step:        number,
				Description: truncateRunes(text, maxStepDescription),
			})
		})
	})

	return steps
}
