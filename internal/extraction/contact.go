package extraction

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// phoneRe is a loose North-American pattern: optional leading 1, then 3-3-4
// digit groups with flexible separators and optional parentheses.
var phoneRe = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)

// placeholderDomains are template-boilerplate email domains that must not be
// reported as real contact addresses.
var placeholderDomains = []string{"example.com", "domain.com", "email.com"}

// Email returns the first email address in the page text whose domain is not
// a known placeholder, or "" when none is found.
func Email(bodyText string) string {
	for _, candidate := range emailRe.FindAllString(bodyText, -1) {
		if !isPlaceholderEmail(candidate) {
			return candidate
		}
	}
	return ""
}

func isPlaceholderEmail(email string) bool {
	lower := strings.ToLower(email)
	for _, domain := range placeholderDomains {
		if strings.Contains(lower, domain) {
			return true
		}
	}
	return false
}

// Phone returns the first phone number in the page text reformatted as
// ddd-ddd-dddd, or "" when none is found.
func Phone(bodyText string) string {
	m := phoneRe.FindStringSubmatch(bodyText)
	if m == nil {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
}
