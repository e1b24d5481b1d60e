// Package types provides type definitions for structured data used throughout the company-profiler system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CompanyProfile is the structured record extracted from a company website.
// Optional fields are pointers so that "not found" serializes as null;
// sequences are initialized empty so they serialize as [].
type CompanyProfile struct {
	CompanyName *string       `json:"company_name"`
	Website     string        `json:"website"`
	About       About         `json:"about"`
	Services    []string      `json:"services"`
	Clients     []string      `json:"clients"`
	Process     []ProcessStep `json:"process"`
	Articles    []Article     `json:"articles"`
	Contact     Contact       `json:"contact"`
	Careers     Careers       `json:"careers"`
	Policies    Policies      `json:"policies"`
}

// About holds the company description and the page it came from.
type About struct {
	Description *string `json:"description"`
	PageURL     *string `json:"page_url"`
}

// ProcessStep is a single step of the company's process or methodology.
type ProcessStep struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
}

// Article is a blog or news entry discovered on the company's blog page.
type Article struct {
	Title string  `json:"title"`
	URL   *string `json:"url"`
}

// Contact holds discovered contact details.
type Contact struct {
	ContactPage *string `json:"contact_page"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
}

// Careers holds the careers page link.
type Careers struct {
	PageURL *string `json:"page_url"`
}

// Policies holds legal and policy page links.
type Policies struct {
	PrivacyPolicy  *string `json:"privacy_policy"`
	ReturnsPolicy  *string `json:"returns_policy"`
	TermsOfService *string `json:"terms_of_service"`
}

// NewCompanyProfile returns an empty profile for the given website URL.
// Website keeps the originally requested URL even when the fetch redirects.
func NewCompanyProfile(website string) *CompanyProfile {
	return &CompanyProfile{
		Website:  website,
		Services: []string{},
		Clients:  []string{},
		Process:  []ProcessStep{},
		Articles: []Article{},
	}
}

// StringPtr returns a pointer to s, or nil when s is empty.
// Extractors report misses as empty strings; the profile stores them as null.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
