// Package crawling provides link catalog construction for fetched pages of a company website.
package crawling

import "fmt"

// CatalogError represents a failure building the link catalog for a page.
type CatalogError struct {
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("link catalog error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("link catalog error: %s", e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}
