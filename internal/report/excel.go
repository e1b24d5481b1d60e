package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/company-profiler/internal/types"
)

// WriteXLSX exports the profile as a spreadsheet with one sheet per profile
// section, for handing scrape results to non-technical consumers.
func WriteXLSX(profile *types.CompanyProfile, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const overview = "Overview"
	if err := f.SetSheetName("Sheet1", overview); err != nil {
		return fmt.Errorf("failed to rename overview sheet: %w", err)
	}

	overviewRows := [][2]string{
		{"Company Name", deref(profile.CompanyName)},
		{"Website", profile.Website},
		{"About Page", deref(profile.About.PageURL)},
		{"About Description", deref(profile.About.Description)},
		{"Contact Page", deref(profile.Contact.ContactPage)},
		{"Email", deref(profile.Contact.Email)},
		{"Phone", deref(profile.Contact.Phone)},
		{"Careers Page", deref(profile.Careers.PageURL)},
		{"Privacy Policy", deref(profile.Policies.PrivacyPolicy)},
		{"Returns Policy", deref(profile.Policies.ReturnsPolicy)},
		{"Terms of Service", deref(profile.Policies.TermsOfService)},
	}
	for i, row := range overviewRows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(overview, cell, &[]any{row[0], row[1]}); err != nil {
			return fmt.Errorf("failed to write overview row %d: %w", i+1, err)
		}
	}

	if err := writeListSheet(f, "Services", profile.Services); err != nil {
		return err
	}
	if err := writeListSheet(f, "Clients", profile.Clients); err != nil {
		return err
	}

	if _, err := f.NewSheet("Process"); err != nil {
		return fmt.Errorf("failed to create Process sheet: %w", err)
	}
	if err := f.SetSheetRow("Process", "A1", &[]any{"Step", "Description"}); err != nil {
		return fmt.Errorf("failed to write Process header: %w", err)
	}
	for i, step := range profile.Process {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow("Process", cell, &[]any{step.Step, step.Description}); err != nil {
			return fmt.Errorf("failed to write Process row %d: %w", i+1, err)
		}
	}

	if _, err := f.NewSheet("Articles"); err != nil {
		return fmt.Errorf("failed to create Articles sheet: %w", err)
	}
	if err := f.SetSheetRow("Articles", "A1", &[]any{"Title", "URL"}); err != nil {
		return fmt.Errorf("failed to write Articles header: %w", err)
	}
	for i, article := range profile.Articles {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow("Articles", cell, &[]any{article.Title, deref(article.URL)}); err != nil {
			return fmt.Errorf("failed to write Articles row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save spreadsheet %s: %w", path, err)
	}
	return nil
}

func writeListSheet(f *excelize.File, name string, items []string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create %s sheet: %w", name, err)
	}
	for i, item := range items {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetCellValue(name, cell, item); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", name, i+1, err)
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
