package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/company-profiler/internal/config"
	"github.com/jonathan/company-profiler/internal/pipeline"
	"github.com/jonathan/company-profiler/internal/report"
	"github.com/jonathan/company-profiler/schemas"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape a company website into a structured profile",
	Long:  "Scrapes the target website (plus its About Us and blog pages when discovered), prints a labeled profile report, and writes the profile as a JSON artifact validated against the profile schema.",
	RunE:  runScrape,
}

var (
	scrapeURL        string
	scrapeOutput     string
	scrapeXLSX       string
	scrapeConfigPath string
	scrapeDebug      bool
)

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeURL, "url", "u", "", "Target website URL (required unless set in config)")
	scrapeCmd.Flags().StringVarP(&scrapeOutput, "out", "o", "", "Output path for the JSON artifact (default: "+report.DefaultJSONFilename+")")
	scrapeCmd.Flags().StringVar(&scrapeXLSX, "xlsx", "", "Optional output path for a spreadsheet export")
	scrapeCmd.Flags().StringVar(&scrapeConfigPath, "config", "", "Path to a JSON config file")
	scrapeCmd.Flags().BoolVar(&scrapeDebug, "debug", false, "Dump parsed page source and structure analysis")

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		URL:    scrapeURL,
		Output: scrapeOutput,
		XLSX:   scrapeXLSX,
		Debug:  scrapeDebug,
	}

	if scrapeConfigPath != "" {
		fileCfg, err := config.LoadConfig(scrapeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	if cfg.Output == "" {
		cfg.Output = report.DefaultJSONFilename
	}
	if cfg.URL == "" {
		return fmt.Errorf("target URL required: set --url flag or 'url' in the config file")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	printer := report.NewPrinter(os.Stdout)
	profile := pipeline.Run(context.Background(), pipeline.RunOptions{
		URL:     cfg.URL,
		Debug:   cfg.Debug,
		Printer: printer,
	})

	printer.PrintProfile(profile)

	data, err := report.EncodeJSON(profile)
	if err != nil {
		return err
	}
	if err := schemas.ValidateProfileJSON(data); err != nil {
		return fmt.Errorf("refusing to write invalid profile: %w", err)
	}
	if err := os.WriteFile(cfg.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile file %s: %w", cfg.Output, err)
	}
	printer.Progressf("\n[+] Profile saved to %s", cfg.Output)

	if cfg.XLSX != "" {
		if err := report.WriteXLSX(profile, cfg.XLSX); err != nil {
			return fmt.Errorf("failed to export spreadsheet: %w", err)
		}
		printer.Progressf("[+] Spreadsheet saved to %s", cfg.XLSX)
	}

	return nil
}
