// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	URL    string `json:"url,omitempty" validate:"omitempty,url"`   // Target website URL
	Output string `json:"output,omitempty"`                         // Path for the JSON artifact
	XLSX   string `json:"xlsx,omitempty"`                           // Optional path for the spreadsheet export
	Debug  bool   `json:"debug,omitempty"`                          // Dump page source and structure analysis
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required-field checks happen in the CLI after merging, since the URL may
// come from either a flag or the config file.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("config error: field %s failed %s validation", fe.Field(), fe.Tag())
	}
	return fmt.Errorf("config validation could not run: %w", err)
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.URL == "" {
		result.URL = defaults.URL
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.XLSX == "" {
		result.XLSX = defaults.XLSX
	}

	// Bool fields: cannot distinguish unset from false, so config may only
	// turn debug on (CLI flags always win when set).
	if defaults.Debug {
		result.Debug = true
	}

	return result
}
