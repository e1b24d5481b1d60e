package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/company-profiler/internal/types"
)

// DefaultJSONFilename is the default path of the JSON artifact.
const DefaultJSONFilename = "company_profile.json"

// EncodeJSON marshals the profile as UTF-8 JSON with 2-space indentation and
// non-ASCII characters left unescaped.
func EncodeJSON(profile *types.CompanyProfile) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(profile); err != nil {
		return nil, fmt.Errorf("failed to marshal profile to JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteJSON writes the encoded profile to path.
func WriteJSON(profile *types.CompanyProfile, path string) error {
	data, err := EncodeJSON(profile)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile file %s: %w", path, err)
	}
	return nil
}
