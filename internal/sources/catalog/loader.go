package catalog

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var templateVar = regexp.MustCompile(`\{\{\s*(HUB_VAR_[A-Za-z0-9_]+)\s*\}\}`)

// Loader handles loading and parsing of a catalog YAML file
type Loader struct {
	filePath string
}

// NewLoader creates a new catalog loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the catalog file
func (l *Loader) Load() (*FileConfig, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	data = expandTemplateVariables(data)

	var config FileConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse catalog yaml: %w", err)
	}

	return &config, nil
}

// expandTemplateVariables replaces {{HUB_VAR_...}} placeholders with the
// environment variable of the same name (empty when unset).
// Example: url: "{{HUB_VAR_ASET_URL}}" -> url: "https://..."
func expandTemplateVariables(data []byte) []byte {
	return templateVar.ReplaceAllFunc(data, func(match []byte) []byte {
		name := templateVar.FindSubmatch(match)[1]
		return []byte(os.Getenv(string(name)))
	})
}
