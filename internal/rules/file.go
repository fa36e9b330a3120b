package rules

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the YAML form of the rule tables (rules/categorization-rules.yaml).
type File struct {
	StripPatterns        []string          `yaml:"strip_patterns"`
	Rename               map[string]string `yaml:"rename"`
	Payees               []string          `yaml:"payees"`
	Accounts             map[string]string `yaml:"accounts"`
	UncategorizedAccount string            `yaml:"uncategorized_account,omitempty"`
}

// Load reads a rules file and builds Tables from it. The file replaces the
// built-in tables entirely.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rules %s: %w", path, err)
	}
	t, err := New(f)
	if err != nil {
		return nil, fmt.Errorf("rules %s: %w", path, err)
	}
	return t, nil
}

// LoadOrDefault loads path if it exists and falls back to Default otherwise.
func LoadOrDefault(path string) (*Tables, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes the tables to path as YAML, creating parent directories.
func Save(path string, t *Tables) error {
	data, err := yaml.Marshal(t.File())
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating rules dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}
	return nil
}
