package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/beanport/internal/model"
)

// FileName is the config file written by init and read by import.
const FileName = "beanport.yaml"

// Environment overrides.
const (
	EnvConfigPath = "BEANPORT_CONFIG"
	EnvLogLevel   = "BEANPORT_LOG_LEVEL"
)

// Config represents the top-level beanport.yaml configuration.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	Banks   []BankAccount `yaml:"banks,omitempty"`
	Rules   RulesConfig   `yaml:"rules"`
	Logging LoggingConfig `yaml:"logging"`
	Git     GitConfig     `yaml:"git"`
}

// LedgerConfig locates the beancount file and its defaults.
type LedgerConfig struct {
	Path                 string `yaml:"path"`
	Commodity            string `yaml:"commodity"`
	UncategorizedAccount string `yaml:"uncategorized_account,omitempty"` // overrides the rule file
}

// BankAccount maps a bank export format to the statement's ledger account.
type BankAccount struct {
	Format    string `yaml:"format"`
	Account   string `yaml:"account"`
	Commodity string `yaml:"commodity,omitempty"` // overrides ledger.commodity
}

// RulesConfig points at the categorization rule file.
type RulesConfig struct {
	Path string `yaml:"path"` // "" uses the built-in tables
}

// LoggingConfig sets the CLI log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a beanport.yaml file from disk. Missing fields keep the values
// from Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	cfg.Banks = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger repo.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			Path:      "ledger.beancount",
			Commodity: "CAD",
		},
		Banks: []BankAccount{
			{Format: "rbc", Account: "Assets:CA:RBC:Chequing"},
			{Format: "tangerine", Account: "Assets:CA:Tangerine:Savings"},
		},
		Rules: RulesConfig{
			Path: "rules/categorization-rules.yaml",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Beanport",
			AuthorEmail: "import@beanport.dev",
		},
	}
}

// AccountFor returns the statement account configured for a bank format.
func (c *Config) AccountFor(format string) (model.Account, bool) {
	b, ok := c.bank(format)
	if !ok || b.Account == "" {
		return "", false
	}
	return model.Account(b.Account), true
}

// CommodityFor returns the commodity for a bank format, falling back to the
// ledger default.
func (c *Config) CommodityFor(format string) model.Commodity {
	if b, ok := c.bank(format); ok && b.Commodity != "" {
		return model.Commodity(b.Commodity)
	}
	return model.Commodity(c.Ledger.Commodity)
}

func (c *Config) bank(format string) (BankAccount, bool) {
	for _, b := range c.Banks {
		if strings.EqualFold(b.Format, format) {
			return b, true
		}
	}
	return BankAccount{}, false
}

// ApplyEnv overrides the log level from BEANPORT_LOG_LEVEL when set.
func (c *Config) ApplyEnv() {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.Logging.Level = lvl
	}
}

// PathFromEnv returns BEANPORT_CONFIG, or fallback when it is unset.
func PathFromEnv(fallback string) string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return fallback
}
