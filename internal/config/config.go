package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/cards/internal/model"
)

const DefaultFileName = "cards.yaml"

// Config represents the application configuration.
type Config struct {
	Theme     string     `yaml:"theme"`
	AllowDrag bool       `yaml:"allow_drag"`
	DataFile  string     `yaml:"data_file"`
	LogLevel  string     `yaml:"log_level"`
	Seed      []SeedCard `yaml:"seed"`
}

// SeedCard is one card created by `cards init`.
type SeedCard struct {
	Title string `yaml:"title"`
	Badge string `yaml:"badge,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Theme:     "classic",
		AllowDrag: true,
		DataFile:  "cards.json",
		LogLevel:  "info",
		Seed: []SeedCard{
			{Title: "Conta Corrente", Badge: "airtag"},
			{Title: "Cartão de credito Visa", Badge: "creditcard"},
			{Title: "Emprestimos", Badge: "bolt"},
			{Title: "Investimentos", Badge: "lungs"},
		},
	}
}

// Load reads path on top of the defaults. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "", "classic", "neon", "mono":
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	for i, s := range c.Seed {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("seed %d: empty title", i+1)
		}
	}
	return nil
}

// DataPath resolves DataFile relative to the directory holding the config.
func (c *Config) DataPath(configPath string) string {
	if filepath.IsAbs(c.DataFile) {
		return c.DataFile
	}
	return filepath.Join(filepath.Dir(configPath), c.DataFile)
}

// SeedCards builds fresh active cards from the seed list.
func (c *Config) SeedCards() []model.Card {
	out := make([]model.Card, 0, len(c.Seed))
	for _, s := range c.Seed {
		out = append(out, model.NewCard(s.Title, s.Badge))
	}
	return out
}
