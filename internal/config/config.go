package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RenameSettings controls file set validation and rename execution.
type RenameSettings struct {
	AllowedExtensions []string `yaml:"allowed_extensions"` // extension allow-list, dot included
	Ignore            []string `yaml:"ignore"`             // glob patterns skipped during discovery
	DryRun            bool     `yaml:"dry_run"`            // simulate renames without touching the disk
	Preflight         bool     `yaml:"preflight"`          // check the whole rename plan for collisions first
}

// SplitSettings controls the optional single-document split step.
type SplitSettings struct {
	EligibleExtension string `yaml:"eligible_extension"` // document type that may be split
	OutputDir         string `yaml:"output_dir"`         // subdirectory chunks are written into
	PagesPerChunk     int    `yaml:"pages_per_chunk"`    // default pages per chunk
}

// TableSettings controls spreadsheet binding.
type TableSettings struct {
	Sheet string `yaml:"sheet"` // worksheet name; first sheet when empty
}

// LoggingSettings controls the log facade.
type LoggingSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // optional log file, appended to
}

// Config represents the application configuration structure.
type Config struct {
	Rename  RenameSettings  `yaml:"rename"`
	Split   SplitSettings   `yaml:"split"`
	Table   TableSettings   `yaml:"table"`
	Logging LoggingSettings `yaml:"logging"`
}

// LoadConfig loads configuration from the default location
// (~/.config/batchrename/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "batchrename", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Preflight defaults to true, so its zero value cannot distinguish
	// "omitted" from "disabled"; check the key's presence separately.
	var explicit struct {
		Rename struct {
			Preflight *bool `yaml:"preflight"`
		} `yaml:"rename"`
	}
	if err := yaml.Unmarshal(data, &explicit); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if len(tempCfg.Rename.AllowedExtensions) > 0 {
		cfg.Rename.AllowedExtensions = tempCfg.Rename.AllowedExtensions
	}
	if len(tempCfg.Rename.Ignore) > 0 {
		cfg.Rename.Ignore = tempCfg.Rename.Ignore
	}
	cfg.Rename.DryRun = tempCfg.Rename.DryRun
	if explicit.Rename.Preflight != nil {
		cfg.Rename.Preflight = *explicit.Rename.Preflight
	}

	if tempCfg.Split.EligibleExtension != "" {
		cfg.Split.EligibleExtension = tempCfg.Split.EligibleExtension
	}
	if tempCfg.Split.OutputDir != "" {
		cfg.Split.OutputDir = tempCfg.Split.OutputDir
	}
	if tempCfg.Split.PagesPerChunk > 0 {
		cfg.Split.PagesPerChunk = tempCfg.Split.PagesPerChunk
	}

	if tempCfg.Table.Sheet != "" {
		cfg.Table.Sheet = tempCfg.Table.Sheet
	}
	if tempCfg.Logging.Level != "" {
		cfg.Logging.Level = tempCfg.Logging.Level
	}
	if tempCfg.Logging.File != "" {
		cfg.Logging.File = tempCfg.Logging.File
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Rename.AllowedExtensions = []string{".pdf"}
	cfg.Rename.Ignore = []string{".*", "*~"}
	cfg.Rename.DryRun = false
	cfg.Rename.Preflight = true

	cfg.Split.EligibleExtension = ".pdf"
	cfg.Split.OutputDir = "split"
	cfg.Split.PagesPerChunk = 1

	cfg.Table.Sheet = ""

	cfg.Logging.Level = "info"
	cfg.Logging.File = ""

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if len(c.Rename.AllowedExtensions) == 0 {
		return fmt.Errorf("at least one allowed extension is required")
	}
	for i, ext := range c.Rename.AllowedExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("allowed extension %d must start with a dot: %s", i, ext)
		}
	}

	if !strings.HasPrefix(c.Split.EligibleExtension, ".") {
		return fmt.Errorf("split eligible extension must start with a dot: %s", c.Split.EligibleExtension)
	}
	if c.Split.OutputDir == "" {
		return fmt.Errorf("split output directory is required")
	}
	if c.Split.PagesPerChunk < 1 {
		return fmt.Errorf("pages per chunk must be >= 1")
	}

	return nil
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}
