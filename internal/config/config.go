package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete application configuration. Precedence is built-in
// defaults, then the YAML file, then environment variables with the
// TRADEIMPORT_ prefix.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Import  ImportConfig  `yaml:"import" envconfig:"IMPORT"`
}

// LoggingConfig controls the slog setup.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

// ImportConfig holds the import pipeline knobs.
type ImportConfig struct {
	// SymbolThreshold is the symbol length below which a token is treated
	// as an equity ticker rather than an OCC option symbol.
	SymbolThreshold int `yaml:"symbol_threshold" envconfig:"SYMBOL_THRESHOLD"`

	// OutputDir receives the exported records and error files.
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Import: ImportConfig{
			SymbolThreshold: 9,
			OutputDir:       "out",
		},
	}
}

// Load builds the configuration: defaults first, the YAML file at filePath
// on top when one is given and exists, environment variables last.
func Load(filePath string) (*Config, error) {
	cfg := Default()

	if filePath != "" {
		if _, err := os.Stat(filePath); err == nil {
			if err := loadFromFile(filePath, cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		}
	}

	if err := envconfig.Process("TRADEIMPORT", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func (c *Config) validate() error {
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid logging format: %q", c.Logging.Format)
	}
	if c.Import.SymbolThreshold <= 0 {
		return fmt.Errorf("symbol threshold must be positive, got %d", c.Import.SymbolThreshold)
	}
	return nil
}
