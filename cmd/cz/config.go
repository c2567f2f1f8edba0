package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// Config represents the cz configuration file
type Config struct {
	// Color is one of auto, always or never.
	Color   string `yaml:"color" toml:"color"`
	Decimal bool   `yaml:"decimal" toml:"decimal"`
	// Precision is the number of fraction digits printed, -1 for the
	// shortest exact representation.
	Precision int    `yaml:"precision" toml:"precision"`
	Prompt    string `yaml:"prompt" toml:"prompt"`
}

func getDefaultConfig() *Config {
	return &Config{
		Color:     "auto",
		Precision: -1,
		Prompt:    "> ",
	}
}

// LoadConfig reads the configuration file at configPath. A missing file
// yields the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	config := getDefaultConfig()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(configPath)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to parse config file: unknown field %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		// Strict mode rejects unknown fields.
		if err := yaml.UnmarshalWithOptions(data, config, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// override applies command-line flags on top of the file configuration.
func (c *Config) override(cli *CLI) {
	if cli.Color != "" {
		c.Color = cli.Color
	}
	if cli.Decimal {
		c.Decimal = true
	}
}

func (c *Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrConfigValidation, c.Color)
	}
	if c.Precision < -1 {
		return fmt.Errorf("%w: precision must be -1 or greater, got %d", ErrConfigValidation, c.Precision)
	}
	return nil
}

func loadEnvFiles() error {
	// Try to load .env file from current directory
	if _, err := os.Stat(".env"); err == nil {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}
