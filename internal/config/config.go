package config

import (
	"fmt"
	"os"

	"github.com/di-void/minesweeper-annotate-go/pkg/annotate"
	"gopkg.in/yaml.v3"
)

// Config holds CLI configuration
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// BoardConfig holds board alphabet and validation settings
type BoardConfig struct {
	Mine   string `yaml:"mine"`
	Blank  string `yaml:"blank"`
	Strict bool   `yaml:"strict"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format string `yaml:"format"` // text, json, xlsx
	Mode   string `yaml:"mode"`   // light, standard, verbose
	Pretty bool   `yaml:"pretty"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Set defaults if not provided
func (c *Config) applyDefaults() {
	if c.Board.Mine == "" {
		c.Board.Mine = string(annotate.DefaultMine)
	}
	if c.Board.Blank == "" {
		c.Board.Blank = string(annotate.DefaultBlank)
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Output.Mode == "" {
		c.Output.Mode = string(annotate.ModeStandard)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks field values that yaml decoding cannot
func (c *Config) Validate() error {
	if len(c.Board.Mine) != 1 {
		return fmt.Errorf("board.mine must be a single byte, got %q", c.Board.Mine)
	}
	if len(c.Board.Blank) != 1 {
		return fmt.Errorf("board.blank must be a single byte, got %q", c.Board.Blank)
	}
	switch c.Output.Format {
	case "text", "json", "xlsx":
	default:
		return fmt.Errorf("invalid output.format: %s (must be text, json, or xlsx)", c.Output.Format)
	}
	if err := c.Options().Validate(); err != nil {
		return err
	}
	return nil
}

// Options converts the board and output settings to annotation options
func (c *Config) Options() annotate.Options {
	opts := annotate.DefaultOptions()
	if len(c.Board.Mine) > 0 {
		opts.Mine = c.Board.Mine[0]
	}
	if len(c.Board.Blank) > 0 {
		opts.Blank = c.Board.Blank[0]
	}
	opts.Strict = c.Board.Strict
	opts.Mode = annotate.Mode(c.Output.Mode)
	return opts
}
