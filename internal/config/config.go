// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-tailor/internal/types"
)

// EnvConfigPath names an environment variable holding the default config file path
const EnvConfigPath = "RESUME_TAILOR_CONFIG"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	KB    string `json:"kb,omitempty" yaml:"kb,omitempty" toml:"kb,omitempty"`             // Path to knowledge base JSON file
	JD    string `json:"jd,omitempty" yaml:"jd,omitempty" toml:"jd,omitempty"`             // Path to job description file
	JDURL string `json:"jd_url,omitempty" yaml:"jd_url,omitempty" toml:"jd_url,omitempty"` // URL to fetch job description from

	// Outputs
	Out    string `json:"out,omitempty" yaml:"out,omitempty" toml:"out,omitempty"`                                                         // Output file path
	Format string `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty" validate:"omitempty,oneof=markdown text latex"` // Output format
	Report string `json:"report,omitempty" yaml:"report,omitempty" toml:"report,omitempty"`                                                // Path to JSON selection report

	// Behavior
	Verbose bool                 `json:"verbose,omitempty" yaml:"verbose,omitempty" toml:"verbose,omitempty"` // Print detailed debug information
	Limits  types.LimitOverrides `json:"limits,omitempty" yaml:"limits,omitempty" toml:"limits,omitempty"`    // Per-category caps
}

// LoadConfig loads configuration from a file. Files ending in .yaml/.yml or
// .toml are decoded as such; anything else is read as JSON.
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
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required inputs are not checked here since CLI flags may still supply them.
func (c *Config) Validate() error {
	if c.JD != "" && c.JDURL != "" {
		return fmt.Errorf("config error: 'jd' and 'jd_url' are mutually exclusive")
	}

	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.KB != "" {
		if _, err := os.Stat(c.KB); os.IsNotExist(err) {
			return fmt.Errorf("config error: knowledge base file not found: %s", c.KB)
		}
	}

	if c.JD != "" {
		if _, err := os.Stat(c.JD); os.IsNotExist(err) {
			return fmt.Errorf("config error: job description file not found: %s", c.JD)
		}
	}

	return nil
}

// JobSource returns the job description location, preferring the file path.
func (c *Config) JobSource() string {
	if c.JD != "" {
		return c.JD
	}
	return c.JDURL
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Limits set in c win over limits set in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.KB == "" {
		result.KB = defaults.KB
	}
	if result.JD == "" && result.JDURL == "" {
		result.JD = defaults.JD
		result.JDURL = defaults.JDURL
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.Report == "" {
		result.Report = defaults.Report
	}

	result.Limits = defaults.Limits.Merge(c.Limits)

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// EffectiveLimits applies the configured overrides on top of the default caps
func (c *Config) EffectiveLimits() types.Limits {
	return types.DefaultLimits().Merge(c.Limits)
}
