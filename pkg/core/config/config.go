package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/datex/foundation/core/error"
	"github.com/msto63/datex/foundation/core/i18n"
	"github.com/msto63/datex/foundation/core/log"
	"github.com/msto63/datex/foundation/utils/datex"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Dates   DatesConfig   `toml:"dates" yaml:"dates"`

	path string
}

// GeneralConfig holds logging and language settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	Language  string `toml:"language" yaml:"language"`
}

// DatesConfig holds date handling settings
type DatesConfig struct {
	OutputPattern  string `toml:"output_pattern" yaml:"output_pattern"`
	RangeSeparator string `toml:"range_separator" yaml:"range_separator"`
	// Today pins the current date, in any recognised date notation
	Today string `toml:"today" yaml:"today"`
}

// Format is the configuration file format
type Format int

const (
	// FormatTOML is the default format
	FormatTOML Format = iota

	// FormatYAML is used for .yaml and .yml files
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Environment variables read by LoadFromEnv and applied on every load
const (
	EnvConfig   = "DATEX_CONFIG"
	EnvLogLevel = "DATEX_LOG_LEVEL"
	EnvToday    = "DATEX_TODAY"
	EnvLanguage = "DATEX_LANG"
)

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnvOverrides()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", path)).
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := Parse(content, DetectFormat(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").WithDetail("path", path)
	}
	cfg.path = path
	return cfg, nil
}

// Parse decodes configuration content, applies defaults and environment
// overrides and validates the result
func Parse(content []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatYAML:
		if len(bytes.TrimSpace(content)) > 0 {
			if err := yaml.Unmarshal(content, &cfg); err != nil {
				return nil, mdwerror.Wrap(err, "YAML parse error").
					WithCode(mdwerror.CodeInvalidConfig).
					WithOperation("config.Parse")
			}
		}
	default:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Parse")
		}
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the DATEX_CONFIG environment variable
// or the first existing default location. Without any file it returns the
// defaults with environment overrides, validated like a loaded file.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		defaultPaths := []string{
			"./configs/datex.toml",
			"./datex.toml",
			filepath.Join(os.Getenv("HOME"), ".config/datex/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		cfg := Default()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Load(path)
}

// DetectFormat determines the configuration format from the file extension
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.General.Language == "" {
		c.General.Language = "de"
	}

	// Dates
	if c.Dates.OutputPattern == "" {
		c.Dates.OutputPattern = datex.DefaultPattern
	}
	if strings.TrimSpace(c.Dates.RangeSeparator) == "" {
		c.Dates.RangeSeparator = datex.DefaultSeparator
	}
}

// applyEnvOverrides lets the environment override file values
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv(EnvToday); v != "" {
		c.Dates.Today = v
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		c.General.Language = v
	}
}

// Validate checks that every value can be used
func (c *Config) Validate() error {
	invalid := func(key, value string, cause error) error {
		msg := fmt.Sprintf("invalid value for %s: %q", key, value)
		var err *mdwerror.Error
		if cause != nil {
			err = mdwerror.Wrap(cause, msg)
		} else {
			err = mdwerror.New(msg)
		}
		return err.WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("key", key)
	}

	if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err)
	}
	if _, err := log.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err)
	}
	if i18n.NormalizeLocale(c.General.Language) == "" {
		return invalid("general.language", c.General.Language, nil)
	}
	if _, err := datex.CompileLayout(c.Dates.OutputPattern); err != nil {
		return invalid("dates.output_pattern", c.Dates.OutputPattern, err)
	}
	if c.Dates.Today != "" {
		if _, err := c.TodayDate(); err != nil {
			return invalid("dates.today", c.Dates.Today, err)
		}
	}
	return nil
}

// TodayDate parses the pinned current date. The zero time means no date
// is pinned.
func (c *Config) TodayDate() (time.Time, error) {
	if c.Dates.Today == "" {
		return time.Time{}, nil
	}
	today, err := datex.ParseDate(c.Dates.Today)
	if err != nil {
		return time.Time{}, err
	}
	if today.IsZero() {
		return time.Time{}, mdwerror.New("not a recognised date").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.TodayDate").
			WithDetail("today", c.Dates.Today)
	}
	return today, nil
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}
