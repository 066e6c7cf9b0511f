package config

import (
	"fmt"

	"github.com/MeKo-Tech/langid/internal/language"
)

// Config represents the complete configuration for the langid application.
// It covers all commands (detect, batch, serve) and supports loading from
// configuration files, environment variables, and command-line flags.
type Config struct {
	// Global settings
	ModelsDir string `mapstructure:"models_dir" yaml:"models_dir" json:"models_dir"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose   bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Detection settings
	Detector DetectorConfig `mapstructure:"detector" yaml:"detector" json:"detector"`

	// Server configuration (for serve command)
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`

	// Batch processing configuration
	Batch BatchConfig `mapstructure:"batch" yaml:"batch" json:"batch"`
}

// DetectorConfig contains language detection settings.
type DetectorConfig struct {
	// Languages restricts the candidate set; empty means all supported
	// languages. Entries may be tag names or ISO codes.
	Languages           []string `mapstructure:"languages" yaml:"languages" json:"languages"`
	MinRelativeDistance float64  `mapstructure:"min_relative_distance" yaml:"min_relative_distance" json:"min_relative_distance"`
	LowAccuracy         bool     `mapstructure:"low_accuracy" yaml:"low_accuracy" json:"low_accuracy"`
	Preload             bool     `mapstructure:"preload" yaml:"preload" json:"preload"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string `mapstructure:"host" yaml:"host" json:"host"`
	Port            int    `mapstructure:"port" yaml:"port" json:"port"`
	CORSOrigin      string `mapstructure:"cors_origin" yaml:"cors_origin" json:"cors_origin"`
	MaxTextKB       int    `mapstructure:"max_text_kb" yaml:"max_text_kb" json:"max_text_kb"`
	TimeoutSec      int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
	RateLimitPerMin int    `mapstructure:"rate_limit_per_min" yaml:"rate_limit_per_min" json:"rate_limit_per_min"`
}

// BatchConfig contains batch processing settings.
type BatchConfig struct {
	Workers    int      `mapstructure:"workers" yaml:"workers" json:"workers"`
	Format     string   `mapstructure:"format" yaml:"format" json:"format"`
	Recursive  bool     `mapstructure:"recursive" yaml:"recursive" json:"recursive"`
	Extensions []string `mapstructure:"extensions" yaml:"extensions" json:"extensions"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	if c.Detector.MinRelativeDistance < 0 || c.Detector.MinRelativeDistance > 0.99 {
		return fmt.Errorf("min_relative_distance %v is not in [0, 0.99]", c.Detector.MinRelativeDistance)
	}
	for _, name := range c.Detector.Languages {
		if _, err := language.Parse(name); err != nil {
			return fmt.Errorf("detector languages: %w", err)
		}
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Server.MaxTextKB < 0 {
		return fmt.Errorf("max_text_kb must not be negative")
	}

	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch workers must not be negative")
	}
	switch c.Batch.Format {
	case "", "plain", "json", "csv":
	default:
		return fmt.Errorf("invalid batch format %q", c.Batch.Format)
	}
	return nil
}

// DetectorLanguages resolves the configured language names. An empty list
// yields every supported language.
func (c *Config) DetectorLanguages() ([]language.Language, error) {
	if len(c.Detector.Languages) == 0 {
		return language.AllLanguages(), nil
	}
	langs := make([]language.Language, 0, len(c.Detector.Languages))
	for _, name := range c.Detector.Languages {
		l, err := language.Parse(name)
		if err != nil {
			return nil, err
		}
		langs = append(langs, l)
	}
	return langs, nil
}
