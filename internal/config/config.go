// Package config loads the hidldoc YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	ferrors "git.home.luguber.info/inful/hidldoc/internal/foundation/errors"
	"gopkg.in/yaml.v3"
)

// Defaults applied by Load and Default.
const (
	DefaultOutputDirectory = "./out"
	DefaultTOCRoot         = "/reference/hidl"
	DefaultTOCFile         = "_book.yaml"
	DefaultIndexTitle      = "Index"
)

// Config is the hidldoc configuration file.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	TOC     TOCConfig     `yaml:"toc"`
	Index   IndexConfig   `yaml:"index"`
	Lint    bool          `yaml:"lint"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// OutputConfig locates the generated documentation.
type OutputConfig struct {
	Directory string `yaml:"directory"` // output root; entry paths are relative to it
}

// TOCConfig controls the book table of contents.
type TOCConfig struct {
	Root string `yaml:"root"` // site path prefix for every TOC entry
	File string `yaml:"file"` // file name below the output root
}

// IndexConfig controls the index page.
type IndexConfig struct {
	Title    string `yaml:"title"`
	Template string `yaml:"template,omitempty"` // optional page template override
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig configures Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// ErrConfigNotFound is returned by Load when the file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads, expands and validates the configuration at configPath.
// Environment variables from .env files are loaded first.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	// #nosec G304 -- path supplied by the operator
	data, err := os.ReadFile(configPath)
	if err != nil {
		cause := err
		if errors.Is(err, os.ErrNotExist) {
			cause = fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, ferrors.WrapError(cause, ferrors.CategoryConfig, "load configuration").
			WithContext("path", configPath).
			Build()
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes configuration YAML after expanding ${VAR} references, then
// applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, ferrors.ConfigError("failed to parse configuration").
			WithCause(err).
			Build()
	}
	cfg.applyDefaults()
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutputDirectory
	}
	if c.TOC.Root == "" {
		c.TOC.Root = DefaultTOCRoot
	}
	if c.TOC.File == "" {
		c.TOC.File = DefaultTOCFile
	}
	if c.Index.Title == "" {
		c.Index.Title = DefaultIndexTitle
	}
	c.Logging.Level = NormalizeLogLevel(string(c.Logging.Level))
	c.Logging.Format = NormalizeLogFormat(string(c.Logging.Format))
}

// Init writes an example configuration to configPath. An existing file is
// only replaced when force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ConfigError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath)).
			WithContext("path", configPath).
			Build()
	}

	example := Default()

	data, err := yaml.Marshal(example)
	if err != nil {
		return ferrors.InternalError("failed to marshal config").WithCause(err).Build()
	}
	// #nosec G306 -- example configuration holds no secrets
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return ferrors.FileSystemError("write configuration").
			WithCause(err).
			WithContext("path", configPath).
			Build()
	}
	return nil
}
