// Package config loads and validates heroes CLI configuration.
//
// Configuration is resolved in layers: built-in defaults, the global
// ~/.heroes/config.yaml, an optional project-local .heroes/config.yaml
// (shallow merged on top), and finally HEROES_* environment variables.
// CLI flags are applied by the caller last.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Data source kinds.
const (
	SourceFile = "file"
	SourceAPI  = "api"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const (
	defaultAPIURL         = "http://localhost:3000"
	defaultTimeoutSeconds = 10
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"

	configDirName  = ".heroes"
	configFileName = "config.yaml"
	dataFileName   = "heroes.yaml"
	logFileName    = "heroes.log"

	outputTypeFile = "file"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full heroes configuration document.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig selects where hero records come from.
type DataConfig struct {
	// Source is "file" (local YAML database) or "api" (json-server style HTTP API).
	Source string `yaml:"source"`
	// File is the YAML hero database path. Empty means ~/.heroes/heroes.yaml,
	// falling back to the built-in roster when that file does not exist.
	File string `yaml:"file,omitempty"`
	// APIURL is the base URL of the heroes API; lookups hit {APIURL}/heroes/{id}.
	APIURL string `yaml:"api_url"`
	// TimeoutSeconds bounds a single API lookup.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Timeout returns the lookup timeout as a duration.
func (d DataConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

// OutputConfig controls non-interactive rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// Default returns a Config populated with built-in defaults only.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Source:         SourceFile,
			APIURL:         defaultAPIURL,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Output: OutputConfig{
			DefaultFormat: FormatTable,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// New returns defaults merged with the global config file (if present) and
// environment overrides. A malformed config file is ignored in favour of
// defaults; use Load to surface the error.
func New() *Config {
	cfg, err := Load(DefaultConfigPath())
	if err != nil {
		cfg = Default()
	}
	cfg.ApplyEnvOverrides(os.LookupEnv)
	return cfg
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// ApplyEnvOverrides applies HEROES_* variables found via lookupEnv.
// Unparseable numeric values are ignored.
func (c *Config) ApplyEnvOverrides(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupNonEmpty(lookupEnv, "HEROES_DATA_SOURCE"); ok {
		c.Data.Source = strings.ToLower(v)
	}
	if v, ok := lookupNonEmpty(lookupEnv, "HEROES_DATA_FILE"); ok {
		c.Data.File = v
	}
	if v, ok := lookupNonEmpty(lookupEnv, "HEROES_API_URL"); ok {
		c.Data.APIURL = v
	}
	if v, ok := lookupNonEmpty(lookupEnv, "HEROES_API_TIMEOUT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Data.TimeoutSeconds = n
		}
	}
	if v, ok := lookupNonEmpty(lookupEnv, "HEROES_LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	if v, ok := lookupNonEmpty(lookupEnv, "HEROES_LOG_FORMAT"); ok {
		c.Logging.Format = v
	}
	if v, ok := lookupNonEmpty(lookupEnv, "HEROES_LOG_FILE"); ok {
		c.Logging.File = v
	}
}

func lookupNonEmpty(lookupEnv func(string) (string, bool), key string) (string, bool) {
	v, ok := lookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// Validate reports every invalid setting, joined, each wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error

	switch c.Data.Source {
	case SourceFile:
	case SourceAPI:
		if strings.TrimSpace(c.Data.APIURL) == "" {
			errs = append(errs, fmt.Errorf("%w: data.api_url is required when data.source is %q",
				ErrInvalidConfig, SourceAPI))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: data.source must be %q or %q, got %q",
			ErrInvalidConfig, SourceFile, SourceAPI, c.Data.Source))
	}

	if c.Data.TimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("%w: data.timeout_seconds must be > 0, got %d",
			ErrInvalidConfig, c.Data.TimeoutSeconds))
	}

	if !IsValidOutputFormat(c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("%w: output.default_format must be %q or %q, got %q",
			ErrInvalidConfig, FormatTable, FormatJSON, c.Output.DefaultFormat))
	}

	return errors.Join(errs...)
}

// IsValidOutputFormat reports whether format is a supported output format.
func IsValidOutputFormat(format string) bool {
	return format == FormatTable || format == FormatJSON
}

// DataFilePath returns the configured hero database path, or the default one.
func (c *Config) DataFilePath() string {
	if c.Data.File != "" {
		return c.Data.File
	}
	return filepath.Join(ConfigDir(), dataFileName)
}

// ConfigDir returns the heroes home directory ($HEROES_HOME or ~/.heroes).
func ConfigDir() string {
	if home := os.Getenv("HEROES_HOME"); home != "" {
		return home
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(userHome, configDirName)
}

// DefaultConfigPath returns the global config file path.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// DefaultLogPath returns the log file used when file logging is enabled without a path.
func DefaultLogPath() string {
	return filepath.Join(ConfigDir(), "logs", logFileName)
}

//nolint:gochecknoglobals // Process-wide config resolved once per CLI invocation.
var (
	globalConfig   *Config
	globalConfigMu sync.RWMutex
)

// GetGlobalConfig returns the process-wide config, loading it on first use.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	cfg := globalConfig
	globalConfigMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		globalConfig = New()
	}
	return globalConfig
}

// SetGlobalConfig replaces the process-wide config.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalConfig clears the process-wide config so the next
// GetGlobalConfig reloads it. Used by tests.
func ResetGlobalConfig() {
	SetGlobalConfig(nil)
}

// GetOutputFormat returns flagValue if set, else the configured default format.
func GetOutputFormat(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return GetGlobalConfig().Output.DefaultFormat
}
