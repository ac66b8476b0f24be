package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ConfigFileEnvVar names an explicit config file.
const ConfigFileEnvVar = "DT_CONFIG"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	configFile string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// WithConfigFile makes the loader read path instead of the default location.
// An explicitly named file must exist.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if any
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	path, explicit := l.resolveConfigFile()
	if path != "" {
		if err := loadFile(path, l.config); err != nil {
			if explicit || !os.IsNotExist(err) {
				return nil, &ConfigError{Field: "config_file", Message: err.Error()}
			}
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		ApplyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (l *Loader) resolveConfigFile() (string, bool) {
	if l.configFile != "" {
		return l.configFile, true
	}
	if path := os.Getenv(ConfigFileEnvVar); path != "" {
		return path, true
	}
	return DefaultConfigFilePath(), false
}

// DefaultConfigFilePath returns ~/.dt/config.yaml, or "" without a home dir.
func DefaultConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dt", "config.yaml")
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	ConfigFile *string

	// Database overrides
	DBDir          *string
	DBFilename     *string
	DBQueryTimeout *time.Duration

	// Application overrides
	Timeout *time.Duration
	Verbose *bool

	// Commands overrides
	OutputFormat *string
}

// Flag names shared by RegisterFlags and OverridesFromFlags.
const (
	FlagConfig         = "config"
	FlagDBDir          = "db-dir"
	FlagDBFilename     = "db-file"
	FlagDBQueryTimeout = "db-query-timeout"
	FlagTimeout        = "timeout"
	FlagVerbose        = "verbose"
	FlagFormat         = "format"
)

// RegisterFlags declares the configuration override flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "path to a YAML config file (default ~/.dt/config.yaml)")
	fs.String(FlagDBDir, "", "directory holding the database file")
	fs.String(FlagDBFilename, "", "database file name")
	fs.Duration(FlagDBQueryTimeout, 0, "database query timeout")
	fs.Duration(FlagTimeout, 0, "overall command timeout")
	fs.BoolP(FlagVerbose, "v", false, "enable debug logging")
	fs.StringP(FlagFormat, "o", "", "output format: table, json or yaml")
}

// OverridesFromFlags collects the flags the user actually set.
func OverridesFromFlags(fs *pflag.FlagSet) (*ConfigOverrides, error) {
	o := &ConfigOverrides{}

	str := func(name string, dst **string) error {
		if !fs.Changed(name) {
			return nil
		}
		v, err := fs.GetString(name)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
	dur := func(name string, dst **time.Duration) error {
		if !fs.Changed(name) {
			return nil
		}
		v, err := fs.GetDuration(name)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}

	for _, err := range []error{
		str(FlagConfig, &o.ConfigFile),
		str(FlagDBDir, &o.DBDir),
		str(FlagDBFilename, &o.DBFilename),
		dur(FlagDBQueryTimeout, &o.DBQueryTimeout),
		dur(FlagTimeout, &o.Timeout),
		str(FlagFormat, &o.OutputFormat),
	} {
		if err != nil {
			return nil, err
		}
	}

	if fs.Changed(FlagVerbose) {
		v, err := fs.GetBool(FlagVerbose)
		if err != nil {
			return nil, err
		}
		o.Verbose = &v
	}

	return o, nil
}

// ApplyOverrides copies every set override into config.
func ApplyOverrides(config *Config, overrides *ConfigOverrides) {
	// Database overrides
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *overrides.DBQueryTimeout
	}

	// Application overrides
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}

	// Commands overrides
	if overrides.OutputFormat != nil {
		config.Commands.OutputFormat = *overrides.OutputFormat
	}
}
