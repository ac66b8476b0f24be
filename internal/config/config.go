package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the analytics commands.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config holds all configuration options for the daily tracker
type Config struct {
	Database    DatabaseConfig    `yaml:"database" mapstructure:"database"`
	Validation  ValidationConfig  `yaml:"validation" mapstructure:"validation"`
	Display     DisplayConfig     `yaml:"display" mapstructure:"display"`
	Analytics   AnalyticsConfig   `yaml:"analytics" mapstructure:"analytics"`
	Journal     JournalConfig     `yaml:"journal" mapstructure:"journal"`
	Application ApplicationConfig `yaml:"application" mapstructure:"application"`
	Commands    CommandsConfig    `yaml:"commands" mapstructure:"commands"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `yaml:"dir" mapstructure:"dir" env:"DT_DB_DIR"`
	Filename       string        `yaml:"filename" mapstructure:"filename" env:"DT_DB_FILENAME"`
	QueryTimeout   time.Duration `yaml:"query_timeout" mapstructure:"query_timeout" env:"DT_DB_QUERY_TIMEOUT"`
	DirPermissions uint32        `yaml:"dir_permissions" mapstructure:"dir_permissions" env:"DT_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMaxLength   int `yaml:"title_max_length" mapstructure:"title_max_length" env:"DT_VALIDATION_TITLE_MAX"`
	JournalMaxLength int `yaml:"journal_max_length" mapstructure:"journal_max_length" env:"DT_VALIDATION_JOURNAL_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat string `yaml:"date_format" mapstructure:"date_format" env:"DT_DISPLAY_DATE_FORMAT"`
	DoneMark   string `yaml:"done_mark" mapstructure:"done_mark" env:"DT_DISPLAY_DONE_MARK"`
	MissMark   string `yaml:"miss_mark" mapstructure:"miss_mark" env:"DT_DISPLAY_MISS_MARK"`
}

// AnalyticsConfig holds the default windows of the analytics commands
type AnalyticsConfig struct {
	PeriodDays int `yaml:"period_days" mapstructure:"period_days" env:"DT_ANALYTICS_PERIOD_DAYS"`
	// PillarDays of 0 means all time.
	PillarDays int `yaml:"pillar_days" mapstructure:"pillar_days" env:"DT_ANALYTICS_PILLAR_DAYS"`
}

// JournalConfig holds journal configuration
type JournalConfig struct {
	RecentLimit int `yaml:"recent_limit" mapstructure:"recent_limit" env:"DT_JOURNAL_RECENT_LIMIT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" env:"DT_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" mapstructure:"verbose" env:"DT_APP_VERBOSE"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	OutputFormat string `yaml:"output_format" mapstructure:"output_format" env:"DT_OUTPUT_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Database: DatabaseConfig{
			Dir:            filepath.Join(homeDir, ".dt"),
			Filename:       "dt.db",
			QueryTimeout:   10 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TitleMaxLength:   100,
			JournalMaxLength: 10000,
		},
		Display: DisplayConfig{
			DateFormat: "Mon Jan 02",
			DoneMark:   "x",
			MissMark:   ".",
		},
		Analytics: AnalyticsConfig{
			PeriodDays: 7,
			PillarDays: 0,
		},
		Journal: JournalConfig{
			RecentLimit: 30,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Commands: CommandsConfig{
			OutputFormat: FormatTable,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// YAML renders the configuration in the same shape the config file uses.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are reported rather than silently ignored.
func (c *Config) LoadFromEnvironment() error {
	env := envReader{}

	// Database configuration
	env.str("DT_DB_DIR", &c.Database.Dir)
	env.str("DT_DB_FILENAME", &c.Database.Filename)
	env.duration("DT_DB_QUERY_TIMEOUT", &c.Database.QueryTimeout)
	if perms := os.Getenv("DT_DB_DIR_PERMISSIONS"); perms != "" {
		p, err := strconv.ParseUint(perms, 8, 32)
		if err != nil {
			env.fail("DT_DB_DIR_PERMISSIONS", perms)
		} else {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Validation configuration
	env.integer("DT_VALIDATION_TITLE_MAX", &c.Validation.TitleMaxLength)
	env.integer("DT_VALIDATION_JOURNAL_MAX", &c.Validation.JournalMaxLength)

	// Display configuration
	env.str("DT_DISPLAY_DATE_FORMAT", &c.Display.DateFormat)
	env.str("DT_DISPLAY_DONE_MARK", &c.Display.DoneMark)
	env.str("DT_DISPLAY_MISS_MARK", &c.Display.MissMark)

	// Analytics configuration
	env.integer("DT_ANALYTICS_PERIOD_DAYS", &c.Analytics.PeriodDays)
	env.integer("DT_ANALYTICS_PILLAR_DAYS", &c.Analytics.PillarDays)

	// Journal configuration
	env.integer("DT_JOURNAL_RECENT_LIMIT", &c.Journal.RecentLimit)

	// Application configuration
	env.duration("DT_APP_TIMEOUT", &c.Application.Timeout)
	env.boolean("DT_APP_VERBOSE", &c.Application.Verbose)

	// Commands configuration
	env.str("DT_OUTPUT_FORMAT", &c.Commands.OutputFormat)

	return env.err
}

type envReader struct {
	err error
}

func (r *envReader) fail(name, value string) {
	if r.err == nil {
		r.err = &ConfigError{Field: name, Message: fmt.Sprintf("cannot parse %q", value)}
	}
}

func (r *envReader) str(name string, dst *string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func (r *envReader) integer(name string, dst *int) {
	if v := os.Getenv(name); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			r.fail(name, v)
			return
		}
		*dst = n
	}
}

func (r *envReader) duration(name string, dst *time.Duration) {
	if v := os.Getenv(name); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			r.fail(name, v)
			return
		}
		*dst = d
	}
}

func (r *envReader) boolean(name string, dst *bool) {
	if v := os.Getenv(name); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			r.fail(name, v)
			return
		}
		*dst = b
	}
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}

	// Validate validation configuration
	if c.Validation.TitleMaxLength < 1 {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be at least 1"}
	}
	if c.Validation.JournalMaxLength < 1 {
		return &ConfigError{Field: "validation.journal_max_length", Message: "journal maximum length must be at least 1"}
	}

	// Validate display configuration
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	if c.Display.DoneMark == "" || c.Display.MissMark == "" {
		return &ConfigError{Field: "display.done_mark", Message: "history marks cannot be empty"}
	}

	// Validate analytics configuration
	if c.Analytics.PeriodDays < 1 {
		return &ConfigError{Field: "analytics.period_days", Message: "period must cover at least one day"}
	}
	if c.Analytics.PillarDays < 0 {
		return &ConfigError{Field: "analytics.pillar_days", Message: "pillar window cannot be negative (use 0 for all time)"}
	}

	// Validate journal configuration
	if c.Journal.RecentLimit < 1 {
		return &ConfigError{Field: "journal.recent_limit", Message: "recent limit must be at least 1"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	switch c.Commands.OutputFormat {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return &ConfigError{Field: "commands.output_format", Message: "output format must be one of table, json, yaml"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
