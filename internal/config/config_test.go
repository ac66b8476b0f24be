package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate points HOME at an empty directory and clears every DT_ variable.
func isolate(t *testing.T) string {
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, "DT_") {
			t.Setenv(name, "")
		}
	}
	return home
}

func TestNewConfig_Defaults(t *testing.T) {
	home := isolate(t)
	cfg := NewConfig()

	assert.Equal(t, filepath.Join(home, ".dt", "dt.db"), cfg.GetDatabasePath())
	assert.Equal(t, 10*time.Second, cfg.GetQueryTimeout())
	assert.Equal(t, 7, cfg.Analytics.PeriodDays)
	assert.Equal(t, 0, cfg.Analytics.PillarDays)
	assert.Equal(t, 30, cfg.Journal.RecentLimit)
	assert.Equal(t, FormatTable, cfg.Commands.OutputFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("DT_DB_DIR", "/tmp/dt-test")
	t.Setenv("DT_DB_FILENAME", "other.db")
	t.Setenv("DT_DB_QUERY_TIMEOUT", "3s")
	t.Setenv("DT_ANALYTICS_PERIOD_DAYS", "14")
	t.Setenv("DT_APP_VERBOSE", "true")
	t.Setenv("DT_OUTPUT_FORMAT", "json")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/dt-test/other.db", cfg.GetDatabasePath())
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 14, cfg.Analytics.PeriodDays)
	assert.True(t, cfg.Application.Verbose)
	assert.Equal(t, FormatJSON, cfg.Commands.OutputFormat)
}

func TestLoadFromEnvironment_BadValue(t *testing.T) {
	isolate(t)
	t.Setenv("DT_JOURNAL_RECENT_LIMIT", "lots")

	err := NewConfig().LoadFromEnvironment()

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "DT_JOURNAL_RECENT_LIMIT", cfgErr.Field)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"empty dir", func(c *Config) { c.Database.Dir = "" }, "database.dir"},
		{"zero query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }, "database.query_timeout"},
		{"zero period", func(c *Config) { c.Analytics.PeriodDays = 0 }, "analytics.period_days"},
		{"negative pillar window", func(c *Config) { c.Analytics.PillarDays = -1 }, "analytics.pillar_days"},
		{"zero recent limit", func(c *Config) { c.Journal.RecentLimit = 0 }, "journal.recent_limit"},
		{"unknown format", func(c *Config) { c.Commands.OutputFormat = "xml" }, "commands.output_format"},
		{"empty mark", func(c *Config) { c.Display.MissMark = "" }, "display.done_mark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestLoader_ReadsDefaultConfigFile(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".dt"), 0755))
	content := `
database:
  filename: habits.db
  query_timeout: 2s
analytics:
  period_days: 30
commands:
  output_format: yaml
`
	require.NoError(t, os.WriteFile(filepath.Join(home, ".dt", "config.yaml"), []byte(content), 0644))

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "habits.db", cfg.Database.Filename)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 30, cfg.Analytics.PeriodDays)
	assert.Equal(t, FormatYAML, cfg.Commands.OutputFormat)
	// untouched keys keep their defaults
	assert.Equal(t, 30, cfg.Journal.RecentLimit)
}

func TestLoader_EnvironmentBeatsFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "dt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analytics:\n  period_days: 30\n"), 0644))
	t.Setenv(ConfigFileEnvVar, path)
	t.Setenv("DT_ANALYTICS_PERIOD_DAYS", "10")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Analytics.PeriodDays)
}

func TestLoader_MissingFiles(t *testing.T) {
	isolate(t)

	_, err := NewLoader().Load()
	assert.NoError(t, err, "a missing default config file is not an error")

	_, err = NewLoader().WithConfigFile(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "config_file", cfgErr.Field)
}

func TestLoadWithOverrides_FromFlags(t *testing.T) {
	isolate(t)
	fs := pflag.NewFlagSet("dt", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--db-dir", "/tmp/x", "--format", "json", "--timeout", "5s", "-v"}))

	overrides, err := OverridesFromFlags(fs)
	require.NoError(t, err)
	assert.Nil(t, overrides.DBFilename)
	assert.Nil(t, overrides.ConfigFile)

	cfg, err := NewLoader().LoadWithOverrides(overrides)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x", cfg.Database.Dir)
	assert.Equal(t, FormatJSON, cfg.Commands.OutputFormat)
	assert.Equal(t, 5*time.Second, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
}

func TestLoadWithOverrides_Invalid(t *testing.T) {
	isolate(t)
	format := "csv"

	_, err := NewLoader().LoadWithOverrides(&ConfigOverrides{OutputFormat: &format})
	assert.Error(t, err)
}

func TestConfig_YAML(t *testing.T) {
	isolate(t)
	cfg := NewConfig()

	out, err := cfg.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "query_timeout: 10s")

	var decoded map[string]map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "dt.db", decoded["database"]["filename"])
	assert.Equal(t, 7, decoded["analytics"]["period_days"])
}
