package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"kilometers.ai/sched/internal/logging"
)

// DefaultConfigPath is used when neither --config nor SCHED_CONFIG_PATH is set
const DefaultConfigPath = "sched.yaml"

// ExportConfig controls the iCalendar export of accepted events
type ExportConfig struct {
	// Path of the .ics file written on exit; empty disables the export.
	Path string `yaml:"path"`

	// Timezone is the IANA zone the bucket start times are expressed in.
	Timezone string `yaml:"timezone"`

	// Start times (HH:MM) of the time-of-day buckets.
	MorningStart   string `yaml:"morning_start"`
	AfternoonStart string `yaml:"afternoon_start"`
	EveningStart   string `yaml:"evening_start"`
}

// Config is the top-level application configuration
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Plain    bool         `yaml:"plain"`
	Export   ExportConfig `yaml:"export"`
}

// DefaultConfig returns an in-memory default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		Plain:    false,
		Export: ExportConfig{
			Timezone:       "UTC",
			MorningStart:   "08:00",
			AfternoonStart: "13:00",
			EveningStart:   "19:00",
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// configPath, a .env file in the working directory and SCHED_* variables,
// in increasing order of precedence. A missing file is not an error.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// .env only fills variables that are not already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if configPath == "" {
		configPath = os.Getenv("SCHED_CONFIG_PATH")
		if configPath == "" {
			configPath = DefaultConfigPath
		}
	}

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SCHED_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("SCHED_PLAIN"); v != "" {
		plain, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SCHED_PLAIN %q: %w", v, err)
		}
		c.Plain = plain
	}
	if v := os.Getenv("SCHED_EXPORT_PATH"); v != "" {
		c.Export.Path = v
	}
	if v := os.Getenv("SCHED_TIMEZONE"); v != "" {
		c.Export.Timezone = v
	}
	return nil
}

// Validate checks values that would otherwise fail late
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if _, err := c.Export.Location(); err != nil {
		return err
	}
	for _, start := range []struct{ name, value string }{
		{"morning_start", c.Export.MorningStart},
		{"afternoon_start", c.Export.AfternoonStart},
		{"evening_start", c.Export.EveningStart},
	} {
		if _, err := ParseClock(start.value); err != nil {
			return fmt.Errorf("invalid export.%s: %w", start.name, err)
		}
	}
	return nil
}

// Location resolves the export timezone
func (e ExportConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", e.Timezone, err)
	}
	return loc, nil
}

// Clock is a wall clock time of day
type Clock struct {
	Hour   int
	Minute int
}

// On returns the instant at which the wall clock shows c on the given
// calendar day in loc
func (c Clock) On(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, c.Hour, c.Minute, 0, 0, loc)
}

// ParseClock parses an HH:MM wall clock time
func ParseClock(value string) (Clock, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return Clock{}, fmt.Errorf("%q is not HH:MM", value)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}
