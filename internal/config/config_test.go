package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// clearEnv unsets every SCHED_* variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SCHED_LOG_LEVEL", "SCHED_PLAIN", "SCHED_EXPORT_PATH", "SCHED_TIMEZONE", "SCHED_CONFIG_PATH"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_Precedence(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		dotenv      string
		env         map[string]string
		wantLevel   string
		wantPlain   bool
		wantExport  string
		description string
	}{
		{
			name:        "FileOverridesDefaults",
			file:        "log_level: info\nplain: true\nexport:\n  path: out.ics\n",
			wantLevel:   "info",
			wantPlain:   true,
			wantExport:  "out.ics",
			description: "Values from the YAML file replace defaults",
		},
		{
			name:        "EnvOverridesFile",
			file:        "log_level: info\nexport:\n  path: out.ics\n",
			env:         map[string]string{"SCHED_LOG_LEVEL": "debug", "SCHED_EXPORT_PATH": "env.ics"},
			wantLevel:   "debug",
			wantExport:  "env.ics",
			description: "Environment variables replace file values",
		},
		{
			name:        "DotenvFillsUnsetVariables",
			dotenv:      "SCHED_PLAIN=true\nSCHED_LOG_LEVEL=error\n",
			env:         map[string]string{"SCHED_LOG_LEVEL": "info"},
			wantLevel:   "info",
			wantPlain:   true,
			description: ".env never overrides the real environment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := filepath.Join(dir, "sched.yaml")
			if tt.file != "" {
				writeFile(t, path, tt.file)
			}
			if tt.dotenv != "" {
				writeFile(t, filepath.Join(dir, ".env"), tt.dotenv)
			}

			cfg, err := Load(path)
			require.NoError(t, err, tt.description)
			assert.Equal(t, tt.wantLevel, cfg.LogLevel, tt.description)
			assert.Equal(t, tt.wantPlain, cfg.Plain, tt.description)
			assert.Equal(t, tt.wantExport, cfg.Export.Path, tt.description)
		})
	}
}

func TestLoad_ConfigPathFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "export:\n  timezone: Asia/Jakarta\n")
	clearEnv(t)
	t.Setenv("SCHED_CONFIG_PATH", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", cfg.Export.Timezone)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr string
	}{
		{"BadYAML", "log_level: [", "failed to parse config file"},
		{"BadLogLevel", "log_level: loud", "invalid log level"},
		{"BadTimezone", "export:\n  timezone: Mars/Olympus\n", "invalid timezone"},
		{"BadBucketStart", "export:\n  evening_start: 7pm\n", "invalid export.evening_start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			clearEnv(t)
			path := filepath.Join(dir, "sched.yaml")
			writeFile(t, path, tt.file)

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_AcceptsEveryLoggerLevelName(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error", "WARNING"} {
		t.Run(level, func(t *testing.T) {
			t.Chdir(t.TempDir())
			clearEnv(t)
			t.Setenv("SCHED_LOG_LEVEL", level)

			cfg, err := Load("")
			require.NoError(t, err)
			assert.Equal(t, level, cfg.LogLevel)
		})
	}
}

func TestValidate_ReportsBucketStartsInOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Export.MorningStart = "8am"
	cfg.Export.AfternoonStart = "1pm"
	cfg.Export.EveningStart = "7pm"

	for range 20 {
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid export.morning_start")
	}
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("13:30")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 13, Minute: 30}, c)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}

func TestClock_On_KeepsWallClockAcrossDST(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	got := Clock{Hour: 8}.On(2025, time.March, 30, berlin)
	assert.Equal(t, 8, got.Hour())
	assert.Equal(t, 0, got.Minute())

	_, offset := got.Zone()
	assert.Equal(t, 2*60*60, offset, "summer time is in effect by 08:00")
}
