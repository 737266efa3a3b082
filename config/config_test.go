package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleSettings struct {
	Console string           `mapstructure:"console" default:"stderr"`
	Loggers []map[string]any `mapstructure:"loggers"`
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"", DevMode},
		{"dev", DevMode},
		{"Production", ProMode},
		{" prod ", ProMode},
		{"testing", TestMode},
		{"staging", DevMode},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMode(tt.in))
		})
	}
}

func TestNewConfigMissingFiles(t *testing.T) {
	opts := DefaultConfigOptions()
	opts.BasePath = t.TempDir()

	_, err := NewConfig(opts)
	require.Error(t, err)
}

func TestBindWithDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", `
loggers:
  - name: svc
    level: INFO
`)

	opts := DefaultConfigOptions()
	opts.BasePath = dir
	cfg, err := NewConfig(opts)
	require.NoError(t, err)

	var s sampleSettings
	require.NoError(t, cfg.BindWithDefaults(&s))

	assert.Equal(t, "stderr", s.Console)
	require.Len(t, s.Loggers, 1)
	assert.Equal(t, "svc", s.Loggers[0]["name"])
	assert.Equal(t, "INFO", s.Loggers[0]["level"])
}

func TestModeOverlayWins(t *testing.T) {
	SetMode(TestMode)
	t.Cleanup(func() { SetMode("") })

	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "console: stderr\n")
	writeFile(t, dir, "config.test.yaml", "console: stdout\n")
	writeFile(t, dir, "config.prod.yaml", "console: nowhere\n")

	opts := DefaultConfigOptions()
	opts.BasePath = dir
	cfg, err := NewConfig(opts)
	require.NoError(t, err)

	assert.Equal(t, "stdout", cfg.Get("console"))
	assert.Equal(t, []string{
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.test.yaml"),
	}, cfg.Files())
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "console: stderr\n")
	t.Setenv("CLOG_CONSOLE", "stdout")

	opts := DefaultConfigOptions()
	opts.BasePath = dir
	opts.EnvPrefix = "CLOG"
	cfg, err := NewConfig(opts)
	require.NoError(t, err)

	assert.Equal(t, "stdout", cfg.Get("console"))
}

func TestFileConfigOptions(t *testing.T) {
	opts := FileConfigOptions(filepath.Join("etc", "clog", "loggers.yml"))

	assert.Equal(t, filepath.Join("etc", "clog"), opts.BasePath)
	assert.Equal(t, "loggers", opts.FileName)
	assert.Equal(t, "yml", opts.FileType)
}

func TestBindNil(t *testing.T) {
	var c *Config
	require.Error(t, c.Bind(&sampleSettings{}))
}

func TestWatchRebindsAndNotifies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "console: stderr\n")

	notified := make(chan string, 16)
	opts := DevConfigOptions()
	opts.BasePath = dir
	cfg, err := NewConfig(opts)
	require.NoError(t, err)

	var s sampleSettings
	require.NoError(t, cfg.Bind(&s))
	assert.Equal(t, "stderr", s.Console)

	// Runs after the rebind listener registered by Bind, on the same goroutine.
	cfg.Watch(func(fsnotify.Event) {
		select {
		case notified <- s.Console:
		default:
		}
	})

	writeFile(t, dir, "config.yaml", "console: stdout\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case console := <-notified:
			if console == "stdout" {
				assert.Equal(t, "stdout", cfg.Get("console"))
				return
			}
		case <-deadline:
			t.Fatal("configuration change was not picked up")
		}
	}
}

func TestWatchReloadsMergedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "console: stderr\nloggers:\n  - {name: base, level: INFO}\n")
	writeFile(t, dir, "config.local.yaml", "console: stdout\n")

	changed := make(chan struct{}, 16)
	opts := DefaultConfigOptions()
	opts.BasePath = dir
	opts.OnChange = func(fsnotify.Event) {
		select {
		case changed <- struct{}{}:
		default:
		}
	}
	cfg, err := NewConfig(opts)
	require.NoError(t, err)

	cfg.Watch(func(fsnotify.Event) {})
	writeFile(t, dir, "config.local.yaml", "console: stderr\n")

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("configuration change was not picked up")
	}
	require.Eventually(t, func() bool { return cfg.Get("console") == "stderr" }, 5*time.Second, 20*time.Millisecond)
	assert.NotNil(t, cfg.Get("loggers"), "values from the base file survive a reload")
}
