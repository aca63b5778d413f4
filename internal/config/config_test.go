package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/webprobe/internal/config"
)

// newTestFlags registers all config flags on a fresh FlagSet, then parses extra args.
func newTestFlags(t *testing.T, cfgFile string, extra ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(flags)
	args := append([]string{"--config=" + cfgFile}, extra...)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")

	cfg, err := config.Load(newTestFlags(t, cfgFile))
	require.NoError(t, err)
	assert.Equal(t, cfgFile, cfg.ConfigFile)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "", cfg.BaseURL)
	assert.False(t, cfg.Local)
	assert.Equal(t, 5, cfg.TimeoutSeconds)
	assert.Equal(t, 10, cfg.Concurrency)
	assert.Equal(t, "", cfg.UserAgent)

	// Config file should now exist with 0600 permissions.
	info, err := os.Stat(cfgFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoad_ExistingConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("timeout: 30\nbase-url: http://localhost:9000\n"), 0o600))

	cfg, err := config.Load(newTestFlags(t, cfgFile))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, "http://localhost:9000", cfg.BaseURL)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("timeout: 30\noutput: plain\n"), 0o600))

	cfg, err := config.Load(newTestFlags(t, cfgFile, "--timeout=2", "--output=json"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.TimeoutSeconds)
	assert.Equal(t, "json", cfg.Output)
}

func TestLoad_AllFlags(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")

	cfg, err := config.Load(newTestFlags(t, cfgFile,
		"--verbose",
		"--output=plain",
		"--base-url=https://scanner.internal.example",
		"--local",
		"--timeout=15",
		"--concurrency=3",
		"--user-agent=MyAgent/1.0",
	))
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "plain", cfg.Output)
	assert.Equal(t, "https://scanner.internal.example", cfg.BaseURL)
	assert.True(t, cfg.Local)
	assert.Equal(t, 15, cfg.TimeoutSeconds)
	assert.Equal(t, 3, cfg.Concurrency)
	assert.Equal(t, "MyAgent/1.0", cfg.UserAgent)
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("timeout: [not: valid\n"), 0o600))

	_, err := config.Load(newTestFlags(t, cfgFile))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := config.NewDefaultConfig()
	assert.Equal(t, config.DefaultOutput, cfg.Output)
	assert.Equal(t, config.DefaultTimeoutSeconds, cfg.TimeoutSeconds)
	assert.Equal(t, config.DefaultConcurrency, cfg.Concurrency)
}
