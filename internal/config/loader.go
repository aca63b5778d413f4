package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// RegisterFlags registers all configuration flags on the given FlagSet.
// Flag names double as config-file keys, so a flag and its YAML entry always
// agree.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "path to config file (default: OS config dir)")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.StringP("output", "o", DefaultOutput, "output format: json or plain")
	flags.String("base-url", "", "API base address override")
	flags.Bool("local", false, "query the local-development API preset")
	flags.Int("timeout", DefaultTimeoutSeconds, "per-request timeout in seconds")
	flags.Int("concurrency", DefaultConcurrency, "number of concurrent batch requests")
	flags.String("user-agent", "", "custom User-Agent header")
}

// Load resolves the configuration: defaults, then the YAML config file, then
// any flags the user set. The config file is created (0600) when missing so
// users have a template to edit.
func Load(flags *pflag.FlagSet) (*Config, error) {
	configFile, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("reading --config flag: %w", err)
	}
	if configFile == "" {
		configFile, err = defaultConfigPath(os.UserConfigDir)
		if err != nil {
			return nil, err
		}
	}

	if err := ensureConfigFile(configFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
	}

	return &Config{
		ConfigFile:     configFile,
		Verbose:        v.GetBool("verbose"),
		Output:         v.GetString("output"),
		BaseURL:        v.GetString("base-url"),
		Local:          v.GetBool("local"),
		TimeoutSeconds: v.GetInt("timeout"),
		Concurrency:    v.GetInt("concurrency"),
		UserAgent:      v.GetString("user-agent"),
	}, nil
}

// defaultConfigPath returns the OS-appropriate config file path, creating the
// app directory when needed. Accepts userConfigDir for testability.
func defaultConfigPath(userConfigDir func() (string, error)) (string, error) {
	configDir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	appConfigDir := filepath.Join(configDir, "webprobe")
	if err := os.MkdirAll(appConfigDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(appConfigDir, "config.yaml"), nil
}

// ensureConfigFile creates an empty config file with 0600 permissions when
// none exists. An existing file is left untouched.
func ensureConfigFile(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("checking config file %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file %s: %w", path, err)
	}
	return f.Close()
}

// setDefaults configures viper defaults matching NewDefaultConfig.
func setDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("base-url", "")
	v.SetDefault("local", false)
	v.SetDefault("timeout", DefaultTimeoutSeconds)
	v.SetDefault("concurrency", DefaultConcurrency)
	v.SetDefault("user-agent", "")
}
