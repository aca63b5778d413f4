// Package config resolves webprobe settings from flags, a YAML config file,
// and defaults, in that order of precedence.
package config

// Defaults applied when neither a flag nor the config file sets a value.
const (
	DefaultOutput         = "json"
	DefaultTimeoutSeconds = 5
	DefaultConcurrency    = 10
)

// Config holds the fully-resolved runtime settings.
type Config struct {
	// Path of the config file that was loaded (or created).
	ConfigFile string

	// Enable debug logging.
	Verbose bool

	// Output format: json or plain (one compact JSON document per line).
	Output string

	// API base address. Empty means "use the selected preset".
	BaseURL string

	// Use the local-development API preset instead of the hosted one.
	Local bool

	// Per-request timeout in whole seconds.
	TimeoutSeconds int

	// Number of concurrent requests for batch processing.
	Concurrency int

	// Custom User-Agent string. Empty uses the built-in default.
	UserAgent string
}

// NewDefaultConfig returns a Config with defaults applied and no file loaded.
func NewDefaultConfig() *Config {
	return &Config{
		Output:         DefaultOutput,
		TimeoutSeconds: DefaultTimeoutSeconds,
		Concurrency:    DefaultConcurrency,
	}
}
