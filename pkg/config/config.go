// Package config loads the streamer configuration.
//
// Values are layered: defaults, then an optional TOML file, then STREAMCAST_*
// environment variables. Command line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "STREAMCAST"

// Config is the streamer configuration.
type Config struct {
	// Endpoint is the sink base URL (e.g., "https://claude-tv.onrender.com").
	Endpoint string `toml:"endpoint" envconfig:"ENDPOINT"`

	// APIKey is sent as X-API-Key on every request.
	APIKey SecretString `toml:"api_key" envconfig:"API_KEY"`

	// Timeout bounds a single request to the sink.
	Timeout time.Duration `toml:"timeout" envconfig:"TIMEOUT"`

	// Speed scales pacing delays: 2 plays twice as fast, 0 disables delays.
	Speed float64 `toml:"speed" envconfig:"SPEED"`

	Lifecycle Lifecycle `toml:"lifecycle" envconfig:"LIFECYCLE"`
}

// Lifecycle controls the optional start/end calls around a run.
type Lifecycle struct {
	Enabled bool   `toml:"enabled" envconfig:"ENABLED"`
	Title   string `toml:"title" envconfig:"TITLE"`
	Cols    int    `toml:"cols" envconfig:"COLS"`
	Rows    int    `toml:"rows" envconfig:"ROWS"`
}

// Default returns the base configuration that files and environment are layered on.
func Default() Config {
	return Config{
		Endpoint: "https://claude-tv.onrender.com",
		Timeout:  30 * time.Second,
		Speed:    1,
		Lifecycle: Lifecycle{
			Title: "Live Coding Adventure",
			Cols:  120,
			Rows:  30,
		},
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("could not parse config file %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			return Config{}, fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("could not read environment: %w", err)
	}

	return cfg, nil
}

// ValidationError lists every problem found by Validate.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	var problems []string

	u, err := url.Parse(c.Endpoint)
	switch {
	case c.Endpoint == "":
		problems = append(problems, "endpoint is required")
	case err != nil:
		problems = append(problems, fmt.Sprintf("endpoint is not a URL: %v", err))
	case u.Scheme != "http" && u.Scheme != "https":
		problems = append(problems, "endpoint must use http or https")
	case u.Host == "":
		problems = append(problems, "endpoint must include a host")
	}

	if c.APIKey == "" {
		problems = append(problems, "api key is required")
	}
	if c.Timeout <= 0 {
		problems = append(problems, "timeout must be positive")
	}
	if c.Speed < 0 {
		problems = append(problems, "speed must not be negative")
	}
	if c.Lifecycle.Enabled && c.Lifecycle.Title == "" {
		problems = append(problems, "lifecycle title is required when lifecycle is enabled")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// BaseURL returns the endpoint without a trailing slash.
func (c Config) BaseURL() string {
	return strings.TrimRight(c.Endpoint, "/")
}

// IsValidationError reports whether err came from Validate.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// FileExists reports whether path names a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
