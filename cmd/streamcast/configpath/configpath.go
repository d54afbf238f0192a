// Package configpath resolves which configuration file a command should read.
package configpath

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/papercomputeco/streamcast/pkg/config"
)

// EnvVar names a config file and overrides the search path, but not an
// explicit flag.
const EnvVar = "STREAMCAST_CONFIG"

// FileName is the config file looked for in the working directory.
const FileName = "streamcast.toml"

// ResolveConfigPath returns the config file to load, or "" when there is none.
//
// An explicit flag path, then STREAMCAST_CONFIG, must exist. Otherwise
// ./streamcast.toml and ~/.streamcast/config.toml are tried in order.
func ResolveConfigPath(flagPath string) (string, error) {
	if flagPath != "" {
		if !config.FileExists(flagPath) {
			return "", fmt.Errorf("config file %s does not exist", flagPath)
		}
		return flagPath, nil
	}

	if envPath := os.Getenv(EnvVar); envPath != "" {
		if !config.FileExists(envPath) {
			return "", fmt.Errorf("config file %s (from %s) does not exist", envPath, EnvVar)
		}
		return envPath, nil
	}

	candidates := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".streamcast", "config.toml"))
	}

	for _, p := range candidates {
		if config.FileExists(p) {
			return p, nil
		}
	}
	return "", nil
}
