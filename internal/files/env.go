package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// ConfigEnv names the variable that points at an explicit config file.
	ConfigEnv = "QUESTLOG_CONFIG"
	// DefaultConfigPath is relative to the user's home directory.
	DefaultConfigPath = ".config/questlog/config.toml"
)

// ResolveConfigPath determines which config file to load. explicit reports
// whether the location came from QUESTLOG_CONFIG, in which case a missing file
// is an error for the caller; otherwise it is ~/.config/questlog/config.toml.
func ResolveConfigPath() (path string, explicit bool, err error) {
	if override, ok := os.LookupEnv(ConfigEnv); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			expanded, err := ExpandPath(override)
			if err != nil {
				return "", false, err
			}
			return expanded, true, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false, err
	}
	return filepath.Join(home, DefaultConfigPath), false, nil
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
