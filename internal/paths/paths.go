// Package paths resolves configuration and data directory locations for
// the deckhand CLI and daemon.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Database file names. Development mode uses a separate file so a dev
// build cannot corrupt the real dataset.
const (
	DatabaseFileName    = "deckhand.db"
	DevDatabaseFileName = "deckhand-dev.db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "DECKHAND_CONFIG_DIR"
	EnvDataDir   = "DECKHAND_DATA_DIR"
	EnvDevMode   = "DECKHAND_DEV"
)

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/deckhand (fallback ~/.config/deckhand)
// macOS:   ~/Library/Application Support/deckhand
// Windows: %APPDATA%/deckhand
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "deckhand"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "deckhand"), nil
	default:
		// macOS and Windows use os.UserConfigDir, which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "deckhand"), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/deckhand (fallback ~/.local/share/deckhand)
// macOS:   ~/Library/Application Support/deckhand
// Windows: %APPDATA%/deckhand
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "deckhand"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "deckhand"), nil
	default:
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "deckhand"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > DECKHAND_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence
// chain: flag > config.yaml data_dir > DECKHAND_DATA_DIR env >
// DefaultDataDir().
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDataDir()
}

// DatabasePath returns the path of the live database file inside dataDir.
// Development mode selects a separate file.
func DatabasePath(dataDir string, devMode bool) string {
	if devMode {
		return filepath.Join(dataDir, DevDatabaseFileName)
	}
	return filepath.Join(dataDir, DatabaseFileName)
}

// DevModeFromEnv reports whether DECKHAND_DEV is set to a truthy value.
func DevModeFromEnv() bool {
	switch os.Getenv(EnvDevMode) {
	case "", "0", "false", "no":
		return false
	default:
		return true
	}
}
