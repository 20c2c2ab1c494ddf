// Root command and shared store plumbing for the deckhand CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/skryking/deckhand/internal/paths"
	"github.com/skryking/deckhand/internal/store"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagDev       bool
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE.
var (
	configDataDir    string
	configDevMode    bool
	configListenAddr string
)

var rootCmd = &cobra.Command{
	Use:     "deckhand",
	Short:   "Deckhand is a personal logbook for your fleet, travels, and trades",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configDevMode = cfg.GetBool(cfgKeyDevMode)
		configListenAddr = cfg.GetString(cfgKeyListenAddr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagDev, "dev", false, "use the development database file")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(searchCmd)
}

// resolveConfigDir follows the precedence chain:
// --config-dir flag > DECKHAND_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDatabasePath resolves the data directory with the same
// precedence and appends the live database file name.
func resolveDatabasePath() (string, error) {
	dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
	if err != nil {
		return "", err
	}
	dev := flagDev || configDevMode || paths.DevModeFromEnv()
	return paths.DatabasePath(dataDir, dev), nil
}

// openStore opens the resolved database for one command invocation.
// Callers close it themselves.
func openStore() (*store.Store, error) {
	path, err := resolveDatabasePath()
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}
