// Package cli implements the reelpath command tree.
package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/backshelf/reelpath/internal/config"
	"github.com/backshelf/reelpath/internal/db"
	"github.com/backshelf/reelpath/internal/logging"
)

var (
	cfgFile        string
	logLevel       string
	nonInteractive bool

	loadedConfig   *config.Config
	loadConfigOnce sync.Once
	loadConfigErr  error
)

var rootCmd = &cobra.Command{
	Use:   "reelpath",
	Short: "Movie-library path templating",
	Long: "reelpath renders and validates destination-path templates for a movie\n" +
		"library and suggests organized paths for existing files.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		logging.Setup(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/reelpath/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt; assume defaults")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (*config.Config, error) {
	loadConfigOnce.Do(func() {
		loadedConfig, loadConfigErr = config.Load(cfgFile)
	})
	return loadedConfig, loadConfigErr
}

// GetConfig returns the loaded configuration, or nil before Execute.
func GetConfig() *config.Config {
	cfg, err := loadConfig()
	if err != nil {
		return nil
	}
	return cfg
}

func openDatabase() (*db.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	database, err := db.Open(cfg.HistoryDB)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if _, err := database.MigrateUp(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}
	return database, nil
}
