// Package cli implements the cubetty command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/cubik/internal/config"
	"github.com/Faultbox/cubik/internal/logger"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	debug      bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubetty",
	Short: "Terminal 3x3x3 puzzle",
	Long: `cubetty - a 3x3x3 twisty puzzle for the terminal.

Play interactively with the same key bindings as the GL viewer, or apply a
move sequence and print the resulting sticker net.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ./config.yaml or the user config dir)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// loadConfig loads the configuration and initializes file-only logging;
// stdout belongs to the command's output.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var fileCfg logger.FileConfig
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, false); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, nil
}
