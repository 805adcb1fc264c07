// mapforge turns a free-text description of a place into a tile grid by
// orchestrating an LLM completion service through a bounded
// repair-retry loop.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mapforge/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded configuration and logger, initialized before any command
	// runs.
	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mapforge",
	Short: "mapforge - describe a place, get a tile map",
	Long: `mapforge turns a free-text description of a place ("a mysterious
underground temple with a hidden vault") into a structured tile grid.

It teaches an LLM a small tile vocabulary, validates everything the model
returns against that vocabulary, and retries with corrective prompts until
the grid is right or attempts run out. Exhaustion yields a deterministic
fallback map, never an error.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		path := configPath
		if path == "" {
			if path, err = config.DefaultPath(); err != nil {
				return err
			}
		}
		if cfg, err = config.Load(path); err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.mapforge/config.yaml)")
}

// storePath returns the location of the mapforge SQLite database.
func storePath() (string, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mapforge.db"), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
