// Package cli implements the command-line interface for cubelet.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubelet/internal/config"
	"github.com/SeamusWaldron/cubelet/internal/logging"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	verbose    bool
	logFile    string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubelet",
	Short: "3x3x3 cube simulator",
	Long: `cubelet - A Rubik's Cube simulator for the terminal.

Turn the layers of a virtual 3x3x3 cube with the keyboard, watch the
animation, or apply a sequence of turns and print the resulting net.`,
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
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubelet/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")
}

// loadConfig loads the settings named by --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns a logger writing to --log-file, or to fallback when no
// file is given. The returned closer must be called when done.
func newLogger(fallback io.Writer) (*slog.Logger, func() error, error) {
	if logFile == "" {
		if fallback == nil {
			return logging.NewNop(), func() error { return nil }, nil
		}
		return logging.New(fallback, logging.Level(verbose)), func() error { return nil }, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logging.New(f, logging.Level(verbose)), f.Close, nil
}
