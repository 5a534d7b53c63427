package cli

import (
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the cube interactively",
	Long: `Open the interactive cube.

Lowercase face keys (u d r l f b) turn a layer clockwise, uppercase turns it
counter-clockwise. Space toggles the auto-spin, the arrow keys tilt the view
and esc cancels a turn in progress.`,
	RunE: runPlay,
}

var playSlices bool

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playSlices, "slices", false, "Allow middle-slice turns (m e s)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if playSlices {
		cfg.SliceTurns = true
	}

	// Logs would corrupt the screen, so they are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := append(cfg.Options(), cubelet.WithLogger(logger))
	ctrl := cubelet.New(opts...)

	logger.Info("starting interactive session", "slice_turns", cfg.SliceTurns)
	return tui.Run(ctrl, cfg.Keymap(), cfg.Animation.FrameInterval, logger)
}
