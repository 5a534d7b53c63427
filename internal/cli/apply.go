package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/input"
	"github.com/SeamusWaldron/cubelet/internal/notation"
	"github.com/SeamusWaldron/cubelet/pkg/types"
)

var applyCmd = &cobra.Command{
	Use:   "apply [keys...]",
	Short: "Apply turns and print the resulting cube",
	Long: `Apply a sequence of turns to a solved cube and print the result.

Each argument is a bound key or a run of single-character keys, using the
same bindings as the interactive mode.

Usage:
  cubelet apply r u R U          # Sexy move
  cubelet apply ruRU             # Same, as one argument
  cubelet apply --json f         # Print the cubelets as JSON`,
	RunE: runApply,
}

var (
	applySlices bool
	applyJSON   bool
)

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applySlices, "slices", false, "Allow middle-slice turns (m e s)")
	applyCmd.Flags().BoolVar(&applyJSON, "json", false, "Print the cubelets as JSON")
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if applySlices {
		cfg.SliceTurns = true
	}

	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	reqs, err := parseTurnKeys(cfg.Keymap(), args)
	if err != nil {
		return err
	}

	opts := append(cfg.Options(), cubelet.WithLogger(logger), cubelet.WithAutoSpin(false))
	ctrl := cubelet.New(opts...)
	if err := ctrl.Apply(reqs...); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if applyJSON {
		return printJSON(out, ctrl)
	}
	printCube(out, ctrl, reqs)
	return nil
}

// parseTurnKeys looks up each argument, or each character of it, in keys.
// Only turn bindings are accepted.
func parseTurnKeys(keys *input.Keymap, args []string) ([]types.Request, error) {
	var reqs []types.Request

	lookup := func(key string) error {
		cmd, ok := keys.Lookup(key)
		if !ok {
			return fmt.Errorf("%w: key %q is not bound", cubelet.ErrInvalidTurnRequest, key)
		}
		if cmd.Action != input.ActionTurn {
			return fmt.Errorf("%w: key %q does not turn a layer", cubelet.ErrInvalidTurnRequest, key)
		}
		reqs = append(reqs, cmd.Turn)
		return nil
	}

	for _, arg := range args {
		if _, ok := keys.Lookup(arg); ok {
			if err := lookup(arg); err != nil {
				return nil, err
			}
			continue
		}
		for _, r := range arg {
			if err := lookup(string(r)); err != nil {
				return nil, err
			}
		}
	}

	return reqs, nil
}

func printCube(w io.Writer, ctrl *cubelet.Controller, reqs []types.Request) {
	fmt.Fprint(w, ctrl.String())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Moves: %d", len(reqs))
	if len(reqs) > 0 {
		fmt.Fprintf(w, "  %s", types.FormatRequests(reqs))
	}
	fmt.Fprintln(w)
	if short := notation.Simplify(reqs); len(short) != len(reqs) {
		fmt.Fprintf(w, "Simplified: %s\n", notation.Format(short))
	}

	if err := ctrl.Verify(); err != nil {
		fmt.Fprintf(w, "Verify: %v\n", err)
	} else {
		fmt.Fprintln(w, "Verify: ok")
	}

	if ctrl.IsSolved() {
		fmt.Fprintln(w, "Solved: yes")
	} else {
		fmt.Fprintln(w, "Solved: no")
	}
}

func printJSON(w io.Writer, ctrl *cubelet.Controller) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ctrl.Cubelets()); err != nil {
		return fmt.Errorf("failed to encode cubelets: %w", err)
	}
	return nil
}
