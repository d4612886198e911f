package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Validate level files",
	Long: `Parses each level file and reports its size and moving lanes, or the first problem found.
Without arguments every level in the level directory is checked.

Examples:
  frogger check
  frogger check levels/highway.frog levels/meadow.yaml`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	loader := a.loader()

	var (
		loaded []core.Level
		errs   []error
	)
	if len(args) == 0 {
		var loadErr error
		loaded, loadErr = loader.LoadAll()
		if loadErr != nil {
			errs = append(errs, loadErr)
		}
	} else {
		for _, path := range args {
			lvl, err := loader.LoadFile(path)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			loaded = append(loaded, lvl)
		}
	}

	for _, lvl := range loaded {
		board := frogger.NewBoard(lvl, a.options().Symbols)
		fmt.Fprintf(out, "ok    %s  (%dx%d, max jump %d, %d moving lanes)\n",
			lvl.Path, lvl.Rows, lvl.Cols, lvl.MaxJump, board.MovingLanes())
	}
	if err := errors.Join(errs...); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "FAIL  %v\n", err)
		return exitCode(1)
	}
	return nil
}
