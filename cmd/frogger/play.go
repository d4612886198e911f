package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/console"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagTUI    bool
	flagStrict bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start a game on a level file. The argument may be a path or the name of a
file in the level directory, with or without its extension. Without an
argument the levels are listed and you pick one by number.

Controls (console):
  W/A/S/D    - Move up/left/down/right
  J          - Jump; enter "row col" on the same line or the next
  Ctrl+D     - Quit

Controls (--tui):
  Type commands as above and press Enter, or use the arrow keys
  Esc        - Cancel a jump, or quit
  Ctrl+C     - Quit

Exit status is 0 on a win or quit, 2 on a loss and 1 on errors.

Examples:
  frogger play
  frogger play crossing
  frogger play ./levels/highway.frog
  frogger play meadow --tui
  frogger play highway --strict`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagTUI, "tui", false, "Use the full-screen interface")
	playCmd.Flags().BoolVar(&flagStrict, "strict", false, "Reject jumps beyond the level's max distance")
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if flagStrict {
		a.cfg.Rules.StrictJump = true
	}

	useTUI := flagTUI
	if useTUI && !interactive() {
		a.logger.Warn("not a terminal, falling back to the console")
		useTUI = false
	}

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), a.keymap())
	cfg := terminalConfig()

	var lvl core.Level
	switch {
	case len(args) == 1:
		lvl, err = a.loadLevel(args[0])
	case useTUI:
		var ok bool
		lvl, ok, err = a.pickTUI(store, cfg)
		if err == nil && !ok {
			return nil
		}
	default:
		lvl, err = a.pickConsole(con)
		if errors.Is(err, io.EOF) {
			return nil
		}
	}
	if err != nil {
		return err
	}
	a.logger.Info("level loaded", "name", lvl.Name, "path", lvl.Path, "rows", lvl.Rows, "cols", lvl.Cols)

	session := frogger.NewSession(lvl, a.options())
	ctx := cmd.Context()

	var status frogger.Status
	if useTUI {
		status, err = tui.Run(session, a.keymap(), cfg)
	} else {
		status, err = con.Play(ctx, session)
	}

	a.logger.Info("session finished", "level", lvl.Name, "outcome", status, "turns", session.Turns(), "ticks", session.Ticks())
	a.record(ctx, store, session)

	switch status {
	case frogger.StatusLost:
		return exitCode(2)
	case frogger.StatusAborted:
		a.logger.Error("session aborted", "error", err)
		return exitCode(1)
	}
	return nil
}

// loadLevel loads a level by path, or by name from the level directory.
func (a *app) loadLevel(arg string) (core.Level, error) {
	loader := a.loader()
	if _, err := os.Stat(arg); err == nil {
		return loader.LoadFile(arg)
	}
	return loader.LoadByName(arg)
}

// pickConsole lists the level directory and reads a choice from stdin.
func (a *app) pickConsole(con *console.Console) (core.Level, error) {
	loader := a.loader()
	entries, err := loader.List()
	if err != nil {
		return core.Level{}, err
	}
	if len(entries) == 0 {
		return core.Level{}, fmt.Errorf("no levels found in %s", loader.Root)
	}

	entry, err := con.ChooseLevel(entries)
	if err != nil {
		return core.Level{}, err
	}
	return loader.LoadFile(entry.Path)
}

// pickTUI shows the level picker, switching to the history screen and back
// on request. ok is false when the player quit without choosing.
func (a *app) pickTUI(store *storage.Store, cfg core.RuntimeConfig) (lvl core.Level, ok bool, err error) {
	loader := a.loader()
	entries, err := loader.List()
	if err != nil {
		return core.Level{}, false, err
	}
	if len(entries) == 0 {
		return core.Level{}, false, fmt.Errorf("no levels found in %s", loader.Root)
	}

	for {
		result, err := tui.RunPicker(entries, cfg)
		if err != nil {
			return core.Level{}, false, err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return core.Level{}, false, nil
		case result.WantsHistory:
			if store == nil {
				a.logger.Warn("history is not available")
				continue
			}
			back, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return core.Level{}, false, err
			}
			if !back {
				return core.Level{}, false, nil
			}
		default:
			lvl, err := loader.LoadFile(result.Entry.Path)
			return lvl, err == nil, err
		}
	}
}

// record saves the session outcome. Best-effort: failures are only logged.
func (a *app) record(ctx context.Context, store *storage.Store, s *frogger.Session) {
	if store == nil || s.Turns() == 0 {
		return
	}
	snap := s.Snapshot()
	_, err := store.SaveSession(ctx, storage.SessionRecord{
		Level:   snap.Level,
		Outcome: snap.Status.String(),
		Turns:   snap.Turns,
		Ticks:   snap.Ticks,
	})
	if err != nil {
		a.logger.Warn("could not save session", "error", err)
	}
}
