package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger/levels"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// app holds what every command needs: resolved config and a logger.
type app struct {
	cfg    config.Config
	source string // Where cfg was read from
	logger *log.Logger
}

// newApp loads the config and applies the global flag overrides.
func newApp() (*app, error) {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return nil, err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "source", source)

	if flagLevelDir != "" {
		cfg.Levels.Dir = flagLevelDir
	}
	if flagDBPath != "" {
		cfg.History.DB = flagDBPath
	}

	return &app{cfg: cfg, source: source, logger: logger}, nil
}

// newLogger builds the stderr logger. Game text never goes through it.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "frogger",
		Level:           lvl,
	}), nil
}

func (a *app) loader() *levels.Loader {
	return levels.NewLoader(a.cfg.Levels.Dir, a.cfg.Levels.Extensions...)
}

func (a *app) options() frogger.Options {
	return frogger.Options{
		Symbols: frogger.Symbols{
			Safe:     config.Rune(a.cfg.Symbols.Safe),
			Obstacle: config.Rune(a.cfg.Symbols.Obstacle),
			Token:    config.Rune(a.cfg.Symbols.Token),
		},
		Rules: frogger.Rules{StrictJump: a.cfg.Rules.StrictJump},
	}
}

// keymap builds the command bindings, normalized as Validate checks them.
func (a *app) keymap() frogger.Keymap {
	k := a.cfg.Keys
	return frogger.Keymap{
		Up:    config.Key(k.Up),
		Left:  config.Key(k.Left),
		Down:  config.Key(k.Down),
		Right: config.Key(k.Right),
		Jump:  config.Key(k.Jump),
	}
}

// openStore opens the history database, or returns nil when history is
// disabled or unavailable. Play continues without it.
func (a *app) openStore() *storage.Store {
	if !a.cfg.History.Enabled {
		return nil
	}
	store, err := storage.Open(a.cfg.History.DB)
	if err != nil {
		a.logger.Warn("could not open history database", "error", err)
		return nil
	}
	return store
}

// terminalConfig reads the terminal size, falling back to defaults.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// interactive reports whether both stdin and stdout are terminals.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
