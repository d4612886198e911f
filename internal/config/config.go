// Package config provides YAML-based configuration loading for frogger.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Config contains all user-tunable settings.
type Config struct {
	Symbols SymbolsConfig `yaml:"symbols"`
	Levels  LevelsConfig  `yaml:"levels"`
	Rules   RulesConfig   `yaml:"rules"`
	Keys    KeysConfig    `yaml:"keys"`
	History HistoryConfig `yaml:"history"`
}

// SymbolsConfig defines the board glyphs. Each must be a single rune.
type SymbolsConfig struct {
	Safe     string `yaml:"safe"`
	Obstacle string `yaml:"obstacle"`
	Token    string `yaml:"token"`
}

// LevelsConfig defines where level files are discovered.
type LevelsConfig struct {
	Dir        string   `yaml:"dir"`
	Extensions []string `yaml:"extensions"`
}

// RulesConfig toggles optional rule variants.
type RulesConfig struct {
	StrictJump bool `yaml:"strict_jump"`
}

// KeysConfig binds command letters.
type KeysConfig struct {
	Up    string `yaml:"up"`
	Left  string `yaml:"left"`
	Down  string `yaml:"down"`
	Right string `yaml:"right"`
	Jump  string `yaml:"jump"`
}

// HistoryConfig controls the session history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DB      string `yaml:"db"`
}

// Validate reports every problem found in the config.
func (c Config) Validate() error {
	var errs []error

	symbols := map[string]string{
		"safe":     c.Symbols.Safe,
		"obstacle": c.Symbols.Obstacle,
		"token":    c.Symbols.Token,
	}
	for _, name := range []string{"safe", "obstacle", "token"} {
		if n := utf8.RuneCountInString(symbols[name]); n != 1 {
			errs = append(errs, fmt.Errorf("symbols.%s must be a single character, got %q", name, symbols[name]))
		}
	}
	if c.Symbols.Safe != "" && c.Symbols.Safe == c.Symbols.Obstacle {
		errs = append(errs, fmt.Errorf("symbols.safe and symbols.obstacle are both %q", c.Symbols.Safe))
	}

	seen := make(map[string]string)
	for _, b := range []struct{ name, key string }{
		{"up", c.Keys.Up},
		{"left", c.Keys.Left},
		{"down", c.Keys.Down},
		{"right", c.Keys.Right},
		{"jump", c.Keys.Jump},
	} {
		key := Key(b.key)
		switch {
		case key == "":
			errs = append(errs, fmt.Errorf("keys.%s is empty", b.name))
		case strings.ContainsAny(key, " \t"):
			errs = append(errs, fmt.Errorf("keys.%s must be a single word, got %q", b.name, b.key))
		case seen[key] != "":
			errs = append(errs, fmt.Errorf("keys.%s and keys.%s are both %q", seen[key], b.name, b.key))
		default:
			seen[key] = b.name
		}
	}

	if strings.TrimSpace(c.Levels.Dir) == "" {
		errs = append(errs, errors.New("levels.dir is empty"))
	}
	if c.History.Enabled && strings.TrimSpace(c.History.DB) == "" {
		errs = append(errs, errors.New("history.db is empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Key normalizes a key binding the way Validate compares them.
func Key(binding string) string {
	return strings.ToUpper(strings.TrimSpace(binding))
}

// Rune returns the first rune of a symbol setting.
func Rune(symbol string) rune {
	r, _ := utf8.DecodeRuneInString(symbol)
	if r == utf8.RuneError {
		return 0
	}
	return r
}
