package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Symbols: SymbolsConfig{
			Safe:     "_",
			Obstacle: "X",
			Token:    "\U0001318F",
		},
		Levels: LevelsConfig{
			Dir:        "levels",
			Extensions: []string{".frog", ".yaml", ".yml"},
		},
		Keys: KeysConfig{
			Up:    "W",
			Left:  "A",
			Down:  "S",
			Right: "D",
			Jump:  "J",
		},
		History: HistoryConfig{
			Enabled: true,
			DB:      "~/.frogger/history.db",
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultFroggerYAML
}
