package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "frogger.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}
	return path
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("Load() source = %q, expected %q", source, SourceEmbedded)
	}

	def := DefaultConfig()
	if cfg.Symbols != def.Symbols || cfg.Keys != def.Keys || cfg.History != def.History || cfg.Rules != def.Rules {
		t.Errorf("embedded config = %+v, expected %+v", cfg, def)
	}
	if strings.Join(cfg.Levels.Extensions, ",") != strings.Join(def.Levels.Extensions, ",") {
		t.Errorf("Extensions = %v, expected %v", cfg.Levels.Extensions, def.Levels.Extensions)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
symbols:
  obstacle: "#"
rules:
  strict_jump: true
`)

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("Load() source = %q, expected %q", source, path)
	}
	if cfg.Symbols.Obstacle != "#" || cfg.Symbols.Safe != "_" {
		t.Errorf("Symbols = %+v, expected obstacle override only", cfg.Symbols)
	}
	if !cfg.Rules.StrictJump {
		t.Error("StrictJump was not applied")
	}
	if cfg.Keys.Jump != "J" {
		t.Errorf("Keys.Jump = %q, expected default J", cfg.Keys.Jump)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".frogger")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(want, []byte("levels:\n  dir: /srv/levels\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != want {
		t.Errorf("Load() source = %q, expected %q", source, want)
	}
	if cfg.Levels.Dir != "/srv/levels" {
		t.Errorf("Levels.Dir = %q, expected /srv/levels", cfg.Levels.Dir)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		message string
	}{
		{"missing", filepath.Join(dir, "nope.yaml"), "failed to read config"},
		{"bad yaml", writeConfig(t, t.TempDir(), "symbols: [oops"), "failed to parse config"},
		{"invalid", writeConfig(t, t.TempDir(), "symbols:\n  safe: \"X\"\n"), "symbols.safe and symbols.obstacle"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Load(tc.path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tc.message) {
				t.Errorf("Load() error = %v, expected to contain %q", err, tc.message)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"unicode token", func(c *Config) { c.Symbols.Token = "🐸" }, ""},
		{"empty safe", func(c *Config) { c.Symbols.Safe = "" }, "symbols.safe must be a single character"},
		{"long obstacle", func(c *Config) { c.Symbols.Obstacle = "XX" }, "symbols.obstacle must be a single character"},
		{"same symbols", func(c *Config) { c.Symbols.Obstacle = "_" }, "are both"},
		{"duplicate keys", func(c *Config) { c.Keys.Jump = "w" }, "keys.up and keys.jump"},
		{"empty key", func(c *Config) { c.Keys.Left = " " }, "keys.left is empty"},
		{"spaced key", func(c *Config) { c.Keys.Right = "R T" }, "single word"},
		{"empty dir", func(c *Config) { c.Levels.Dir = "" }, "levels.dir is empty"},
		{"empty db", func(c *Config) { c.History.DB = "" }, "history.db is empty"},
		{"disabled history", func(c *Config) { c.History = HistoryConfig{} }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestRune(t *testing.T) {
	tests := []struct {
		symbol   string
		expected rune
	}{
		{"_", '_'},
		{"🐸", '🐸'},
		{"", 0},
	}

	for _, tc := range tests {
		if got := Rune(tc.symbol); got != tc.expected {
			t.Errorf("Rune(%q) = %q, expected %q", tc.symbol, got, tc.expected)
		}
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		binding  string
		expected string
	}{
		{"W", "W"},
		{" w ", "W"},
		{"\tj", "J"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := Key(tc.binding); got != tc.expected {
			t.Errorf("Key(%q) = %q, expected %q", tc.binding, got, tc.expected)
		}
	}
}
