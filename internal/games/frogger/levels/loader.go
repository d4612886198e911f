// Package levels discovers and loads frogger level files.
// This package depends on core but core does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger/levels/formats"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// Entry is a level file found in a directory.
type Entry struct {
	Name string // File name, e.g. "highway.frog"
	Path string
}

// Loader handles listing and loading levels from a directory.
type Loader struct {
	Root       string
	Extensions []string // Accepted extensions; all registered formats if empty
}

// NewLoader creates a new level loader.
func NewLoader(root string, extensions ...string) *Loader {
	return &Loader{Root: root, Extensions: extensions}
}

// List returns the level files directly inside Root, sorted by name.
// An empty directory yields an empty list and no error.
func (l *Loader) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, fmt.Errorf("levels: cannot read directory %s: %w", l.Root, err)
	}

	var entries []Entry
	for _, d := range dirEntries {
		if d.IsDir() || !l.accepts(filepath.Ext(d.Name())) {
			continue
		}
		entries = append(entries, Entry{
			Name: d.Name(),
			Path: filepath.Join(l.Root, d.Name()),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (core.Level, error) {
	return Load(path)
}

// LoadByName loads a level from Root by its file name.
func (l *Loader) LoadByName(name string) (core.Level, error) {
	entries, err := l.List()
	if err != nil {
		return core.Level{}, err
	}

	for _, e := range entries {
		if e.Name == name || strings.TrimSuffix(e.Name, filepath.Ext(e.Name)) == name {
			return Load(e.Path)
		}
	}

	return core.Level{}, fmt.Errorf("levels: level not found: %s", name)
}

// LoadAll loads every listed level. Levels that fail to parse are skipped
// and their errors are joined into the returned error.
func (l *Loader) LoadAll() ([]core.Level, error) {
	entries, err := l.List()
	if err != nil {
		return nil, err
	}

	var (
		result []core.Level
		errs   []error
	)
	for _, e := range entries {
		lvl, err := Load(e.Path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		result = append(result, lvl)
	}

	return result, errors.Join(errs...)
}

// accepts checks if extension is listed, or registered when no list is set.
func (l *Loader) accepts(ext string) bool {
	exts := l.Extensions
	if len(exts) == 0 {
		exts = registry.Extensions()
	}
	for _, e := range exts {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// Load reads and parses the level at path. The parser is chosen by file
// extension; unknown extensions are parsed as the .frog text format.
// A missing file yields a *formats.FormatError wrapping fs.ErrNotExist.
func Load(path string) (core.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return core.Level{}, &formats.FormatError{Path: path, Msg: "file not found", Err: err}
		}
		return core.Level{}, formats.WithPath(err, path)
	}

	format, ok := registry.Lookup(filepath.Ext(path))
	if !ok {
		format, _ = registry.Lookup(formats.FrogExtension)
	}

	lvl, err := format.Parse(data)
	if err != nil {
		return core.Level{}, formats.WithPath(err, path)
	}

	if lvl.Name == "" {
		base := filepath.Base(path)
		lvl.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	lvl.Path = path
	return lvl, nil
}
