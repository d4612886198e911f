// Package registry provides a global registry for level file formats.
// Formats register themselves in init() functions, allowing the level loader
// to discover parsers by file extension without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Parser turns raw file contents into a level description.
type Parser func(data []byte) (core.Level, error)

// Format describes a registered level file format.
type Format struct {
	// Name is a short identifier for display (e.g., "frog", "yaml").
	Name string

	// Extensions lists the lowercase file extensions handled, with the dot.
	Extensions []string

	// Parse decodes and validates a level.
	Parse Parser
}

var (
	formats = make(map[string]Format) // keyed by extension
	mu      sync.RWMutex
)

// Register adds a level format to the registry.
// Typically called from a format's init() function.
// Panics if one of its extensions is already registered.
func Register(f Format) {
	mu.Lock()
	defer mu.Unlock()

	if f.Parse == nil {
		panic(fmt.Sprintf("registry: format %q has no parser", f.Name))
	}

	for _, ext := range f.Extensions {
		ext = normalize(ext)
		if existing, exists := formats[ext]; exists {
			panic(fmt.Sprintf("registry: extension %q already registered by %q", ext, existing.Name))
		}
		formats[ext] = f
	}
}

// Lookup returns the format registered for the given extension.
func Lookup(ext string) (Format, bool) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := formats[normalize(ext)]
	return f, ok
}

// Extensions returns all registered extensions, sorted.
func Extensions() []string {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]string, 0, len(formats))
	for ext := range formats {
		result = append(result, ext)
	}
	sort.Strings(result)
	return result
}

func normalize(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
