package formats

import (
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

func init() {
	registry.Register(registry.Format{
		Name:       "yaml",
		Extensions: []string{".yaml", ".yml"},
		Parse:      ParseYAML,
	})
}

// YAMLLevel represents the YAML structure for a level file.
// Rows and cols may be omitted, they are then taken from the grid.
type YAMLLevel struct {
	Name    string   `yaml:"name"`
	Rows    int      `yaml:"rows,omitempty"`
	Cols    int      `yaml:"cols,omitempty"`
	MaxJump int      `yaml:"max_jump"`
	Speeds  []int    `yaml:"speeds"`
	Grid    []string `yaml:"grid"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (core.Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return core.Level{}, &FormatError{Msg: "yaml unmarshal", Err: err}
	}

	lvl := core.Level{
		Name:    yl.Name,
		Rows:    yl.Rows,
		Cols:    yl.Cols,
		MaxJump: yl.MaxJump,
		Speeds:  yl.Speeds,
		Grid:    make([][]rune, len(yl.Grid)),
	}
	for i, row := range yl.Grid {
		lvl.Grid[i] = []rune(row)
	}

	if lvl.Rows == 0 {
		lvl.Rows = len(lvl.Grid)
	}
	if lvl.Cols == 0 && len(lvl.Grid) > 0 {
		lvl.Cols = len(lvl.Grid[0])
	}

	if err := Validate(lvl); err != nil {
		return core.Level{}, err
	}
	return lvl, nil
}
