package formats

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// FrogExtension is the extension of the line-oriented level format.
const FrogExtension = ".frog"

func init() {
	registry.Register(registry.Format{
		Name:       "frog",
		Extensions: []string{FrogExtension},
		Parse:      ParseFrog,
	})
}

// ParseFrog parses the line-oriented level format:
//
//	line 1:  <rows> <cols> <maxJump>
//	line 2:  <speed_row0> ... <speed_row(rows-1)>
//	line 3+: one grid row per line, one character per cell
//
// Whitespace around the whole file is ignored.
func ParseFrog(data []byte) (core.Level, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return core.Level{}, errorf(1, "file is empty")
	}
	lines := strings.Split(text, "\n")

	header, err := parseInts(lines[0])
	if err != nil {
		return core.Level{}, &FormatError{Line: 1, Msg: "header must be integers", Err: err}
	}
	if len(header) != 3 {
		return core.Level{}, errorf(1, "header must be <rows> <cols> <max-jump>, got %d values", len(header))
	}

	if len(lines) < 2 {
		return core.Level{}, errorf(2, "missing row speeds")
	}
	speeds, err := parseInts(lines[1])
	if err != nil {
		return core.Level{}, &FormatError{Line: 2, Msg: "row speeds must be integers", Err: err}
	}

	grid := make([][]rune, 0, len(lines)-2)
	for _, line := range lines[2:] {
		grid = append(grid, []rune(line))
	}

	lvl := core.Level{
		Rows:    header[0],
		Cols:    header[1],
		MaxJump: header[2],
		Speeds:  speeds,
		Grid:    grid,
	}
	if err := validate(lvl, layout{header: 1, speeds: 2, gridStart: 3}); err != nil {
		return core.Level{}, err
	}
	return lvl, nil
}

// parseInts splits a line on whitespace and converts every field.
func parseInts(line string) ([]int, error) {
	fields := strings.Fields(line)
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
