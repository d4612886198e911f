package formats

import (
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// layout maps level parts to source lines for error messages.
// Zero values mean the format has no line information.
type layout struct {
	header    int
	speeds    int
	gridStart int
}

func (l layout) gridLine(row int) int {
	if l.gridStart == 0 {
		return 0
	}
	return l.gridStart + row
}

// Validate checks the invariants of a level description.
func Validate(lvl core.Level) error {
	return validate(lvl, layout{})
}

func validate(lvl core.Level, at layout) error {
	if lvl.Rows < 1 || lvl.Cols < 1 {
		return errorf(at.header, "board must be at least 1x1, got %dx%d", lvl.Rows, lvl.Cols)
	}
	if lvl.MaxJump < 0 {
		return errorf(at.header, "max jump must not be negative, got %d", lvl.MaxJump)
	}
	if len(lvl.Speeds) != lvl.Rows {
		return errorf(at.speeds, "expected %d row speeds, got %d", lvl.Rows, len(lvl.Speeds))
	}
	if len(lvl.Grid) < lvl.Rows {
		return errorf(at.gridLine(len(lvl.Grid)), "expected %d grid rows, got %d", lvl.Rows, len(lvl.Grid))
	}
	if len(lvl.Grid) > lvl.Rows {
		return errorf(at.gridLine(lvl.Rows), "expected %d grid rows, got %d", lvl.Rows, len(lvl.Grid))
	}
	for i, row := range lvl.Grid {
		if len(row) != lvl.Cols {
			return errorf(at.gridLine(i), "grid row %d has %d cells, expected %d", i, len(row), lvl.Cols)
		}
	}
	return nil
}
