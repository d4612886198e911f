// Package frogger implements the turn-based lane-crossing game: the board
// engine, the move resolver and the turn controller.
package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Symbols are the runes with special meaning on the board.
type Symbols struct {
	Safe     rune // Traversable cell
	Obstacle rune // Moving car
	Token    rune // Frog glyph, only used for rendering
}

// DefaultSymbols returns the symbols used by the bundled level files.
func DefaultSymbols() Symbols {
	return Symbols{
		Safe:     '_',
		Obstacle: 'X',
		Token:    '\U0001318F', // Egyptian hieroglyph frog
	}
}

// withDefaults fills zero runes from DefaultSymbols.
func (s Symbols) withDefaults() Symbols {
	d := DefaultSymbols()
	if s.Safe == 0 {
		s.Safe = d.Safe
	}
	if s.Obstacle == 0 {
		s.Obstacle = d.Obstacle
	}
	if s.Token == 0 {
		s.Token = d.Token
	}
	return s
}

// Board holds the mutable grid of a running session.
type Board struct {
	cells  [][]rune
	speeds []int
	rows   int
	cols   int
	sym    Symbols
}

// NewBoard creates a board from a level. The level's grid is copied.
func NewBoard(lvl core.Level, sym Symbols) *Board {
	return &Board{
		cells:  lvl.CloneGrid(),
		speeds: append([]int(nil), lvl.Speeds...),
		rows:   lvl.Rows,
		cols:   lvl.Cols,
		sym:    sym.withDefaults(),
	}
}

// Rows returns the number of lanes.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the lane width.
func (b *Board) Cols() int {
	return b.cols
}

// Symbols returns the board's symbol set.
func (b *Board) Symbols() Symbols {
	return b.sym
}

// InBounds returns true if p lies on the board.
func (b *Board) InBounds(p core.Pos) bool {
	return p.Within(b.rows, b.cols)
}

// CellAt returns the symbol at p. p must be in bounds.
func (b *Board) CellAt(p core.Pos) rune {
	return b.cells[p.Row][p.Col]
}

// IsSafe returns true if p is in bounds and holds the safe symbol.
func (b *Board) IsSafe(p core.Pos) bool {
	return b.InBounds(p) && b.CellAt(p) == b.sym.Safe
}

// HasObstacle returns true if the row contains at least one obstacle.
func (b *Board) HasObstacle(row int) bool {
	for _, r := range b.cells[row] {
		if r == b.sym.Obstacle {
			return true
		}
	}
	return false
}

// Speed returns the declared shift per tick of a row.
func (b *Board) Speed(row int) int {
	return b.speeds[row]
}

// MovingLanes returns the number of rows that shift on a tick.
func (b *Board) MovingLanes() int {
	n := 0
	for row := range b.cells {
		if b.Speed(row) != 0 && b.HasObstacle(row) {
			n++
		}
	}
	return n
}

// AdvanceObstacles performs one tick: every row with a non-zero speed that
// still contains an obstacle is rotated right by its speed, wrapping around.
// Negative speeds rotate left. Rows without obstacles never move.
func (b *Board) AdvanceObstacles() {
	for row, speed := range b.speeds {
		if speed == 0 || !b.HasObstacle(row) {
			continue
		}
		b.shiftRow(row, speed)
	}
}

// shiftRow moves the symbol at index i to (i + by) mod cols.
func (b *Board) shiftRow(row, by int) {
	k := core.Mod(by, b.cols)
	if k == 0 {
		return
	}
	src := b.cells[row]
	shifted := make([]rune, b.cols)
	for i, r := range src {
		shifted[(i+k)%b.cols] = r
	}
	copy(src, shifted)
}

// Row returns a lane as a string.
func (b *Board) Row(row int) string {
	return string(b.cells[row])
}

// Lines returns all lanes as strings, top to bottom.
func (b *Board) Lines() []string {
	lines := make([]string, b.rows)
	for i := range b.cells {
		lines[i] = b.Row(i)
	}
	return lines
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([][]rune, len(b.cells))
	for i, row := range b.cells {
		cells[i] = append([]rune(nil), row...)
	}
	return &Board{
		cells:  cells,
		speeds: append([]int(nil), b.speeds...),
		rows:   b.rows,
		cols:   b.cols,
		sym:    b.sym,
	}
}
