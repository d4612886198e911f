package core

// Level is the parsed description of a board: its dimensions, per-row
// obstacle speeds and the initial grid. It is never mutated after loading;
// sessions work on their own copy of Grid.
type Level struct {
	Name    string
	Path    string // Source file, empty for in-memory levels
	Rows    int
	Cols    int
	MaxJump int // Declared jump distance, only enforced by the strict rule
	Speeds  []int
	Grid    [][]rune
}

// Start returns the token's starting position: top row, centered.
func (l Level) Start() Pos {
	return P(0, l.Cols/2)
}

// LastRow returns the index of the destination row.
func (l Level) LastRow() int {
	return l.Rows - 1
}

// CloneGrid returns a deep copy of the grid.
func (l Level) CloneGrid() [][]rune {
	grid := make([][]rune, len(l.Grid))
	for i, row := range l.Grid {
		grid[i] = append([]rune(nil), row...)
	}
	return grid
}
