package frogger

import (
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// level builds an in-memory level from grid rows and speeds.
func level(speeds []int, rows ...string) core.Level {
	grid := make([][]rune, len(rows))
	for i, r := range rows {
		grid[i] = []rune(r)
	}
	cols := 0
	if len(grid) > 0 {
		cols = len(grid[0])
	}
	return core.Level{
		Name:    "test",
		Rows:    len(rows),
		Cols:    cols,
		MaxJump: 1,
		Speeds:  speeds,
		Grid:    grid,
	}
}

func TestBoardInBoundsAndCellAt(t *testing.T) {
	b := NewBoard(level([]int{0, 0}, "_X_", "~__"), Symbols{})

	tests := []struct {
		p        core.Pos
		inBounds bool
		safe     bool
	}{
		{core.P(0, 0), true, true},
		{core.P(0, 1), true, false},
		{core.P(1, 0), true, false},
		{core.P(1, 2), true, true},
		{core.P(2, 0), false, false},
		{core.P(0, 3), false, false},
		{core.P(-1, 1), false, false},
	}

	for _, tc := range tests {
		if got := b.InBounds(tc.p); got != tc.inBounds {
			t.Errorf("InBounds(%v) = %v, expected %v", tc.p, got, tc.inBounds)
		}
		if got := b.IsSafe(tc.p); got != tc.safe {
			t.Errorf("IsSafe(%v) = %v, expected %v", tc.p, got, tc.safe)
		}
	}

	if b.CellAt(core.P(0, 1)) != 'X' {
		t.Errorf("CellAt(0, 1) = %q, expected 'X'", b.CellAt(core.P(0, 1)))
	}
}

func TestBoardCopiesLevel(t *testing.T) {
	lvl := level([]int{1}, "XX_")
	b := NewBoard(lvl, Symbols{})
	b.AdvanceObstacles()

	if string(lvl.Grid[0]) != "XX_" {
		t.Errorf("advancing the board mutated the level: %q", string(lvl.Grid[0]))
	}
}

func TestAdvanceObstacles(t *testing.T) {
	tests := []struct {
		name     string
		row      string
		speed    int
		expected string
	}{
		{"shift right by one", "XX_", 1, "_XX"},
		{"shift right by two", "X____", 2, "__X__"},
		{"wrap around", "___XX", 1, "X___X"},
		{"shift left", "_XX", -1, "XX_"},
		{"speed equal to width", "X__", 3, "X__"},
		{"speed above width", "X___", 5, "_X__"},
		{"zero speed", "XX_", 0, "XX_"},
		{"no obstacle row stays", "_~~_", 1, "_~~_"},
		{"mixed filler moves with obstacle", "X~__", 1, "_X~_"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(level([]int{tc.speed}, tc.row), Symbols{})
			b.AdvanceObstacles()
			if got := b.Row(0); got != tc.expected {
				t.Errorf("after tick %q = %q, expected %q", tc.row, got, tc.expected)
			}
		})
	}
}

func TestAdvanceObstaclesPerRow(t *testing.T) {
	b := NewBoard(level([]int{0, 1, -1}, "X__", "X__", "X__"), Symbols{})
	b.AdvanceObstacles()

	expected := []string{"X__", "_X_", "__X"}
	for i, want := range expected {
		if got := b.Row(i); got != want {
			t.Errorf("Row(%d) = %q, expected %q", i, got, want)
		}
	}
}

func TestAdvanceObstaclesFullCycle(t *testing.T) {
	row := "XX_X__X_"
	b := NewBoard(level([]int{1}, row), Symbols{})

	for i := 0; i < len(row); i++ {
		b.AdvanceObstacles()
		if i < len(row)-1 && b.Row(0) == row {
			t.Fatalf("row returned to start after only %d ticks", i+1)
		}
	}

	if b.Row(0) != row {
		t.Errorf("after %d ticks row = %q, expected %q", len(row), b.Row(0), row)
	}
}

func TestAdvanceObstaclesPreservesSymbols(t *testing.T) {
	row := "XX_~X_"
	b := NewBoard(level([]int{2}, row), Symbols{})

	count := func(s string) map[rune]int {
		m := make(map[rune]int)
		for _, r := range s {
			m[r]++
		}
		return m
	}
	before := count(row)

	for i := 0; i < 4; i++ {
		b.AdvanceObstacles()
		after := count(b.Row(0))
		for r, n := range before {
			if after[r] != n {
				t.Fatalf("symbol %q count changed from %d to %d", r, n, after[r])
			}
		}
	}
}

func TestCustomSymbols(t *testing.T) {
	b := NewBoard(level([]int{1}, ".C."), Symbols{Safe: '.', Obstacle: 'C'})

	if !b.IsSafe(core.P(0, 0)) {
		t.Error("custom safe symbol should be safe")
	}
	if !b.HasObstacle(0) {
		t.Error("custom obstacle symbol should be detected")
	}
	b.AdvanceObstacles()
	if b.Row(0) != "..C" {
		t.Errorf("Row(0) = %q, expected %q", b.Row(0), "..C")
	}
	if b.Symbols().Token != DefaultSymbols().Token {
		t.Error("zero token should fall back to the default glyph")
	}
}

func TestBoardClone(t *testing.T) {
	b := NewBoard(level([]int{1}, "X__"), Symbols{})
	c := b.Clone()
	c.AdvanceObstacles()

	if b.Row(0) != "X__" {
		t.Errorf("Clone() shares cells: original is %q", b.Row(0))
	}
	if c.Row(0) != "_X_" {
		t.Errorf("clone Row(0) = %q, expected %q", c.Row(0), "_X_")
	}
}

func TestBoardMovingLanes(t *testing.T) {
	b := NewBoard(level([]int{0, 1, -2, 3}, "_X_", "X__", "__X", "___"), Symbols{})

	// Row 0 has no speed and row 3 has no obstacle.
	if got := b.MovingLanes(); got != 2 {
		t.Errorf("MovingLanes() = %d, expected 2", got)
	}
	if got := b.Speed(2); got != -2 {
		t.Errorf("Speed(2) = %d, expected -2", got)
	}
}
