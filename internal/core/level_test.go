package core

import "testing"

func testLevel() Level {
	return Level{
		Rows:   3,
		Cols:   5,
		Speeds: []int{0, 1, 0},
		Grid: [][]rune{
			[]rune("_____"),
			[]rune("XX___"),
			[]rune("_____"),
		},
	}
}

func TestLevelStart(t *testing.T) {
	tests := []struct {
		cols     int
		expected Pos
	}{
		{1, P(0, 0)},
		{3, P(0, 1)},
		{4, P(0, 2)},
		{5, P(0, 2)},
	}

	for _, tc := range tests {
		l := Level{Rows: 2, Cols: tc.cols}
		if got := l.Start(); got != tc.expected {
			t.Errorf("Start() with %d cols = %v, expected %v", tc.cols, got, tc.expected)
		}
		if !l.Start().Within(l.Rows, l.Cols) {
			t.Errorf("Start() with %d cols is out of bounds", tc.cols)
		}
	}
}

func TestLevelCloneGrid(t *testing.T) {
	l := testLevel()
	grid := l.CloneGrid()
	grid[1][0] = '_'

	if l.Grid[1][0] != 'X' {
		t.Error("CloneGrid() must not share storage with the level")
	}
	if l.LastRow() != 2 {
		t.Errorf("LastRow() = %d, expected 2", l.LastRow())
	}
}
