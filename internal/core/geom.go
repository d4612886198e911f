// Package core provides fundamental types shared by the frogger engine and
// its front-ends. It contains no external dependencies (especially no Bubble
// Tea) to keep game logic pure and testable.
package core

import "fmt"

// Pos is a cell coordinate on the board. Row grows downward, Col to the right.
type Pos struct {
	Row, Col int
}

// P creates a new position.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// Add returns the position offset by d.
func (p Pos) Add(d Pos) Pos {
	return Pos{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Within returns true if p lies inside [0, rows) x [0, cols).
func (p Pos) Within(rows, cols int) bool {
	return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
}

// Distance returns the Chebyshev distance between two positions,
// i.e. the number of king moves needed to get from p to o.
func (p Pos) Distance(o Pos) int {
	return Max(Abs(p.Row-o.Row), Abs(p.Col-o.Col))
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Mod returns a modulo n in the range [0, n), also for negative a.
// n must be positive.
func Mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
