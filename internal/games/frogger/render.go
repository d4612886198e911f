package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Render draws the board into dst starting at the top-left corner, with the
// token glyph overriding its cell. dst should be at least Cols x Rows.
func (s *Session) Render(dst *core.Screen) {
	sym := s.board.Symbols()

	for row := 0; row < s.board.Rows(); row++ {
		for col := 0; col < s.board.Cols(); col++ {
			p := core.P(row, col)
			if p == s.token {
				continue
			}
			r := s.board.CellAt(p)
			dst.SetCell(col, row, r, cellColor(r, sym, row == s.board.Rows()-1))
		}
	}

	tokenColor := core.ColorBrightGreen
	if s.status == StatusLost {
		tokenColor = core.ColorYellow
	}
	dst.SetCell(s.token.Col, s.token.Row, sym.Token, tokenColor)
}

// cellColor picks a color by symbol class.
func cellColor(r rune, sym Symbols, goal bool) core.Color {
	switch {
	case r == sym.Obstacle:
		return core.ColorRed
	case r == sym.Safe && goal:
		return core.ColorGreen
	case r == sym.Safe:
		return core.ColorGray
	default:
		return core.ColorBlue
	}
}

// Screen renders the session into a new screen sized to the board.
func (s *Session) Screen() *core.Screen {
	dst := core.NewScreen(s.board.Cols(), s.board.Rows())
	s.Render(dst)
	return dst
}
