package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// Snapshot captures the complete session state for tests and history.
type Snapshot struct {
	Level  string
	Turns  int
	Ticks  int
	Token  core.Pos
	Status Status
	Lanes  []string // Board rows without the token
	Board  *Board   // Independent copy, safe to mutate
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Level:  s.level.Name,
		Turns:  s.turns,
		Ticks:  s.ticks,
		Token:  s.token,
		Status: s.status,
		Lanes:  s.board.Lines(),
		Board:  s.board.Clone(),
	}
}
