package frogger

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Status is the state of a session.
type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusLost
	StatusAborted // Unexpected fault
	StatusQuit    // Player stopped giving input
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusAborted:
		return "aborted"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal returns true if no more turns can be played.
func (s Status) Terminal() bool {
	return s != StatusRunning
}

// Options configure a session.
type Options struct {
	Symbols Symbols // Zero runes fall back to DefaultSymbols
	Rules   Rules
}

// Turn reports what happened in one call to Step.
type Turn struct {
	Number  int
	Command Command
	From    core.Pos
	To      core.Pos
	Err     error // Rejection, collision or fault; nil for an accepted move
	Ticked  bool  // Obstacles advanced after the move
	Hit     rune  // Symbol collided with, zero otherwise
	Status  Status
}

// Session is one game from start to a terminal status. It owns the board and
// the token; nothing else mutates them.
type Session struct {
	level  core.Level
	board  *Board
	rules  Rules
	token  core.Pos
	turns  int
	ticks  int
	status Status
	err    error // Cause of the terminal status, if any
}

// NewSession starts a game on a copy of the level's grid with the token at
// the top row, centered.
func NewSession(lvl core.Level, opts Options) *Session {
	return &Session{
		level:  lvl,
		board:  NewBoard(lvl, opts.Symbols),
		rules:  opts.Rules,
		token:  lvl.Start(),
		status: StatusRunning,
	}
}

// Level returns the level being played.
func (s *Session) Level() core.Level {
	return s.level
}

// Board returns the live board. Callers must not mutate it.
func (s *Session) Board() *Board {
	return s.board
}

// Token returns the frog's position.
func (s *Session) Token() core.Pos {
	return s.token
}

// Status returns the current status.
func (s *Session) Status() Status {
	return s.status
}

// Err returns the cause of a lost or aborted session.
func (s *Session) Err() error {
	return s.err
}

// Turns returns the number of commands submitted.
func (s *Session) Turns() int {
	return s.turns
}

// Ticks returns the number of obstacle advances so far.
func (s *Session) Ticks() int {
	return s.ticks
}

// Step plays one turn. Rejected commands leave the session running; an
// unrecognized command or malformed jump does not advance obstacles.
// A panic inside the turn aborts the session instead of propagating.
func (s *Session) Step(cmd Command) (turn Turn) {
	turn = Turn{Number: s.turns + 1, Command: cmd, From: s.token, To: s.token}

	if s.status.Terminal() {
		turn.Number = s.turns
		turn.Err = ErrSessionOver
		turn.Status = s.status
		return turn
	}
	s.turns++

	defer func() {
		if r := recover(); r != nil {
			s.Abort(&FaultError{Turn: turn.Number, Value: r})
			turn.Err = s.err
			turn.Status = s.status
		}
	}()

	res := Resolve(s.board, s.token, cmd, s.rules, s.level.MaxJump)
	turn.Err = res.Err
	turn.To = res.To

	switch {
	case res.Fatal:
		s.token = res.To
		s.status = StatusLost
		s.err = res.Err
		turn.Hit = res.Hit
	case !res.Consumed:
		// Turn abandoned before resolution.
	default:
		s.token = res.To
		if s.token.Row == s.level.LastRow() {
			s.status = StatusWon
			break
		}
		s.board.AdvanceObstacles()
		s.ticks++
		turn.Ticked = true
	}

	turn.Status = s.status
	return turn
}

// Abort ends a running session with a fault.
func (s *Session) Abort(err error) {
	if s.status.Terminal() {
		return
	}
	s.status = StatusAborted
	s.err = err
}

// Quit ends a running session at the player's request.
func (s *Session) Quit() {
	if s.status.Terminal() {
		return
	}
	s.status = StatusQuit
}

// Driver is a front-end that shows the board and supplies commands.
type Driver interface {
	// Render shows the current board with the token.
	Render(s *Session)

	// Next blocks until the player enters a command. io.EOF ends the game.
	Next(ctx context.Context) (Command, error)

	// Report shows the result of a turn.
	Report(t Turn)
}

// Run drives the session to a terminal status: render, read, step, repeat.
// A cancelled context or io.EOF from the driver quits. Any other driver
// error or panic aborts. The returned error is the cause of a lost or aborted
// session.
func (s *Session) Run(ctx context.Context, d Driver) (Status, error) {
	for !s.status.Terminal() {
		if ctx.Err() != nil {
			s.Quit()
			break
		}
		s.runTurn(ctx, d)
	}
	return s.status, s.err
}

// runTurn plays one loop iteration with a safety net around the driver.
func (s *Session) runTurn(ctx context.Context, d Driver) {
	defer func() {
		if r := recover(); r != nil {
			s.Abort(&FaultError{Turn: s.turns, Value: r})
		}
	}()

	d.Render(s)

	cmd, err := d.Next(ctx)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		s.Quit()
		return
	case err != nil:
		s.Abort(fmt.Errorf("reading command: %w", err))
		return
	}

	d.Report(s.Step(cmd))
}
