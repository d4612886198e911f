package frogger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Keymap binds command letters to actions. Matching is case-insensitive.
type Keymap struct {
	Up    string
	Left  string
	Down  string
	Right string
	Jump  string
}

// DefaultKeymap returns the WASD + J bindings.
func DefaultKeymap() Keymap {
	return Keymap{Up: "W", Left: "A", Down: "S", Right: "D", Jump: "J"}
}

// Action returns the action bound to a command token.
func (k Keymap) Action(token string) core.Action {
	switch {
	case strings.EqualFold(token, k.Up):
		return core.ActionUp
	case strings.EqualFold(token, k.Left):
		return core.ActionLeft
	case strings.EqualFold(token, k.Down):
		return core.ActionDown
	case strings.EqualFold(token, k.Right):
		return core.ActionRight
	case strings.EqualFold(token, k.Jump):
		return core.ActionJump
	}
	return core.ActionNone
}

// Hint returns the prompt text listing the bindings.
func (k Keymap) Hint() string {
	return fmt.Sprintf("%s%s%s%s for directions, %s for jump", k.Up, k.Left, k.Down, k.Right, k.Jump)
}

// Command is one parsed line of player input.
type Command struct {
	Action core.Action
	Raw    string

	// Jump only. Args is the text after the jump letter; Target is valid
	// when HasTarget is set.
	Args      string
	Target    core.Pos
	HasTarget bool
}

// NeedsTarget returns true for a jump entered without coordinates.
// Front-ends then ask for them and call WithJumpText.
func (c Command) NeedsTarget() bool {
	return c.Action == core.ActionJump && !c.HasTarget && strings.TrimSpace(c.Args) == ""
}

// Parse turns an input line into a command. Direction commands must be a
// single token; a jump may carry its coordinates on the same line ("J 3 4").
// Anything else yields ActionNone.
func (k Keymap) Parse(line string) Command {
	cmd := Command{Raw: line}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return cmd
	}

	action := k.Action(fields[0])
	switch {
	case action == core.ActionJump:
		cmd.Action = action
		if len(fields) > 1 {
			cmd = cmd.WithJumpText(strings.Join(fields[1:], " "))
		}
	case action != core.ActionNone && len(fields) == 1:
		cmd.Action = action
	}
	return cmd
}

// WithJumpText attaches jump coordinates typed separately. The text may be
// "row col" or the three-token "J row col" form.
func (c Command) WithJumpText(text string) Command {
	c.Args = text
	target, err := ParseJumpTarget(text)
	c.Target = target
	c.HasTarget = err == nil
	return c
}

// ParseJumpTarget parses jump coordinates. With three tokens the first one
// is ignored, so "J 2 3" and "2 3" are equivalent.
func ParseJumpTarget(text string) (core.Pos, error) {
	fields := strings.Fields(text)
	if len(fields) == 3 {
		fields = fields[1:]
	}
	if len(fields) != 2 {
		return core.Pos{}, fmt.Errorf("%w: %q", ErrInvalidJumpSyntax, text)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.Pos{}, fmt.Errorf("%w: %q", ErrInvalidJumpSyntax, text)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.Pos{}, fmt.Errorf("%w: %q", ErrInvalidJumpSyntax, text)
	}
	return core.P(row, col), nil
}

// Rules are optional stricter variants of the classic rules.
type Rules struct {
	// StrictJump rejects jumps farther than the level's max jump distance
	// (Chebyshev). Off by default: any destination is accepted.
	StrictJump bool
}

// Resolution is the outcome of resolving one command.
type Resolution struct {
	To       core.Pos // New token position; the collision cell when Fatal
	Err      error    // Rejection or collision, nil when the move was accepted
	Fatal    bool     // The move ends the session in a loss
	Consumed bool     // The turn counts: win check and obstacle tick follow
	Hit      rune     // Symbol collided with
}

// Resolve interprets cmd against the board with the token at from.
// The board is not modified.
func Resolve(b *Board, from core.Pos, cmd Command, rules Rules, maxJump int) Resolution {
	var candidate core.Pos

	switch {
	case cmd.Action.IsDirection():
		d, _ := cmd.Action.Delta()
		candidate = from.Add(d)
	case cmd.Action == core.ActionJump:
		if !cmd.HasTarget {
			return Resolution{To: from, Err: fmt.Errorf("%w: %q", ErrInvalidJumpSyntax, cmd.Args)}
		}
		candidate = cmd.Target
		if rules.StrictJump && from.Distance(candidate) > maxJump {
			return Resolution{
				To:       from,
				Err:      fmt.Errorf("%w: %v is %d away, max %d", ErrJumpTooFar, candidate, from.Distance(candidate), maxJump),
				Consumed: true,
			}
		}
	default:
		return Resolution{To: from, Err: fmt.Errorf("%w: %q", ErrInvalidCommand, strings.TrimSpace(cmd.Raw))}
	}

	if !b.InBounds(candidate) {
		return Resolution{
			To:       from,
			Err:      fmt.Errorf("%w: %v", ErrOutOfBounds, candidate),
			Consumed: true,
		}
	}

	if b.IsSafe(candidate) {
		return Resolution{To: candidate, Consumed: true}
	}

	hit := b.CellAt(candidate)
	return Resolution{
		To:    candidate,
		Err:   fmt.Errorf("%w at %v with %q", ErrCollision, candidate, hit),
		Fatal: true,
		Hit:   hit,
	}
}
