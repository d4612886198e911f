package frogger

import (
	"errors"
	"fmt"
)

// Message returns the player-facing text for a turn's outcome, or "" when
// the move was accepted without incident.
func Message(t Turn, k Keymap) string {
	var fe *FaultError
	switch {
	case errors.Is(t.Err, ErrSessionOver):
		return "The game is over."
	case t.Status == StatusWon:
		return "Congratulations! The frog safely crossed the road."
	case errors.Is(t.Err, ErrCollision):
		return "Collision! You lose."
	case errors.Is(t.Err, ErrInvalidCommand):
		return fmt.Sprintf("Invalid input. Use %s, %s, %s, %s, or %s.", k.Up, k.Left, k.Down, k.Right, k.Jump)
	case errors.Is(t.Err, ErrInvalidJumpSyntax):
		return "Invalid jump command."
	case errors.Is(t.Err, ErrOutOfBounds):
		return "Invalid move. Stay within bounds."
	case errors.Is(t.Err, ErrJumpTooFar):
		return "Invalid jump. Too far away."
	case errors.As(t.Err, &fe):
		return fmt.Sprintf("Game aborted: %v", fe)
	}
	return ""
}
