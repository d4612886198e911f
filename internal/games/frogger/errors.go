package frogger

import (
	"errors"
	"fmt"
)

// Recoverable rejections: the session keeps running.
var (
	ErrInvalidCommand    = errors.New("invalid command")
	ErrInvalidJumpSyntax = errors.New("invalid jump syntax")
	ErrOutOfBounds       = errors.New("move out of bounds")
	ErrJumpTooFar        = errors.New("jump exceeds max distance")
)

// Terminal errors.
var (
	ErrCollision   = errors.New("collision")
	ErrSessionOver = errors.New("session is over")
)

// FaultError is an unexpected failure recovered during a turn.
type FaultError struct {
	Turn  int
	Value any
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("unexpected fault in turn %d: %v", e.Turn, e.Value)
}

// Unwrap returns the recovered value when it is an error.
func (e *FaultError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// IsFatal returns true for errors that end the session.
func IsFatal(err error) bool {
	var fe *FaultError
	return errors.Is(err, ErrCollision) || errors.As(err, &fe)
}
