// Package console is the line-oriented front-end: it prints the board as
// plain text and reads one command per line.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger/levels"
)

// Console implements frogger.Driver over a reader and a writer.
type Console struct {
	in   *bufio.Scanner
	out  io.Writer
	keys frogger.Keymap
}

// New creates a console reading commands from in and writing to out.
func New(in io.Reader, out io.Writer, keys frogger.Keymap) *Console {
	return &Console{
		in:   bufio.NewScanner(in),
		out:  out,
		keys: keys,
	}
}

// Render prints the board with the token.
func (c *Console) Render(s *frogger.Session) {
	fmt.Fprintln(c.out, "Current Board:")
	fmt.Fprintln(c.out, s.Screen().String())
}

// Next prompts for a movement. A bare jump asks for the position on a
// second line.
func (c *Console) Next(ctx context.Context) (frogger.Command, error) {
	if err := ctx.Err(); err != nil {
		return frogger.Command{}, err
	}

	fmt.Fprintf(c.out, "Enter movement (%s): ", c.keys.Hint())
	line, err := c.readLine()
	if err != nil {
		return frogger.Command{}, err
	}

	cmd := c.keys.Parse(line)
	if cmd.NeedsTarget() {
		fmt.Fprint(c.out, "Enter jump position (row col): ")
		text, err := c.readLine()
		if err != nil {
			return frogger.Command{}, err
		}
		cmd = cmd.WithJumpText(text)
	}
	return cmd, nil
}

// Report prints the message for a turn's outcome. Faults are reported once
// by Play.
func (c *Console) Report(t frogger.Turn) {
	if t.Status == frogger.StatusAborted {
		return
	}
	if msg := frogger.Message(t, c.keys); msg != "" {
		fmt.Fprintln(c.out, msg)
	}
}

// Play runs a session to the end, printing the welcome banner and the final
// board.
func (c *Console) Play(ctx context.Context, s *frogger.Session) (frogger.Status, error) {
	fmt.Fprintln(c.out, "Welcome to Frogger!")

	status, err := s.Run(ctx, c)

	switch status {
	case frogger.StatusWon, frogger.StatusLost:
		c.Render(s)
	case frogger.StatusAborted:
		fmt.Fprintf(c.out, "Game aborted: %v\n", err)
	case frogger.StatusQuit:
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "Goodbye.")
	}
	return status, err
}

// ChooseLevel lists the entries numbered from 1 and reads a numeric choice until a valid one
// is entered.
func (c *Console) ChooseLevel(entries []levels.Entry) (levels.Entry, error) {
	if len(entries) == 0 {
		return levels.Entry{}, errors.New("no levels to choose from")
	}

	for i, e := range entries {
		fmt.Fprintf(c.out, "[%d]  %s\n", i+1, e.Name)
	}

	for {
		fmt.Fprint(c.out, "Enter an option: ")
		line, err := c.readLine()
		if err != nil {
			return levels.Entry{}, err
		}

		i, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && i >= 1 && i <= len(entries) {
			return entries[i-1], nil
		}
		fmt.Fprintln(c.out, "Invalid choice. Try again.")
	}
}

// readLine returns the next input line; io.EOF once input is exhausted.
func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("console: cannot read input: %w", err)
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}
