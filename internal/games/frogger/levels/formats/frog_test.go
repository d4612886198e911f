package formats

import (
	"errors"
	"strconv"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/registry"
)

const crossing = `5 7 2
0 1 -2 1 0
_______
XX__X__
__XX___
X____X_
_______
`

func TestParseFrog(t *testing.T) {
	lvl, err := ParseFrog([]byte(crossing))
	if err != nil {
		t.Fatalf("ParseFrog() failed: %v", err)
	}

	if lvl.Rows != 5 || lvl.Cols != 7 || lvl.MaxJump != 2 {
		t.Errorf("dimensions = %dx%d jump %d, expected 5x7 jump 2", lvl.Rows, lvl.Cols, lvl.MaxJump)
	}
	if len(lvl.Grid) != lvl.Rows {
		t.Errorf("grid has %d rows, expected %d", len(lvl.Grid), lvl.Rows)
	}
	for i, row := range lvl.Grid {
		if len(row) != lvl.Cols {
			t.Errorf("row %d has %d cells, expected %d", i, len(row), lvl.Cols)
		}
	}
	if len(lvl.Speeds) != lvl.Rows {
		t.Errorf("got %d speeds, expected %d", len(lvl.Speeds), lvl.Rows)
	}
	if lvl.Speeds[2] != -2 {
		t.Errorf("Speeds[2] = %d, expected -2", lvl.Speeds[2])
	}
	if string(lvl.Grid[1]) != "XX__X__" {
		t.Errorf("Grid[1] = %q", string(lvl.Grid[1]))
	}
}

func TestParseFrogCRLFAndPadding(t *testing.T) {
	data := "\n\n3 3 1\r\n0 0 0\r\n___\r\n_X_\r\n___\r\n\r\n\n"
	lvl, err := ParseFrog([]byte(data))
	if err != nil {
		t.Fatalf("ParseFrog() failed: %v", err)
	}
	if string(lvl.Grid[1]) != "_X_" {
		t.Errorf("Grid[1] = %q, expected %q", string(lvl.Grid[1]), "_X_")
	}
}

func TestParseFrogUnicodeCells(t *testing.T) {
	lvl, err := ParseFrog([]byte("2 3 0\n0 1\n___\n~🚗~\n"))
	if err != nil {
		t.Fatalf("ParseFrog() failed: %v", err)
	}
	if lvl.Grid[1][1] != '🚗' {
		t.Errorf("Grid[1][1] = %q, expected a car", lvl.Grid[1][1])
	}
}

func TestParseFrogErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		line int
	}{
		{"empty file", "   \n\n", 1},
		{"header not integers", "3 three 1\n0 0 0\n___\n___\n___", 1},
		{"header too short", "3 3\n0 0 0\n___\n___\n___", 1},
		{"header too long", "3 3 1 9\n0 0 0\n___\n___\n___", 1},
		{"zero rows", "0 3 1\n\n___", 1},
		{"negative jump", "1 3 -1\n0\n___", 1},
		{"missing speeds", "3 3 1", 2},
		{"speeds not integers", "3 3 1\n0 x 0\n___\n___\n___", 2},
		{"too few speeds", "3 3 1\n0 0\n___\n___\n___", 2},
		{"too many speeds", "3 3 1\n0 0 0 0\n___\n___\n___", 2},
		{"missing grid", "3 3 1\n0 0 0", 3},
		{"too few rows", "3 3 1\n0 0 0\n___\n___", 5},
		{"too many rows", "2 3 1\n0 0\n___\n___\n___", 5},
		{"short row", "3 3 1\n0 0 0\n___\n__\n___", 4},
		{"long row", "3 3 1\n0 0 0\n___\n___\n____", 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFrog([]byte(tc.data))
			if err == nil {
				t.Fatal("ParseFrog() expected an error")
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error %v is not a *FormatError", err)
			}
			if fe.Line != tc.line {
				t.Errorf("Line = %d, expected %d (%v)", fe.Line, tc.line, err)
			}
		})
	}
}

func TestParseFrogHeaderCause(t *testing.T) {
	_, err := ParseFrog([]byte("a b c\n0\n_"))
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Errorf("expected the strconv error to be wrapped, got %v", err)
	}
}

func TestFrogRegistered(t *testing.T) {
	f, ok := registry.Lookup(FrogExtension)
	if !ok {
		t.Fatal(".frog should be registered")
	}
	if f.Name != "frog" {
		t.Errorf("format name = %q, expected frog", f.Name)
	}
}

func TestFormatErrorMessage(t *testing.T) {
	err := WithPath(errorf(2, "expected %d row speeds, got %d", 3, 2), "levels/a.frog")
	expected := "invalid level levels/a.frog (line 2): expected 3 row speeds, got 2"
	if err.Error() != expected {
		t.Errorf("Error() = %q, expected %q", err.Error(), expected)
	}

	wrapped := WithPath(errors.New("boom"), "x.frog")
	var fe *FormatError
	if !errors.As(wrapped, &fe) || fe.Path != "x.frog" {
		t.Errorf("WithPath() should wrap plain errors, got %v", wrapped)
	}

	if WithPath(nil, "x") != nil {
		t.Error("WithPath(nil) should be nil")
	}
}
