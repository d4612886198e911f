package core

import "testing"

func TestPosWithin(t *testing.T) {
	tests := []struct {
		name     string
		p        Pos
		expected bool
	}{
		{"origin", P(0, 0), true},
		{"last cell", P(2, 4), true},
		{"row past end", P(3, 0), false},
		{"col past end", P(0, 5), false},
		{"negative row", P(-1, 2), false},
		{"negative col", P(1, -1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Within(3, 5); got != tc.expected {
				t.Errorf("%v.Within(3, 5) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestPosAdd(t *testing.T) {
	got := P(2, 3).Add(P(-1, 1))
	if got != P(1, 4) {
		t.Errorf("Add() = %v, expected (1, 4)", got)
	}
}

func TestPosDistance(t *testing.T) {
	tests := []struct {
		a, b     Pos
		expected int
	}{
		{P(0, 0), P(0, 0), 0},
		{P(0, 0), P(1, 1), 1},
		{P(0, 0), P(3, 1), 3},
		{P(4, 2), P(1, 6), 4},
	}

	for _, tc := range tests {
		if got := tc.a.Distance(tc.b); got != tc.expected {
			t.Errorf("%v.Distance(%v) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
		if got := tc.b.Distance(tc.a); got != tc.expected {
			t.Errorf("Distance() is not symmetric for %v, %v", tc.a, tc.b)
		}
	}
}

func TestPosString(t *testing.T) {
	if s := P(1, 7).String(); s != "(1, 7)" {
		t.Errorf("String() = %q, expected %q", s, "(1, 7)")
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		a, n, expected int
	}{
		{0, 3, 0},
		{4, 3, 1},
		{3, 3, 0},
		{-1, 3, 2},
		{-4, 3, 2},
		{7, 1, 0},
	}

	for _, tc := range tests {
		if got := Mod(tc.a, tc.n); got != tc.expected {
			t.Errorf("Mod(%d, %d) = %d, expected %d", tc.a, tc.n, got, tc.expected)
		}
	}
}

func TestAbsMax(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs() returned a wrong value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max() returned a wrong value")
	}
}
