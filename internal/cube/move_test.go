package cube

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("R U' F2 L B2' D")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	want := []Move{
		{Face: R, Turn: CW},
		{Face: U, Turn: CCW},
		{Face: F, Turn: Double},
		{Face: L, Turn: CW},
		{Face: B, Turn: Double},
		{Face: D, Turn: CW},
	}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, moves[i], want[i])
		}
	}
	if got := FormatMoves(moves); got != "R U' F2 L B2 D" {
		t.Errorf("FormatMoves = %q", got)
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, s := range []string{"", "X", "R3", "r", "U''"} {
		if _, err := ParseMove(s); !errors.Is(err, ErrInvalidMove) {
			t.Errorf("ParseMove(%q): err = %v, want ErrInvalidMove", s, err)
		}
	}
}

func TestMoveQuarters(t *testing.T) {
	tests := []struct {
		move  Move
		angle float64
		count int
	}{
		{Move{Face: R, Turn: CW}, -QuarterTurn, 1},
		{Move{Face: R, Turn: CCW}, QuarterTurn, 1},
		{Move{Face: L, Turn: CW}, QuarterTurn, 1},
		{Move{Face: U, Turn: CW}, -QuarterTurn, 1},
		{Move{Face: D, Turn: CW}, QuarterTurn, 1},
		{Move{Face: F, Turn: Double}, -QuarterTurn, 2},
		{Move{Face: B, Turn: CCW}, -QuarterTurn, 1},
	}
	for _, tt := range tests {
		t.Run(tt.move.String(), func(t *testing.T) {
			qs := tt.move.Quarters()
			if len(qs) != tt.count {
				t.Fatalf("got %d quarters, want %d", len(qs), tt.count)
			}
			for _, q := range qs {
				if q.Normal != tt.move.Face.Normal() || q.Angle != tt.angle {
					t.Errorf("quarter = %+v, want normal %v angle %v", q, tt.move.Face.Normal(), tt.angle)
				}
			}
		})
	}
}

func TestMoveInverseUndoes(t *testing.T) {
	for _, f := range Faces {
		for _, d := range []Direction{CW, CCW, Double} {
			m := Move{Face: f, Turn: d}
			c := New()
			if err := c.Apply(nil, m, m.Inverse()); err != nil {
				t.Fatalf("Apply(%v, %v): %v", m, m.Inverse(), err)
			}
			if !c.IsSolved() {
				t.Errorf("%v followed by %v should be solved", m, m.Inverse())
			}
		}
	}
}

func TestSexyMoveSixTimesIsSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	seq, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	c := New()
	for i := 0; i < 6; i++ {
		if err := c.Apply(nil, seq...); err != nil {
			t.Fatal(err)
		}
		if i < 5 && c.IsSolved() {
			t.Fatalf("cube solved after only %d repetitions", i+1)
		}
	}
	if !c.IsSolved() {
		t.Error("sexy move x 6 should return to solved")
	}
	if len(c.History()) != 24 {
		t.Errorf("history has %d quarter turns, want 24", len(c.History()))
	}
}

func TestScramble(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	moves := Scramble(rng, 25)
	if len(moves) != 25 {
		t.Fatalf("got %d moves, want 25", len(moves))
	}
	for i := 1; i < len(moves); i++ {
		if moves[i].Face == moves[i-1].Face {
			t.Errorf("moves %d and %d both turn %v", i-1, i, moves[i].Face)
		}
	}

	again := Scramble(rand.New(rand.NewPCG(1, 2)), 25)
	if FormatMoves(moves) != FormatMoves(again) {
		t.Error("same seed should give the same scramble")
	}

	c := New()
	if err := c.Apply(nil, moves...); err != nil {
		t.Fatal(err)
	}
	assertPermutation(t, c)
}
