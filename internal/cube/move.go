package cube

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Direction is the direction and size of a move, seen looking at the face
// from outside the cube.
type Direction int

const (
	CW     Direction = 1  // Clockwise quarter turn
	CCW    Direction = -1 // Counter-clockwise quarter turn
	Double Direction = 2  // Half turn
)

// Move is a face turn in standard notation.
type Move struct {
	Face Face
	Turn Direction
}

// Normal returns the outward normal of the turned face.
func (m Move) Normal() Normal { return m.Face.Normal() }

// angle is the signed clockwise quarter-turn angle about the positive axis.
// Looking at a face from outside, clockwise is a negative rotation about
// its outward normal.
func (m Move) angle() float64 {
	_, layer, _ := m.Face.Normal().Axis()
	a := -float64(layer) * QuarterTurn
	if m.Turn == CCW {
		a = -a
	}
	return a
}

// Quarters expands m into the quarter turns RotateFace performs.
func (m Move) Quarters() []Quarter {
	q := Quarter{Normal: m.Face.Normal(), Angle: m.angle()}
	if m.Turn == Double {
		return []Quarter{q, q}
	}
	return []Quarter{q}
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

func (m Move) String() string {
	switch m.Turn {
	case CCW:
		return m.Face.String() + "'"
	case Double:
		return m.Face.String() + "2"
	default:
		return m.Face.String()
	}
}

// ParseMove parses a single move such as R, U' or F2.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Move{}, fmt.Errorf("%w: empty", ErrInvalidMove)
	}

	var m Move
	switch s[0] {
	case 'R':
		m.Face = R
	case 'L':
		m.Face = L
	case 'U':
		m.Face = U
	case 'D':
		m.Face = D
	case 'F':
		m.Face = F
	case 'B':
		m.Face = B
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	switch s[1:] {
	case "":
		m.Turn = CW
	case "'":
		m.Turn = CCW
	case "2", "2'":
		m.Turn = Double
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	return m, nil
}

// ParseMoves parses a whitespace separated move sequence.
func ParseMoves(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves joins moves in notation.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// Scramble returns n random moves, never turning the same face twice in a
// row.
func Scramble(rng *rand.Rand, n int) []Move {
	directions := [3]Direction{CW, CCW, Double}
	moves := make([]Move, 0, n)
	last := Face(-1)
	for len(moves) < n {
		f := Faces[rng.IntN(len(Faces))]
		if f == last {
			continue
		}
		moves = append(moves, Move{Face: f, Turn: directions[rng.IntN(len(directions))]})
		last = f
	}
	return moves
}
