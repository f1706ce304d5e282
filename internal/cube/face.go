package cube

import (
	"fmt"

	"github.com/Faultbox/cubik/pkg/math"
)

// Normal is an outward face normal in lattice units. A valid normal has
// exactly one component equal to +1 or -1 and zeros elsewhere.
type Normal [3]int

// Face normals of the six outer layers.
var (
	NormalRight = Normal{1, 0, 0}
	NormalLeft  = Normal{-1, 0, 0}
	NormalUp    = Normal{0, 1, 0}
	NormalDown  = Normal{0, -1, 0}
	NormalFront = Normal{0, 0, 1}
	NormalBack  = Normal{0, 0, -1}
)

// Axis resolves the normal into the axis it points along and the lattice
// layer (+1 or -1) it selects on that axis.
func (n Normal) Axis() (math.Axis, int, error) {
	var (
		axis  math.Axis
		layer int
		found int
	)
	for i, v := range n {
		switch v {
		case 0:
		case 1, -1:
			axis, layer = math.Axis(i), v
			found++
		default:
			return 0, 0, fmt.Errorf("%w: %v", ErrInvalidNormal, n)
		}
	}
	if found != 1 {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidNormal, n)
	}
	return axis, layer, nil
}

// Face names one of the six outer faces in standard notation.
type Face int

const (
	R Face = iota // Right, +X
	L             // Left, -X
	U             // Up, +Y
	D             // Down, -Y
	F             // Front, +Z
	B             // Back, -Z
)

// Faces lists every face in notation order.
var Faces = [6]Face{R, L, U, D, F, B}

// Normal returns the outward normal of the face.
func (f Face) Normal() Normal {
	switch f {
	case R:
		return NormalRight
	case L:
		return NormalLeft
	case U:
		return NormalUp
	case D:
		return NormalDown
	case F:
		return NormalFront
	case B:
		return NormalBack
	default:
		return Normal{}
	}
}

func (f Face) String() string {
	switch f {
	case R:
		return "R"
	case L:
		return "L"
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	default:
		return "?"
	}
}

// FaceOf returns the face whose outward normal is n.
func FaceOf(n Normal) (Face, bool) {
	for _, f := range Faces {
		if f.Normal() == n {
			return f, true
		}
	}
	return 0, false
}
