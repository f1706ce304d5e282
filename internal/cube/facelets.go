package cube

import (
	"fmt"
	"strings"

	"github.com/Faultbox/cubik/pkg/math"
)

// Facelets is the sticker net of the cube: nine colors per face, indexed by
// Face. Each face is row-major as seen from outside the cube, with U drawn
// above F and D below it.
type Facelets [6][9]Color

// Facelets projects the cubie colors onto the outer faces. The colors are
// cubie-relative, so a face only reads as one color when every cubie on it
// is in its home orientation. It returns ErrNotAligned while a turn is
// animating or when drawn orientation and lattice slot disagree.
func (c *Cube) Facelets() (Facelets, error) {
	var (
		net    Facelets
		filled [6][9]bool
	)
	if c.turning.Load() {
		return net, fmt.Errorf("%w: turn in progress", ErrNotAligned)
	}

	for _, cb := range c.cubies {
		p := cb.Lattice()
		home := cb.home
		moved := cb.animation.TransformVec3(math.Vec3{X: float32(home[0]), Y: float32(home[1]), Z: float32(home[2])})
		if moved.Ints() != p || !moved.Near(math.Vec3{X: float32(p[0]), Y: float32(p[1]), Z: float32(p[2])}, SolvedTolerance) {
			return net, fmt.Errorf("%w: cubie %v drawn away from slot %v", ErrNotAligned, home, p)
		}

		for i := 0; i < FacesPerCubie; i++ {
			n, ok := cb.facing(i)
			if !ok {
				return net, fmt.Errorf("%w: cubie %v face %d", ErrNotAligned, home, i)
			}
			axis, layer, err := n.Axis()
			if err != nil {
				return net, fmt.Errorf("%w: cubie %v face %d", ErrNotAligned, home, i)
			}
			if p[axis] != layer {
				continue // interior face
			}
			face, _ := FaceOf(n)
			idx := faceletIndex(face, p)
			if filled[face][idx] {
				return net, fmt.Errorf("%w: facelet %s%d covered twice", ErrNotAligned, face, idx)
			}
			net[face][idx] = cb.colors[i]
			filled[face][idx] = true
		}
	}

	for _, f := range Faces {
		for i, ok := range filled[f] {
			if !ok {
				return net, fmt.Errorf("%w: facelet %s%d uncovered", ErrNotAligned, f, i)
			}
		}
	}
	return net, nil
}

// faceletIndex maps a lattice slot on face f to its row-major index.
func faceletIndex(f Face, p [3]int) int {
	x, y, z := p[0], p[1], p[2]
	var row, col int
	switch f {
	case U:
		row, col = z+1, x+1
	case D:
		row, col = 1-z, x+1
	case F:
		row, col = 1-y, x+1
	case B:
		row, col = 1-y, 1-x
	case R:
		row, col = 1-y, 1-z
	case L:
		row, col = 1-y, z+1
	}
	return row*3 + col
}

// Uniform reports whether all nine stickers of face f share one color.
func (n Facelets) Uniform(f Face) bool {
	for _, c := range n[f] {
		if c != n[f][4] {
			return false
		}
	}
	return true
}

// String renders the net as letters, one face per line.
func (n Facelets) String() string {
	var b strings.Builder
	for _, f := range Faces {
		b.WriteString(f.String())
		b.WriteString(": ")
		for i, c := range n[f] {
			if i > 0 && i%3 == 0 {
				b.WriteByte(' ')
			}
			b.WriteString(c.Letter())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Letter returns the one-letter name of a face color, or ? for others.
func (c Color) Letter() string {
	switch c {
	case Red:
		return "R"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case Green:
		return "G"
	case White:
		return "W"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}
