// Package cube models a 3x3x3 twisty puzzle as 27 cubies that each carry a
// discrete lattice slot and a continuous transform.
//
// Face turns are animated in a fixed number of steps. Between steps the cube
// yields to a Presenter, which usually polls input and draws a frame. While
// a turn is animating the cube refuses further face turns; camera operations
// stay available at all times.
package cube

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/cubik/pkg/math"
)

const (
	// CubieCount is the number of cubies in a 3x3x3 cube.
	CubieCount = 27

	// DefaultEdgeLength is the default cubie half-width.
	DefaultEdgeLength = 0.15

	// DefaultAnimationSteps is the default number of frames per face turn.
	DefaultAnimationSteps = 20
)

// Presenter is called once per animation step of a face turn.
type Presenter interface {
	PresentFrame() error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func() error

// PresentFrame calls f.
func (f PresenterFunc) PresentFrame() error { return f() }

// TurnState is the state of the face-turn subsystem.
type TurnState int

const (
	Idle TurnState = iota
	Animating
)

func (s TurnState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	default:
		return "unknown"
	}
}

// Cube owns the 27 cubies and serializes face turns.
type Cube struct {
	cfg    *config
	log    *zap.Logger
	cubies [CubieCount]*Cubie

	turning atomic.Bool
	history []Quarter
}

// New creates a solved cube.
func New(opts ...Option) *Cube {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Cube{
		cfg: cfg,
		log: cfg.log,
	}
	c.cubies = generateLattice(cfg.edge)
	return c
}

// generateLattice builds one cubie per lattice point, iterating x (outer),
// y, z (inner). Draw offsets depend on this order.
func generateLattice(edge float32) [CubieCount]*Cubie {
	var cubies [CubieCount]*Cubie
	n := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				cubies[n] = newCubie([3]int{x, y, z}, edge)
				n++
			}
		}
	}
	return cubies
}

// IsSolved reports whether every cubie is back in its original orientation.
func (c *Cube) IsSolved() bool {
	for _, cb := range c.cubies {
		if !cb.IsSolved() {
			return false
		}
	}
	return true
}

// State reports whether a face turn is animating.
func (c *Cube) State() TurnState {
	if c.turning.Load() {
		return Animating
	}
	return Idle
}

// RotateWholeCube rotates every cubie visually. Lattice positions are left
// alone, so this is a display operation rather than a move.
func (c *Cube) RotateWholeCube(axis math.Axis, angle float32) *Cube {
	for _, cb := range c.cubies {
		cb.RotateVisual(axis, angle)
	}
	return c
}

// RotateCamera rotates the view of every cubie.
func (c *Cube) RotateCamera(axis math.Axis, angle float32) *Cube {
	for _, cb := range c.cubies {
		cb.RotateCamera(axis, angle)
	}
	return c
}

// TranslateCamera moves the view of every cubie.
func (c *Cube) TranslateCamera(axis math.Axis, d float32) *Cube {
	for _, cb := range c.cubies {
		cb.TranslateCamera(axis, d)
	}
	return c
}

// Scale zooms the view of every cubie.
func (c *Cube) Scale(s float32) *Cube {
	for _, cb := range c.cubies {
		cb.ScaleCamera(s)
	}
	return c
}

// Draw draws all cubies in lattice generation order.
func (c *Cube) Draw(d Drawer) {
	for i, cb := range c.cubies {
		cb.Draw(i*VerticesPerCubie, d)
	}
}

// Vertices returns the local vertices of every cubie in draw order.
func (c *Cube) Vertices() []math.Vec3 {
	out := make([]math.Vec3, 0, CubieCount*VerticesPerCubie)
	for _, cb := range c.cubies {
		out = append(out, cb.vertices[:]...)
	}
	return out
}

// Cubies returns the cubies in generation order.
func (c *Cube) Cubies() []*Cubie {
	out := make([]*Cubie, CubieCount)
	copy(out, c.cubies[:])
	return out
}

// Positions returns the lattice slot of every cubie in generation order.
func (c *Cube) Positions() [][3]int {
	out := make([][3]int, CubieCount)
	for i, cb := range c.cubies {
		out[i] = cb.Lattice()
	}
	return out
}

// History returns the committed face turns, oldest first.
func (c *Cube) History() []Quarter {
	out := make([]Quarter, len(c.history))
	copy(out, c.history)
	return out
}

// AnimationSteps returns the number of frames per face turn.
func (c *Cube) AnimationSteps() int {
	return c.cfg.steps
}
