package cube

import (
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/cubik/pkg/math"
)

// QuarterTurn is the only angle a strict cube commits, in either sign.
const QuarterTurn = gomath.Pi / 2

const quarterTolerance = 1e-6

// IsQuarterTurn reports whether angle is +pi/2 or -pi/2.
func IsQuarterTurn(angle float64) bool {
	return gomath.Abs(gomath.Abs(angle)-QuarterTurn) < quarterTolerance
}

// Quarter is one committed face turn.
type Quarter struct {
	Normal Normal
	Angle  float64
}

// Move converts q back to notation. ok is false for angles that are not
// quarter turns.
func (q Quarter) Move() (Move, bool) {
	face, ok := FaceOf(q.Normal)
	if !ok || !IsQuarterTurn(q.Angle) {
		return Move{}, false
	}
	m := Move{Face: face, Turn: CW}
	if (q.Angle > 0) != (m.angle() > 0) {
		m.Turn = CCW
	}
	return m, true
}

// Turn is a face turn in progress. It holds the cube's rotation lock from
// BeginTurn until Commit.
type Turn struct {
	cube    *Cube
	normal  Normal
	axis    math.Axis
	angle   float64
	delta   float32
	members []*Cubie

	total     int
	done      int
	committed bool
}

// BeginTurn takes the rotation lock and selects the nine cubies on the face
// with the given outward normal. It returns ErrTurnInProgress without
// touching any state while another turn holds the lock.
//
// The lock stays held until Commit is called on the returned Turn. Callers
// must always call Commit, even when abandoning a turn part way; until then
// every later turn on the cube fails with ErrTurnInProgress.
func (c *Cube) BeginTurn(normal Normal, angle float64) (*Turn, error) {
	if c.turning.Load() {
		c.log.Debug("face turn dropped", zap.Ints("normal", normal[:]), zap.Float64("angle", angle))
		return nil, ErrTurnInProgress
	}

	axis, layer, err := normal.Axis()
	if err != nil {
		return nil, err
	}
	if c.cfg.strict && !IsQuarterTurn(angle) {
		return nil, fmt.Errorf("%w: %.6f rad", ErrNotQuarterTurn, angle)
	}

	if !c.turning.CompareAndSwap(false, true) {
		return nil, ErrTurnInProgress
	}

	t := &Turn{
		cube:   c,
		normal: normal,
		axis:   axis,
		angle:  angle,
		delta:  float32(angle / float64(c.cfg.steps)),
		total:  c.cfg.steps,
	}
	for _, cb := range c.cubies {
		if cb.Lattice()[axis] == layer {
			t.members = append(t.members, cb)
		}
	}

	c.log.Debug("face turn started",
		zap.Stringer("axis", axis),
		zap.Int("layer", layer),
		zap.Float64("angle", angle),
		zap.Int("cubies", len(t.members)),
	)
	return t, nil
}

// Step applies one animation step to every cubie on the face. It returns
// false, doing nothing, once all steps have been applied.
func (t *Turn) Step() bool {
	if t.done >= t.total {
		return false
	}
	for _, cb := range t.members {
		cb.RotateVisual(t.axis, t.delta)
	}
	t.done++
	return true
}

// Commit applies any remaining steps, moves the turned cubies to their new
// lattice slots and releases the rotation lock. Calling it again is a no-op.
func (t *Turn) Commit() {
	if t.committed {
		return
	}
	for t.Step() {
	}

	snap := t.cube.cfg.snap && IsQuarterTurn(t.angle)
	for _, cb := range t.members {
		cb.RotatePosition(t.axis, float32(t.angle))
		if snap {
			cb.snap()
		}
	}

	c := t.cube
	c.history = append(c.history, Quarter{Normal: t.normal, Angle: t.angle})
	t.committed = true
	c.turning.Store(false)

	c.log.Debug("face turn committed",
		zap.Stringer("axis", t.axis),
		zap.Float64("angle", t.angle),
		zap.Bool("snapped", snap),
	)
}

// Progress returns the number of steps applied and the total.
func (t *Turn) Progress() (done, total int) {
	return t.done, t.total
}

// Normal returns the outward normal of the turning face.
func (t *Turn) Normal() Normal { return t.normal }

// Angle returns the total turn angle.
func (t *Turn) Angle() float64 { return t.angle }

// Members returns the cubies on the turning face.
func (t *Turn) Members() []*Cubie {
	out := make([]*Cubie, len(t.members))
	copy(out, t.members)
	return out
}

// RotateFace turns the face with the given outward normal by angle,
// presenting one frame per animation step. A request made while another
// turn is animating returns ErrTurnInProgress and changes nothing. Presenter
// errors do not stop the turn; the first one is returned after commit.
func (c *Cube) RotateFace(normal Normal, angle float64, p Presenter) error {
	t, err := c.BeginTurn(normal, angle)
	if err != nil {
		return err
	}

	var frameErr error
	for t.Step() {
		if p == nil {
			continue
		}
		if err := p.PresentFrame(); err != nil && frameErr == nil {
			frameErr = err
		}
	}
	t.Commit()

	if frameErr != nil {
		return fmt.Errorf("presenting turn frame: %w", frameErr)
	}
	return nil
}

// Apply performs moves in order through RotateFace.
func (c *Cube) Apply(p Presenter, moves ...Move) error {
	for _, m := range moves {
		for _, q := range m.Quarters() {
			if err := c.RotateFace(q.Normal, q.Angle, p); err != nil {
				return fmt.Errorf("applying %s: %w", m, err)
			}
		}
	}
	return nil
}
