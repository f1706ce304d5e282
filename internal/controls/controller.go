package controls

import (
	"errors"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubik/internal/cube"
)

// DefaultScrambleLength is the number of moves a scramble applies.
const DefaultScrambleLength = 20

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRand sets the source of scramble moves.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithScrambleLength sets how many moves a scramble applies.
func WithScrambleLength(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.scrambleLen = n
		}
	}
}

// Controller dispatches key presses to a cube. Face turns block in
// RotateFace, presenting frames through the presenter, so the presenter
// may call back into HandleKey while a turn animates. Those nested turn
// requests are dropped by the cube's rotation lock.
type Controller struct {
	cube        *cube.Cube
	keys        *Keymap
	presenter   cube.Presenter
	log         *zap.Logger
	rng         *rand.Rand
	scrambleLen int
}

// New creates a controller. presenter may be nil, in which case turns
// complete without presenting frames.
func New(c *cube.Cube, keys *Keymap, presenter cube.Presenter, opts ...Option) *Controller {
	seed := uint64(time.Now().UnixNano())
	ctl := &Controller{
		cube:        c,
		keys:        keys,
		presenter:   presenter,
		log:         zap.NewNop(),
		rng:         rand.New(rand.NewPCG(seed, seed>>1)),
		scrambleLen: DefaultScrambleLength,
	}
	for _, opt := range opts {
		opt(ctl)
	}
	return ctl
}

// HandleKey resolves key and performs its action. The resolved action is
// returned so the caller can handle quit and screenshot, which the
// controller does not own. ok is false for unbound keys and for repeats
// of non-repeatable actions.
func (c *Controller) HandleKey(key string, repeat bool) (a Action, ok bool, err error) {
	a, ok = c.keys.Lookup(key)
	if !ok {
		return Action{}, false, nil
	}
	if repeat && !a.Repeatable() {
		return a, false, nil
	}
	return a, true, c.Perform(a)
}

// Perform runs a resolved action against the cube. Turn requests arriving
// while a turn animates are dropped without error.
func (c *Controller) Perform(a Action) error {
	switch a.Kind {
	case KindScale:
		c.cube.Scale(a.Amount)
	case KindCamera:
		c.cube.RotateCamera(a.Axis, a.Amount)
	case KindTranslate:
		c.cube.TranslateCamera(a.Axis, a.Amount)
	case KindQuerySolved:
		c.log.Info("solved query", zap.Bool("solved", c.cube.IsSolved()))
	case KindTurn:
		return c.dropBusy(c.cube.Apply(c.presenter, a.Move))
	case KindScramble:
		return c.Scramble()
	}
	return nil
}

// Scramble applies a random move sequence, animating every quarter turn.
func (c *Controller) Scramble() error {
	if c.cube.State() == cube.Animating {
		c.log.Debug("scramble dropped", zap.Stringer("state", c.cube.State()))
		return nil
	}
	moves := cube.Scramble(c.rng, c.scrambleLen)
	c.log.Info("scrambling", zap.String("moves", cube.FormatMoves(moves)))
	return c.dropBusy(c.cube.Apply(c.presenter, moves...))
}

func (c *Controller) dropBusy(err error) error {
	if errors.Is(err, cube.ErrTurnInProgress) {
		c.log.Debug("turn request dropped", zap.Error(err))
		return nil
	}
	return err
}
