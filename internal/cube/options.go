package cube

import "go.uber.org/zap"

// Option configures a Cube.
type Option func(*config)

type config struct {
	edge   float32
	steps  int
	snap   bool
	strict bool
	log    *zap.Logger
}

func defaultConfig() *config {
	return &config{
		edge:   DefaultEdgeLength,
		steps:  DefaultAnimationSteps,
		snap:   true,
		strict: true,
		log:    zap.NewNop(),
	}
}

// WithEdgeLength sets the half-width of every cubie.
func WithEdgeLength(edge float32) Option {
	return func(c *config) {
		if edge > 0 {
			c.edge = edge
		}
	}
}

// WithAnimationSteps sets how many frames a face turn is spread over.
func WithAnimationSteps(steps int) Option {
	return func(c *config) {
		if steps > 0 {
			c.steps = steps
		}
	}
}

// WithSnapAfterTurn controls whether the animation matrices of the turned
// cubies are rounded to exact quarter-turn rotations after each commit.
// Disabled, the matrices accumulate float error over the cube's lifetime.
func WithSnapAfterTurn(enabled bool) Option {
	return func(c *config) {
		c.snap = enabled
	}
}

// WithStrictTurns controls whether RotateFace rejects angles other than
// +/-pi/2. With strict turns off any angle is animated and committed, which
// leaves the lattice positions out of step with the drawn orientation.
func WithStrictTurns(enabled bool) Option {
	return func(c *config) {
		c.strict = enabled
	}
}

// WithLogger sets the logger used for turn diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}
