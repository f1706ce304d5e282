// Package puzzle builds the cube and its key bindings from configuration.
// Both front ends share it so they agree on geometry and controls.
package puzzle

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cubik/internal/config"
	"github.com/Faultbox/cubik/internal/controls"
	"github.com/Faultbox/cubik/internal/cube"
	"github.com/Faultbox/cubik/pkg/math"
)

// CubeOptions translates the cube section of cfg into cube options.
func CubeOptions(cfg config.CubeConfig, log *zap.Logger) []cube.Option {
	return []cube.Option{
		cube.WithEdgeLength(cfg.EdgeLength),
		cube.WithAnimationSteps(cfg.AnimationSteps),
		cube.WithSnapAfterTurn(cfg.SnapAfterTurn),
		cube.WithStrictTurns(cfg.StrictTurns),
		cube.WithLogger(log),
	}
}

// NewCube builds a solved cube with the configured initial camera rotation
// applied about X, Y, then Z.
func NewCube(cfg *config.Config, log *zap.Logger) *cube.Cube {
	c := cube.New(CubeOptions(cfg.Cube, log)...)
	r := cfg.Camera.InitialRotation
	c.RotateCamera(math.AxisX, r.X).
		RotateCamera(math.AxisY, r.Y).
		RotateCamera(math.AxisZ, r.Z)
	return c
}

// Steps returns the per-press camera increments.
func Steps(cfg config.CameraConfig) controls.Steps {
	return controls.Steps{
		Rotate:    cfg.RotateStep,
		Translate: cfg.TranslateStep,
		Scale:     cfg.ScaleFactor,
	}
}

// NewKeymap parses the configured bindings.
func NewKeymap(cfg *config.Config) (*controls.Keymap, error) {
	km, err := controls.NewKeymap(cfg.Controls.Bindings, Steps(cfg.Camera))
	if err != nil {
		return nil, fmt.Errorf("invalid key bindings: %w", err)
	}
	return km, nil
}
