// Package controls turns key presses into cube operations.
//
// Bindings map a key name to an action name. An action name is either one
// of the fixed camera and utility actions ("camera_up", "scale_down",
// "query_solved", ...) or a move in standard notation ("R", "U'", "F2").
package controls

import (
	"fmt"
	"strings"

	"github.com/Faultbox/cubik/internal/cube"
	"github.com/Faultbox/cubik/pkg/math"
)

// Kind classifies an action.
type Kind int

const (
	KindNone Kind = iota
	KindScale
	KindCamera
	KindTranslate
	KindQuerySolved
	KindTurn
	KindScramble
	KindScreenshot
	KindQuit
)

func (k Kind) String() string {
	switch k {
	case KindScale:
		return "scale"
	case KindCamera:
		return "camera"
	case KindTranslate:
		return "translate"
	case KindQuerySolved:
		return "query_solved"
	case KindTurn:
		return "turn"
	case KindScramble:
		return "scramble"
	case KindScreenshot:
		return "screenshot"
	case KindQuit:
		return "quit"
	default:
		return "none"
	}
}

// Action is a resolved binding.
type Action struct {
	Name string
	Kind Kind

	// Axis and Amount apply to camera, translate and scale actions. Amount
	// is an angle in radians, a distance, or a scale factor.
	Axis   math.Axis
	Amount float32

	// Move applies to turn actions.
	Move cube.Move
}

// Repeatable reports whether the action fires again while its key is held.
// Face turns only fire on the initial press.
func (a Action) Repeatable() bool {
	switch a.Kind {
	case KindScale, KindCamera, KindTranslate:
		return true
	default:
		return false
	}
}

// Steps are the per-press camera increments.
type Steps struct {
	Rotate    float32
	Translate float32
	Scale     float32
}

// DefaultSteps matches the config defaults.
func DefaultSteps() Steps {
	return Steps{Rotate: 0.1, Translate: 0.1, Scale: 1.1}
}

// ParseAction resolves an action name. Names are case-sensitive for moves
// ("r" is not a move) and case-insensitive otherwise.
func ParseAction(name string, steps Steps) (Action, error) {
	a := Action{Name: name}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scale_up":
		a.Kind, a.Amount = KindScale, steps.Scale
	case "scale_down":
		a.Kind, a.Amount = KindScale, 1/steps.Scale
	case "camera_up":
		a.Kind, a.Axis, a.Amount = KindCamera, math.AxisX, steps.Rotate
	case "camera_down":
		a.Kind, a.Axis, a.Amount = KindCamera, math.AxisX, -steps.Rotate
	case "camera_left":
		a.Kind, a.Axis, a.Amount = KindCamera, math.AxisY, steps.Rotate
	case "camera_right":
		a.Kind, a.Axis, a.Amount = KindCamera, math.AxisY, -steps.Rotate
	case "camera_roll_left":
		a.Kind, a.Axis, a.Amount = KindCamera, math.AxisZ, steps.Rotate
	case "camera_roll_right":
		a.Kind, a.Axis, a.Amount = KindCamera, math.AxisZ, -steps.Rotate
	case "translate_x+":
		a.Kind, a.Axis, a.Amount = KindTranslate, math.AxisX, steps.Translate
	case "translate_x-":
		a.Kind, a.Axis, a.Amount = KindTranslate, math.AxisX, -steps.Translate
	case "translate_y+":
		a.Kind, a.Axis, a.Amount = KindTranslate, math.AxisY, steps.Translate
	case "translate_y-":
		a.Kind, a.Axis, a.Amount = KindTranslate, math.AxisY, -steps.Translate
	case "translate_z+":
		a.Kind, a.Axis, a.Amount = KindTranslate, math.AxisZ, steps.Translate
	case "translate_z-":
		a.Kind, a.Axis, a.Amount = KindTranslate, math.AxisZ, -steps.Translate
	case "query_solved":
		a.Kind = KindQuerySolved
	case "scramble":
		a.Kind = KindScramble
	case "screenshot":
		a.Kind = KindScreenshot
	case "quit":
		a.Kind = KindQuit
	default:
		m, err := cube.ParseMove(strings.TrimSpace(name))
		if err != nil {
			return Action{}, fmt.Errorf("unknown action %q: %w", name, err)
		}
		a.Kind, a.Move = KindTurn, m
	}
	return a, nil
}
