// Package config handles cube viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Cube     CubeConfig     `yaml:"cube"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CubeConfig holds puzzle geometry and turn animation settings.
type CubeConfig struct {
	EdgeLength     float32       `yaml:"edge_length" split_words:"true"`
	AnimationSteps int           `yaml:"animation_steps" split_words:"true"`
	SnapAfterTurn  bool          `yaml:"snap_after_turn" split_words:"true"`
	StrictTurns    bool          `yaml:"strict_turns" split_words:"true"`
	FrameInterval  time.Duration `yaml:"frame_interval" split_words:"true"` // terminal UI only
}

// CameraConfig holds per-keypress camera increments.
type CameraConfig struct {
	RotateStep      float32  `yaml:"rotate_step" split_words:"true"`
	TranslateStep   float32  `yaml:"translate_step" split_words:"true"`
	ScaleFactor     float32  `yaml:"scale_factor" split_words:"true"`
	InitialRotation Rotation `yaml:"initial_rotation" split_words:"true"`
}

// Rotation is a rotation in radians about each axis, applied X, Y, then Z.
type Rotation struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// ControlsConfig maps key names to action names.
type ControlsConfig struct {
	Bindings map[string]string `yaml:"bindings" ignored:"true"`
}

// DebugConfig holds debugging aids.
// A zero screenshot width or height captures at the window size.
type DebugConfig struct {
	ScreenshotDir    string `yaml:"screenshot_dir" split_words:"true"`
	ScreenshotWidth  int    `yaml:"screenshot_width" split_words:"true"`
	ScreenshotHeight int    `yaml:"screenshot_height" split_words:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file" split_words:"true"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:      "Cubik",
			Width:      700,
			Height:     700,
			Fullscreen: false,
			VSync:      true,
		},
		Cube: CubeConfig{
			EdgeLength:     0.15,
			AnimationSteps: 20,
			SnapAfterTurn:  true,
			StrictTurns:    true,
			FrameInterval:  16 * time.Millisecond,
		},
		Camera: CameraConfig{
			RotateStep:      0.1,
			TranslateStep:   0.1,
			ScaleFactor:     1.1,
			InitialRotation: Rotation{X: 0.4, Y: 0.4, Z: 0.4},
		},
		Controls: ControlsConfig{
			Bindings: DefaultBindings(),
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DefaultBindings returns the stock keyboard layout.
func DefaultBindings() map[string]string {
	return map[string]string{
		"I": "scale_up",
		"O": "scale_down",

		"Up":       "camera_up",
		"Down":     "camera_down",
		"Left":     "camera_left",
		"Right":    "camera_right",
		"PageUp":   "camera_roll_left",
		"PageDown": "camera_roll_right",

		"Z": "translate_z+",
		"X": "translate_z-",
		"C": "translate_y+",
		"V": "translate_y-",
		"B": "translate_x+",
		"N": "translate_x-",

		"P":      "query_solved",
		"F5":     "scramble",
		"F12":    "screenshot",
		"Escape": "quit",

		"Q": "R'",
		"A": "R",
		"W": "L",
		"S": "L'",
		"E": "U'",
		"D": "U",
		"R": "D",
		"F": "D'",
		"T": "F'",
		"G": "F",
		"Y": "B",
		"H": "B'",
	}
}

// Validate checks the settings the engine cannot run without.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Cube.EdgeLength <= 0 {
		errs = append(errs, fmt.Errorf("cube: edge_length %v must be positive", c.Cube.EdgeLength))
	}
	if c.Cube.AnimationSteps < 1 {
		errs = append(errs, fmt.Errorf("cube: animation_steps %d must be at least 1", c.Cube.AnimationSteps))
	}
	if c.Cube.FrameInterval < 0 {
		errs = append(errs, fmt.Errorf("cube: frame_interval %v must not be negative", c.Cube.FrameInterval))
	}
	if c.Debug.ScreenshotWidth < 0 || c.Debug.ScreenshotHeight < 0 {
		errs = append(errs, fmt.Errorf("debug: screenshot size %dx%d must not be negative", c.Debug.ScreenshotWidth, c.Debug.ScreenshotHeight))
	}
	if c.Camera.ScaleFactor <= 0 {
		errs = append(errs, fmt.Errorf("camera: scale_factor %v must be positive", c.Camera.ScaleFactor))
	}
	return errors.Join(errs...)
}
