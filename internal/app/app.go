// Package app implements the windowed cube viewer and its frame loop.
package app

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubik/internal/config"
	"github.com/Faultbox/cubik/internal/controls"
	"github.com/Faultbox/cubik/internal/cube"
	"github.com/Faultbox/cubik/internal/engine/debug"
	"github.com/Faultbox/cubik/internal/engine/input"
	"github.com/Faultbox/cubik/internal/engine/renderer"
	"github.com/Faultbox/cubik/internal/engine/window"
	"github.com/Faultbox/cubik/internal/puzzle"
)

// ErrClosed is returned by PresentFrame once a quit has been requested.
// A face turn in flight still runs to commit.
var ErrClosed = errors.New("app: window closed")

// background matches the classic black clear color.
var background = cube.Color{0, 0, 0, 1}

// App owns the window, the renderer and the cube. It implements
// cube.Presenter, so face turns present their frames through it.
type App struct {
	config  *config.Config
	log     *zap.Logger
	running bool

	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	cube        *cube.Cube
	controller  *controls.Controller
	screenshots *debug.ScreenshotCapture

	captureNext bool
	frames      int
	fpsTimer    time.Time
}

// New creates the window, uploads the cube and wires the controls.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	keys, err := puzzle.NewKeymap(cfg)
	if err != nil {
		return nil, err
	}

	log.Info("initializing viewer",
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("bindings", keys.Len()),
	)

	a := &App{
		config:      cfg,
		log:         log,
		input:       input.New(),
		cube:        puzzle.NewCube(cfg, log.Named("cube")),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "cubik"),
	}

	// Window first: the renderer needs its GL context.
	a.window, err = window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, log.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		Background: background,
	}, a.cube.Vertices(), log.Named("renderer"))
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.controller = controls.New(a.cube, keys, a, controls.WithLogger(log.Named("controls")))

	log.Info("viewer initialized")
	return a, nil
}

// Run presents frames until a quit is requested.
func (a *App) Run() error {
	a.running = true
	a.fpsTimer = time.Now()

	a.log.Info("starting frame loop")
	for a.running {
		if err := a.PresentFrame(); err != nil && !errors.Is(err, ErrClosed) {
			return err
		}
	}
	return nil
}

// PresentFrame polls input, dispatches it, and draws one frame. While a
// face turn animates it is called once per step from inside RotateFace,
// so key presses dispatched here may start nested requests; the cube
// drops nested face turns and applies camera changes at once.
func (a *App) PresentFrame() error {
	if a.input.Update() {
		a.running = false
	}

	// Dispatch may re-enter PresentFrame, which reuses the input buffer.
	for _, ev := range slices.Clone(a.input.Events()) {
		a.handle(ev)
	}

	a.renderer.Begin()
	a.cube.Draw(a.renderer)
	a.renderer.End()

	if a.captureNext {
		a.captureNext = false
		a.capture()
	}

	a.window.SwapBuffers()
	a.countFrame()

	if !a.running {
		return ErrClosed
	}
	return nil
}

func (a *App) handle(ev input.Event) {
	switch ev.Type {
	case input.EventWindowResize:
		a.renderer.Resize(a.window.DrawableSize())

	case input.EventKeyDown:
		action, ok, err := a.controller.HandleKey(ev.Key, ev.Repeat)
		if err != nil && !errors.Is(err, ErrClosed) {
			a.log.Warn("action failed", zap.String("key", ev.Key), zap.String("action", action.Name), zap.Error(err))
		}
		if !ok {
			return
		}
		switch action.Kind {
		case controls.KindQuit:
			a.running = false
		case controls.KindScreenshot:
			a.captureNext = true
		}
	}
}

func (a *App) capture() {
	pixels, width, height, err := a.renderer.Capture(
		a.config.Debug.ScreenshotWidth,
		a.config.Debug.ScreenshotHeight,
		func() { a.cube.Draw(a.renderer) },
	)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	name, err := a.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("file", name))
}

func (a *App) countFrame() {
	a.frames++
	if time.Since(a.fpsTimer) >= time.Second {
		a.log.Debug("fps", zap.Int("count", a.frames), zap.Stringer("state", a.cube.State()))
		a.window.SetTitle(fmt.Sprintf("%s - %d fps - solved: %t", a.config.Graphics.Title, a.frames, a.cube.IsSolved()))
		a.frames = 0
		a.fpsTimer = time.Now()
	}
}

// Close cleans up viewer resources.
func (a *App) Close() {
	a.log.Info("closing viewer", zap.Bool("solved", a.cube.IsSolved()), zap.Int("turns", len(a.cube.History())))
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
