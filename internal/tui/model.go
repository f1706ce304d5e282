// Package tui is a terminal front end that shows the cube as an unfolded
// sticker net and animates face turns from the bubbletea tick loop.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Faultbox/cubik/internal/controls"
	"github.com/Faultbox/cubik/internal/cube"
)

// Messages
type tickMsg time.Time

// netOrder is the middle band of the unfolded net, left to right.
var netOrder = [4]cube.Face{cube.L, cube.F, cube.R, cube.B}

// Model drives one cube. Face turns never block Update: a turn is begun on
// a key press and advanced one step per tick until it commits.
type Model struct {
	cube     *cube.Cube
	keys     *controls.Keymap
	ctl      *controls.Controller
	log      *zap.Logger
	interval time.Duration

	turn    *cube.Turn
	move    cube.Move
	pending []cube.Quarter
	net     cube.Facelets

	status   string
	failed   bool
	quitting bool
}

// New creates a model. The controller handles camera and scramble actions;
// it should have no presenter, so a scramble completes within one Update.
func New(c *cube.Cube, keys *controls.Keymap, ctl *controls.Controller, interval time.Duration, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Model{
		cube:     c,
		keys:     keys,
		ctl:      ctl,
		log:      log,
		interval: interval,
		status:   "ready",
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) tickCmd() tea.Cmd {
	if m.interval <= 0 {
		return func() tea.Msg { return tickMsg(time.Now()) }
	}
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		a, ok := m.keys.Lookup(msg.String())
		if !ok {
			return m, nil
		}
		return m, m.perform(a)

	case tickMsg:
		return m, m.advance()
	}
	return m, nil
}

func (m *Model) perform(a controls.Action) tea.Cmd {
	switch a.Kind {
	case controls.KindQuit:
		m.quitting = true
		return tea.Quit

	case controls.KindTurn:
		if m.turn != nil {
			m.log.Debug("turn request dropped", zap.Stringer("move", a.Move))
			return nil
		}
		qs := a.Move.Quarters()
		if err := m.begin(qs[0]); err != nil {
			m.setError(err)
			return nil
		}
		m.move, m.pending = a.Move, qs[1:]
		m.status = "turning " + a.Move.String()
		m.failed = false
		return m.tickCmd()

	case controls.KindScramble:
		if m.turn != nil {
			return nil
		}
		if err := m.ctl.Scramble(); err != nil {
			m.setError(err)
			return nil
		}
		m.refresh()
		m.status = "scrambled"
		m.failed = false

	case controls.KindQuerySolved:
		if err := m.ctl.Perform(a); err != nil {
			m.setError(err)
			return nil
		}
		m.status = fmt.Sprintf("solved: %t", m.cube.IsSolved())
		m.failed = false

	case controls.KindScreenshot:
		m.status = "screenshots are only available in the GL viewer"
		m.failed = false

	default:
		// Camera changes have no effect on the net but keep the cube's
		// camera in step with the GL viewer's behavior.
		if err := m.ctl.Perform(a); err != nil {
			m.setError(err)
		}
	}
	return nil
}

func (m *Model) begin(q cube.Quarter) error {
	t, err := m.cube.BeginTurn(q.Normal, q.Angle)
	if err != nil {
		return err
	}
	m.turn = t
	return nil
}

// advance applies one animation step, committing the turn after its last
// step. A double move begins its second quarter on the following tick.
func (m *Model) advance() tea.Cmd {
	if m.turn == nil {
		return nil
	}
	if m.turn.Step() {
		return m.tickCmd()
	}
	m.turn.Commit()
	m.turn = nil

	if len(m.pending) > 0 {
		q := m.pending[0]
		m.pending = m.pending[1:]
		if err := m.begin(q); err != nil {
			m.setError(err)
			return nil
		}
		return m.tickCmd()
	}

	m.refresh()
	m.status = m.move.String() + " done"
	return nil
}

func (m *Model) refresh() {
	net, err := m.cube.Facelets()
	if err != nil {
		m.setError(err)
		return
	}
	m.net = net
}

func (m *Model) setError(err error) {
	if errors.Is(err, cube.ErrTurnInProgress) {
		return
	}
	m.log.Warn("terminal action failed", zap.Error(err))
	m.status = err.Error()
	m.failed = true
}

// Turning reports whether a face turn is animating.
func (m *Model) Turning() bool { return m.turn != nil }

// Status returns the current status line text.
func (m *Model) Status() string { return m.status }

func (m *Model) View() string {
	if m.quitting {
		return fmt.Sprintf("Goodbye! %d quarter turns, solved: %t\n", len(m.cube.History()), m.cube.IsSolved())
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubik"))
	b.WriteString("\n\n")
	b.WriteString(RenderNet(m.net))
	b.WriteString("\n")

	if m.turn != nil {
		done, total := m.turn.Progress()
		b.WriteString(turnStyle.Render(fmt.Sprintf("%s %s", m.move, progressBar(done, total, 20))))
		b.WriteString("\n")
	} else if m.cube.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}

	if m.failed {
		b.WriteString(errorStyle.Render(m.status))
	} else {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("turns: %d", len(m.cube.History()))))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("face keys turn  F5 scramble  P solved?  Esc quit"))
	b.WriteString("\n")

	return b.String()
}

// RenderNet draws U above the L F R B band and D below, each face as three
// rows of stickers.
func RenderNet(net cube.Facelets) string {
	var b strings.Builder
	single := func(f cube.Face) {
		for row := 0; row < 3; row++ {
			b.WriteString(blank())
			b.WriteString(faceRow(net, f, row))
			b.WriteByte('\n')
		}
	}

	single(cube.U)
	for row := 0; row < 3; row++ {
		for _, f := range netOrder {
			b.WriteString(faceRow(net, f, row))
		}
		b.WriteByte('\n')
	}
	single(cube.D)
	return b.String()
}

func faceRow(net cube.Facelets, f cube.Face, row int) string {
	var b strings.Builder
	for col := 0; col < 3; col++ {
		b.WriteString(sticker(net[f][row*3+col]))
	}
	return b.String()
}

func progressBar(done, total, width int) string {
	if total <= 0 {
		return ""
	}
	filled := done * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
