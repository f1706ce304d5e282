package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/cubik/internal/controls"
	"github.com/Faultbox/cubik/internal/logger"
	"github.com/Faultbox/cubik/internal/puzzle"
	"github.com/Faultbox/cubik/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play the puzzle in a full-screen terminal view.

Keys follow the configured bindings. The defaults are:
  Q/A W/S E/D R/F T/G Y/H - turn R L U D F B (each pair is both directions)
  F5                      - scramble
  P                       - report whether the cube is solved
  Esc / Ctrl+C            - quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	keys, err := puzzle.NewKeymap(cfg)
	if err != nil {
		return err
	}
	c := puzzle.NewCube(cfg, logger.Named("cube"))
	ctl := controls.New(c, keys, nil, controls.WithLogger(logger.Named("controls")))

	logger.Info("starting terminal session", zap.Int("bindings", keys.Len()))
	model := tui.New(c, keys, ctl, cfg.Cube.FrameInterval, logger.Named("tui"))
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
