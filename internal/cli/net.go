package cli

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/cubik/internal/cube"
	"github.com/Faultbox/cubik/internal/logger"
	"github.com/Faultbox/cubik/internal/puzzle"
	"github.com/Faultbox/cubik/internal/tui"
)

var (
	netScramble int
	netSeed     uint64
	netColor    bool
)

var netCmd = &cobra.Command{
	Use:   "net [moves...]",
	Short: "Apply moves and print the sticker net",
	Long: `Apply a move sequence to a solved cube and print the resulting net.

Moves use standard notation (R U R' U' F2 ...). With --scramble a random
sequence is applied first; --seed makes it reproducible.`,
	Example: `  cubetty net "R U R' U'"
  cubetty net --scramble 20 --seed 42 --color`,
	RunE: runNet,
}

func init() {
	netCmd.Flags().IntVar(&netScramble, "scramble", 0, "Apply this many random moves first")
	netCmd.Flags().Uint64Var(&netSeed, "seed", 1, "Scramble seed")
	netCmd.Flags().BoolVar(&netColor, "color", false, "Draw the net with colored stickers")
	rootCmd.AddCommand(netCmd)
}

func runNet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	moves, err := cube.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if netScramble > 0 {
		rng := rand.New(rand.NewPCG(netSeed, netSeed^0x9e3779b97f4a7c15))
		moves = append(cube.Scramble(rng, netScramble), moves...)
	}

	c := puzzle.NewCube(cfg, logger.Named("cube"))
	if err := c.Apply(nil, moves...); err != nil {
		return err
	}
	logger.Debug("moves applied", zap.String("moves", cube.FormatMoves(moves)))

	net, err := c.Facelets()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(moves) > 0 {
		fmt.Fprintf(out, "moves:  %s\n", cube.FormatMoves(moves))
	}
	if netColor {
		fmt.Fprint(out, tui.RenderNet(net))
	} else {
		fmt.Fprint(out, net.String())
	}
	fmt.Fprintf(out, "turns:  %d\n", len(c.History()))
	fmt.Fprintf(out, "solved: %t\n", c.IsSolved())
	return nil
}
