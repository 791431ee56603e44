package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/sim"
)

var (
	flagTicks int
	flagSteer []string
)

var showCmd = &cobra.Command{
	Use:   "show [board]",
	Short: "Print a board as text",
	Long: `Builds the board, runs the given number of ticks without a display and
prints the framed text rendering. With a fixed --seed the output is
reproducible.

--steer takes tick:direction pairs applied before that tick runs.

Examples:
  snake show classic
  snake show small --ticks 4 --seed 7
  snake show classic --ticks 6 --steer 2:up --steer 4:right`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Number of ticks to run before printing")
	showCmd.Flags().StringArrayVar(&flagSteer, "steer", nil, "Steering as tick:direction (repeatable)")
}

func runShow(cmd *cobra.Command, args []string) error {
	board, err := appConfig.Board(firstArg(args))
	if err != nil {
		return err
	}
	steering, err := parseSteering(flagSteer)
	if err != nil {
		return err
	}

	g, err := newHeadlessGame(board, flagSeed)
	if err != nil {
		return err
	}

	for tick := range flagTicks {
		if d, ok := steering[tick]; ok {
			g.Steer(d)
		}
		if g.Tick() == sim.Over {
			break
		}
	}

	fmt.Print(g.String())
	snap := g.Snapshot()
	fmt.Printf("tick %d  score %d  length %d  heading %s  state %s\n",
		snap.Tick, snap.Score, snap.SnakeLen, snap.Dir, snap.State)
	return nil
}

// newHeadlessGame builds a simulation for the board with the given seed.
func newHeadlessGame(board config.BoardConfig, seed int64) (*sim.Game, error) {
	body, err := board.Body()
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := sim.NewGame(board.Width, board.Height, body, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	g.PlaceApples(board.ApplePositions()...)
	if len(g.Apples()) == 0 {
		g.SpawnApple()
	}
	return g, nil
}

// parseSteering parses tick:direction pairs.
func parseSteering(specs []string) (map[int]sim.Direction, error) {
	out := make(map[int]sim.Direction, len(specs))
	for _, s := range specs {
		var tick int
		var name string
		if _, err := fmt.Sscanf(s, "%d:%s", &tick, &name); err != nil {
			return nil, fmt.Errorf("invalid --steer %q: want tick:direction", s)
		}
		d, err := sim.ParseDirection(name)
		if err != nil {
			return nil, fmt.Errorf("invalid --steer %q: %w", s, err)
		}
		out[tick] = d
	}
	return out, nil
}
