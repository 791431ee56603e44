package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/gui"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagDifficulty string
	flagGUI        bool
	flagNoColor    bool
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the named board, or the first configured board.

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Space           - Pause
  R                 - Restart (after game over)
  Q/Esc             - Quit
  G/F3              - Toggle debug grid (--gui only)

Difficulty options:
  easy   - Slow start (300ms per move), speeds up with score
  normal - Configured speed, speeds up with score
  hard   - Fast start (120ms per move), speeds up with score
  fixed  - Configured speed, never speeds up

Examples:
  snake play
  snake play small --difficulty easy
  snake play classic --gui
  snake play --config ./my-snake.yaml`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{annotationInteractive: "true"},
	RunE:        runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed (default from config)")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a window instead of the terminal")
	playCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable terminal colours")
}

func runPlay(cmd *cobra.Command, args []string) error {
	board, err := appConfig.Board(firstArg(args))
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(registry.IDs(), ", "))
	}

	preset := appConfig.Difficulty.Preset
	if flagDifficulty != "" {
		if preset, err = config.ParseDifficultyPreset(flagDifficulty); err != nil {
			return err
		}
	}

	return playBoard(board.Name, preset, terminalConfig())
}

// playBoard runs one board in the selected front-end and prints the result.
func playBoard(id string, preset config.DifficultyPreset, cfg core.RuntimeConfig) error {
	g, err := registry.Create(id)
	if err != nil {
		return err
	}
	game, ok := g.(*snake.Game)
	if !ok {
		return fmt.Errorf("board %q is not a snake board", id)
	}
	game.ApplyPreset(preset)
	logger.Info("starting board", "board", id, "difficulty", preset, "gui", flagGUI, "seed", cfg.Seed)

	var state core.GameState
	if flagGUI {
		state, err = gui.Run(game, cfg, gui.Options{
			CellSize:  appConfig.Render.CellSize,
			DebugGrid: appConfig.Debug.Grid,
			Logger:    logger,
		})
	} else {
		state, err = tui.Run(game, cfg, tui.Options{
			Colors: appConfig.Render.Colors && !flagNoColor,
			Logger: logger,
		})
	}
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	fmt.Printf("%s: score %d, length %d\n", game.Title(), state.Score, state.Length)
	return nil
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: fps(),
		Seed:     flagSeed,
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
