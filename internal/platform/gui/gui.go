// Package gui provides the windowed ebiten front-end. It drives the same
// frame-paced board adapter as the terminal front-end and draws the vector
// scene built by the simulation package.
package gui

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/sim"
)

// Window layout constants, in pixels.
const (
	hudHeight = 24
	margin    = 12
)

// Options configures the window.
type Options struct {
	CellSize  int
	DebugGrid bool
	Logger    *log.Logger
}

// Window is the ebiten.Game running one board.
type Window struct {
	game      *snake.Game
	cellSize  int
	debugGrid bool
	logger    *log.Logger
	input     core.InputFrame
	state     core.GameState
}

// NewWindow wraps a board adapter. The adapter is reset by Run.
func NewWindow(game *snake.Game, opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 24
	}
	return &Window{
		game:      game,
		cellSize:  opts.CellSize,
		debugGrid: opts.DebugGrid,
		logger:    logger,
		input:     core.NewInputFrame(),
	}
}

// Update runs one frame: it collects the keys pressed since the last frame
// and steps the adapter.
func (w *Window) Update() error {
	if quitRequested() {
		return ebiten.Termination
	}
	if debugToggled() {
		w.debugGrid = !w.debugGrid
		w.logger.Debug("debug grid toggled", "enabled", w.debugGrid)
	}

	w.input.Clear()
	collectActions(&w.input)
	w.state = w.game.Step(w.input).State
	return nil
}

// Layout keeps a fixed logical size derived from the board.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.size()
}

// size returns the logical window size for the board.
func (w *Window) size() (int, int) {
	s := w.game.Sim()
	if s == nil {
		return 480, 120
	}
	width := s.Width()*w.cellSize + 2*margin
	height := s.Height()*w.cellSize + hudHeight + 2*margin
	return max(width, 320), height
}

// layout maps the board onto the window below the HUD.
func (w *Window) layout(s *sim.Game) sim.Layout {
	width, _ := w.size()
	boardW := float32(s.Width() * w.cellSize)
	boardH := float32(s.Height() * w.cellSize)
	origin := sim.Point{
		X: (float32(width) - boardW) / 2,
		Y: hudHeight + margin,
	}
	return sim.NewLayout(origin, boardW, boardH, s.Confines())
}

// Run opens the window and plays the board until the window closes or the
// player quits. It returns the final game state.
func Run(game *snake.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	w := NewWindow(game, opts)
	game.Reset(cfg)

	width, height := w.size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Snake: " + game.Title())
	ebiten.SetTPS(max(cfg.TickRate, 1))

	w.logger.Info("window opened", "width", width, "height", height, "tps", cfg.TickRate)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return w.state, err
	}
	return w.state, nil
}
