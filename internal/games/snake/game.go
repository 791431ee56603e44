// Package snake adapts the simulation in internal/sim to the frame-driven
// registry.Game interface: it paces simulation ticks against the front-end
// frame rate, maps actions to steering, and draws the board into a
// core.Screen.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/sim"
)

// hudHeight is the number of screen rows above the board.
const hudHeight = 2

// Options configures a board adapter.
type Options struct {
	Board      config.BoardConfig
	Interval   time.Duration // Base simulation tick interval
	Difficulty config.DifficultyConfig
	Logger     *log.Logger
}

// Game wraps one sim.Game for a configured board.
type Game struct {
	opts       Options
	logger     *log.Logger
	difficulty *config.DifficultyManager

	sim     *sim.Game
	rng     *rand.Rand
	seed    int64
	initErr error

	frame     uint64
	fps       int
	countdown int // Frames until the next simulation tick
	paused    bool
	won       bool

	screenW int
	screenH int
}

// New creates an adapter for the board. Call Reset before stepping.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		opts:       opts,
		logger:     logger.With("board", opts.Board.Name),
		difficulty: config.NewDifficultyManager(opts.Difficulty, opts.Interval),
	}
}

// RegisterBoards registers one factory per configured board.
func RegisterBoards(cfg config.Config, logger *log.Logger) {
	for _, b := range cfg.Boards {
		opts := Options{
			Board:      b,
			Interval:   cfg.Timing.TickInterval,
			Difficulty: cfg.Difficulty,
			Logger:     logger,
		}
		registry.Register(b.Name, b.DisplayTitle(), func() registry.Game {
			return New(opts)
		})
	}
}

// ApplyPreset switches the difficulty preset. It takes effect on the next
// tick.
func (g *Game) ApplyPreset(preset config.DifficultyPreset) {
	g.opts.Difficulty.Preset = preset
	g.opts.Interval = config.PresetInterval(preset, g.opts.Interval)
	g.difficulty = config.NewDifficultyManager(g.opts.Difficulty, g.opts.Interval)
}

// ID returns the board name.
func (g *Game) ID() string {
	return g.opts.Board.Name
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.opts.Board.DisplayTitle()
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	g.fps = cfg.TickRate
	if g.fps <= 0 {
		g.fps = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.frame = 0
	g.paused = false
	g.won = false

	g.sim, g.initErr = g.newSim()
	if g.initErr != nil {
		g.logger.Error("cannot start board", "error", g.initErr)
		return
	}
	g.countdown = g.framesPerTick()
	g.logger.Info("game reset", "seed", g.seed, "apples", len(g.sim.Apples()))
}

func (g *Game) newSim() (*sim.Game, error) {
	b := g.opts.Board
	body, err := b.Body()
	if err != nil {
		return nil, err
	}
	s, err := sim.NewGame(b.Width, b.Height, body, g.rng)
	if err != nil {
		return nil, err
	}
	s.PlaceApples(b.ApplePositions()...)
	if len(s.Apples()) == 0 {
		s.SpawnApple()
	}
	return s, nil
}

// Resize updates the screen dimensions used for layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Sim exposes the underlying simulation for front-ends that draw it
// themselves. It is nil when the board failed to start.
func (g *Game) Sim() *sim.Game {
	return g.sim
}

// Interval returns the current simulation tick interval.
func (g *Game) Interval() time.Duration {
	score := 0
	if g.sim != nil {
		score = g.sim.Score()
	}
	return g.difficulty.Interval(score)
}

func (g *Game) framesPerTick() int {
	return config.FramesPerTick(g.Interval(), g.fps)
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frame++

	if g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if input.Has(core.ActionRestart) && g.finished() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.fps,
		})
		return core.StepResult{State: g.State()}
	}

	if g.finished() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// The simulation latches the first accepted turn per tick.
	for _, a := range input.Actions {
		if d, ok := actionDirection(a); ok {
			g.sim.Steer(d)
		}
	}

	g.countdown--
	if g.countdown > 0 {
		return core.StepResult{State: g.State()}
	}

	g.tick()
	g.countdown = g.framesPerTick()
	return core.StepResult{State: g.State(), Moved: true}
}

// tick runs one simulation step and logs what happened.
func (g *Game) tick() {
	score := g.sim.Score()
	state := g.sim.Tick()

	if g.sim.Score() > score {
		g.logger.Debug("apple eaten", "score", g.sim.Score(), "length", g.sim.Snake().Len())
	}
	if state == sim.Over {
		g.logger.Info("game over", "score", g.sim.Score(), "ticks", g.sim.Ticks(), "cause", g.deathCause())
		return
	}
	if g.sim.BoardFull() {
		g.won = true
		g.logger.Info("board full", "score", g.sim.Score(), "ticks", g.sim.Ticks())
	}
}

func (g *Game) deathCause() string {
	if !g.sim.Confines().Contains(g.sim.Snake().Head()) {
		return "wall"
	}
	return "self"
}

func (g *Game) finished() bool {
	return g.won || g.sim.Over()
}

// actionDirection maps a steering action to a heading.
func actionDirection(a core.Action) (sim.Direction, bool) {
	switch a {
	case core.ActionUp:
		return sim.Up, true
	case core.ActionRight:
		return sim.Right, true
	case core.ActionDown:
		return sim.Down, true
	case core.ActionLeft:
		return sim.Left, true
	default:
		return sim.Up, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		Length:   g.sim.Snake().Len(),
		GameOver: g.finished(),
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Snapshot returns the simulation snapshot for determinism verification.
func (g *Game) Snapshot() sim.Snapshot {
	if g.sim == nil {
		return sim.Snapshot{}
	}
	return g.sim.Snapshot()
}

// StatusLine returns the HUD text shared by the front-ends.
func (g *Game) StatusLine() string {
	if g.sim == nil {
		return fmt.Sprintf(" %s | error: %v", g.Title(), g.initErr)
	}
	return fmt.Sprintf(" %s | Score: %d  Length: %d  Speed: %s",
		g.Title(), g.sim.Score(), g.sim.Snake().Len(), g.Interval())
}

// Overlay returns the headline and hint for the current state, or empty
// strings while the game is running.
func (g *Game) Overlay() (string, string) {
	switch {
	case g.sim == nil:
		return "Board error", g.initErr.Error()
	case g.won:
		return "Board Full!", fmt.Sprintf("Final Score: %d  (R to restart)", g.sim.Score())
	case g.sim.Over():
		return "Game Over", fmt.Sprintf("Score: %d  (R to restart)", g.sim.Score())
	case g.paused:
		return "Paused", "Press P to continue"
	}
	return "", ""
}
