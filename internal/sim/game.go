package sim

import (
	"fmt"
	"slices"
)

// State is the game's lifecycle stage.
type State int

const (
	Running State = iota
	Over
)

func (s State) String() string {
	if s == Over {
		return "over"
	}
	return "running"
}

// Game ties the snake, the apples and the score together. It is driven by an
// external clock calling Advance (or Tick) once per step and is not safe for
// concurrent use.
type Game struct {
	width  int
	height int
	rng    Source

	initialBody   []Position
	initialApples []Position

	snake     *Snake
	apples    *Apples
	score     int
	ticks     uint64
	state     State
	boardFull bool

	// directionChanged latches after the first accepted Steer of a tick.
	directionChanged bool
}

// NewGame creates a running game on a width x height grid with the given
// head-first body and no apples. Callers normally follow up with SpawnApple.
func NewGame(width, height int, body []Position, rng Source) (*Game, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	g := &Game{
		width:       width,
		height:      height,
		rng:         rng,
		initialBody: slices.Clone(body),
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// PlaceApples adds apples at fixed positions and remembers them so that Reset
// puts them back. Positions outside the grid or under the snake are skipped.
func (g *Game) PlaceApples(positions ...Position) {
	confines := g.Confines()
	for _, p := range positions {
		if !confines.Contains(p) || g.snake.Occupies(p) {
			continue
		}
		g.apples.Insert(p)
		g.initialApples = append(g.initialApples, p)
	}
}

// Reset recreates the snake and apples from the starting layout and clears
// the score.
func (g *Game) Reset() error {
	s, err := NewSnake(g.initialBody, g.Confines())
	if err != nil {
		return err
	}
	g.snake = s
	g.apples = NewApples(g.initialApples...)
	g.score = 0
	g.ticks = 0
	g.state = Running
	g.boardFull = false
	g.directionChanged = false
	return nil
}

// SpawnApple adds one apple on a free cell. It returns false, and marks the
// board as full, when the snake covers every cell.
func (g *Game) SpawnApple() bool {
	_, ok := g.apples.Spawn(g.rng, g.Confines(), g.snake.Body())
	g.boardFull = !ok
	return ok
}

// Advance performs one simulation step: move the snake, eat an apple under
// the new head, respawn when the last apple is gone and release the steering
// latch. It does not decide whether the game is over; see Tick.
func (g *Game) Advance() {
	g.ticks++
	g.snake.Advance()

	head := g.snake.Head()
	if g.apples.Remove(head) {
		g.score++
		g.snake.Grow()
	}
	if g.apples.Empty() {
		g.SpawnApple()
	}
	g.directionChanged = false
}

// Tick advances a running game and moves it to Over if the snake died. It
// returns the resulting state; an Over game is left untouched.
func (g *Game) Tick() State {
	if g.state == Over {
		return g.state
	}
	g.Advance()
	if g.snake.Dead() {
		g.state = Over
	}
	return g.state
}

// Steer requests a new heading. The request is ignored when the game is over,
// when a change was already accepted this tick, when it matches the current
// heading, or when it would reverse the snake onto itself.
func (g *Game) Steer(d Direction) bool {
	if g.state == Over || g.directionChanged {
		return false
	}
	current := g.snake.Direction()
	if d == current || d == current.Opposite() {
		return false
	}
	g.snake.turn(d)
	g.directionChanged = true
	return true
}

// Snake exposes the snake for read-only inspection.
func (g *Game) Snake() *Snake { return g.snake }

// Apples returns the apple positions in row-major order.
func (g *Game) Apples() []Position { return g.apples.Positions() }

// Score returns the number of apples eaten.
func (g *Game) Score() int { return g.score }

// Ticks returns the number of steps taken since the last reset.
func (g *Game) Ticks() uint64 { return g.ticks }

// State returns the lifecycle stage.
func (g *Game) State() State { return g.state }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.state == Over }

// BoardFull reports whether the last spawn found no free cell.
func (g *Game) BoardFull() bool { return g.boardFull }

// Width returns the number of columns.
func (g *Game) Width() int { return g.width }

// Height returns the number of rows.
func (g *Game) Height() int { return g.height }

// Confines returns the grid bounds.
func (g *Game) Confines() Confines {
	return Confines{Rows: g.height, Cols: g.width}
}
