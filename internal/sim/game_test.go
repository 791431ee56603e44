package sim

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

// fixedSource always picks the same index, which makes spawns predictable.
type fixedSource int

func (f fixedSource) Intn(n int) int {
	return int(f) % n
}

func newTestGame(t *testing.T, width, height int, body []Position, rng Source) *Game {
	t.Helper()
	g, err := NewGame(width, height, body, rng)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	return g
}

func TestNewGame(t *testing.T) {
	body := StraightBody(Position{Row: 10, Col: 10}, Left, 5)
	g := newTestGame(t, 20, 20, body, fixedSource(0))

	if g.State() != Running {
		t.Errorf("State() = %v, expected running", g.State())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
	if len(g.Apples()) != 0 {
		t.Errorf("Apples() = %v, expected none", g.Apples())
	}
	if g.Snake().Direction() != Left {
		t.Errorf("Direction() = %v, expected left", g.Snake().Direction())
	}
	if g.Width() != 20 || g.Height() != 20 {
		t.Errorf("size = %dx%d, expected 20x20", g.Width(), g.Height())
	}
}

func TestNewGameErrors(t *testing.T) {
	if _, err := NewGame(0, 5, nil, fixedSource(0)); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewGame(0, 5) error = %v, expected ErrInvalidSize", err)
	}
	if _, err := NewGame(5, 5, []Position{{0, 0}}, fixedSource(0)); !errors.Is(err, ErrBodyTooShort) {
		t.Errorf("NewGame() with one segment error = %v, expected ErrBodyTooShort", err)
	}
}

func TestGrowthLaw(t *testing.T) {
	body := StraightBody(Position{Row: 2, Col: 2}, Right, 3)
	g := newTestGame(t, 10, 5, body, fixedSource(0))
	g.PlaceApples(Position{Row: 2, Col: 3}, Position{Row: 0, Col: 0})

	g.Advance() // eats (2,3)
	if g.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", g.Score())
	}
	if g.Snake().Len() != 3 {
		t.Errorf("Len() on the eating tick = %d, expected 3", g.Snake().Len())
	}
	if g.apples.Contains(Position{Row: 2, Col: 3}) {
		t.Error("eaten apple should be removed")
	}

	g.Advance() // growth lands now
	if g.Snake().Len() != 4 {
		t.Errorf("Len() after growth = %d, expected 4", g.Snake().Len())
	}

	g.Advance()
	if g.Snake().Len() != 4 {
		t.Errorf("Len() on a plain tick = %d, expected 4", g.Snake().Len())
	}
}

func TestRespawnWhenLastAppleEaten(t *testing.T) {
	body := []Position{{0, 1}, {0, 0}}
	// 1x4 corridor; fixedSource(0) picks the first free cell
	g := newTestGame(t, 4, 1, body, fixedSource(0))
	g.PlaceApples(Position{Row: 0, Col: 2})

	g.Advance()

	// body is now (0,2),(0,1) with growth pending; free cells are (0,0),(0,3)
	expected := []Position{{0, 0}}
	if got := g.Apples(); !equalBody(got, expected) {
		t.Errorf("Apples() = %v, expected %v", got, expected)
	}
}

func TestSpawnApple(t *testing.T) {
	g := newTestGame(t, 3, 3, []Position{{1, 2}, {1, 1}, {1, 0}}, fixedSource(3))
	if !g.SpawnApple() {
		t.Fatal("SpawnApple() failed on a board with free cells")
	}
	// free cells: (0,0),(0,1),(0,2),(2,0),(2,1),(2,2); index 3 -> (2,0)
	expected := []Position{{2, 0}}
	if got := g.Apples(); !equalBody(got, expected) {
		t.Errorf("Apples() = %v, expected %v", got, expected)
	}
}

func TestBoardFull(t *testing.T) {
	g := newTestGame(t, 2, 1, []Position{{0, 0}, {0, 1}}, fixedSource(0))
	if g.SpawnApple() {
		t.Error("SpawnApple() should fail when the snake covers the grid")
	}
	if !g.BoardFull() {
		t.Error("BoardFull() should be true")
	}
}

func TestTickDetectsWall(t *testing.T) {
	g := newTestGame(t, 3, 3, []Position{{0, 1}, {1, 1}, {2, 1}}, fixedSource(0))
	g.PlaceApples(Position{Row: 2, Col: 2})

	if state := g.Tick(); state != Over {
		t.Fatalf("Tick() = %v, expected over", state)
	}
	if !g.Over() {
		t.Error("Over() should be true")
	}

	ticks := g.Ticks()
	g.Tick()
	if g.Ticks() != ticks {
		t.Error("Tick() should not advance a finished game")
	}
}

func TestDeadSnakeStillEatsApple(t *testing.T) {
	// head (1,1) moving down onto (2,1); that cell holds both an apple and the
	// snake's own body, so the snake dies and eats in the same step
	body := []Position{{1, 1}, {1, 2}, {2, 2}, {2, 1}, {2, 0}}
	g := newTestGame(t, 4, 4, body, fixedSource(0))
	g.Steer(Down)
	g.PlaceApples(Position{Row: 3, Col: 3})
	g.apples.Insert(Position{Row: 2, Col: 1})

	g.Tick()

	if !g.Over() {
		t.Fatal("game should be over after self-collision")
	}
	if g.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", g.Score())
	}
}

func TestSteerLatchAndReversal(t *testing.T) {
	g := newTestGame(t, 10, 10, StraightBody(Position{Row: 5, Col: 5}, Right, 3), fixedSource(0))

	if g.Steer(Left) {
		t.Error("Steer(Left) while heading right should be rejected")
	}
	if g.Steer(Right) {
		t.Error("Steer(Right) while heading right should be a no-op")
	}
	if !g.Steer(Up) {
		t.Fatal("Steer(Up) should be accepted")
	}
	if g.Steer(Left) {
		t.Error("a second change in the same tick should be latched out")
	}
	if g.Snake().Direction() != Up {
		t.Errorf("Direction() = %v, expected up", g.Snake().Direction())
	}

	g.Advance()

	if !g.Steer(Left) {
		t.Error("Steer(Left) should be accepted after the tick released the latch")
	}
}

func TestRapidDoubleTurnCannotReverse(t *testing.T) {
	g := newTestGame(t, 10, 10, StraightBody(Position{Row: 5, Col: 5}, Right, 3), fixedSource(0))
	g.PlaceApples(Position{Row: 0, Col: 0})

	g.Steer(Up)
	g.Steer(Left) // would fold the snake back onto its neck
	g.Tick()

	if g.Over() {
		t.Errorf("snake died after a latched double turn, body = %v", g.Snake().Body())
	}
	if g.Snake().Head() != (Position{Row: 4, Col: 5}) {
		t.Errorf("Head() = %v, expected (4,5)", g.Snake().Head())
	}
}

func TestSteerIgnoredWhenOver(t *testing.T) {
	g := newTestGame(t, 3, 3, []Position{{0, 1}, {1, 1}, {2, 1}}, fixedSource(0))
	g.Tick()
	if g.Steer(Left) {
		t.Error("Steer() should be rejected once the game is over")
	}
}

func TestReset(t *testing.T) {
	body := StraightBody(Position{Row: 2, Col: 2}, Right, 3)
	g := newTestGame(t, 10, 5, body, fixedSource(0))
	g.PlaceApples(Position{Row: 2, Col: 3})

	for !g.Over() {
		g.Tick()
	}
	if err := g.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	if g.State() != Running || g.Score() != 0 || g.Ticks() != 0 {
		t.Errorf("Reset() left state=%v score=%d ticks=%d", g.State(), g.Score(), g.Ticks())
	}
	if !equalBody(g.Snake().Body(), body) {
		t.Errorf("Body() after Reset = %v, expected %v", g.Snake().Body(), body)
	}
	if !g.apples.Contains(Position{Row: 2, Col: 3}) {
		t.Error("Reset() should restore the pre-placed apple")
	}
}

func TestPlaceApplesSkipsInvalidCells(t *testing.T) {
	body := StraightBody(Position{Row: 2, Col: 2}, Right, 3)
	g := newTestGame(t, 5, 5, body, fixedSource(0))
	g.PlaceApples(Position{Row: 2, Col: 1}, Position{Row: 9, Col: 9}, Position{Row: 4, Col: 4})

	expected := []Position{{4, 4}}
	if got := g.Apples(); !equalBody(got, expected) {
		t.Errorf("Apples() = %v, expected %v", got, expected)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	run := func() Snapshot {
		g := newTestGame(t, 12, 12, StraightBody(Position{Row: 6, Col: 6}, Left, 4), rand.New(rand.NewSource(12345)))
		g.SpawnApple()
		turns := map[int]Direction{3: Up, 6: Left, 9: Down, 14: Right, 18: Up}
		for i := 0; i < 40 && !g.Over(); i++ {
			if d, ok := turns[i]; ok {
				g.Steer(d)
			}
			g.Tick()
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Tick != s2.Tick || s1.Score != s2.Score || s1.Head != s2.Head || s1.Dir != s2.Dir || s1.State != s2.State {
		t.Errorf("snapshots differ: %+v vs %+v", s1, s2)
	}
	if !slices.Equal(s1.Apples, s2.Apples) {
		t.Errorf("apples differ: %v vs %v", s1.Apples, s2.Apples)
	}
}
