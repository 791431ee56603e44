package sim

// Snapshot captures the observable game state for determinism testing and
// debugging.
type Snapshot struct {
	Tick      uint64
	Score     int
	SnakeLen  int
	Head      Position
	Dir       Direction
	Apples    []Position
	State     State
	BoardFull bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.ticks,
		Score:     g.score,
		SnakeLen:  g.snake.Len(),
		Head:      g.snake.Head(),
		Dir:       g.snake.Direction(),
		Apples:    g.apples.Positions(),
		State:     g.state,
		BoardFull: g.boardFull,
	}
}
