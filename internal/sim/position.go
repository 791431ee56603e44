package sim

import "fmt"

// Position is a grid cell addressed by row and column. Coordinates are signed
// so that a head which has left the grid can still be represented.
type Position struct {
	Row, Col int
}

// Add returns p translated by delta.
func (p Position) Add(delta Position) Position {
	return Position{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

// Sub returns the delta that takes other to p.
func (p Position) Sub(other Position) Position {
	return Position{Row: p.Row - other.Row, Col: p.Col - other.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Confines are the grid bounds used for wall collisions.
type Confines struct {
	Rows, Cols int
}

// Contains reports whether p lies within [0,Rows) x [0,Cols).
func (c Confines) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < c.Rows && p.Col >= 0 && p.Col < c.Cols
}

// Cells returns the number of cells on the grid.
func (c Confines) Cells() int {
	return c.Rows * c.Cols
}
