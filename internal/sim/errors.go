package sim

import (
	"errors"
	"fmt"
)

// Construction errors returned by NewSnake and NewGame.
var (
	ErrInvalidSize       = errors.New("sim: grid dimensions must be positive")
	ErrBodyTooShort      = errors.New("sim: snake body needs at least two segments")
	ErrBodyNotContiguous = errors.New("sim: snake body segments are not adjacent")
	ErrBodyOutOfBounds   = errors.New("sim: snake body lies outside the grid")
	ErrBodyOverlaps      = errors.New("sim: snake body overlaps itself")
)

// InvariantError is the panic value raised when the simulation is asked to do
// something that a consistent game state can never require, such as inferring
// a direction between two cells that are not neighbours.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("sim: %s: %s", e.Op, e.Detail)
}

func invariant(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)})
}
