package sim

import (
	"fmt"
	"strings"
)

// Direction is the snake's heading.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every heading in declaration order.
var Directions = [...]Direction{Up, Right, Down, Left}

// Delta returns the one-cell step for the direction.
func (d Direction) Delta() Position {
	switch d {
	case Up:
		return Position{Row: -1, Col: 0}
	case Right:
		return Position{Row: 0, Col: 1}
	case Down:
		return Position{Row: 1, Col: 0}
	case Left:
		return Position{Row: 0, Col: -1}
	}
	invariant("Delta", "unknown direction %d", int(d))
	return Position{}
}

// Opposite returns the reversed heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Vertical reports whether the direction moves along rows.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDirection converts a case-insensitive name into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "right":
		return Right, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	}
	return Up, fmt.Errorf("sim: unknown direction %q", s)
}

// lookupDirection maps a unit delta to the direction producing it.
func lookupDirection(delta Position) (Direction, bool) {
	switch delta {
	case Position{Row: -1, Col: 0}:
		return Up, true
	case Position{Row: 1, Col: 0}:
		return Down, true
	case Position{Row: 0, Col: 1}:
		return Right, true
	case Position{Row: 0, Col: -1}:
		return Left, true
	}
	return Up, false
}

// DirectionBetween returns the direction travelled from previous to current.
// The two cells must be orthogonal neighbours; anything else panics with an
// *InvariantError.
func DirectionBetween(current, previous Position) Direction {
	d, ok := lookupDirection(current.Sub(previous))
	if !ok {
		invariant("DirectionBetween", "%v and %v are not adjacent", current, previous)
	}
	return d
}

// HeadDirection returns the heading implied by the first two body segments.
func HeadDirection(body []Position) Direction {
	if len(body) < 2 {
		invariant("HeadDirection", "body has %d segments", len(body))
	}
	return DirectionBetween(body[0], body[1])
}

// StraightBody builds a straight snake of the given length whose head is at
// head and which is moving in dir. Segments extend away from the heading.
func StraightBody(head Position, dir Direction, length int) []Position {
	body := make([]Position, 0, max(length, 0))
	step := dir.Opposite().Delta()
	p := head
	for range length {
		body = append(body, p)
		p = p.Add(step)
	}
	return body
}
