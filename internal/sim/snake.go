package sim

import (
	"fmt"

	"github.com/zyedidia/generic/list"
)

// Snake owns the body queue. The head is the front of the list and the tail
// the back; consecutive segments are always one step apart.
type Snake struct {
	body        *list.List[Position]
	length      int
	direction   Direction
	lengthening bool
	confines    Confines
}

// NewSnake creates a snake from a head-first body. The heading is inferred
// from the first two segments.
func NewSnake(body []Position, confines Confines) (*Snake, error) {
	if confines.Rows <= 0 || confines.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, confines.Cols, confines.Rows)
	}
	if err := validateBody(body, confines); err != nil {
		return nil, err
	}

	s := &Snake{
		body:      list.New[Position](),
		direction: HeadDirection(body),
		confines:  confines,
	}
	for _, p := range body {
		s.body.PushBack(p)
	}
	s.length = len(body)
	return s, nil
}

func validateBody(body []Position, confines Confines) error {
	if len(body) < 2 {
		return fmt.Errorf("%w: got %d", ErrBodyTooShort, len(body))
	}
	seen := make(map[Position]struct{}, len(body))
	for i, p := range body {
		if !confines.Contains(p) {
			return fmt.Errorf("%w: segment %d at %v", ErrBodyOutOfBounds, i, p)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: segment %d at %v", ErrBodyOverlaps, i, p)
		}
		seen[p] = struct{}{}
		if i > 0 {
			if _, ok := lookupDirection(body[i-1].Sub(p)); !ok {
				return fmt.Errorf("%w: %v and %v", ErrBodyNotContiguous, body[i-1], p)
			}
		}
	}
	return nil
}

// Advance moves the snake one cell along its heading. A pending lengthening
// keeps the tail in place. No collision checks are made; call Dead afterwards.
func (s *Snake) Advance() {
	s.body.PushFront(s.Head().Add(s.direction.Delta()))
	if s.lengthening {
		s.lengthening = false
		s.length++
		return
	}
	s.body.Remove(s.body.Back)
}

// Dead reports whether the head has left the confines or landed on another
// body segment.
func (s *Snake) Dead() bool {
	head := s.Head()
	if !s.confines.Contains(head) {
		return true
	}
	for n := s.body.Front.Next; n != nil; n = n.Next {
		if n.Value == head {
			return true
		}
	}
	return false
}

// Grow makes the next Advance keep the tail.
func (s *Snake) Grow() {
	s.lengthening = true
}

// Head returns the front segment.
func (s *Snake) Head() Position {
	return s.body.Front.Value
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return s.length
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Confines returns the grid bounds the snake collides with.
func (s *Snake) Confines() Confines {
	return s.confines
}

// Body returns a head-first copy of the segments.
func (s *Snake) Body() []Position {
	out := make([]Position, 0, s.length)
	s.body.Front.Each(func(p Position) {
		out = append(out, p)
	})
	return out
}

// Occupies reports whether any segment is at p.
func (s *Snake) Occupies(p Position) bool {
	for n := s.body.Front; n != nil; n = n.Next {
		if n.Value == p {
			return true
		}
	}
	return false
}

// turn sets the heading without any latch or reversal checks; Game.Steer is
// the public entry point.
func (s *Snake) turn(d Direction) {
	s.direction = d
}

// BodyGlyph returns the box-drawing rune joining a segment, where to is the
// direction towards the segment in front and from the direction in from the
// segment behind. Reversals cannot occur in a valid body and panic.
func BodyGlyph(to, from Direction) rune {
	switch [2]Direction{to, from} {
	case [2]Direction{Up, Up}, [2]Direction{Down, Down}:
		return '║'
	case [2]Direction{Right, Right}, [2]Direction{Left, Left}:
		return '═'
	case [2]Direction{Up, Right}, [2]Direction{Left, Down}:
		return '╝'
	case [2]Direction{Up, Left}, [2]Direction{Right, Down}:
		return '╚'
	case [2]Direction{Right, Up}, [2]Direction{Down, Left}:
		return '╔'
	case [2]Direction{Down, Right}, [2]Direction{Left, Up}:
		return '╗'
	}
	invariant("BodyGlyph", "%s after %s reverses the body", to, from)
	return 0
}

// HeadGlyph returns the arrow drawn on the head cell.
func HeadGlyph(d Direction) rune {
	switch d {
	case Up:
		return '^'
	case Right:
		return '>'
	case Down:
		return 'v'
	default:
		return '<'
	}
}

// TailGlyph returns the straight piece drawn on the tail cell.
func TailGlyph(d Direction) rune {
	if d.Vertical() {
		return '║'
	}
	return '═'
}
