package sim

import (
	"errors"
	"testing"
)

func mustSnake(t *testing.T, body []Position, confines Confines) *Snake {
	t.Helper()
	s, err := NewSnake(body, confines)
	if err != nil {
		t.Fatalf("NewSnake() failed: %v", err)
	}
	return s
}

func equalBody(a, b []Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewSnakeValidation(t *testing.T) {
	confines := Confines{Rows: 5, Cols: 5}
	tests := []struct {
		name     string
		body     []Position
		confines Confines
		expected error
	}{
		{"empty", nil, confines, ErrBodyTooShort},
		{"single segment", []Position{{1, 1}}, confines, ErrBodyTooShort},
		{"gap", []Position{{1, 1}, {1, 3}}, confines, ErrBodyNotContiguous},
		{"diagonal", []Position{{1, 1}, {2, 2}}, confines, ErrBodyNotContiguous},
		{"outside", []Position{{0, 0}, {-1, 0}}, confines, ErrBodyOutOfBounds},
		{"overlap", []Position{{1, 1}, {1, 2}, {1, 1}}, confines, ErrBodyOverlaps},
		{"zero grid", []Position{{0, 0}, {0, 1}}, Confines{}, ErrInvalidSize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSnake(tc.body, tc.confines)
			if !errors.Is(err, tc.expected) {
				t.Errorf("NewSnake() error = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestAdvanceMovesHeadByDelta(t *testing.T) {
	confines := Confines{Rows: 9, Cols: 9}
	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			// body pointing in d so that the heading is d itself
			body := StraightBody(Position{Row: 4, Col: 4}, d, 3)
			s := mustSnake(t, body, confines)
			before := s.Head()

			s.Advance()

			if got := s.Head(); got != before.Add(d.Delta()) {
				t.Errorf("Head() after Advance = %v, expected %v", got, before.Add(d.Delta()))
			}
			if s.Len() != 3 {
				t.Errorf("Len() = %d, expected 3", s.Len())
			}
			if tail := s.body.Back.Value; tail != body[1] {
				t.Errorf("tail after Advance = %v, expected %v", tail, body[1])
			}
		})
	}
}

func TestAdvanceAfterTurn(t *testing.T) {
	s := mustSnake(t, StraightBody(Position{Row: 2, Col: 2}, Right, 3), Confines{Rows: 5, Cols: 5})
	s.turn(Down)
	s.Advance()

	expected := []Position{{3, 2}, {2, 2}, {2, 1}}
	if got := s.Body(); !equalBody(got, expected) {
		t.Errorf("Body() = %v, expected %v", got, expected)
	}
}

func TestGrowthKeepsTail(t *testing.T) {
	s := mustSnake(t, StraightBody(Position{Row: 2, Col: 2}, Right, 3), Confines{Rows: 5, Cols: 5})
	tail := s.body.Back.Value

	s.Grow()
	if !s.lengthening {
		t.Fatal("Grow should set the lengthening flag")
	}
	s.Advance()

	if s.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", s.Len())
	}
	if got := s.body.Back.Value; got != tail {
		t.Errorf("tail after growth = %v, expected %v", got, tail)
	}
	if s.lengthening {
		t.Error("Advance should clear the lengthening flag")
	}

	s.Advance()
	if s.Len() != 4 {
		t.Errorf("Len() after plain advance = %d, expected 4", s.Len())
	}
}

func TestDeadOffGrid(t *testing.T) {
	// 3x3 grid, vertical snake moving up out of the top row
	s := mustSnake(t, []Position{{0, 1}, {1, 1}, {2, 1}}, Confines{Rows: 3, Cols: 3})
	if s.Dead() {
		t.Fatal("Dead() should be false before moving")
	}

	s.Advance()

	if s.Head() != (Position{Row: -1, Col: 1}) {
		t.Errorf("Head() = %v, expected (-1,1)", s.Head())
	}
	if !s.Dead() {
		t.Error("Dead() should be true after leaving the grid")
	}
}

func TestDeadThroughRightWall(t *testing.T) {
	s := mustSnake(t, []Position{{1, 2}, {1, 1}, {1, 0}}, Confines{Rows: 3, Cols: 3})
	s.Advance()

	expected := []Position{{1, 3}, {1, 2}, {1, 1}}
	if got := s.Body(); !equalBody(got, expected) {
		t.Errorf("Body() = %v, expected %v", got, expected)
	}
	if !s.Dead() {
		t.Error("Dead() should be true with column 3 on a width-3 grid")
	}
}

func TestDeadSelfCollision(t *testing.T) {
	// head at (1,1) moving down into (2,1), which is part of the body
	body := []Position{{1, 1}, {1, 2}, {2, 2}, {2, 1}, {2, 0}}
	s := mustSnake(t, body, Confines{Rows: 4, Cols: 4})
	s.turn(Down)
	s.Advance()

	if !s.Dead() {
		t.Errorf("Dead() should be true, body = %v", s.Body())
	}
}

func TestChasingTailIsSafe(t *testing.T) {
	// 2x2 loop: the head moves into the cell the tail vacates
	body := []Position{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	s := mustSnake(t, body, Confines{Rows: 2, Cols: 2})
	s.turn(Down)
	s.Advance()

	if s.Dead() {
		t.Errorf("Dead() should be false when following the tail, body = %v", s.Body())
	}
}

func TestBodyGlyph(t *testing.T) {
	tests := []struct {
		to, from Direction
		expected rune
	}{
		{Up, Up, '║'},
		{Up, Right, '╝'},
		{Up, Left, '╚'},
		{Right, Up, '╔'},
		{Right, Right, '═'},
		{Right, Down, '╚'},
		{Down, Right, '╗'},
		{Down, Down, '║'},
		{Down, Left, '╔'},
		{Left, Up, '╗'},
		{Left, Down, '╝'},
		{Left, Left, '═'},
	}

	for _, tc := range tests {
		if got := BodyGlyph(tc.to, tc.from); got != tc.expected {
			t.Errorf("BodyGlyph(%v, %v) = %q, expected %q", tc.to, tc.from, got, tc.expected)
		}
	}
}

func TestBodyGlyphStraightForEveryDirection(t *testing.T) {
	for _, d := range Directions {
		g := BodyGlyph(d, d)
		if g != '║' && g != '═' {
			t.Errorf("BodyGlyph(%v, %v) = %q, expected a straight piece", d, d, g)
		}
	}
}

func TestBodyGlyphReversalPanics(t *testing.T) {
	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			expectInvariant(t, func() { BodyGlyph(d, d.Opposite()) })
		})
	}
}
