package sim

import "strings"

// AppleGlyph marks an apple in text renderings.
const AppleGlyph = 'O'

// RenderGrid draws the game onto a height x width character grid. Empty
// cells are spaces. Segments outside the grid (a head that just crashed into
// a wall) are skipped.
func RenderGrid(g *Game) [][]rune {
	grid := make([][]rune, g.height)
	for r := range grid {
		grid[r] = make([]rune, g.width)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}
	set := func(p Position, ch rune) {
		if g.Confines().Contains(p) {
			grid[p.Row][p.Col] = ch
		}
	}

	for _, p := range g.apples.Positions() {
		set(p, AppleGlyph)
	}
	// Tail first so the head stays visible over a segment it ran into.
	segs := SnakeGlyphs(g.snake.Body())
	for i := len(segs) - 1; i >= 0; i-- {
		set(segs[i].Position, segs[i].Glyph)
	}
	return grid
}

// Segment pairs a body position with the rune drawn for it.
type Segment struct {
	Position Position
	Glyph    rune
}

// SnakeGlyphs maps a head-first body onto head, joint and tail glyphs.
func SnakeGlyphs(body []Position) []Segment {
	if len(body) < 2 {
		invariant("SnakeGlyphs", "body has %d segments", len(body))
	}
	out := make([]Segment, 0, len(body))
	out = append(out, Segment{Position: body[0], Glyph: HeadGlyph(HeadDirection(body))})
	for i := 1; i+1 < len(body); i++ {
		to := DirectionBetween(body[i-1], body[i])
		from := DirectionBetween(body[i], body[i+1])
		out = append(out, Segment{Position: body[i], Glyph: BodyGlyph(to, from)})
	}
	last := len(body) - 1
	tailDir := DirectionBetween(body[last-1], body[last])
	out = append(out, Segment{Position: body[last], Glyph: TailGlyph(tailDir)})
	return out
}

// FormatFrame wraps a rendered grid in a plain ASCII border.
func FormatFrame(grid [][]rune) string {
	width := 0
	if len(grid) > 0 {
		width = len(grid[0])
	}
	border := strings.Repeat("-", width+2)

	var b strings.Builder
	b.WriteString(border)
	b.WriteByte('\n')
	for _, row := range grid {
		b.WriteByte('|')
		b.WriteString(string(row))
		b.WriteString("|\n")
	}
	b.WriteString(border)
	b.WriteByte('\n')
	return b.String()
}

// String renders the game as a framed text frame.
func (g *Game) String() string {
	return FormatFrame(RenderGrid(g))
}
