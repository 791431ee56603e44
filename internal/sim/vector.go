package sim

// Point is a screen-space coordinate in pixels.
type Point struct {
	X, Y float32
}

// Polyline is a stroked line through Points.
type Polyline struct {
	Points []Point
	Width  float32
}

// Triangle is a filled three-point polygon.
type Triangle [3]Point

// Circle is a filled disc.
type Circle struct {
	Center Point
	Radius float32
}

// Scene is the set of vector primitives describing one frame.
type Scene struct {
	Body   Polyline
	Head   Triangle
	Neck   Polyline
	Apples []Circle
	Grid   []Polyline
}

// Layout maps grid cells onto a pixel rectangle.
type Layout struct {
	Origin   Point
	CellW    float32
	CellH    float32
	Confines Confines
}

// NewLayout fits the confines into a width x height pixel area at origin.
func NewLayout(origin Point, width, height float32, confines Confines) Layout {
	return Layout{
		Origin:   origin,
		CellW:    width / float32(confines.Cols),
		CellH:    height / float32(confines.Rows),
		Confines: confines,
	}
}

// CellCenter returns the pixel centre of a cell.
func (l Layout) CellCenter(p Position) Point {
	return Point{
		X: l.Origin.X + float32(p.Col)*l.CellW + l.CellW/2,
		Y: l.Origin.Y + float32(p.Row)*l.CellH + l.CellH/2,
	}
}

// Size returns the pixel extent of the whole grid.
func (l Layout) Size() (float32, float32) {
	return l.CellW * float32(l.Confines.Cols), l.CellH * float32(l.Confines.Rows)
}

// BuildScene converts the game state into draw primitives. The body is a
// polyline through cell centres, the head an arrow pointing along the
// heading and each apple a circle. With debugGrid the cell boundaries are
// added as thin lines.
func BuildScene(g *Game, l Layout, debugGrid bool) Scene {
	body := g.snake.Body()
	lineWidth := min(l.CellW, l.CellH) / 4

	scene := Scene{
		Body: Polyline{Points: make([]Point, 0, len(body)), Width: lineWidth},
	}
	for _, p := range body {
		scene.Body.Points = append(scene.Body.Points, l.CellCenter(p))
	}
	scene.Head, scene.Neck = headArrow(l, body[0], HeadDirection(body), lineWidth)

	for _, p := range g.apples.Positions() {
		scene.Apples = append(scene.Apples, Circle{
			Center: l.CellCenter(p),
			Radius: min(l.CellW, l.CellH) / 3,
		})
	}

	if debugGrid {
		scene.Grid = gridLines(l)
	}
	return scene
}

// headArrow returns a triangle whose tip points along d and the short stroke
// joining it to the back edge of the head cell.
func headArrow(l Layout, head Position, d Direction, width float32) (Triangle, Polyline) {
	c := l.CellCenter(head)
	delta := d.Delta()
	ux, uy := float32(delta.Col), float32(delta.Row)
	// perpendicular to the heading
	px, py := -uy, ux

	along := l.CellW / 4
	across := l.CellH / 4
	if d.Vertical() {
		along, across = l.CellH/4, l.CellW/4
	}

	tri := Triangle{
		{X: c.X + ux*along, Y: c.Y + uy*along},
		{X: c.X - ux*along + px*across, Y: c.Y - uy*along + py*across},
		{X: c.X - ux*along - px*across, Y: c.Y - uy*along - py*across},
	}
	neck := Polyline{
		Points: []Point{
			{X: c.X - ux*2*along, Y: c.Y - uy*2*along},
			{X: c.X - ux*along, Y: c.Y - uy*along},
		},
		Width: width,
	}
	return tri, neck
}

func gridLines(l Layout) []Polyline {
	w, h := l.Size()
	lines := make([]Polyline, 0, l.Confines.Rows+l.Confines.Cols+2)
	for col := 0; col <= l.Confines.Cols; col++ {
		x := l.Origin.X + float32(col)*l.CellW
		lines = append(lines, Polyline{
			Points: []Point{{X: x, Y: l.Origin.Y}, {X: x, Y: l.Origin.Y + h}},
			Width:  1,
		})
	}
	for row := 0; row <= l.Confines.Rows; row++ {
		y := l.Origin.Y + float32(row)*l.CellH
		lines = append(lines, Polyline{
			Points: []Point{{X: l.Origin.X, Y: y}, {X: l.Origin.X + w, Y: y}},
			Width:  1,
		})
	}
	return lines
}
