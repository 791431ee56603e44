package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/sim"
)

var (
	colorBackground = color.RGBA{0x12, 0x14, 0x18, 0xff}
	colorBoard      = color.RGBA{0x1c, 0x20, 0x26, 0xff}
	colorBorder     = color.RGBA{0x5a, 0x60, 0x6a, 0xff}
	colorGrid       = color.RGBA{0x3a, 0x40, 0x48, 0xff}
	colorBody       = color.RGBA{0x3c, 0xb3, 0x71, 0xff}
	colorHead       = color.RGBA{0x7c, 0xfc, 0x00, 0xff}
	colorDead       = color.RGBA{0xb2, 0x22, 0x22, 0xff}
	colorApple      = color.RGBA{0xe8, 0x3a, 0x3a, 0xff}
	colorShade      = color.RGBA{0x00, 0x00, 0x00, 0xa0}
)

// Draw renders the board, the HUD line and any overlay.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	ebitenutil.DebugPrintAt(screen, w.game.StatusLine(), margin/2, (hudHeight-16)/2)

	s := w.game.Sim()
	if s == nil {
		w.drawOverlay(screen)
		return
	}

	l := w.layout(s)
	boardW, boardH := l.Size()
	vector.DrawFilledRect(screen, l.Origin.X, l.Origin.Y, boardW, boardH, colorBoard, false)
	vector.StrokeRect(screen, l.Origin.X-1, l.Origin.Y-1, boardW+2, boardH+2, 2, colorBorder, false)

	scene := sim.BuildScene(s, l, w.debugGrid)
	for _, line := range scene.Grid {
		strokePolyline(screen, line, colorGrid)
	}
	for _, a := range scene.Apples {
		vector.DrawFilledCircle(screen, a.Center.X, a.Center.Y, a.Radius, colorApple, true)
	}

	body, head := colorBody, colorHead
	if s.Over() {
		body, head = colorDead, colorDead
	}
	strokePolyline(screen, scene.Body, body)
	strokePolyline(screen, scene.Neck, head)
	fillTriangle(screen, scene.Head, head)

	w.drawOverlay(screen)
}

// drawOverlay shades the window and prints the adapter's overlay text.
func (w *Window) drawOverlay(screen *ebiten.Image) {
	line1, line2 := w.game.Overlay()
	if line1 == "" {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, float32(height/2-24), float32(width), 48, colorShade, false)

	// The debug font is 6x16 pixels per glyph.
	ebitenutil.DebugPrintAt(screen, line1, core.Clamp((width-6*len(line1))/2, 0, width), height/2-20)
	ebitenutil.DebugPrintAt(screen, line2, core.Clamp((width-6*len(line2))/2, 0, width), height/2)
}

// strokePolyline draws a polyline with round joins and caps.
func strokePolyline(dst *ebiten.Image, line sim.Polyline, clr color.Color) {
	if len(line.Points) < 2 {
		return
	}
	var path vector.Path
	path.MoveTo(line.Points[0].X, line.Points[0].Y)
	for _, p := range line.Points[1:] {
		path.LineTo(p.X, p.Y)
	}

	strokeOpts := &vector.StrokeOptions{
		Width:    line.Width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(clr)
	vector.StrokePath(dst, &path, strokeOpts, drawOpts)
}

// fillTriangle fills a triangle.
func fillTriangle(dst *ebiten.Image, t sim.Triangle, clr color.Color) {
	var path vector.Path
	path.MoveTo(t[0].X, t[0].Y)
	path.LineTo(t[1].X, t[1].Y)
	path.LineTo(t[2].X, t[2].Y)
	path.Close()

	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(clr)
	vector.FillPath(dst, &path, nil, drawOpts)
}
