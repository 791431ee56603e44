package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/sim"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Draw HUD
	g.renderHUD(dst)

	if g.sim == nil {
		line1, line2 := g.Overlay()
		renderOverlay(dst, line1, line2)
		return
	}

	frame, ok := g.boardRect(dst)
	if !ok {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBoxColored(frame, core.ColorGray)
	originX, originY := frame.X+1, frame.Y+1

	for _, a := range g.sim.Apples() {
		dst.SetColored(originX+a.Col, originY+a.Row, sim.AppleGlyph, core.ColorBrightRed)
	}

	confines := g.sim.Confines()
	color := core.ColorGreen
	if g.sim.Over() {
		color = core.ColorRed
	}
	segs := sim.SnakeGlyphs(g.sim.Snake().Body())
	for i := len(segs) - 1; i >= 0; i-- {
		seg := segs[i]
		if !confines.Contains(seg.Position) {
			continue
		}
		c := color
		if i == 0 && !g.sim.Over() {
			c = core.ColorBrightGreen
		}
		dst.SetColored(originX+seg.Position.Col, originY+seg.Position.Row, seg.Glyph, c)
	}

	if line1, line2 := g.Overlay(); line1 != "" {
		renderOverlay(dst, line1, line2)
	}
}

// boardRect returns the framed board area centred below the HUD.
func (g *Game) boardRect(dst *core.Screen) (core.Rect, bool) {
	w := g.sim.Width() + 2
	h := g.sim.Height() + 2
	if dst.Width() < w || dst.Height() < h+hudHeight {
		return core.Rect{}, false
	}
	r := core.CenteredRect(dst.Width(), dst.Height()-hudHeight, w, h)
	r.Y += hudHeight
	return r, true
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(0, 0, g.StatusLine(), core.ColorBrightWhite)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderOverlay draws a centered overlay message.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, 5)

	dst.FillRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorYellow)
	drawCentered(dst, box, box.Y+1, line1, core.ColorYellow)
	drawCentered(dst, box, box.Y+3, line2, core.ColorDefault)
}

// drawCentered draws text centered within the box on row y.
func drawCentered(dst *core.Screen, box core.Rect, y int, text string, c core.Color) {
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawTextColored(x, y, text, c)
}
