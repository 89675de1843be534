package breakout

import (
	"fmt"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/physics"
)

// Render draws the current game state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	vp := core.NewViewport(
		float64(g.cfg.Court.Width), float64(g.cfg.Court.Height),
		core.NewRect(0, 1, dst.Width(), dst.Height()-1),
	)

	g.renderHUD(dst)
	for _, b := range g.bounds {
		g.renderBlock(dst, vp, b, BoundChar)
	}
	for _, b := range g.blocks {
		if b.HitPoints() > 0 {
			g.renderBlock(dst, vp, b, BlockChar)
		}
	}
	g.renderPaddle(dst, vp)
	g.renderBalls(dst, vp)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives and level name on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score.Value()))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("%s (%d)", g.Level().Name, g.State().Level)
	} else {
		levelText = fmt.Sprintf("%s %d/%d", g.Level().Name, g.levelIndex+1, len(g.levels))
	}
	dst.DrawText(dst.Width()-len([]rune(levelText))-1, 0, levelText)
}

func (g *Game) renderBlock(dst *core.Screen, vp core.Viewport, b *physics.Block, glyph rune) {
	r := b.CollisionRectangle()
	ul := r.UpperLeft()
	cells := vp.RectToCells(ul.X, ul.Y, r.Width(), r.Height())
	dst.FillRect(cells, glyph, fillColor(b.Fill()))

	// Strokes only fit around blocks drawn large enough to keep an inside.
	if s := b.Stroke(); s != nil && cells.W >= 3 && cells.H >= 3 {
		dst.DrawBoxColored(cells, fillColor(*s))
	}
}

func (g *Game) renderPaddle(dst *core.Screen, vp core.Viewport) {
	r := g.paddle.Rectangle()
	ul := r.UpperLeft()
	cells := vp.RectToCells(ul.X, ul.Y, r.Width(), r.Height())
	// A paddle is one row tall however the court is scaled.
	cells.Y = cells.Bottom() - 1
	cells.H = 1
	dst.FillRect(cells, PaddleChar, fillColor(g.paddle.Fill()))
}

func (g *Game) renderBalls(dst *core.Screen, vp core.Viewport) {
	area := vp.Area()
	for _, b := range g.balls {
		c := b.Center()
		x, y := vp.ToCell(c.X, c.Y)
		if area.Contains(x, y) {
			dst.SetColored(x, y, BallChar, core.ColorBrightWhite)
		}
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateCountdown:
		tickRate := max(g.runtime.TickRate, 1)
		secs := (g.countdown + tickRate - 1) / tickRate
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("%s ... %d", g.Level().Name, secs))

	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Value()))

	case StateWin:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score.Value()))
	}
}

func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// fillColor maps a fill to a terminal colour. Images and unknown names are
// drawn gray.
func fillColor(f physics.Fill) core.Color {
	if c, ok := core.ColorByName(f.Color); ok {
		return c
	}
	return core.ColorGray
}
