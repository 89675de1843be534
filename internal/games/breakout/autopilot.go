package breakout

import "github.com/vovakirdan/arkanoid/internal/core"

// Autopilot returns the paddle input that tracks the most urgent ball: the
// lowest one falling towards the paddle, or the lowest ball when none falls.
// Headless runs use it in place of a player.
func (g *Game) Autopilot() core.InputFrame {
	frame := core.NewInputFrame()
	if g.state != StatePlaying || len(g.balls) == 0 {
		return frame
	}

	target := g.balls[0]
	falling := target.Velocity().DY > 0
	for _, b := range g.balls[1:] {
		down := b.Velocity().DY > 0
		switch {
		case down && !falling:
			target, falling = b, true
		case down == falling && b.Center().Y > target.Center().Y:
			target = b
		}
	}

	paddle := g.paddle.Rectangle()
	dx := target.Center().X - paddle.Center().X
	deadband := paddle.Width() / 8
	switch {
	case dx < -deadband:
		frame.Set(core.ActionLeft)
	case dx > deadband:
		frame.Set(core.ActionRight)
	}
	return frame
}
