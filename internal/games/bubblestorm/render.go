package bubblestorm

import (
	"fmt"

	"github.com/vforge/bubblestorm/internal/core"
)

// buildFrame emits the world-space draw commands for the current tick into
// dst and returns it. Emission order is paint order: border first, then
// bubbles, enemies and the ship on top.
func (g *Game) buildFrame(dst []core.DrawCmd) []core.DrawCmd {
	halfW, halfH := g.camera.HalfExtents()

	// Danger band boundary
	dst = append(dst, core.RectOutline(
		core.Vec{},
		core.V(2*(halfW-g.cfg.Border.Width), 2*(halfH-g.cfg.Border.Width)),
		core.ColorGray,
	))

	for i := range g.store.Bubbles {
		b := &g.store.Bubbles[i]
		// Soft glow behind the outline, plus two off-center highlights
		// that fake a light source on the upper left.
		dst = append(dst,
			core.FillCircle(b.Pos, b.Radius+2, b.Color.WithAlpha(0.2)),
			core.StrokeCircle(b.Pos, b.Radius, b.Color.WithAlpha(0.8)),
			core.FillCircle(b.Pos.Add(core.V(-0.2*b.Radius, 0.2*b.Radius)), 0.4*b.Radius, core.ColorWhite.WithAlpha(0.3)),
			core.FillCircle(b.Pos.Add(core.V(-0.1*b.Radius, 0.1*b.Radius)), 0.2*b.Radius, core.ColorWhite.WithAlpha(0.5)),
		)
	}

	for i := range g.store.Enemies {
		e := &g.store.Enemies[i]
		r := g.cfg.Enemies.Radius
		switch e.Variant {
		case VariantSeeker:
			// Upward-pointing triangle
			top := e.Pos.Add(core.V(0, r))
			left := e.Pos.Add(core.V(-0.866*r, -0.5*r))
			right := e.Pos.Add(core.V(0.866*r, -0.5*r))
			dst = append(dst,
				core.Line(top, left, core.ColorOrange),
				core.Line(left, right, core.ColorOrange),
				core.Line(right, top, core.ColorOrange),
			)
		default:
			dst = append(dst, core.StrokeCircle(e.Pos, r, core.ColorRed))
		}
	}

	if ship := g.store.Ship(); ship != nil {
		// The ship pales toward white at full health and reddens as it
		// takes damage.
		h := core.ClampF(ship.Health/g.cfg.Ship.Health, 0, 1)
		dst = append(dst, core.FillCircle(ship.Pos, g.cfg.Ship.Radius, core.RGB(1, h, h)))

		if dir, ok := g.aim.Sub(ship.Pos).Normalize(); ok {
			from := ship.Pos.Add(dir.Scale(g.cfg.Ship.Radius))
			to := from.Add(dir.Scale(20))
			dst = append(dst, core.Line(from, to, core.ColorGray))
		}
	}

	return dst
}

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	core.Rasterize(dst, g.camera, g.frame)

	state := g.State()
	hud := fmt.Sprintf(" Score: %d  Health: %.0f ", state.Score, core.MaxF(state.Health, 0))
	dst.DrawText(1, 0, hud)

	if g.state == StateGameOver {
		g.drawCenteredBox(dst, []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d", state.Score),
			fmt.Sprintf("Enemies destroyed: %d", g.enemiesDestroyed),
			"",
			"[R] Replay  [Q] Quit",
		})
	} else if g.paused {
		g.drawCenteredBox(dst, []string{
			"PAUSED",
			"",
			"[P] Resume  [Q] Quit",
		})
	}
}

// drawCenteredBox draws a bordered box with centered text lines in the
// middle of the screen.
func (g *Game) drawCenteredBox(dst *core.Screen, lines []string) {
	w := 0
	for _, line := range lines {
		if len(line) > w {
			w = len(line)
		}
	}
	w += 6
	h := len(lines) + 2

	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	dst.FillRect(x, y, w, h, ' ', core.ColorWhite)
	dst.DrawBox(x, y, w, h)
	for i, line := range lines {
		dst.DrawTextCentered(y+1+i, line)
	}
}
