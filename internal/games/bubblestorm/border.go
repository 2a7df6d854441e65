package bubblestorm

import "math"

// applyBorderRule damages and bounces the ship while it sits in the border
// band and is still moving outward. The rule is level-triggered: it re-fires
// every tick the condition holds, so lingering in the band while pushing
// outward drains health fast.
//
// "Moving outward" means the velocity's dot product with the unit vector
// from the ship back to the center is negative.
func (g *Game) applyBorderRule() {
	ship := g.store.Ship()
	if ship == nil {
		return
	}

	halfW, halfH := g.camera.HalfExtents()
	limitX := halfW - g.cfg.Border.Width
	limitY := halfH - g.cfg.Border.Width

	if math.Abs(ship.Pos.X) <= limitX && math.Abs(ship.Pos.Y) <= limitY {
		return
	}

	toCenter, ok := ship.Pos.Scale(-1).Normalize()
	if !ok {
		// Ship exactly at the origin has no escape direction; with any
		// sane bounds it cannot be in the band either. Skip the tick.
		return
	}

	if ship.Vel.Dot(toCenter) < 0 {
		ship.Health -= g.cfg.Border.Damage
		ship.Vel = ship.Vel.Add(toCenter.Scale(g.cfg.Border.Bounce))
	}
}
