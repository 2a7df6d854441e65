package bubblestorm

import (
	"math"

	"github.com/vforge/bubblestorm/internal/core"
)

// integrateShip applies thrust input, friction, the speed clamp and screen
// wrapping to the ship.
//
// Friction is a per-tick multiplier, so the effective decay depends on the
// tick rate. That matches the classic tuning; a physical decay constant
// would change the feel.
func (g *Game) integrateShip(in core.InputFrame, dt float64) {
	ship := g.store.Ship()
	if ship == nil {
		return
	}

	var accel core.Vec
	if in.Has(core.ActionUp) {
		accel.Y += 1
	}
	if in.Has(core.ActionDown) {
		accel.Y -= 1
	}
	if in.Has(core.ActionLeft) {
		accel.X -= 1
	}
	if in.Has(core.ActionRight) {
		accel.X += 1
	}

	if n, ok := accel.Normalize(); ok {
		ship.Vel = ship.Vel.Add(n.Scale(g.cfg.Ship.Accel * dt))
	}

	ship.Vel = ship.Vel.Scale(g.cfg.Ship.Friction)
	ship.Vel = ship.Vel.ClampLen(g.cfg.Ship.MaxSpeed)
	ship.Pos = ship.Pos.Add(ship.Vel.Scale(dt))

	// Wrap around screen edges (the ship teleports, it does not bounce)
	halfW, halfH := g.camera.HalfExtents()
	if ship.Pos.X > halfW {
		ship.Pos.X = -halfW
	} else if ship.Pos.X < -halfW {
		ship.Pos.X = halfW
	}
	if ship.Pos.Y > halfH {
		ship.Pos.Y = -halfH
	} else if ship.Pos.Y < -halfH {
		ship.Pos.Y = halfH
	}
}

// integrateBubbles moves every bubble, counts down lifetimes and marks
// expired or out-of-bounds bubbles for removal. The sweep happens here so
// the collision stage only ever sees live bubbles.
func (g *Game) integrateBubbles(dt float64) {
	halfW, halfH := g.camera.HalfExtents()

	for i := range g.store.Bubbles {
		b := &g.store.Bubbles[i]
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		b.Lifetime -= dt
		if b.Lifetime <= 0 {
			b.Dead = true
			continue
		}
		if math.Abs(b.Pos.X) > halfW || math.Abs(b.Pos.Y) > halfH {
			b.Dead = true
		}
	}

	g.store.Sweep()
}

// integrateEnemies moves every enemy. Seekers steer toward the ship with a
// capped speed; without a ship they drift like floaters.
func (g *Game) integrateEnemies(dt float64) {
	ship := g.store.Ship()

	for i := range g.store.Enemies {
		e := &g.store.Enemies[i]
		if e.Variant == VariantSeeker && ship != nil {
			if dir, ok := ship.Pos.Sub(e.Pos).Normalize(); ok {
				e.Vel = e.Vel.Add(dir.Scale(g.cfg.Enemies.SeekerAccel * dt))
				e.Vel = e.Vel.ClampLen(g.cfg.Enemies.SeekerMaxSpeed)
			}
		}
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	}
}
