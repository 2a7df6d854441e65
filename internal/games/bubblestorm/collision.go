package bubblestorm

// resolveCollisions runs one collision pass between all live bubbles and
// enemies. Bubbles are scanned in creation order; each takes the first live
// enemy (also creation order) within the hit radius, applies damage, and is
// excluded from further matching. Marks accumulate during the pass and are
// applied in a single sweep at the end, so no entity despawns twice and the
// scan order stays deterministic.
func (g *Game) resolveCollisions() (burst, destroyed int) {
	hitRadius := g.cfg.Combat.HitRadius
	damage := g.cfg.Combat.BubbleDamage

	for i := range g.store.Bubbles {
		b := &g.store.Bubbles[i]
		if b.Dead {
			continue
		}

		for j := range g.store.Enemies {
			e := &g.store.Enemies[j]
			if e.Dead {
				continue
			}

			if b.Pos.Distance(e.Pos) < hitRadius {
				e.Health -= damage
				b.Dead = true
				burst++

				if e.Health <= 0 {
					e.Dead = true
					destroyed++
				}
				break // A bubble damages at most one enemy
			}
		}
	}

	g.store.Sweep()
	return burst, destroyed
}
