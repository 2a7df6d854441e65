package bubblestorm

import (
	"math/rand"

	"github.com/vforge/bubblestorm/internal/config"
	"github.com/vforge/bubblestorm/internal/core"
)

// bubbleSpawn describes one rolled shot: the projectile plus the recoil
// impulse to apply to the ship.
type bubbleSpawn struct {
	Pos      core.Vec
	Vel      core.Vec
	Radius   float64
	Lifetime float64
	Color    core.Color
	Recoil   core.Vec
}

// rollBubble computes a shot from the ship toward the aim target, with the
// aim angle perturbed uniformly within +/- cfg.Spread radians. Returns false
// when the aim target coincides with the ship position: the direction is
// undefined, so the shot is skipped for this tick.
func rollBubble(shipPos, aim core.Vec, cfg config.BubbleConfig, rng *rand.Rand) (bubbleSpawn, bool) {
	dir, ok := aim.Sub(shipPos).Normalize()
	if !ok {
		return bubbleSpawn{}, false
	}

	angle := uniform(rng, -cfg.Spread, cfg.Spread)
	dir = dir.Rotate(angle)
	speed := uniform(rng, cfg.MinSpeed, cfg.MaxSpeed)

	return bubbleSpawn{
		Pos:      shipPos,
		Vel:      dir.Scale(speed),
		Radius:   uniform(rng, cfg.MinRadius, cfg.MaxRadius),
		Lifetime: uniform(rng, cfg.MinLifetime, cfg.MaxLifetime),
		Color:    core.HSL(rng.Float64()*360, cfg.Saturation, cfg.Lightness),
		Recoil:   dir.Scale(-cfg.Recoil),
	}, true
}

// updateSpawns handles the spawn stage: one bubble per tick while fire is
// held, and interval-based enemy spawning.
func (g *Game) updateSpawns(in core.InputFrame, dt float64) {
	if ship := g.store.Ship(); ship != nil && in.Has(core.ActionFire) {
		if sp, ok := rollBubble(ship.Pos, g.aim, g.cfg.Bubbles, g.rng); ok {
			ship.Vel = ship.Vel.Add(sp.Recoil)
			g.store.AddBubble(Bubble{
				Pos:      sp.Pos,
				Vel:      sp.Vel,
				Radius:   sp.Radius,
				Lifetime: sp.Lifetime,
				Color:    sp.Color,
			})
			g.bubblesFired++
		}
	}

	// Interval accumulator: exactly one spawn per window regardless of
	// frame-time jitter.
	g.spawnTimer -= dt
	if g.spawnTimer <= 0 {
		g.spawnEnemy()
		interval := g.currentSpawnInterval()
		g.spawnTimer += interval
		if g.spawnTimer <= 0 {
			// A dt larger than the interval still yields one spawn.
			g.spawnTimer = interval
		}
	}
}

// currentSpawnInterval returns the seconds between enemy spawns at the
// current difficulty level.
func (g *Game) currentSpawnInterval() float64 {
	return g.difficulty.SpawnInterval(g.cfg.Enemies.SpawnInterval, g.score(), g.tickCount)
}

// spawnEnemy places a new enemy at a uniformly random position within the
// visible bounds with a random drift velocity.
func (g *Game) spawnEnemy() {
	halfW, halfH := g.camera.HalfExtents()
	drift := g.difficulty.Drift(g.cfg.Enemies.MaxDrift, g.score(), g.tickCount)

	variant := VariantFloater
	chance := g.difficulty.SeekerChance(g.score(), g.tickCount)
	if g.mode == ModeHunter && chance < hunterSeekerShare {
		chance = hunterSeekerShare
	}
	if chance > 0 && g.rng.Float64() < chance {
		variant = VariantSeeker
	}

	g.store.AddEnemy(Enemy{
		Pos:     core.V(uniform(g.rng, -halfW, halfW), uniform(g.rng, -halfH, halfH)),
		Vel:     core.V(uniform(g.rng, -drift, drift), uniform(g.rng, -drift, drift)),
		Health:  g.cfg.Enemies.Health,
		Variant: variant,
	})
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
