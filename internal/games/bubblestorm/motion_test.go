package bubblestorm

import (
	"testing"

	"github.com/vforge/bubblestorm/internal/core"
)

func TestShipWrapsAroundEdges(t *testing.T) {
	g := newTestGame(t, 1)
	halfW, halfH := g.camera.HalfExtents()
	ship := g.store.Ship()

	ship.Pos = core.V(halfW+1, 0)
	g.integrateShip(core.NewInputFrame(), testDt)
	if ship.Pos.X != -halfW {
		t.Errorf("Ship past the right edge wrapped to X=%v, expected %v", ship.Pos.X, -halfW)
	}

	ship.Pos = core.V(0, -halfH-1)
	g.integrateShip(core.NewInputFrame(), testDt)
	if ship.Pos.Y != halfH {
		t.Errorf("Ship past the bottom edge wrapped to Y=%v, expected %v", ship.Pos.Y, halfH)
	}
}

func TestFrictionDecaysVelocity(t *testing.T) {
	g := newTestGame(t, 1)
	ship := g.store.Ship()
	ship.Vel = core.V(100, 0)

	g.integrateShip(core.NewInputFrame(), testDt)

	want := 100 * g.cfg.Ship.Friction
	if ship.Vel.X != want {
		t.Errorf("Vel.X after one coasting tick = %v, expected %v", ship.Vel.X, want)
	}
}

func TestDiagonalThrustIsNormalized(t *testing.T) {
	g := newTestGame(t, 1)
	ship := g.store.Ship()

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Set(core.ActionRight)
	g.integrateShip(in, testDt)

	// Diagonal input must not thrust harder than a single axis.
	diagonal := ship.Vel.Len()

	g2 := newTestGame(t, 1)
	in2 := core.NewInputFrame()
	in2.Set(core.ActionRight)
	g2.integrateShip(in2, testDt)
	single := g2.store.Ship().Vel.Len()

	if diff := diagonal - single; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Diagonal speed %v differs from single-axis %v", diagonal, single)
	}
}

func TestOpposingThrustCancels(t *testing.T) {
	g := newTestGame(t, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionRight)
	g.integrateShip(in, testDt)

	if !g.store.Ship().Vel.IsZero() {
		t.Errorf("Opposing inputs produced velocity %v, expected zero", g.store.Ship().Vel)
	}
}

func TestBubbleDespawnsOutOfBounds(t *testing.T) {
	g := newTestGame(t, 1)
	halfW, _ := g.camera.HalfExtents()

	g.store.AddBubble(Bubble{Pos: core.V(halfW - 1, 0), Vel: core.V(500, 0), Lifetime: 10})
	g.integrateBubbles(0.1)

	if len(g.store.Bubbles) != 0 {
		t.Error("Bubble leaving the visible bounds should despawn")
	}
}

func TestSeekerSteersTowardShip(t *testing.T) {
	g := newTestGame(t, 1)
	g.store.Ship().Pos = core.V(100, 0)
	g.store.AddEnemy(Enemy{Pos: core.V(-100, 0), Health: 100, Variant: VariantSeeker})

	g.integrateEnemies(testDt)

	e := g.store.Enemies[0]
	if e.Vel.X <= 0 {
		t.Errorf("Seeker Vel.X = %v, expected movement toward the ship", e.Vel.X)
	}
	if speed := e.Vel.Len(); speed > g.cfg.Enemies.SeekerMaxSpeed {
		t.Errorf("Seeker speed %v exceeds cap %v", speed, g.cfg.Enemies.SeekerMaxSpeed)
	}
}

func TestFloaterKeepsDrift(t *testing.T) {
	g := newTestGame(t, 1)
	g.store.AddEnemy(Enemy{Pos: core.V(0, 0), Vel: core.V(30, -20), Health: 100})

	g.integrateEnemies(1.0)

	e := g.store.Enemies[0]
	if e.Vel != core.V(30, -20) {
		t.Errorf("Floater velocity changed to %v", e.Vel)
	}
	if e.Pos != core.V(30, -20) {
		t.Errorf("Floater at %v after 1s, expected (30, -20)", e.Pos)
	}
}
