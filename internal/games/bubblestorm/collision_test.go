package bubblestorm

import (
	"testing"

	"github.com/vforge/bubblestorm/internal/core"
)

func TestBubbleDamagesEnemy(t *testing.T) {
	g := newTestGame(t, 1)
	g.store.AddEnemy(Enemy{Pos: core.V(0, 0), Health: 100})
	g.store.AddBubble(Bubble{Pos: core.V(10, 0), Lifetime: 1})

	burst, destroyed := g.resolveCollisions()

	if burst != 1 || destroyed != 0 {
		t.Errorf("burst=%d destroyed=%d, expected 1 and 0", burst, destroyed)
	}
	if len(g.store.Bubbles) != 0 {
		t.Error("Bubble should pop on hit")
	}
	if h := g.store.Enemies[0].Health; h != 75 {
		t.Errorf("Enemy health = %v, expected 75", h)
	}
}

func TestEnemyDestroyedAtZeroHealth(t *testing.T) {
	g := newTestGame(t, 1)
	g.store.AddEnemy(Enemy{Pos: core.V(0, 0), Health: 25})
	g.store.AddBubble(Bubble{Pos: core.V(0, 5), Lifetime: 1})

	_, destroyed := g.resolveCollisions()

	if destroyed != 1 {
		t.Errorf("destroyed = %d, expected 1", destroyed)
	}
	if len(g.store.Enemies) != 0 {
		t.Error("Enemy at zero health should be removed")
	}
}

func TestBubbleHitsAtMostOneEnemy(t *testing.T) {
	g := newTestGame(t, 1)
	// Both enemies are within hit range of the single bubble.
	first := g.store.AddEnemy(Enemy{Pos: core.V(-10, 0), Health: 100})
	g.store.AddEnemy(Enemy{Pos: core.V(10, 0), Health: 100})
	g.store.AddBubble(Bubble{Pos: core.V(0, 0), Lifetime: 1})

	burst, _ := g.resolveCollisions()

	if burst != 1 {
		t.Fatalf("burst = %d, expected 1", burst)
	}
	// Creation order breaks the tie: the earlier enemy takes the hit.
	if g.store.Enemies[0].ID != first {
		t.Fatal("Sweep reordered enemies")
	}
	if g.store.Enemies[0].Health != 75 {
		t.Errorf("First enemy health = %v, expected 75", g.store.Enemies[0].Health)
	}
	if g.store.Enemies[1].Health != 100 {
		t.Errorf("Second enemy health = %v, expected untouched 100", g.store.Enemies[1].Health)
	}
}

func TestMultipleBubblesStackDamage(t *testing.T) {
	g := newTestGame(t, 1)
	g.store.AddEnemy(Enemy{Pos: core.V(0, 0), Health: 50})
	g.store.AddBubble(Bubble{Pos: core.V(5, 0), Lifetime: 1})
	g.store.AddBubble(Bubble{Pos: core.V(-5, 0), Lifetime: 1})

	burst, destroyed := g.resolveCollisions()

	if burst != 2 || destroyed != 1 {
		t.Errorf("burst=%d destroyed=%d, expected 2 and 1", burst, destroyed)
	}
	if len(g.store.Enemies) != 0 || len(g.store.Bubbles) != 0 {
		t.Error("Both bubbles and the enemy should be removed")
	}
}

func TestOutOfRangeIsNoHit(t *testing.T) {
	g := newTestGame(t, 1)
	g.store.AddEnemy(Enemy{Pos: core.V(0, 0), Health: 100})
	// Exactly at the hit radius: the check is strictly less-than.
	g.store.AddBubble(Bubble{Pos: core.V(g.cfg.Combat.HitRadius, 0), Lifetime: 1})

	burst, _ := g.resolveCollisions()

	if burst != 0 {
		t.Errorf("burst = %d, expected 0 at exact hit radius", burst)
	}
	if len(g.store.Bubbles) != 1 {
		t.Error("Missing bubble should survive the pass")
	}
}
