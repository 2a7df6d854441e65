package bubblestorm

import (
	"testing"

	"github.com/vforge/bubblestorm/internal/core"
)

func TestStoreAssignsOrderedHandles(t *testing.T) {
	s := NewStore()

	a := s.AddBubble(Bubble{})
	b := s.AddEnemy(Enemy{})
	c := s.AddBubble(Bubble{})

	if !(a < b && b < c) {
		t.Errorf("Handles %d, %d, %d are not creation-ordered", a, b, c)
	}
}

func TestSweepPreservesOrder(t *testing.T) {
	s := NewStore()
	first := s.AddEnemy(Enemy{Pos: core.V(1, 0)})
	s.AddEnemy(Enemy{Pos: core.V(2, 0), Dead: true})
	third := s.AddEnemy(Enemy{Pos: core.V(3, 0)})

	_, removed := s.Sweep()

	if removed != 1 {
		t.Errorf("Sweep removed %d enemies, expected 1", removed)
	}
	if len(s.Enemies) != 2 || s.Enemies[0].ID != first || s.Enemies[1].ID != third {
		t.Error("Sweep did not preserve creation order of survivors")
	}
}

func TestSpawnShipReplacesExisting(t *testing.T) {
	s := NewStore()
	old := s.SpawnShip(100)
	old.Pos = core.V(50, 50)

	fresh := s.SpawnShip(100)

	if fresh == old {
		t.Error("SpawnShip should create a new ship")
	}
	if !fresh.Pos.IsZero() {
		t.Errorf("Fresh ship at %v, expected origin", fresh.Pos)
	}
}

func TestClearRemovesEverything(t *testing.T) {
	s := NewStore()
	s.SpawnShip(100)
	s.AddBubble(Bubble{})
	s.AddEnemy(Enemy{})

	s.Clear()

	if s.Ship() != nil || len(s.Bubbles) != 0 || len(s.Enemies) != 0 {
		t.Error("Clear left entities behind")
	}
}

func TestClearKeepsHandleCounter(t *testing.T) {
	s := NewStore()
	a := s.AddBubble(Bubble{})
	s.Clear()
	b := s.AddBubble(Bubble{})

	if b <= a {
		t.Errorf("Handle %d reused after Clear, last was %d", b, a)
	}
}
