package bubblestorm

import "github.com/vforge/bubblestorm/internal/core"

// ID is a stable handle assigned at creation and never reused.
type ID uint64

// Ship is the player's vessel. Exactly one exists while a round is playing,
// none after game over.
type Ship struct {
	Pos    core.Vec
	Vel    core.Vec
	Health float64
}

// EnemyVariant selects enemy behavior.
type EnemyVariant int

const (
	VariantFloater EnemyVariant = iota // Drifts on its spawn velocity
	VariantSeeker                      // Steers toward the ship
)

// String returns a human-readable name for the variant.
func (v EnemyVariant) String() string {
	switch v {
	case VariantFloater:
		return "Floater"
	case VariantSeeker:
		return "Seeker"
	default:
		return "Unknown"
	}
}

// Bubble is a fired projectile. Lifetime counts down in seconds; the bubble
// is removed when it expires, leaves the visible bounds, or scores a hit.
type Bubble struct {
	ID       ID
	Pos      core.Vec
	Vel      core.Vec
	Radius   float64
	Lifetime float64
	Color    core.Color
	Dead     bool
}

// Enemy is a spawned opponent, removed when its health drops to zero.
type Enemy struct {
	ID      ID
	Pos     core.Vec
	Vel     core.Vec
	Health  float64
	Variant EnemyVariant
	Dead    bool
}

// Store owns all live gameplay entities. Handles are creation-ordered and
// iteration over the slices follows creation order, which keeps collision
// tie-breaking deterministic. Removal is two-phase: systems mark entities
// Dead during a pass, Sweep removes every marked entity exactly once.
type Store struct {
	nextID  ID
	ship    *Ship
	Bubbles []Bubble
	Enemies []Enemy
}

// NewStore creates an empty entity store.
func NewStore() *Store {
	return &Store{}
}

// SpawnShip creates the round's ship at the origin with zero velocity,
// replacing any existing one.
func (s *Store) SpawnShip(health float64) *Ship {
	s.ship = &Ship{Health: health}
	return s.ship
}

// Ship returns the live ship, or nil outside a round.
func (s *Store) Ship() *Ship {
	return s.ship
}

// AddBubble appends a bubble in creation order and assigns its handle.
func (s *Store) AddBubble(b Bubble) ID {
	s.nextID++
	b.ID = s.nextID
	s.Bubbles = append(s.Bubbles, b)
	return b.ID
}

// AddEnemy appends an enemy in creation order and assigns its handle.
func (s *Store) AddEnemy(e Enemy) ID {
	s.nextID++
	e.ID = s.nextID
	s.Enemies = append(s.Enemies, e)
	return e.ID
}

// Sweep removes all entities marked Dead, preserving creation order of the
// survivors. Returns how many bubbles and enemies were removed.
func (s *Store) Sweep() (bubbles, enemies int) {
	live := s.Bubbles[:0]
	for _, b := range s.Bubbles {
		if b.Dead {
			bubbles++
			continue
		}
		live = append(live, b)
	}
	s.Bubbles = live

	liveEnemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.Dead {
			enemies++
			continue
		}
		liveEnemies = append(liveEnemies, e)
	}
	s.Enemies = liveEnemies

	return bubbles, enemies
}

// Clear removes every gameplay entity: ship, bubbles and enemies. Used on
// round transitions. Persistent infrastructure (camera) is not stored here
// and survives.
func (s *Store) Clear() {
	s.ship = nil
	s.Bubbles = s.Bubbles[:0]
	s.Enemies = s.Enemies[:0]
}
