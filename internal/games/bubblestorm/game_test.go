package bubblestorm

import (
	"strings"
	"testing"

	"github.com/vforge/bubblestorm/internal/config"
	"github.com/vforge/bubblestorm/internal/core"
)

const testDt = 1.0 / 60.0

// pinDefaultConfig routes Reset to the hardcoded defaults so user config
// files on the machine cannot change the constants the tests rely on.
func pinDefaultConfig(t *testing.T) {
	t.Helper()
	configPath = ""
	difficultyPreset = ""
	loadConfig = func(string) (config.Config, error) { return config.Default(), nil }
	t.Cleanup(func() { loadConfig = config.Load })
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	pinDefaultConfig(t)

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func fireFrame(cursorX, cursorY int) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	in.SetCursor(cursorX, cursorY)
	return in
}

func TestDeterministicWithSeed(t *testing.T) {
	g1 := newTestGame(t, 42)
	g2 := newTestGame(t, 42)

	in := fireFrame(70, 5)
	for i := 0; i < 600; i++ {
		g1.Step(in, testDt)
		g2.Step(in, testDt)
	}

	if g1.score() != g2.score() {
		t.Errorf("Same seed diverged: scores %d vs %d", g1.score(), g2.score())
	}
	if len(g1.store.Enemies) != len(g2.store.Enemies) {
		t.Errorf("Same seed diverged: %d vs %d enemies", len(g1.store.Enemies), len(g2.store.Enemies))
	}
	if len(g1.store.Bubbles) != len(g2.store.Bubbles) {
		t.Errorf("Same seed diverged: %d vs %d bubbles", len(g1.store.Bubbles), len(g2.store.Bubbles))
	}
	s1, s2 := g1.store.Ship(), g2.store.Ship()
	if s1 != nil && s2 != nil && s1.Pos != s2.Pos {
		t.Errorf("Same seed diverged: ship at %v vs %v", s1.Pos, s2.Pos)
	}
}

func TestFireAppliesRecoil(t *testing.T) {
	g := newTestGame(t, 1)

	// Cursor at the right edge of the middle row aims straight right from
	// the origin.
	g.Step(fireFrame(79, 12), testDt)

	if g.BubblesFired() != 1 {
		t.Fatalf("BubblesFired = %d, expected 1", g.BubblesFired())
	}
	if len(g.store.Bubbles) != 1 {
		t.Fatalf("Expected 1 live bubble, got %d", len(g.store.Bubbles))
	}
	if b := g.store.Bubbles[0]; b.Vel.X <= 0 {
		t.Errorf("Bubble fired rightward has Vel.X = %v, expected > 0", b.Vel.X)
	}
	// Recoil pushes the ship the other way
	if ship := g.store.Ship(); ship.Vel.X >= 0 {
		t.Errorf("Ship recoil Vel.X = %v, expected < 0", ship.Vel.X)
	}
}

func TestFireWithoutCursorAtOriginIsSkipped(t *testing.T) {
	g := newTestGame(t, 1)

	// No cursor means the aim target defaults to the origin, which is
	// where the ship starts. No direction, no shot.
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	g.Step(in, testDt)

	if g.BubblesFired() != 0 {
		t.Errorf("BubblesFired = %d, expected 0 for degenerate aim", g.BubblesFired())
	}
}

func TestBorderKillChain(t *testing.T) {
	g := newTestGame(t, 1)

	ship := g.store.Ship()
	ship.Health = 5
	ship.Pos = core.V(360, 0) // Inside the 50-unit band at halfW=400
	ship.Vel = core.V(100, 0) // Moving outward

	res := g.Step(core.NewInputFrame(), testDt)

	if !res.State.GameOver {
		t.Fatal("Expected game over after border damage exceeded health")
	}
	if g.store.Ship() != nil {
		t.Error("Ship should be destroyed on game over")
	}
	if len(g.store.Bubbles) != 0 || len(g.store.Enemies) != 0 {
		t.Error("All entities should be cleared on game over")
	}
}

func TestReplayRestoresRound(t *testing.T) {
	g := newTestGame(t, 1)

	ship := g.store.Ship()
	ship.Health = 5
	ship.Pos = core.V(360, 0)
	ship.Vel = core.V(100, 0)
	g.Step(core.NewInputFrame(), testDt)

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in, testDt)

	if res.State.GameOver {
		t.Fatal("Replay should return to playing")
	}
	ship = g.store.Ship()
	if ship == nil {
		t.Fatal("Replay should spawn a fresh ship")
	}
	if !ship.Pos.IsZero() || !ship.Vel.IsZero() {
		t.Errorf("Fresh ship at %v with velocity %v, expected origin at rest", ship.Pos, ship.Vel)
	}
	if ship.Health != g.cfg.Ship.Health {
		t.Errorf("Fresh ship health = %v, expected %v", ship.Health, g.cfg.Ship.Health)
	}
	if res.State.Score != 0 {
		t.Errorf("Replay should reset the score, got %d", res.State.Score)
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, 1)

	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame(), testDt)
	}
	before := g.Elapsed()

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in, testDt)

	if res.State.GameOver {
		t.Error("Restart during play must not end the round")
	}
	if g.Elapsed() <= before {
		t.Error("Restart during play must not reset the round clock")
	}
}

func TestBubbleLifetimeExpiry(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(fireFrame(79, 12), testDt)
	if len(g.store.Bubbles) != 1 {
		t.Fatalf("Expected 1 bubble, got %d", len(g.store.Bubbles))
	}

	// Rolled lifetimes are under 2 seconds; 3 seconds of ticks must
	// outlive every bubble.
	in := core.NewInputFrame()
	for i := 0; i < 180; i++ {
		g.Step(in, testDt)
	}
	if len(g.store.Bubbles) != 0 {
		t.Errorf("Bubble outlived its lifetime, %d still live", len(g.store.Bubbles))
	}
}

func TestIntegratorClampsShipSpeed(t *testing.T) {
	g := newTestGame(t, 1)

	// The cap is an integrator property: thrust as hard as possible for
	// ten seconds and the clamp holds after every integration step.
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionUp)
	for i := 0; i < 600; i++ {
		g.integrateShip(in, testDt)
		if speed := g.store.Ship().Vel.Len(); speed > g.cfg.Ship.MaxSpeed+1e-9 {
			t.Fatalf("Tick %d: speed %v exceeds max %v", i, speed, g.cfg.Ship.MaxSpeed)
		}
	}
}

func TestBorderBounceExceedsCapUntilNextTick(t *testing.T) {
	g := newTestGame(t, 1)
	ship := g.store.Ship()
	ship.Pos = core.V(360, 0)
	ship.Vel = core.V(100, 0)

	// The bounce impulse lands after the integrator's clamp, so the tick
	// it fires the ship may briefly be faster than the cap.
	g.applyBorderRule()
	if speed := ship.Vel.Len(); speed <= g.cfg.Ship.MaxSpeed {
		t.Fatalf("Speed after bounce = %v, expected above the %v cap", speed, g.cfg.Ship.MaxSpeed)
	}

	// The next integration step restores it.
	g.integrateShip(core.NewInputFrame(), testDt)
	if speed := ship.Vel.Len(); speed > g.cfg.Ship.MaxSpeed+1e-9 {
		t.Errorf("Speed %v still above max %v one tick after the bounce", speed, g.cfg.Ship.MaxSpeed)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in, testDt)

	if !g.State().Paused {
		t.Fatal("Expected paused state")
	}

	before := g.Elapsed()
	g.Step(core.NewInputFrame(), testDt)
	if g.Elapsed() != before {
		t.Error("Paused game must not advance the round clock")
	}

	g.Step(in, testDt)
	if g.State().Paused {
		t.Error("Second pause press should resume")
	}
}

func TestResizeKeepsRoundRunning(t *testing.T) {
	g := newTestGame(t, 1)

	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame(), testDt)
	}
	before := g.Elapsed()

	g.Resize(120, 40)

	halfW, halfH := g.camera.HalfExtents()
	if halfW != 600 || halfH != 400 {
		t.Errorf("HalfExtents after resize = (%v, %v), expected (600, 400)", halfW, halfH)
	}

	res := g.Step(core.NewInputFrame(), testDt)
	if res.State.GameOver {
		t.Error("Resize must not end the round")
	}
	if g.Elapsed() <= before {
		t.Error("Resize must not reset the round clock")
	}
	if g.store.Ship() == nil {
		t.Error("Resize must keep the ship alive")
	}
}

func TestScoreCombinesKillsAndTime(t *testing.T) {
	g := newTestGame(t, 1)

	g.elapsed = 12.7
	g.enemiesDestroyed = 3
	if got := g.score(); got != 3*pointsPerKill+12 {
		t.Errorf("score = %d, expected %d", got, 3*pointsPerKill+12)
	}
}

func TestRenderDrawsHUDAndFrame(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(core.NewInputFrame(), testDt)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score") {
		t.Errorf("Expected HUD on the top row, got %q", screen.Row(0))
	}
}
