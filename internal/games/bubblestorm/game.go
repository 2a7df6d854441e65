// Package bubblestorm implements the bubble-shooter game: a ship wraps
// around the playfield, fires bubbles at spawning enemies and takes damage
// from the border band.
package bubblestorm

import (
	"math/rand"

	"github.com/vforge/bubblestorm/internal/config"
	"github.com/vforge/bubblestorm/internal/core"
	"github.com/vforge/bubblestorm/internal/registry"
)

// Round state constants
const (
	StatePlaying  = "playing"
	StateGameOver = "gameover"
)

// Mode selects the enemy mix.
type Mode int

const (
	ModeClassic Mode = iota // Floaters only (until high difficulty)
	ModeHunter              // At least half the spawns are seekers
)

// hunterSeekerShare is the minimum seeker chance in hunter mode.
const hunterSeekerShare = 0.5

// maxTickDelta caps a single tick's time step. A stalled terminal otherwise
// produces one giant integration step that tunnels entities through each
// other.
const maxTickDelta = 0.25

// Score weights: enemies are worth far more than merely staying alive.
const (
	pointsPerKill   = 100
	pointsPerSecond = 1
)

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset

// loadConfig is the config loader used by Reset. Tests swap it to pin the
// embedded defaults regardless of user config files on the machine.
var loadConfig = config.Load

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the bubblestorm game logic. All state mutation happens in
// Step, in a fixed stage order: aim sampling, spawning, motion, collision,
// border rule, state check, draw-command emission. Each stage only observes
// what earlier stages committed this tick.
type Game struct {
	mode Mode

	rng        *rand.Rand
	cfg        config.Config
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig

	// The camera is persistent infrastructure: it survives round resets,
	// unlike the gameplay entities in the store.
	camera *core.Camera
	store  *Store

	state  string
	paused bool

	aim        core.Vec // World-space aim target, recomputed every tick
	elapsed    float64  // Seconds survived this round
	tickCount  int
	spawnTimer float64 // Seconds until the next enemy spawn

	enemiesDestroyed int
	bubblesFired     int

	frame []core.DrawCmd
}

// New creates a classic-mode game instance.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewHunter creates a hunter-mode game instance.
func NewHunter() *Game {
	return &Game{mode: ModeHunter}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeHunter {
		return "bubblestorm_hunter"
	}
	return "bubblestorm"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeHunter {
		return "Bubblestorm (Hunter)"
	}
	return "Bubblestorm"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := loadConfig(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))

	if g.camera == nil {
		g.camera = core.NewCamera(runtime.ScreenW, runtime.ScreenH)
	} else {
		g.camera.SetViewport(runtime.ScreenW, runtime.ScreenH)
	}

	g.store = NewStore()
	g.aim = core.Vec{}
	g.paused = false
	g.startRound()
}

// Resize updates the viewport; bounds math picks up the new extents on the
// next tick. The round keeps running.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.camera.SetViewport(screenW, screenH)
}

// startRound clears all gameplay entities and spawns a fresh ship at the
// origin. The camera is untouched.
func (g *Game) startRound() {
	g.store.Clear()
	g.store.SpawnShip(g.cfg.Ship.Health)

	g.state = StatePlaying
	g.elapsed = 0
	g.tickCount = 0
	g.enemiesDestroyed = 0
	g.bubblesFired = 0
	g.spawnTimer = g.cfg.Enemies.SpawnInterval
	g.frame = g.frame[:0]
}

// endRound transitions to game over and destroys all gameplay entities.
func (g *Game) endRound() {
	g.state = StateGameOver
	g.store.Clear()
}

// Step advances the game by one tick of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.state == StateGameOver {
		// Replay is only valid from game over; during play the action
		// is ignored entirely.
		if in.Has(core.ActionRestart) {
			g.startRound()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || dt <= 0 {
		return core.StepResult{State: g.State()}
	}
	if dt > maxTickDelta {
		dt = maxTickDelta
	}

	g.tickCount++
	g.elapsed += dt

	// Input sampling: project the cursor into world space. Without a
	// cursor the aim target defaults to the origin.
	if in.HasCursor {
		g.aim = g.camera.CellToWorld(in.CursorX, in.CursorY)
	} else {
		g.aim = core.Vec{}
	}

	g.updateSpawns(in, dt)
	g.integrateShip(in, dt)
	g.integrateBubbles(dt)
	g.integrateEnemies(dt)

	_, destroyed := g.resolveCollisions()
	g.enemiesDestroyed += destroyed

	g.applyBorderRule()

	if ship := g.store.Ship(); ship != nil && ship.Health <= 0 {
		g.endRound()
	}

	g.frame = g.buildFrame(g.frame[:0])

	return core.StepResult{State: g.State()}
}

// score computes the current score.
func (g *Game) score() int {
	return g.enemiesDestroyed*pointsPerKill + int(g.elapsed)*pointsPerSecond
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	var health float64
	if ship := g.store.Ship(); ship != nil {
		health = ship.Health
	}
	return core.GameState{
		Score:    g.score(),
		Health:   health,
		GameOver: g.state == StateGameOver,
		Paused:   g.paused,
	}
}

// EnemiesDestroyed returns the kill count for the current round.
func (g *Game) EnemiesDestroyed() int {
	return g.enemiesDestroyed
}

// BubblesFired returns how many bubbles were fired this round.
func (g *Game) BubblesFired() int {
	return g.bubblesFired
}

// Elapsed returns the seconds survived this round.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Register the game modes with the registry
func init() {
	registry.Register("bubblestorm", func() registry.Game {
		return New()
	})
	registry.Register("bubblestorm_hunter", func() registry.Game {
		return NewHunter()
	})
}
