package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vforge/bubblestorm/internal/core"
	"github.com/vforge/bubblestorm/internal/registry"
	"github.com/vforge/bubblestorm/internal/storage"
)

// holdTicks is how many ticks a pressed key counts as held. Terminals only
// deliver key-down events, so a held key is inferred from repeats arriving
// within this window.
const holdTicks = 6

// maxFrameDelta caps the measured time between ticks, in seconds. A
// suspended terminal otherwise delivers one giant frame.
const maxFrameDelta = 0.25

// roundStats is the optional interface games implement to expose per-round
// statistics for persistence.
type roundStats interface {
	EnemiesDestroyed() int
	BubblesFired() int
	Elapsed() float64
}

// Model is the Bubble Tea model for running a game round.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	// held tracks ticks remaining per inferred-held action. Fire from the
	// mouse is latched separately between press and release.
	held      map[core.Action]int
	fireHeld  bool
	cursorX   int
	cursorY   int
	hasCursor bool
	oneShot   []core.Action // Edge-triggered actions queued for the next tick

	lastTick   time.Time
	gameState  core.GameState
	quitting   bool
	roundSaved bool // Whether the finished round has been persisted
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		held:      make(map[core.Action]int),
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionPause, core.ActionRestart:
		// Edge-triggered: one press, one tick. Holding R must not
		// re-trigger a replay every tick.
		m.oneShot = append(m.oneShot, action)
	default:
		m.held[action] = holdTicks
	}

	return m, nil
}

// handleMouse processes pointer input: motion aims, the left button fires
// for as long as it is held down.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.cursorX = msg.X
	m.cursorY = msg.Y
	m.hasCursor = true

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.fireHeld = true
		}
	case tea.MouseActionRelease:
		m.fireHeld = false
	}

	return m, nil
}

// handleResize processes window resize events. The round keeps running; the
// game adapts its bounds to the new viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick runs one simulation tick with the real elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
	}
	m.lastTick = now

	in := m.buildInputFrame()
	result := m.game.Step(in, dt)

	wasOver := m.gameState.GameOver
	m.gameState = result.State

	// Persist exactly once per finished round
	if m.gameState.GameOver && !m.roundSaved {
		m.saveRound()
		m.roundSaved = true
	}
	if wasOver && !m.gameState.GameOver {
		// Replay started a fresh round
		m.roundSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// buildInputFrame assembles the per-tick input view: decayed key holds, the
// latched fire button and the last cursor position.
func (m *Model) buildInputFrame() core.InputFrame {
	in := core.NewInputFrame()

	for action, ticks := range m.held {
		if ticks <= 0 {
			delete(m.held, action)
			continue
		}
		in.Set(action)
		m.held[action] = ticks - 1
	}

	for _, action := range m.oneShot {
		in.Set(action)
	}
	m.oneShot = m.oneShot[:0]

	if m.fireHeld {
		in.Set(core.ActionFire)
	}
	if m.hasCursor {
		in.SetCursor(m.cursorX, m.cursorY)
	}

	return in
}

// saveRound writes the score and round record. Best-effort: a storage
// failure never interrupts play.
func (m *Model) saveRound() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.game.ID(), m.gameState.Score)

	if stats, ok := m.game.(roundStats); ok {
		//nolint:errcheck // Best-effort save
		m.store.SaveRound(storage.RoundResult{
			GameID:           m.game.ID(),
			Score:            m.gameState.Score,
			DurationSecs:     int(stats.Elapsed()),
			EnemiesDestroyed: stats.EnemiesDestroyed(),
			BubblesFired:     stats.BubblesFired(),
			Cause:            "border",
		})
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse aiming and firing
	)

	_, err := p.Run()
	return err
}
