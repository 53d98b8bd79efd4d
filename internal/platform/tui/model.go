package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minofall/minofall/internal/config"
	"github.com/minofall/minofall/internal/mino"
	"github.com/minofall/minofall/internal/storage"
)

// RuntimeConfig holds the per-session runtime parameters.
type RuntimeConfig struct {
	Game     config.GameConfig
	Seed     int64
	TickRate int
	ScreenW  int
	ScreenH  int
}

// GameModel is the Bubble Tea model driving one minofall session. It
// owns the playground and turns ticks into gravity drops and
// lock-delay expiry.
type GameModel struct {
	playground *mino.Playground
	stats      *sessionStats
	store      *storage.Store
	config     RuntimeConfig
	keyMapper  *KeyMapper

	gravityTicks int // ticks since the last automatic drop
	restingTicks int // consecutive ticks the tile spent on its shadow
	startedAt    time.Time
	bestLines    int

	quitting    bool
	resultSaved bool
}

// NewGameModel creates a new Bubble Tea model for one game session.
func NewGameModel(store *storage.Store, cfg RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	m.resetSession()
	return m
}

// newGenerator builds the tile generator selected by the config.
func newGenerator(cfg config.GeneratorConfig, seed int64) mino.Generator {
	if cfg.Type == config.GeneratorHistory {
		// Seed the window with out-of-range entries so the first draws
		// are unbiased.
		window := make([]int, cfg.Window)
		for i := range window {
			window[i] = -1
		}
		return mino.NewHistoryGenerator(mino.StandardSet(), cfg.Retries, window, seed)
	}
	return mino.NewBagGenerator(mino.StandardSet(), seed)
}

// resetSession builds a fresh playground from the current config and
// starts it.
func (m *GameModel) resetSession() {
	m.playground = mino.NewPlayground(
		newGenerator(m.config.Game.Generator, m.config.Seed),
		m.config.Game.Playground.Previews,
	)
	m.stats = &sessionStats{}
	m.playground.Subscribe(m.stats)
	m.gravityTicks = 0
	m.restingTicks = 0
	m.resultSaved = false
	m.startedAt = time.Now()
	if m.store != nil {
		m.bestLines, _ = m.store.BestLines(string(m.config.Game.Generator.Type))
	}
	m.playground.Start()
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey applies player commands immediately; the engine is
// synchronous, so there is no input frame to buffer.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKey(msg) {
	case ActionQuit:
		m.quitting = true
		m.saveResult()
		return m, tea.Quit
	case ActionLeft:
		m.playground.Move(-1)
	case ActionRight:
		m.playground.Move(1)
	case ActionSoftDrop:
		if m.playground.Drop(1) {
			m.gravityTicks = 0
		}
	case ActionHardDrop:
		if m.playground.HardDrop() {
			m.gravityTicks = 0
			m.restingTicks = 0
			m.saveResult()
		}
	case ActionRotateCW:
		m.playground.RotateCW()
	case ActionRotateCCW:
		m.playground.RotateCCW()
	case ActionHalfTurn:
		m.playground.HalfTurn()
	case ActionSwap:
		m.playground.Swap()
	case ActionRestart:
		if m.stats.gameOver {
			m.config.Seed = time.Now().UnixNano()
			m.resetSession()
		}
	}

	return m, nil
}

// handleTick advances gravity and the lock-delay timer.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.playground.InGame() {
		m.saveResult()
		return m, tickCmd(m.config.TickRate)
	}

	if m.resting() {
		m.restingTicks++
		if m.restingTicks >= m.config.Game.Gravity.LockDelayTicks {
			m.playground.HardDrop()
			m.gravityTicks = 0
			m.restingTicks = 0
			m.saveResult()
			return m, tickCmd(m.config.TickRate)
		}
	} else {
		m.restingTicks = 0
	}

	m.gravityTicks++
	if m.gravityTicks >= m.config.Game.Gravity.DropEveryTicks {
		m.playground.Drop(1)
		m.gravityTicks = 0
	}

	return m, tickCmd(m.config.TickRate)
}

// resting reports whether the active tile sits on its shadow, which is
// what arms the lock-delay timer.
func (m GameModel) resting() bool {
	if m.playground.CurrentTile() == nil {
		return false
	}
	return m.playground.CurrentPlacement() == m.playground.ShadowPlacement()
}

// saveResult persists the finished session once.
func (m *GameModel) saveResult() {
	if !m.stats.gameOver || m.resultSaved {
		return
	}
	m.resultSaved = true
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveResult(storage.Result{
		Mode:         string(m.config.Game.Generator.Type),
		Lines:        m.stats.lines,
		Pieces:       m.stats.pieces,
		DurationSecs: int(time.Since(m.startedAt).Seconds()),
		EndState:     m.stats.endState.String(),
	})
	if m.stats.lines > m.bestLines {
		m.bestLines = m.stats.lines
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	return renderSession(m)
}

// IsQuitting returns true if the user requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with a fresh game model.
func Run(store *storage.Store, cfg RuntimeConfig) error {
	model := NewGameModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
