package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Muter toggles sound output. The audio engine implements it.
type Muter interface {
	ToggleMute() bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	mouse      map[core.Action]bool // buttons currently held
	logger     *log.Logger
	muter      Muter
	shotDir    string
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been recorded for the current game over
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for run bookkeeping.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithMuter lets the M key toggle sound.
func WithMuter(mu Muter) Option {
	return func(m *Model) { m.muter = mu }
}

// WithScreenshotDir overrides where ctrl+s writes screenshots.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) { m.shotDir = dir }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		mouse:      make(map[core.Action]bool),
		logger:     log.New(io.Discard),
	}
	if dir := config.UserDir(); dir != "" {
		m.shotDir = filepath.Join(dir, "screenshots")
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config)
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	case "m":
		if m.muter != nil {
			on := m.muter.ToggleMute()
			m.logger.Debug("sound toggled", "on", on)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse tracks held buttons, the wheel and the pointer position.
// Terminals report button releases without saying which button, so a
// release lets go of every button.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.Pointer = core.Pointer{X: msg.X, Y: msg.Y, Valid: true}

	switch msg.Action {
	case tea.MouseActionPress:
		if step := m.keyMapper.MapWheel(msg.Button); step != 0 {
			m.inputFrame.Wheel += step
			break
		}
		if a := m.keyMapper.MapMouseButton(msg.Button); a != core.ActionNone {
			m.mouse[a] = true
		}
	case tea.MouseActionRelease:
		clear(m.mouse)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	// Games without Resize restart at the new size
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config)
	}

	for a := range m.mouse {
		m.inputFrame.Set(a)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.recordRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()

	if m.gameState.BackToMenu {
		m.backToMenu = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config)
}

// recordRun stores the finished run and, outside practice, its score.
func (m *Model) recordRun() {
	rec := storage.RunRecord{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Level:    m.gameState.Level,
		Accuracy: m.gameState.Accuracy,
		Seed:     m.config.Seed,
	}
	if s, ok := m.game.(registry.Summarizer); ok {
		sum := s.Summary()
		rec.ShotsTaken = sum.ShotsTaken
		rec.ShotsHit = sum.ShotsHit
		rec.Seed = sum.Seed
		rec.Practice = sum.Practice
		rec.Duration = time.Duration(sum.Ticks) * time.Duration(m.config.FrameMillis()) * time.Millisecond
	}
	m.logger.Info("run over", "game", rec.GameID, "score", rec.Score, "level", rec.Level, "practice", rec.Practice)

	if m.store == nil {
		return
	}
	if !rec.Practice && rec.Score > 0 {
		if _, err := m.store.SaveScore(rec.GameID, rec.Score); err != nil {
			m.logger.Warn("could not save score", "err", err)
		}
	}
	id, err := m.store.SaveRun(rec)
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
		return
	}
	m.logger.Debug("run saved", "run_id", id)
}

// saveScreenshot writes the current screen, and a world dump when the game
// supports one, next to each other in the screenshot directory.
func (m *Model) saveScreenshot() error {
	if m.shotDir == "" {
		return fmt.Errorf("no screenshot directory")
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	base := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s", m.game.ID(), timestamp))
	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		return err
	}

	s, ok := m.game.(registry.Snapshotter)
	if !ok {
		return nil
	}
	data, err := s.SnapshotBytes()
	if err != nil {
		return err
	}
	return os.WriteFile(base+".msgpack", data, 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the game asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // pointer aim follows the mouse
	)

	_, err := p.Run()
	return err
}
