// Package asteroids runs the sim world as an arcade game: it projects the
// world onto the terminal, turns key presses into held controls and draws
// the HUD.
package asteroids

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

const (
	hudRows    = 1
	footerRows = 1
	minScreenW = 30
	minScreenH = 12
)

var (
	// configPath stores the custom config path set via CLI
	configPath string

	// difficultyPreset stores the difficulty preset set via CLI
	difficultyPreset config.DifficultyPreset

	cuePlayer sim.CuePlayer = sim.NopCues{}
	logger                  = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetCuePlayer routes sound cues of games created afterwards to p.
func SetCuePlayer(p sim.CuePlayer) {
	if p == nil {
		p = sim.NopCues{}
	}
	cuePlayer = p
}

// SetLogger sets the logger handed to new worlds.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements registry.Game for asteroids.
type Game struct {
	practice bool
	preset   config.DifficultyPreset // overrides the CLI preset when set

	world   *sim.World
	input   *latch
	proj    Projection
	runtime core.RuntimeConfig
	cfg     config.AsteroidsConfig

	paused   bool
	tooSmall bool
}

// New creates a normal asteroids game.
func New() *Game {
	return &Game{input: newLatch()}
}

// NewPractice creates a game with unlimited ammo and an invulnerable ship.
func NewPractice() *Game {
	return &Game{practice: true, input: newLatch()}
}

func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
	registry.Register("asteroids_practice", func() registry.Game {
		return NewPractice()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.practice {
		return "asteroids_practice"
	}
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.practice {
		return "Asteroids (Practice)"
	}
	return "Asteroids"
}

// SetDifficulty picks a preset for this game only; it applies from the next
// Reset.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// Reset loads the configuration and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultAsteroidsConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyAsteroidsPreset(&cfg, preset)
	}
	g.cfg = cfg

	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	g.input.release()
	g.world = sim.NewWorld(cfg.ToSim(),
		sim.WithSeed(runtime.Seed),
		sim.WithCues(cuePlayer),
		sim.WithLogger(logger.With("game", g.ID())),
		sim.WithPractice(g.practice),
		sim.WithRockSpeed(difficulty.RockSpeed(cfg.Gameplay.StartLevel)),
		sim.WithControls(g.input),
	)
	g.layout(runtime.ScreenW, runtime.ScreenH)
	g.paused = false
	g.world.Start()
}

// Resize refits the playfield without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	if g.world != nil {
		g.layout(w, h)
	}
}

func (g *Game) layout(w, h int) {
	g.tooSmall = w < minScreenW || h < minScreenH
	area := core.NewRect(0, hudRows, w, max(0, h-hudRows-footerRows))
	g.proj = NewProjection(g.world.Bounds(), area)
	g.input.proj = g.proj
}

// Step advances the world by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.world.State().GameOver {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		g.input.release()
		return core.StepResult{State: g.State()}
	}

	delta := g.runtime.FrameMillis()
	g.input.feed(in)
	g.world.Tick(delta)
	g.input.decay(delta)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.world.State()
	return core.GameState{
		Score:      s.Score,
		Level:      s.Level - g.cfg.Gameplay.StartLevel + 1,
		Accuracy:   s.Accuracy(),
		GameOver:   s.GameOver,
		Paused:     g.paused,
		BackToMenu: s.BackToMenu,
	}
}

// Summary describes the run for the history table.
func (g *Game) Summary() core.RunSummary {
	s := g.world.State()
	return core.RunSummary{
		Score:      s.Score,
		Level:      s.Level - g.cfg.Gameplay.StartLevel + 1,
		Accuracy:   s.Accuracy(),
		ShotsTaken: s.ShotsTaken,
		ShotsHit:   s.ShotsHit,
		Seed:       g.runtime.Seed,
		Practice:   g.practice,
		Ticks:      g.world.Ticks(),
	}
}

// SnapshotBytes encodes the world for a dump file.
func (g *Game) SnapshotBytes() ([]byte, error) {
	return g.world.Snapshot().Encode()
}

// World exposes the running simulation.
func (g *Game) World() *sim.World { return g.world }
