package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/game/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPractice   bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run straight away.

Controls:
  Left/Right, A/D  - Turn (keyboard aim)
  Up/W             - Thrust (right mouse button)
  Down/S           - Brake (middle mouse button)
  Space            - Fire (left mouse button)
  1-6, wheel       - Normal, shotgun, shield, laser, multi-shot, shrapnel
  Tab              - Toggle mouse aim / keyboard turning
  M                - Mute
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Screenshot and world dump
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, a bigger first wave, rocks speed up with each level
  normal - Classic rules
  hard   - Fewer lives, crowded first wave, fast rocks, rare pickups
  fixed  - Rock speed never scales

Examples:
  asteroids play
  asteroids play --practice
  asteroids play --difficulty hard
  asteroids play --config ./my-asteroids.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		cmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume between 0 and 1")
	}
	playCmd.Flags().BoolVar(&flagPractice, "practice", false, "Unlimited ammo and an invulnerable ship")
}

// terminalConfig builds the runtime config from the terminal and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// startAudio starts the sound engine unless muted and routes game cues to
// it. The returned engine is nil when muted.
func startAudio() *audio.Engine {
	if flagMute {
		return nil
	}
	engine := audio.NewEngine(asteroidsLogger, flagVolume)
	if err := engine.Start(); err != nil {
		asteroidsLogger.Warn("audio unavailable", "err", err)
		return nil
	}
	asteroids.SetCuePlayer(engine)
	return engine
}

// playOptions wires the logger and, when sound is on, the mute key.
func playOptions(engine *audio.Engine) []tui.Option {
	opts := []tui.Option{tui.WithLogger(asteroidsLogger)}
	if engine != nil {
		opts = append(opts, tui.WithMuter(engine))
	}
	return opts
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := openPlayLog()
	defer closeLog()
	asteroidsLogger = logger
	setupGame(logger)

	gameID := "asteroids"
	if flagPractice {
		gameID = "asteroids_practice"
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	engine := startAudio()
	runErr := tui.Run(game, store, terminalConfig(), playOptions(engine)...)

	if engine != nil {
		engine.Stop()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
