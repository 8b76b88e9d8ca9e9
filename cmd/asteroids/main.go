// asteroids is a terminal remake of the arcade classic: fly, shoot and
// split rocks with six weapons, alone or over SSH.
//
// Usage:
//
//	asteroids play           - Play a run
//	asteroids menu           - Start the title menu
//	asteroids scores         - Show high scores and recent runs
//	asteroids serve          - Start SSH server for remote play
//	asteroids simulate       - Fly headless autopilot runs
//	asteroids weapons        - Print the weapon table
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.asteroids/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--mute               - Disable sound
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/game/asteroids"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagMute     bool

	// asteroidsLogger is the play-session logger set up by play and menu.
	asteroidsLogger = log.New(io.Discard)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - split rocks in your terminal",
	Long: `Asteroids is a terminal remake of the arcade classic.

Available commands:
  play      - Start a run directly
  menu      - Title menu with difficulty picker and scores
  scores    - View high scores and recent runs
  serve     - Start SSH server for remote play
  simulate  - Run the autopilot without a terminal
  weapons   - Show the weapon table

Examples:
  asteroids play
  asteroids play --practice
  asteroids menu
  asteroids serve --ssh :2222
  asteroids simulate --ticks 3600 --seed 7`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.asteroids/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(weaponsCmd)
}

// newLogger creates a logger at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// openPlayLog returns a logger writing to ~/.asteroids/asteroids.log, since
// the alt screen owns the terminal during play. It falls back to discarding.
func openPlayLog() (*log.Logger, func()) {
	dir := config.UserDir()
	if dir == "" {
		return log.New(io.Discard), func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "asteroids.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	return newLogger(f, "asteroids"), func() { f.Close() }
}

// setupGame applies the play flags and wires logging into new games.
func setupGame(logger *log.Logger) {
	asteroids.SetConfigPath(flagConfig)
	asteroids.SetDifficultyPreset(flagDifficulty)
	asteroids.SetLogger(logger)
}
