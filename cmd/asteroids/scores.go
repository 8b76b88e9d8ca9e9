package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagScoresPractice bool
	flagScoresRuns     int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores, lifetime stats and the most recent runs.

Practice runs never set high scores; use --practice to list them.

Examples:
  asteroids scores
  asteroids scores --runs 20
  asteroids scores --practice`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPractice, "practice", false, "Show practice runs")
	scoresCmd.Flags().IntVar(&flagScoresRuns, "runs", 5, "Number of recent runs to list")
}

func runScores(_ *cobra.Command, _ []string) {
	gameID := "asteroids"
	if flagScoresPractice {
		gameID = "asteroids_practice"
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagScoresPractice {
		if err := printHighScores(store, gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
	}

	if err := printRecentRuns(store, gameID, flagScoresRuns); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
}

func printHighScores(store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Asteroids")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'asteroids play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Games: %d   Average: %.0f   Best level: %d   Best accuracy: %.1f%%\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestLevel, stats.BestAccuracy*100)
	return nil
}

func printRecentRuns(store *storage.Store, gameID string, limit int) error {
	if limit <= 0 {
		return nil
	}
	runs, err := store.RecentRuns(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-5s  %-8s  %-6s  %-8s  %s\n", "Score", "Level", "Accuracy", "Shots", "Time", "Run")
	for _, r := range runs {
		fmt.Printf("  %-8d  %-5d  %-8s  %-6d  %-8s  %s\n",
			r.Score, r.Level,
			fmt.Sprintf("%.1f%%", r.Accuracy*100),
			r.ShotsTaken,
			r.Duration.Round(time.Second).String(),
			shortID(r.RunID),
		)
	}
	return nil
}

// shortID trims a run UUID to its first group.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
