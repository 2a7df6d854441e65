package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vforge/bubblestorm/internal/registry"
	"github.com/vforge/bubblestorm/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores and recent rounds for the specified mode.

Examples:
  bubblestorm scores bubblestorm
  bubblestorm scores bubblestorm_hunter`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bubblestorm list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bubblestorm play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.RoundsCount > 0 {
		fmt.Println()
		fmt.Printf("Rounds: %d  Avg score: %.0f  Enemies destroyed: %d  Bubbles fired: %d\n",
			stats.RoundsCount, stats.AvgScore, stats.EnemiesDestroyed, stats.BubblesFired)
	}

	if rounds, err := store.RecentRounds(gameID, 5); err == nil && len(rounds) > 0 {
		fmt.Println()
		fmt.Println("Recent rounds:")
		for _, r := range rounds {
			fmt.Printf("  %s  score %-6d  %3ds  %d kills\n",
				r.CreatedAt.Format("Jan 02 15:04"), r.Score, r.DurationSecs, r.EnemiesDestroyed)
		}
	}
}
