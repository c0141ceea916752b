package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pursuit/internal/storage"
)

var flagRuns bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores, or the most recent runs with
their difficulty, move count, tokens and wave reached.

Examples:
  pursuit scores
  pursuit scores --runs`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "Show recent runs instead of high scores")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRuns {
		printRuns(store)
		return
	}
	printScores(store)
}

func printScores(store *storage.Store) {
	scores, err := store.TopScores("pursuit", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Grid Pursuit")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pursuit play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore("pursuit"); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	if wins, err := store.WinCount("pursuit"); err == nil {
		fmt.Printf("Wins: %d\n", wins)
	}
}

func printRuns(store *storage.Store) {
	runs, err := store.RecentRuns("pursuit", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Runs - Grid Pursuit")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-8s  %-10s  %-6s  %-7s  %-5s  %-7s  %s\n",
		"Outcome", "Difficulty", "Moves", "Tokens", "Wave", "Score", "Date")
	fmt.Printf("  %-8s  %-10s  %-6s  %-7s  %-5s  %-7s  %s\n",
		"-------", "----------", "-----", "------", "----", "-----", "----")

	for _, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %-10s  %-6d  %-7d  %-5d  %-7d  %s\n",
			run.Outcome, run.Difficulty, run.Moves, run.Tokens, run.Wave, run.Score, dateStr)
	}
}
