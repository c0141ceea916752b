// pursuit is a TUI pursuit-survival game played in the terminal.
//
// Usage:
//
//	pursuit play             - Play the game
//	pursuit menu             - Interactive menu (game, difficulty, scores)
//	pursuit list             - List available games
//	pursuit scores           - Show high scores and recent runs
//	pursuit serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.pursuit/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-pursuit/internal/games/pursuit"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pursuit",
	Short: "Grid Pursuit - survive the hunt in your terminal",
	Long: `Grid Pursuit is a turn-based terminal game: collect tokens on a
walled grid while enemy hunters track you by line of sight, alert each
other, and arrive in escalating waves.

Available commands:
  play     - Play directly
  menu     - Interactive menu
  list     - Show all available games
  scores   - View high scores and recent runs
  serve    - Start SSH server for remote play

Examples:
  pursuit play
  pursuit play --difficulty hard
  pursuit menu
  pursuit serve --ssh :2222
  pursuit scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pursuit/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
