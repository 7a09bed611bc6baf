// crossy is a terminal rendition of the endless road-crossing arcade game.
//
// Usage:
//
//	crossy play              - Play the game
//	crossy menu              - Start the interactive picker menu
//	crossy serve             - Start SSH server for remote play
//	crossy list              - List registered games
//	crossy scores [game]     - Show high scores
//	crossy stats [game]      - Show run statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.crossy/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-crossy/internal/games/crossy"
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
	Use:   "crossy",
	Short: "Crossy - Hop across endless traffic in your terminal",
	Long: `Crossy is a terminal-based endless arcade game. Guide a chicken
across procedurally generated lanes of grass and traffic, one hop at a
time, and get as far as you can before the cars (or the eagle) get you.

Available commands:
  play     - Play the game directly
  menu     - Interactive picker menu
  serve    - Start SSH server for remote play
  list     - Show registered games
  scores   - View high scores
  stats    - View run statistics

Examples:
  crossy play
  crossy play --difficulty hard
  crossy serve --ssh :2222
  crossy scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crossy/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}
