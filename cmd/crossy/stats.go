package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossy/internal/registry"
	"github.com/vovakirdan/tui-crossy/internal/storage"
)

var flagStatsRuns int

var statsCmd = &cobra.Command{
	Use:   "stats [game]",
	Short: "Show run statistics",
	Long: `Display aggregated statistics and the most recent runs,
including how each run ended. Defaults to crossy.

Examples:
  crossy stats
  crossy stats --runs 25`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsRuns, "runs", 10, "Number of recent runs to show")
}

func runStats(cmd *cobra.Command, args []string) {
	gameID := "crossy"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'crossy list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Statistics - %s\n", title)
	fmt.Println()

	if stats.GamesCount == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  Games played:  %d\n", stats.GamesCount)
	fmt.Printf("  Best score:    %d\n", stats.HighScore)
	fmt.Printf("  Average score: %.1f\n", stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	// Death cause breakdown
	breakdown, err := store.CauseBreakdown(gameID)
	if err == nil && len(breakdown) > 0 {
		fmt.Println()
		fmt.Println("Deaths by cause:")
		for _, cause := range []string{"car", "eagle", "out_of_field"} {
			if n, ok := breakdown[cause]; ok {
				fmt.Printf("  %-13s %d\n", causeTitle(cause), n)
			}
		}
	}

	// Recent runs
	runs, err := store.RecentRuns(gameID, flagStatsRuns)
	if err != nil || len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-10s  %-13s  %s\n", "Score", "Cause", "Date")
	fmt.Printf("  %-10s  %-13s  %s\n", "-----", "-----", "----")
	for _, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-10d  %-13s  %s\n", r.Score, causeTitle(r.Cause), dateStr)
	}
}

// causeTitle formats a stored death cause for terminal output.
func causeTitle(cause string) string {
	switch cause {
	case "car":
		return "hit by car"
	case "eagle":
		return "eagle"
	case "out_of_field":
		return "fell out"
	default:
		return "-"
	}
}
