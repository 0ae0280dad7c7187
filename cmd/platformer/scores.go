package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show past runs",
	Long: `Display the best runs for a level, or for all levels when no level is
given, followed by per-level statistics. Run history is kept by the
sqlite store only.

Examples:
  platformer scores
  platformer scores 2
  platformer scores --limit 25
  platformer scores 1 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history instead of showing it")
}

func runScores(_ *cobra.Command, args []string) {
	level := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "Error: invalid level %q\n", args[0])
			os.Exit(1)
		}
		level = n
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(level); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Println("Run history cleared.")
		return
	}

	scores, err := store.TopScores(level, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	// Display scores
	if level == 0 {
		fmt.Println("Best Runs - all levels")
	} else {
		fmt.Printf("Best Runs - level %d\n", level)
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' to set the first score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-5s  %-8s  %-8s  %s\n", "Rank", "Level", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-5s  %-8s  %-8s  %s\n", "----", "-----", "-----", "------", "----")

	for i, entry := range scores {
		result := "lost"
		if entry.Completed {
			result = "cleared"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-5d  %-8d  %-8s  %s\n", i+1, entry.Level, entry.Score, result, dateStr)
	}

	stats, err := store.AllLevelStats()
	if err != nil || len(stats) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("  %-5s  %-4s  %-6s  %-6s  %s\n", "Level", "Runs", "Clears", "Best", "Avg")
	for _, st := range stats {
		if level != 0 && st.Level != level {
			continue
		}
		fmt.Printf("  %-5d  %-4d  %-6d  %-6d  %.1f\n", st.Level, st.Runs, st.Clears, st.HighScore, st.AvgScore)
	}

	if best, err := storage.LoadHighScore(store); err == nil && best > 0 {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}
