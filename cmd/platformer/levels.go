package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels",
	Long:  `Shows every level with its required score and whether it is unlocked.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	if err := prepareGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	unlocked := 1
	if store := openStore(newConsoleLogger()); store != nil {
		unlocked, _ = storage.LoadUnlocked(store, levels.Count())
		store.Close()
	}

	list := levels.List()
	if len(list) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Levels:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range list {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-8s  %-5s  %-7s  %s\n", "#", maxNameLen, "Name", "Required", "Coins", "Enemies", "Status")
	fmt.Printf("  %-3s  %-*s  %-8s  %-5s  %-7s  %s\n", "-", maxNameLen, "----", "--------", "-----", "-------", "------")

	for _, l := range list {
		status := "open"
		switch {
		case l.Number > unlocked:
			status = "locked"
		case l.Number < unlocked:
			status = "cleared"
		}
		fmt.Printf("  %-3d  %-*s  %-8d  %-5d  %-7d  %s\n",
			l.Number, maxNameLen, l.Name, l.RequiredScore, l.Coins, l.Enemies, status)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <level>' to play an unlocked level.")
}
