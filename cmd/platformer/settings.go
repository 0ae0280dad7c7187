package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagVolume  float64
	flagShowFPS bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Print the stored settings, or change them with flags.

Examples:
  platformer settings
  platformer settings --volume 0.4
  platformer settings --show-fps=true`,
	Args: cobra.NoArgs,
	Run:  runSettings,
}

func init() {
	settingsCmd.Flags().Float64Var(&flagVolume, "volume", 0.7, "Master volume from 0.0 to 1.0")
	settingsCmd.Flags().BoolVar(&flagShowFPS, "show-fps", false, "Show the FPS counter while playing")
}

func runSettings(cmd *cobra.Command, _ []string) {
	logger := newConsoleLogger()
	store := openStore(logger)
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	settings, err := storage.LoadSettings(store)
	if err != nil {
		logger.Warn("stored settings unreadable, using defaults", "error", err)
	}

	changed := false
	if cmd.Flags().Changed("volume") {
		if flagVolume < 0 || flagVolume > 1 {
			fmt.Fprintf(os.Stderr, "Error: volume %.2f out of range 0.0-1.0\n", flagVolume)
			return
		}
		settings.Volume = flagVolume
		changed = true
	}
	if cmd.Flags().Changed("show-fps") {
		settings.ShowFPS = flagShowFPS
		changed = true
	}

	if changed {
		if err := store.SaveSettings(settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
			return
		}
	}

	fps := "off"
	if settings.ShowFPS {
		fps = "on"
	}
	fmt.Printf("Volume:   %d%%\n", int(settings.Volume*100+0.5))
	fmt.Printf("Show FPS: %s\n", fps)
}
