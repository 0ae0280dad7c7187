package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing a level directly, skipping the menu.
Without an argument the furthest unlocked level is played.

Controls:
  Left/A, Right/D  - Move
  Space/Up/W       - Jump
  P                - Pause
  R                - Restart level
  N/Enter          - Next level (after clearing)
  B/Esc            - Back to the level menu
  Ctrl+S           - Save a screenshot
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow enemies, more lives
  normal - Default tuning with gradual speed-up
  hard   - Faster enemies, fewer lives
  fixed  - No speed-up

Examples:
  platformer play
  platformer play 2
  platformer play 3 --difficulty hard
  platformer play --config ./my-tuning.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := runGame(0); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runPlay(_ *cobra.Command, args []string) {
	level := -1 // Furthest unlocked
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid level %q\n", args[0])
			os.Exit(1)
		}
		level = n
	}
	if err := runGame(level); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runGame opens storage, audio and logging, then runs a session.
// level 0 opens the menu, -1 plays the furthest unlocked level.
func runGame(level int) error {
	if err := prepareGame(); err != nil {
		return err
	}

	logger, closeLog := newFileLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	unlocked := 1
	settings := storage.DefaultSettings()
	if store != nil {
		unlocked, _ = storage.LoadUnlocked(store, levels.Count())
		settings, _ = storage.LoadSettings(store)
	}

	switch {
	case level < 0:
		level = unlocked
	case level > levels.Count():
		fmt.Fprintln(os.Stderr, "Run 'platformer levels' to see available levels.")
		return fmt.Errorf("unknown level %d", level)
	case level > unlocked:
		return fmt.Errorf("level %d is locked, clear level %d first", level, level-1)
	}

	// Sound is optional; the game runs silently without a device.
	svc := audio.New(settings.Volume)
	if err := svc.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing without sound", "error", err)
	}
	defer svc.Cleanup()

	env := tui.Env{
		Store:      store,
		Audio:      svc,
		Levels:     levels.Active(),
		Logger:     logger,
		HoldWindow: holdWindow(),
	}

	logger.Info("session started", "level", level, "store", flagStore)
	if err := tui.Run(env, runtimeConfig(), level); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("session ended")
	return nil
}

// holdWindow converts --hold-ms to a duration.
func holdWindow() time.Duration {
	return time.Duration(flagHoldMS) * time.Millisecond
}
