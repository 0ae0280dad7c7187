package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Storage backends selectable with --store.
const (
	storeSQLite = "sqlite"
	storeFile   = "file"
)

// expandPath replaces a leading ~ with the home directory.
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// prepareGame applies the flags that shape every game: tuning file,
// difficulty preset and level directory.
func prepareGame() error {
	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)

	if flagLevelsDir != "" {
		if err := levels.LoadDir(flagLevelsDir); err != nil {
			return fmt.Errorf("cannot load levels from %s: %w", flagLevelsDir, err)
		}
	}
	return nil
}

// openStore opens the backend chosen with --store.
// The returned Persistence is nil when the backend cannot be opened.
func openStore(logger *log.Logger) storage.Persistence {
	switch flagStore {
	case storeFile:
		fs, err := storage.OpenFiles(flagDataDir)
		if err != nil {
			logger.Warn("could not open file store, progress will not be saved", "dir", flagDataDir, "error", err)
			return nil
		}
		return fs
	case storeSQLite:
		db, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open database, progress will not be saved", "path", flagDBPath, "error", err)
			return nil
		}
		return db
	default:
		logger.Warn("unknown store, progress will not be saved", "store", flagStore)
		return nil
	}
}

// newFileLogger logs to <data-dir>/platformer.log, since stderr is hidden
// behind the alternate screen while a game runs. It falls back to stderr.
func newFileLogger() (*log.Logger, func()) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	}
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		opts.Level = lvl
	}

	dir := expandPath(flagDataDir)
	if err := os.MkdirAll(dir, 0o755); err == nil {
		path := filepath.Join(dir, "platformer.log")
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //#nosec G304 -- path comes from the user's own flag
		if err == nil {
			return log.NewWithOptions(f, opts), func() { f.Close() }
		}
	}
	return log.NewWithOptions(os.Stderr, opts), func() {}
}

// newConsoleLogger logs to stderr for the non-interactive commands.
func newConsoleLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "platformer"})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
