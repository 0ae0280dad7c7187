// platformer is a 2D platformer played in the terminal.
//
// Usage:
//
//	platformer                  - Open the level menu
//	platformer play [level]     - Play a level directly
//	platformer levels           - List levels and which are unlocked
//	platformer scores [level]   - Show past runs
//	platformer settings         - Show or change volume and FPS display
//	platformer serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--store <kind>      - sqlite (default) or file
//	--db <path>         - sqlite database path (default: ~/.platformer/platformer.db)
//	--data-dir <path>   - directory for the file store and logs (default: ~/.platformer)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagStore      string
	flagDBPath     string
	flagDataDir    string
	flagLogLevel   string
	flagLevelsDir  string
	flagConfig     string
	flagDifficulty string
	flagHoldMS     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A terminal platformer",
	Long: `Run, jump and stomp through hand-made levels in your terminal.

Collect every coin and reach the level's required score to clear it.
Clearing a level unlocks the next one.

Available commands:
  play      - Play a level directly
  levels    - List levels and their lock state
  scores    - View past runs
  settings  - Show or change settings
  serve     - Start SSH server for remote play

Examples:
  platformer
  platformer play 2
  platformer --difficulty easy
  platformer --store file --data-dir ./save
  platformer serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagStore, "store", storeSQLite, "Storage backend: sqlite or file")
	pf.StringVar(&flagDBPath, "db", "~/.platformer/platformer.db", "Path to sqlite database")
	pf.StringVar(&flagDataDir, "data-dir", "~/.platformer", "Directory for the file store and the log")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory of level YAML files (default: built-in levels)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagHoldMS, "hold-ms", int(tui.DefaultHoldWindow.Milliseconds()),
		"How long a movement key stays held after a press, in milliseconds")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(serveCmd)
}
