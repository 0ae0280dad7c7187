package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// GameModel is the Bubble Tea model for a running platformer session.
// The last terminal row holds the key help; the game draws above it.
type GameModel struct {
	game          *platformer.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	keys          GameKeyMap
	help          help.Model
	input         *HeldInput
	fps           *fpsCounter
	logger        *log.Logger
	loop          int64
	showFPS       bool
	screenshotDir string
	status        string
	quitting      bool
	backToMenu    bool
}

// GameOptions configures a GameModel.
type GameOptions struct {
	Game          *platformer.Game
	Config        core.RuntimeConfig
	Logger        *log.Logger
	HoldWindow    time.Duration
	ShowFPS       bool
	ScreenshotDir string // Empty uses ~/.platformer/screenshots
}

// NewGameModel creates a model around an already constructed game.
func NewGameModel(opts GameOptions) GameModel {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.ShowAll = false

	return GameModel{
		game:          opts.Game,
		screen:        core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		config:        cfg,
		keys:          DefaultGameKeyMap(),
		help:          h,
		input:         NewHeldInput(opts.HoldWindow, cfg.TickRate),
		fps:           &fpsCounter{},
		logger:        logger,
		loop:          nextLoop(),
		showFPS:       opts.ShowFPS,
		screenshotDir: opts.ScreenshotDir,
	}
}

// gameRows is the number of rows left for the game above the help line.
func gameRows(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	rc := m.config
	rc.ScreenH = gameRows(rc.ScreenH)
	m.game.Reset(rc)
	m.logger.Info("level started", "level", m.game.Level().Number, "seed", rc.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, nil
	}
	m.input.Press(action)
	return m, nil
}

// handleResize processes window resize events.
// The level keeps running; only the layout changes.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.game.Resize(msg.Width, gameRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	m.fps.tick(t)

	before := m.game.State()
	result := m.game.Step(m.input.Frame())
	state := result.State

	if state.Paused || state.Terminal() {
		m.input.Release()
	}
	if state.GameOver && !before.GameOver {
		m.logger.Info("game over", "level", state.Level, "score", state.Score)
	}
	if state.LevelComplete && !before.LevelComplete {
		m.logger.Info("level complete", "level", state.Level, "score", state.Score)
	}
	if state.Level != before.Level {
		m.logger.Info("level started", "level", state.Level)
	}

	if state.BackToMenu {
		m.backToMenu = true
		return m, nil
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveScreenshot saves the current screen to a file and returns a status line.
func (m *GameModel) saveScreenshot() string {
	// Render current state
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot: no home directory", "error", err)
			return "screenshot failed"
		}
		dir = filepath.Join(home, ".platformer", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "dir", dir, "error", err)
		return "screenshot failed"
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: write failed", "path", path, "error", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	if m.config.ScreenH > 1 {
		b.WriteString("\n")
		b.WriteString(m.footer())
	}
	return b.String()
}

// footer is the help line with the optional FPS counter and status.
func (m GameModel) footer() string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	line := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.help.ShowAll {
		line = m.help.FullHelpView(m.keys.FullHelp())
		// The full view spans several lines; keep it to the footer row.
		line = strings.ReplaceAll(line, "\n", " ")
	}
	if m.showFPS {
		line = fmt.Sprintf("%.0f fps  %s", m.fps.value, line)
	}
	if m.status != "" {
		line = m.status + "  " + line
	}
	return helpStyle.MaxWidth(m.config.ScreenW).Render(line)
}

// Game returns the wrapped game.
func (m GameModel) Game() *platformer.Game {
	return m.game
}

// IsQuitting returns true if the user wants to exit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked for the level menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
