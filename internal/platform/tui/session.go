package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Env holds the collaborators shared by every screen of a session.
type Env struct {
	Store         storage.Persistence // May be nil: progress then lives in memory
	Audio         platformer.Audio    // Nil plays nothing
	Levels        *levels.Catalog     // Nil uses the active catalog
	Logger        *log.Logger
	HoldWindow    time.Duration
	ScreenshotDir string
}

// Page identifies the screen a session is showing.
type Page int

const (
	PageMenu Page = iota
	PageGame
	PageScores
)

// String returns the page name.
func (v Page) String() string {
	switch v {
	case PageMenu:
		return "menu"
	case PageGame:
		return "game"
	case PageScores:
		return "scores"
	default:
		return "unknown"
	}
}

// SessionModel switches between the level menu, the running game and the
// scoreboard within one Bubble Tea program.
type SessionModel struct {
	env      Env
	runtime  core.RuntimeConfig
	progress *Progress
	settings storage.Settings
	page     Page
	menu     MenuModel
	game     GameModel
	board    ScoreboardModel
	quitting bool
}

// NewSession creates a session. A startLevel of 0 opens the level menu,
// anything else starts that level straight away.
func NewSession(env Env, cfg core.RuntimeConfig, startLevel int) SessionModel {
	if env.Levels == nil {
		env.Levels = levels.Active()
	}
	if env.Audio == nil {
		env.Audio = audio.Nop{}
	}
	if env.Logger == nil {
		env.Logger = log.Default()
	}

	progress := NewProgress(env.Store, env.Levels.Count(), env.Logger)
	settings := progress.Settings()
	env.Audio.SetVolume(settings.Volume)

	m := SessionModel{
		env:      env,
		runtime:  cfg,
		progress: progress,
		settings: settings,
	}
	if startLevel > 0 {
		m.page = PageGame
		m.game = m.newGame(startLevel)
	} else {
		m.openMenu()
	}
	return m
}

// newGame builds the model for a fresh game on level.
func (m *SessionModel) newGame(level int) GameModel {
	game := platformer.New(platformer.Options{
		Level:    level,
		Levels:   m.env.Levels,
		Audio:    m.env.Audio,
		Progress: m.progress,
	})
	return NewGameModel(GameOptions{
		Game:          game,
		Config:        m.runtime,
		Logger:        m.env.Logger,
		HoldWindow:    m.env.HoldWindow,
		ShowFPS:       m.settings.ShowFPS,
		ScreenshotDir: m.env.ScreenshotDir,
	})
}

func (m *SessionModel) openMenu() {
	m.page = PageMenu
	m.menu = NewMenuModel(m.env.Levels, m.progress, m.env.Audio, m.settings, m.runtime.ScreenW, m.runtime.ScreenH)
}

// Init starts the game loop when the session opens on a level.
func (m SessionModel) Init() tea.Cmd {
	if m.page == PageGame {
		return m.game.Init()
	}
	return nil
}

// Update routes messages to the active screen and handles screen changes.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = size.Width
		m.runtime.ScreenH = size.Height
	}

	switch m.page {
	case PageMenu:
		return m.updateMenu(msg)
	case PageGame:
		return m.updateGame(msg)
	case PageScores:
		return m.updateScores(msg)
	}
	return m, nil
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}
	m.settings = m.menu.Settings()

	switch {
	case m.menu.IsQuitting():
		return m.quit()
	case m.menu.WantsScoreboard():
		m.page = PageScores
		m.board = NewScoreboardModel(m.env.Store, m.env.Levels, m.env.Logger, m.runtime.ScreenW, m.runtime.ScreenH)
		return m, nil
	case m.menu.Selected() > 0:
		m.page = PageGame
		m.game = m.newGame(m.menu.Selected())
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = game
	}

	switch {
	case m.game.IsQuitting():
		return m.quit()
	case m.game.BackToMenu():
		m.env.Audio.StopMusic()
		m.openMenu()
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.board = board
	}

	switch {
	case m.board.IsQuitting():
		return m.quit()
	case m.board.IsGoingBack():
		m.openMenu()
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.env.Audio.StopMusic()
	m.quitting = true
	return m, tea.Quit
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.page {
	case PageGame:
		return m.game.View()
	case PageScores:
		return m.board.View()
	default:
		return m.menu.View()
	}
}

// Current returns the screen being shown.
func (m SessionModel) Current() Page {
	return m.page
}

// Progress returns the session's progress tracker.
func (m SessionModel) Progress() *Progress {
	return m.progress
}

// Game returns the running game model; only meaningful in PageGame.
func (m SessionModel) Game() GameModel {
	return m.game
}

// IsQuitting returns true once the session has ended.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// Run starts a local session in the alternate screen.
func Run(env Env, cfg core.RuntimeConfig, startLevel int) error {
	model := NewSession(env, cfg, startLevel)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
