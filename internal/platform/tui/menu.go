package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

const volumeStep = 0.1

// Level status labels shown in the menu.
const (
	statusLocked  = "locked"
	statusOpen    = "open"
	statusCleared = "cleared"
)

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	levels         []levels.Info
	progress       *Progress
	audio          platformer.Audio
	settings       storage.Settings
	table          table.Model
	help           help.Model
	keys           MenuKeyMap
	width          int
	height         int
	status         string
	quitting       bool
	selected       int  // Level chosen by the user, 0 while browsing
	openScoreboard bool // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(catalog *levels.Catalog, progress *Progress, audio platformer.Audio, settings storage.Settings, width, height int) MenuModel {
	h := help.New()
	h.ShowAll = false

	m := MenuModel{
		levels:   catalog.List(),
		progress: progress,
		audio:    audio,
		settings: settings,
		help:     h,
		keys:     DefaultMenuKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	// Start on the furthest unlocked level
	m.table.SetCursor(m.progress.Unlocked() - 1)
	return m
}

// createTable creates the level table sized to the window.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Level", Width: 20},
		{Title: "Need", Width: 6},
		{Title: "Coins", Width: 6},
		{Title: "Foes", Width: 5},
		{Title: "Status", Width: 8},
	}

	height := m.height - 12 // Title, settings, help and borders
	if height < 3 {
		height = 3
	}
	if height > len(m.levels)+1 {
		height = len(m.levels) + 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// levelStatus reports whether level n is locked, open or already cleared.
func levelStatus(n, unlocked int) string {
	switch {
	case n > unlocked:
		return statusLocked
	case n < unlocked:
		return statusCleared
	default:
		return statusOpen
	}
}

// updateTableRows refreshes the rows from the catalog and progress.
func (m *MenuModel) updateTableRows() {
	unlocked := m.progress.Unlocked()
	rows := make([]table.Row, len(m.levels))
	for i, l := range m.levels {
		rows[i] = table.Row{
			strconv.Itoa(l.Number),
			l.Name,
			strconv.Itoa(l.RequiredScore),
			strconv.Itoa(l.Coins),
			strconv.Itoa(l.Enemies),
			levelStatus(l.Number, unlocked),
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true

	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
		m.status = ""

	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
		m.status = ""

	case key.Matches(msg, m.keys.Select):
		m.selectLevel()

	case key.Matches(msg, m.keys.Scores):
		m.openScoreboard = true

	case key.Matches(msg, m.keys.VolumeUp):
		m.changeVolume(volumeStep)

	case key.Matches(msg, m.keys.VolumeDown):
		m.changeVolume(-volumeStep)

	case key.Matches(msg, m.keys.ToggleFPS):
		m.settings.ShowFPS = !m.settings.ShowFPS
		m.progress.SaveSettings(m.settings)
	}

	return m, nil
}

// selectLevel picks the level under the cursor unless it is locked.
func (m *MenuModel) selectLevel() {
	if len(m.levels) == 0 {
		return
	}
	l := m.levels[m.table.Cursor()]
	if l.Number > m.progress.Unlocked() {
		m.status = fmt.Sprintf("Level %d is locked. Clear level %d first.", l.Number, l.Number-1)
		return
	}
	m.selected = l.Number
}

// changeVolume adjusts, stores and applies the volume.
func (m *MenuModel) changeVolume(delta float64) {
	v := m.settings.Volume + delta
	// Snap to whole steps so repeated presses land on 0 and 1 exactly.
	v = float64(int(v*10+0.5)) / 10
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	m.settings.Volume = v
	m.progress.SaveSettings(m.settings)
	m.audio.SetVolume(v)
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("P L A T F O R M E R"), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))
	b.WriteString("\n\n")

	fps := "off"
	if m.settings.ShowFPS {
		fps = "on"
	}
	info := fmt.Sprintf("Volume: %d%%   FPS: %s   Best: %d",
		int(m.settings.Volume*100+0.5), fps, m.progress.HighScore())
	b.WriteString(centerText(info, m.width))
	b.WriteString("\n")

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
		b.WriteString(centerText(statusStyle.Render(m.status), m.width))
	}
	b.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen level, or 0 if none was chosen.
func (m MenuModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Settings returns the settings as edited in the menu.
func (m MenuModel) Settings() storage.Settings {
	return m.settings
}

// centerText centers text within given width.
// Width is measured in cells so styled and wide text center correctly.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		w := lipgloss.Width(line)
		if w >= width {
			continue
		}
		lines[i] = strings.Repeat(" ", (width-w)/2) + line
	}
	return strings.Join(lines, "\n")
}
