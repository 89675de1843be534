package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/breakout"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

// Choice is what the player picked in the menu.
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceCampaign
	ChoiceEndless
	ChoiceScores
	ChoiceQuit
)

// Selection holds the menu result.
type Selection struct {
	Choice Choice
	Level  int // 0-based start level, campaign only
}

// NewGame creates the game for a campaign or endless selection.
func (s Selection) NewGame() registry.Game {
	switch {
	case s.Choice == ChoiceEndless:
		return breakout.NewEndless()
	case s.Level > 0:
		return breakout.NewAtLevel(s.Level)
	}
	return breakout.New()
}

var mainItems = []string{
	"Campaign",
	"Endless",
	"Select Level...",
	"High Scores",
	"Quit",
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu and level picker.
type MenuModel struct {
	levels        []string
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keys          *KeyMapper
	selection     Selection
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		levels: breakout.LevelNames(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		keys:   NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.handleKey(m.keys.MapKeyToMenuAction(msg)) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey applies a menu action and reports whether the menu is done.
func (m *MenuModel) handleKey(action MenuAction) bool {
	switch action {
	case MenuActionQuit:
		m.selection = Selection{Choice: ChoiceQuit}
		return true
	case MenuActionScoreboard:
		m.selection = Selection{Choice: ChoiceScores}
		return true
	}

	if m.inLevelSelect {
		return m.handleLevelKey(action)
	}

	switch action {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(mainItems)-1)
	case MenuActionBack:
		m.selection = Selection{Choice: ChoiceQuit}
		return true
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.selection = Selection{Choice: ChoiceCampaign}
		case 1:
			m.selection = Selection{Choice: ChoiceEndless}
		case 2:
			m.inLevelSelect = true
			m.levelCursor = 0
			return false
		case 3:
			m.selection = Selection{Choice: ChoiceScores}
		default:
			m.selection = Selection{Choice: ChoiceQuit}
		}
		return true
	}
	return false
}

func (m *MenuModel) handleLevelKey(action MenuAction) bool {
	switch action {
	case MenuActionUp:
		m.levelCursor = max(m.levelCursor-1, 0)
	case MenuActionDown:
		m.levelCursor = min(m.levelCursor+1, len(m.levels)-1)
	case MenuActionBack:
		m.inLevelSelect = false
	case MenuActionSelect:
		m.selection = Selection{Choice: ChoiceCampaign, Level: m.levelCursor}
		return true
	}
	return false
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.selection.Choice != ChoiceNone {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("A R K A N O I D"), m.width))
	b.WriteString("\n\n")

	items, cursor := mainItems, m.cursor
	if m.inLevelSelect {
		b.WriteString(centerText("Select level", m.width))
		b.WriteString("\n\n")
		items, cursor = make([]string, len(m.levels)), m.levelCursor
		for i, name := range m.levels {
			items[i] = fmt.Sprintf("%2d. %s", i+1, name)
		}
	}

	for i, item := range items {
		line := "  " + item
		if i == cursor {
			line = menuCursorStyle.Render("> " + item)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Esc: Back  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selection returns the player's choice, ChoiceNone while still choosing.
func (m MenuModel) Selection() Selection {
	return m.selection
}

// centerText centers text within width, measuring styled text by its
// printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu shows the menu and returns the player's choice. It also returns
// the terminal size seen by the menu.
func RunMenu(cfg core.RuntimeConfig) (Selection, core.RuntimeConfig, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return Selection{Choice: ChoiceQuit}, cfg, err
	}
	m, ok := final.(MenuModel)
	if !ok || m.selection.Choice == ChoiceNone {
		return Selection{Choice: ChoiceQuit}, cfg, nil
	}
	if m.width > 0 && m.height > 0 {
		cfg.ScreenW, cfg.ScreenH = m.width, m.height
	}
	return m.selection, cfg, nil
}
