package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arkanoid/internal/core"
)

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func feedMenu(m MenuModel, keys ...tea.KeyMsg) MenuModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuSelection(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		expected Selection
	}{
		{"campaign", []tea.KeyMsg{keyEnter}, Selection{Choice: ChoiceCampaign}},
		{"endless", []tea.KeyMsg{keyDown, keyEnter}, Selection{Choice: ChoiceEndless}},
		{"cursor stops at top", []tea.KeyMsg{keyUp, keyUp, keyDown, keyEnter}, Selection{Choice: ChoiceEndless}},
		{"third level", []tea.KeyMsg{keyDown, keyDown, keyEnter, keyDown, keyDown, keyEnter}, Selection{Choice: ChoiceCampaign, Level: 2}},
		{"level cursor stops at last", []tea.KeyMsg{keyDown, keyDown, keyEnter, keyDown, keyDown, keyDown, keyDown, keyDown, keyEnter}, Selection{Choice: ChoiceCampaign, Level: 3}},
		{"back from level list", []tea.KeyMsg{keyDown, keyDown, keyEnter, keyEsc, keyDown, keyEnter}, Selection{Choice: ChoiceScores}},
		{"tab opens scores", []tea.KeyMsg{keyTab}, Selection{Choice: ChoiceScores}},
		{"quit item", []tea.KeyMsg{keyDown, keyDown, keyDown, keyDown, keyEnter}, Selection{Choice: ChoiceQuit}},
		{"q quits", []tea.KeyMsg{runeKey("q")}, Selection{Choice: ChoiceQuit}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := feedMenu(NewMenuModel(core.DefaultConfig()), tc.keys...)
			if got := m.Selection(); got != tc.expected {
				t.Errorf("Selection() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestMenuViewListsLevels(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	if len(m.levels) != 4 {
		t.Fatalf("menu lists %d levels, expected 4", len(m.levels))
	}

	m = feedMenu(m, keyDown, keyDown, keyEnter)
	if !m.inLevelSelect {
		t.Fatal("Select Level should open the level list")
	}
	view := m.View()
	for _, name := range m.levels {
		if !strings.Contains(view, name) {
			t.Errorf("level list is missing %q", name)
		}
	}
}

func TestSelectionNewGame(t *testing.T) {
	tests := []struct {
		sel Selection
		id  string
	}{
		{Selection{Choice: ChoiceCampaign}, "arkanoid"},
		{Selection{Choice: ChoiceCampaign, Level: 2}, "arkanoid"},
		{Selection{Choice: ChoiceEndless}, "arkanoid_endless"},
	}
	for _, tc := range tests {
		if got := tc.sel.NewGame().ID(); got != tc.id {
			t.Errorf("%+v created %q, expected %q", tc.sel, got, tc.id)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText() should not trim, got %q", got)
	}
}
