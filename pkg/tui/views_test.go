package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sized(m *Model) *Model {
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := New(newFakeStore("dev"))
	if got := m.View(); got != "Loading..." {
		t.Errorf("View before sizing = %q, want Loading...", got)
	}
}

func TestViewShowsEmptyHint(t *testing.T) {
	m := sized(New(newFakeStore()))

	if !strings.Contains(m.View(), "No snapshots yet") {
		t.Error("empty list should hint at the save key")
	}
}

func TestViewMarksSelection(t *testing.T) {
	m := sized(New(newFakeStore("dev", "prod")))

	view := m.View()
	if !strings.Contains(view, "▸ dev.conf") {
		t.Error("selected entry should carry the cursor marker")
	}
	if !strings.Contains(view, "prod.conf") {
		t.Error("all entries should be listed")
	}
}

func TestViewFooterFollowsMode(t *testing.T) {
	m := sized(New(newFakeStore("dev")))

	press(m, keyRunes("s"))
	typeText(m, "night")
	if !strings.Contains(m.View(), "Save as: night") {
		t.Error("saving mode should show the input prompt")
	}

	press(m, key(tea.KeyEscape))
	press(m, keyRunes("u"))
	if !strings.Contains(m.View(), "Overwrite 'dev.conf'") {
		t.Error("confirm mode should name the overwrite target")
	}
}
