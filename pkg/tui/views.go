package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const minPreviewWidth = 30

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := titleStyle.Render("muxcfg — tmux config snapshots")

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderList(),
		m.renderPreview(),
	)

	return lipgloss.JoinVertical(lipgloss.Top, header, body, m.renderFooter())
}

func (m *Model) renderList() string {
	var b strings.Builder

	if m.selection.Len() == 0 {
		b.WriteString(emptyStyle.Render("No snapshots yet. Press 's' to save one."))
	} else {
		for i, name := range m.selection.Names() {
			if i == m.selection.Index() {
				b.WriteString(selectedStyle.Render("▸ " + name))
			} else {
				b.WriteString(normalStyle.Render("  " + name))
			}
			b.WriteString("\n")
		}
	}

	return listBorderStyle.
		Width(m.listWidth()).
		Height(m.paneHeight()).
		Render(b.String())
}

func (m *Model) renderPreview() string {
	return previewBorderStyle.
		Width(m.previewWidth()).
		Height(m.paneHeight()).
		Render(m.preview.View())
}

// renderFooter shows the mode-specific line: the save prompt, the overwrite
// question, or the status channel.
func (m *Model) renderFooter() string {
	switch m.mode {
	case ModeSaving:
		return promptStyle.Render("Save as: "+m.input) + selectedStyle.Render("▌")

	case ModeConfirmUpdate:
		question := fmt.Sprintf("Overwrite '%s' with the current live config? (y/n)", m.pending)
		return confirmStyle.Render(wordwrap.String(question, m.width-2))

	default:
		return statusStyle.Render(wordwrap.String(m.status.Current(), m.width-2))
	}
}

func (m *Model) listWidth() int {
	w := m.width / 3
	if m.width-w < minPreviewWidth {
		w = m.width - minPreviewWidth
	}
	if w < 0 {
		w = 0
	}
	return w
}

func (m *Model) previewWidth() int {
	// -4 leaves room for both panes' borders.
	w := m.width - m.listWidth() - 4
	if w < 0 {
		w = 0
	}
	return w
}

func (m *Model) paneHeight() int {
	// Header and footer take one line each, borders two more.
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) resizePreview() {
	m.preview.Width = m.previewWidth()
	m.preview.Height = m.paneHeight()
}
