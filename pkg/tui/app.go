package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muxcfg/muxcfg/pkg/store"
)

// tickInterval bounds how long the loop waits between redraws, so status
// expiry is observed even when no key arrives.
const tickInterval = 100 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model owns all interactive state: the snapshot list, the status line, the
// current mode, and the mode-scoped input buffer / pending target. It is
// mutated only from Update, on the program's single goroutine.
type Model struct {
	store     store.Store
	selection *Selection
	status    *Status
	mode      Mode

	input   string // save-name buffer, meaningful only in ModeSaving
	pending string // overwrite target, meaningful only in ModeConfirmUpdate

	preview viewport.Model
	width   int
	height  int

	clock func() time.Time
}

// New builds the model and performs the initial scan of the store.
func New(st store.Store) *Model {
	m := &Model{
		store:     st,
		selection: NewSelection(),
		status:    &Status{},
		mode:      ModeNormal,
		preview:   viewport.New(0, 0),
		clock:     time.Now,
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.status.Tick(time.Time(msg))
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePreview()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case ModeSaving:
			return m.updateSaving(msg)
		case ModeConfirmUpdate:
			return m.updateConfirm(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	return m, nil
}

func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "down", "j":
		m.selection.Next()
		m.refreshPreview()

	case "up", "k":
		m.selection.Previous()
		m.refreshPreview()

	case "enter":
		m.applySelected()

	case "s":
		m.input = ""
		m.mode = ModeSaving

	case "u":
		if name, ok := m.selection.Current(); ok {
			m.pending = name
			m.mode = ModeConfirmUpdate
		}

	case "d":
		m.deleteSelected()

	case "r":
		if m.refresh() {
			m.status.Set("Reloaded snapshot list", m.clock())
		}

	case "c":
		m.copySelectedPath()

	case "q":
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) updateSaving(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.saveBuffer()

	case "esc":
		m.input = ""
		m.mode = ModeNormal

	case "backspace":
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}

	case " ":
		m.input += " "

	default:
		if msg.Type == tea.KeyRunes {
			m.input += string(msg.Runes)
		}
	}

	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.updatePending()

	case "n", "esc":
		m.pending = ""
		m.mode = ModeNormal
	}

	return m, nil
}

// Store calls below never abort the loop: every failure is rendered as a
// status line instead.

func (m *Model) applySelected() {
	name, ok := m.selection.Current()
	if !ok {
		return
	}

	if err := m.store.Apply(name); err != nil {
		m.status.Set(failureLine(name, err), m.clock())
		return
	}
	m.status.Set(fmt.Sprintf("Applied '%s'", name), m.clock())
}

func (m *Model) deleteSelected() {
	name, ok := m.selection.Current()
	if !ok {
		return
	}

	if err := m.store.Delete(name); err != nil {
		m.status.Set(failureLine(name, err), m.clock())
		return
	}
	m.refresh()
	m.status.Set(fmt.Sprintf("Deleted '%s'", name), m.clock())
}

func (m *Model) saveBuffer() {
	if m.input == "" {
		m.status.Set("Name cannot be empty", m.clock())
		return
	}

	name := store.Normalize(m.input)
	err := m.store.Save(name)

	m.input = ""
	m.mode = ModeNormal

	if err != nil {
		m.status.Set(failureLine(name, err), m.clock())
		return
	}
	m.refresh()
	m.status.Set(fmt.Sprintf("Saved '%s'", name), m.clock())
}

func (m *Model) updatePending() {
	name := m.pending
	m.pending = ""
	m.mode = ModeNormal

	if err := m.store.Update(name); err != nil {
		m.status.Set(failureLine(name, err), m.clock())
		return
	}
	m.status.Set(fmt.Sprintf("Updated '%s'", name), m.clock())
}

func (m *Model) copySelectedPath() {
	name, ok := m.selection.Current()
	if !ok {
		return
	}

	if err := clipboard.WriteAll(m.store.Path(name)); err != nil {
		m.status.Set(fmt.Sprintf("Clipboard unavailable: %v", err), m.clock())
		return
	}
	m.status.Set(fmt.Sprintf("%s → clipboard", name), m.clock())
}

// refresh re-reads the snapshot list so the view never diverges from what
// is on disk. Returns false when the store could not be listed; the stale
// list is kept and the failure shows up in the status line.
func (m *Model) refresh() bool {
	names, err := m.store.List()
	if err != nil {
		m.status.Set(fmt.Sprintf("Failed to list snapshots: %v", err), m.clock())
		return false
	}
	m.selection.Refresh(names)
	m.refreshPreview()
	return true
}

func (m *Model) refreshPreview() {
	name, ok := m.selection.Current()
	if !ok {
		m.preview.SetContent("")
		return
	}

	content, err := m.store.Read(name)
	if err != nil {
		// Preview is cosmetic; never turn a read failure into a status error.
		m.preview.SetContent("(unable to preview)")
		return
	}
	m.preview.SetContent(string(content))
	m.preview.GotoTop()
}

func failureLine(name string, err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Sprintf("Config '%s' does not exist", name)
	case errors.Is(err, store.ErrExists):
		return fmt.Sprintf("Config '%s' already exists", name)
	default:
		return fmt.Sprintf("Operation on '%s' failed: %v", name, err)
	}
}
