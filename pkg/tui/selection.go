package tui

// Selection is an ordered view over snapshot names with a movable cursor.
// The cursor wraps at both ends and is -1 exactly when the list is empty.
type Selection struct {
	names  []string
	cursor int
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{cursor: -1}
}

// Next moves the cursor one position down, wrapping to the top. No-op on an
// empty list.
func (s *Selection) Next() {
	if len(s.names) == 0 {
		return
	}
	s.cursor = (s.cursor + 1) % len(s.names)
}

// Previous moves the cursor one position up, wrapping to the bottom. No-op
// on an empty list.
func (s *Selection) Previous() {
	if len(s.names) == 0 {
		return
	}
	s.cursor = (s.cursor - 1 + len(s.names)) % len(s.names)
}

// Refresh replaces the list contents. The cursor is kept where possible,
// clamped to the last entry if the list shrank, and reset to -1 if it is
// now empty.
func (s *Selection) Refresh(names []string) {
	s.names = names

	switch {
	case len(names) == 0:
		s.cursor = -1
	case s.cursor < 0:
		s.cursor = 0
	case s.cursor >= len(names):
		s.cursor = len(names) - 1
	}
}

// Current returns the name under the cursor, or false when the list is
// empty.
func (s *Selection) Current() (string, bool) {
	if s.cursor < 0 {
		return "", false
	}
	return s.names[s.cursor], true
}

// Names returns the underlying list in display order.
func (s *Selection) Names() []string {
	return s.names
}

// Index returns the cursor position, -1 when empty.
func (s *Selection) Index() int {
	return s.cursor
}

// Len returns the number of entries.
func (s *Selection) Len() int {
	return len(s.names)
}
