package tui

import "time"

// statusTTL is how long a custom status message stays on screen before the
// default help line comes back.
const statusTTL = 5 * time.Second

const defaultStatus = "j/k move · enter apply · s save · u update · d delete · r reload · c copy path · q quit"

// Status holds the single user-facing status line. A message set through
// Set expires after statusTTL; the default help line never does.
type Status struct {
	msg   string
	setAt time.Time
}

// Set replaces the message and stamps it with the current time.
func (st *Status) Set(msg string, now time.Time) {
	st.msg = msg
	st.setAt = now
}

// Tick reverts an expired message to the default. Safe to call every loop
// iteration whether or not anything happened.
func (st *Status) Tick(now time.Time) {
	if st.setAt.IsZero() {
		return
	}
	if now.Sub(st.setAt) >= statusTTL {
		st.msg = ""
		st.setAt = time.Time{}
	}
}

// Current returns the line to display.
func (st *Status) Current() string {
	if st.msg == "" {
		return defaultStatus
	}
	return st.msg
}
