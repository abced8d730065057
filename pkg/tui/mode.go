package tui

// Mode is the current input mode of the TUI. Exactly one mode is active at
// a time and decides which keys mean anything.
type Mode int

const (
	// ModeNormal: browsing the snapshot list, single-key shortcuts live.
	ModeNormal Mode = iota
	// ModeSaving: composing a name for a new snapshot.
	ModeSaving
	// ModeConfirmUpdate: a yes/no decision pending before an overwrite.
	ModeConfirmUpdate
)

func (m Mode) String() string {
	switch m {
	case ModeSaving:
		return "saving"
	case ModeConfirmUpdate:
		return "confirm-update"
	default:
		return "normal"
	}
}
