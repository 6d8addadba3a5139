// Package ui holds the backend-independent interface model: which screen is
// showing, which buttons exist and whether they are enabled, and the status
// readout text. Drawing lives with the window in package display.
package ui

// Screen identifies a top-level screen.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenHowToPlay
	ScreenGame
)

func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenHowToPlay:
		return "how_to_play"
	case ScreenGame:
		return "game"
	}
	return "unknown"
}

// Navigator moves between screens. The game screen is terminal.
type Navigator struct {
	current Screen
	started bool
	onStart func()
}

// NewNavigator starts on the start screen. onStart runs the first time the
// game screen is entered and never again.
func NewNavigator(onStart func()) *Navigator {
	return &Navigator{current: ScreenStart, onStart: onStart}
}

// Current returns the visible screen.
func (n *Navigator) Current() Screen {
	return n.current
}

// Started reports whether the game has been started.
func (n *Navigator) Started() bool {
	return n.started
}

// StartGame switches to the game screen. Reports whether this call started it.
func (n *Navigator) StartGame() bool {
	if n.current != ScreenStart {
		return false
	}
	n.current = ScreenGame
	if n.started {
		return false
	}
	n.started = true
	if n.onStart != nil {
		n.onStart()
	}
	return true
}

// ShowHowToPlay opens the instructions from the start screen.
func (n *Navigator) ShowHowToPlay() {
	if n.current == ScreenStart {
		n.current = ScreenHowToPlay
	}
}

// Back returns from the instructions to the start screen.
func (n *Navigator) Back() {
	if n.current == ScreenHowToPlay {
		n.current = ScreenStart
	}
}

// HowToPlay is the instruction text shown on the how-to-play screen.
var HowToPlay = []string{
	"Build the biggest cruise line on the sea.",
	"",
	"Buy ships with the Buy button, or click the water to place one.",
	"Every second each ship earns passengers x level.",
	"Upgrade a random ship to add a deck and more passengers.",
	"Advertise to raise reputation and fill every ship.",
}
