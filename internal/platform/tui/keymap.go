package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// KeyMap defines the key bindings for a two-player match on one keyboard.
// Player 1 steers with WASD, player 2 with the arrow keys.
type KeyMap struct {
	P1Up    key.Binding
	P1Down  key.Binding
	P1Left  key.Binding
	P1Right key.Binding
	P2Up    key.Binding
	P2Down  key.Binding
	P2Left  key.Binding
	P2Right key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding

	// Summary bindings shown in the help footer only
	p1Steer key.Binding
	p2Steer key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.p1Steer, k.p2Steer, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down, k.P1Left, k.P1Right},
		{k.P2Up, k.P2Down, k.P2Left, k.P2Right},
		{k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1Up:    key.NewBinding(key.WithKeys("w", "W"), key.WithHelp("w", "P1 up")),
		P1Down:  key.NewBinding(key.WithKeys("s", "S"), key.WithHelp("s", "P1 down")),
		P1Left:  key.NewBinding(key.WithKeys("a", "A"), key.WithHelp("a", "P1 left")),
		P1Right: key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("d", "P1 right")),
		P2Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "P2 up")),
		P2Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "P2 down")),
		P2Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "P2 left")),
		P2Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "P2 right")),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "next round"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		p1Steer: key.NewBinding(key.WithKeys("w", "a", "s", "d"), key.WithHelp("wasd", "P1 steer")),
		p2Steer: key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("arrows", "P2 steer")),
	}
}

type keyAction struct {
	binding key.Binding
	player  core.PlayerID
	action  core.Action
}

// actions lists every binding that feeds the game. Platform-wide actions
// travel on Player1's frame.
func (k KeyMap) actions() []keyAction {
	return []keyAction{
		{k.P1Up, core.Player1, core.ActionUp},
		{k.P1Down, core.Player1, core.ActionDown},
		{k.P1Left, core.Player1, core.ActionLeft},
		{k.P1Right, core.Player1, core.ActionRight},
		{k.P2Up, core.Player2, core.ActionUp},
		{k.P2Down, core.Player2, core.ActionDown},
		{k.P2Left, core.Player2, core.ActionLeft},
		{k.P2Right, core.Player2, core.ActionRight},
		{k.Pause, core.Player1, core.ActionPause},
		{k.Restart, core.Player1, core.ActionRestart},
	}
}

// MapKey translates a key message to a player action.
// Returns ActionNone for unbound keys, and isQuit for a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (player core.PlayerID, action core.Action, isQuit bool) {
	if key.Matches(msg, k.Quit) {
		return core.NoPlayer, core.ActionQuit, true
	}
	for _, ka := range k.actions() {
		if key.Matches(msg, ka.binding) {
			return ka.player, ka.action, false
		}
	}
	return core.NoPlayer, core.ActionNone, false
}

// MapKeyToMultiFrame updates a multi-input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	player, action, isQuit := k.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(player, action)
	}
	return isQuit
}
