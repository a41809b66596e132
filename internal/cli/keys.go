package cli

import "github.com/charmbracelet/bubbles/key"

// timerKeyMap lists the timer list bindings.
type timerKeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Toggle        key.Binding
	Collapse      key.Binding
	Add           key.Binding
	Start         key.Binding
	Pause         key.Binding
	Reset         key.Binding
	Complete      key.Binding
	Remove        key.Binding
	StartCategory key.Binding
	PauseCategory key.Binding
	ResetCategory key.Binding
	History       key.Binding
	Export        key.Binding
	SavePreset    key.Binding
}

var timerKeys = timerKeyMap{
	Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start/pause")),
	Collapse:      key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "collapse")),
	Add:           key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Start:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
	Pause:         key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
	Reset:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Complete:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete")),
	Remove:        key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
	StartCategory: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "start category")),
	PauseCategory: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "pause category")),
	ResetCategory: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset category")),
	History:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
	Export:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
	SavePreset:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save preset")),
}

var (
	backKey = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	quitKey = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	helpKey = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys"))
)
