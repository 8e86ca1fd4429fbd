package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keybindings for the dashboard.
type keyMap struct {
	Quit     key.Binding
	PrevTab  key.Binding
	NextTab  key.Binding
	Tab1     key.Binding
	Tab2     key.Binding
	Tab3     key.Binding
	Tab4     key.Binding
	Up       key.Binding
	Down     key.Binding
	Sort     key.Binding
	Refresh  key.Binding
	Kill     key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
}

// defaultKeyMap returns the standard keybindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next tab"),
		),
		Tab1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "overview")),
		Tab2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "processes")),
		Tab3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "network")),
		Tab4: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "disks")),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "select up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "select down"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle sort"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Kill: key.NewBinding(
			key.WithKeys("delete", "x"),
			key.WithHelp("del/x", "kill process"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "n"),
			key.WithHelp("esc/n", "cancel"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevTab, k.NextTab, k.Up, k.Down, k.Sort, k.Refresh, k.Kill, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevTab, k.NextTab, k.Tab1, k.Tab2, k.Tab3, k.Tab4},
		{k.Up, k.Down, k.Sort, k.Refresh},
		{k.Kill, k.Confirm, k.Cancel, k.Quit},
	}
}
