package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	ForceQuit  key.Binding
	Help       key.Binding
	ToggleDark key.Binding

	// Gallery
	FocusSearch key.Binding
	LeaveSearch key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Open        key.Binding
	FewerCols   key.Binding
	MoreCols    key.Binding
	SetCols     key.Binding

	// Detail
	Back       key.Binding
	Download   key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Dark/light mode"),
		),

		FocusSearch: key.NewBinding(
			key.WithKeys("/", "s"),
			key.WithHelp("/", "Search"),
		),
		LeaveSearch: key.NewBinding(
			key.WithKeys("esc", "tab", "enter"),
			key.WithHelp("esc", "Browse results"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Move right"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Photo details"),
		),
		FewerCols: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Fewer columns"),
		),
		MoreCols: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "More columns"),
		),
		SetCols: key.NewBinding(
			key.WithKeys("2", "3", "4", "5", "6"),
			key.WithHelp("2-6", "Set columns"),
		),

		Back: key.NewBinding(
			key.WithKeys("esc", "backspace", "b"),
			key.WithHelp("esc", "Back to gallery"),
		),
		Download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Download original"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
	}
}

// FullHelp returns key bindings grouped for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusSearch, k.LeaveSearch},
		{k.Up, k.Down, k.Left, k.Right, k.Open},
		{k.FewerCols, k.MoreCols, k.SetCols},
		{k.Back, k.Download},
		{k.ToggleDark, k.Help, k.Quit},
	}
}
