package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the surface browser key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Up, Down     key.Binding
	Top, Bottom  key.Binding
	Edit         key.Binding
	OpenBelow    key.Binding
	OpenAbove    key.Binding
	DeleteLine   key.Binding
	Save         key.Binding
	Grow, Shrink key.Binding
	NextSurface  key.Binding
	Quit         key.Binding

	// Edit-mode bindings.
	Commit, Cancel    key.Binding
	Backspace         key.Binding
	CursorLeft        key.Binding
	CursorRight       key.Binding
	LineHome, LineEnd key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),

		Edit:       key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter", "edit line")),
		OpenBelow:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open line below")),
		OpenAbove:  key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "open line above")),
		DeleteLine: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete line")),

		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Grow:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "grow context")),
		Shrink: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "shrink context")),

		NextSurface: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next surface")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Commit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Backspace:   key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		CursorLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		CursorRight: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		LineHome:    key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		LineEnd:     key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
	}
}
