package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Switch   key.Binding
	Pick     key.Binding
	Drop     key.Binding
	Cancel   key.Binding
	Previous key.Binding
	Next     key.Binding
	Delete   key.Binding
	Restore  key.Binding
	Add      key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Switch:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pool")),
		Pick:     key.NewBinding(key.WithKeys("m", " "), key.WithHelp("m/space", "pick up")),
		Drop:     key.NewBinding(key.WithKeys("enter", "m", " "), key.WithHelp("enter", "drop")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Previous: key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		Next:     key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		Delete:   key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "remove")),
		Restore:  key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter", "restore")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// contextual keeps only the bindings that make sense for the current mode so
// help never offers a disabled action.
func (k keyMap) contextual(p pane, dragging bool) keyMap {
	out := k
	if dragging {
		out.Pick.SetEnabled(false)
		out.Previous.SetEnabled(false)
		out.Next.SetEnabled(false)
		out.Delete.SetEnabled(false)
		out.Restore.SetEnabled(false)
		out.Add.SetEnabled(false)
		out.Switch.SetEnabled(false)
		return out
	}
	out.Drop.SetEnabled(false)
	out.Cancel.SetEnabled(false)
	if p == paneRemoved {
		out.Pick.SetEnabled(false)
		out.Previous.SetEnabled(false)
		out.Next.SetEnabled(false)
		out.Delete.SetEnabled(false)
	} else {
		out.Restore.SetEnabled(false)
	}
	return out
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Drop, k.Cancel, k.Previous, k.Next, k.Delete, k.Restore, k.Switch, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Pick, k.Drop, k.Cancel},
		{k.Previous, k.Next},
		{k.Delete, k.Restore, k.Add},
		{k.Help, k.Quit},
	}
}
