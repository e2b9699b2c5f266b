package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down         key.Binding
	Add, Edit        key.Binding
	Toggle, Delete   key.Binding
	Save, Clear      key.Binding
	Export           key.Binding
	Pick             key.Binding
	StepUp, StepDown key.Binding
	PrevDay, NextDay key.Binding
	NextWorkout      key.Binding
	PrevWorkout      key.Binding
	Back, Quit       key.Binding
	Help             key.Binding

	Submit, Cancel key.Binding
	NextField      key.Binding
	PrevField      key.Binding
	Complete       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Save:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Clear:       key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		Export:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export csv")),
		Pick:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		StepUp:      key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		StepDown:    key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		PrevDay:     key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "prev day")),
		NextDay:     key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "next day")),
		NextWorkout: key.NewBinding(key.WithKeys("w"), key.WithHelp("w/W", "workout")),
		PrevWorkout: key.NewBinding(key.WithKeys("W")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),

		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab")),
		Complete:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "complete")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Save, k.Pick, k.Back, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Pick, k.StepUp, k.StepDown},
		{k.Add, k.Edit, k.Toggle, k.Delete},
		{k.Save, k.Clear, k.Export, k.PrevDay, k.NextDay, k.NextWorkout},
		{k.Back, k.Quit, k.Help},
	}
}

// formKeys is the help shown while the add/edit form is open.
type formKeys struct{ keyMap }

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Complete, k.Submit, k.Cancel}
}

func (k formKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// dragKeys is the help shown while a row is picked up.
type dragKeys struct{ keyMap }

func (k dragKeys) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down,
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		k.Cancel,
	}
}

func (k dragKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
