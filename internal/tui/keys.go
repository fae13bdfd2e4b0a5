package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Roll   key.Binding
	Toggle key.Binding
	Use    key.Binding
	Clear  key.Binding
	Stop   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Roll: key.NewBinding(
			key.WithKeys("r", " "),
			key.WithHelp("space/r", "roll"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "select die"),
		),
		Use: key.NewBinding(
			key.WithKeys("u", "enter", " "),
			key.WithHelp("space/u", "use selection"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "backspace"),
			key.WithHelp("c", "clear"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "bank & pass"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Roll, k.Toggle, k.Use, k.Stop, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Roll, k.Toggle, k.Use},
		{k.Clear, k.Stop, k.Quit},
	}
}
