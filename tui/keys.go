package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"go.creack.net/gocalc/keypad"
)

type keyMap struct {
	Evaluate  key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.Clear, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Evaluate, k.Backspace, k.Clear},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Evaluate: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter/=", "evaluate"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "c"),
			key.WithHelp("esc/c", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// inputKeys maps typed characters to keypad labels.
var inputKeys = map[string]string{
	"(": keypad.KeyOpen,
	")": keypad.KeyClose,
	".": ".",
	"+": "+",
	"-": "-",
	"*": "×",
	"x": "×",
	"×": "×",
	"/": "÷",
	"÷": "÷",
}

func init() {
	for _, d := range "0123456789" {
		inputKeys[string(d)] = string(d)
	}
}
