// Package tui is an interactive terminal keypad for the calculator.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go.creack.net/gocalc/calc"
	"go.creack.net/gocalc/keypad"
)

const displayWidth = 28

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("170")).
			Padding(0, 1).
			Width(displayWidth).
			Align(lipgloss.Right)

	inputStyle  = lipgloss.NewStyle().Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	buttonStyle        = lipgloss.NewStyle().Width(7).Align(lipgloss.Center).Foreground(lipgloss.Color("252"))
	operatorStyle      = buttonStyle.Foreground(lipgloss.Color("170"))
	pressedButtonStyle = buttonStyle.Reverse(true).Bold(true)

	helpStyle = lipgloss.NewStyle().MarginTop(1)
)

// Model is the bubbletea model of the keypad.
type Model struct {
	state     keypad.State
	evaluator calc.Evaluator

	keys keyMap
	help help.Model

	lastKey  string
	quitting bool
}

// New creates a keypad model evaluating with e.
func New(e calc.Evaluator) Model {
	return Model{
		state:     keypad.New(),
		evaluator: e,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
}

// State returns the current keypad state.
func (m Model) State() keypad.State { return m.state }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) press(label string) Model {
	m.state = keypad.PressWith(m.evaluator, m.state, label)
	m.lastKey = label
	return m
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Evaluate):
			m = m.press(keypad.KeyEquals)
		case key.Matches(msg, m.keys.Backspace):
			m = m.press(keypad.KeyBackspace)
		case key.Matches(msg, m.keys.Clear):
			m = m.press(keypad.KeyClear)
		default:
			if label, ok := inputKeys[msg.String()]; ok {
				m = m.press(label)
			}
		}
	}
	return m, nil
}

func (m Model) renderDisplay() string {
	result := resultStyle.Render(m.state.Result)
	if m.state.Result == calc.ErrorText {
		result = errorStyle.Render(m.state.Result)
	}
	return displayStyle.Render(inputStyle.Render(m.state.Input) + "\n" + result)
}

func (m Model) renderGrid() string {
	rows := make([]string, 0, len(keypad.Keys))
	for _, row := range keypad.Keys {
		cells := make([]string, 0, len(row))
		for _, label := range row {
			style := buttonStyle
			switch {
			case label == m.lastKey:
				style = pressedButtonStyle
			case keypad.IsOperator(label) || label == keypad.KeyEquals:
				style = operatorStyle
			}
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.renderDisplay())
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

// Run starts the keypad on the terminal and blocks until the user quits.
func Run(e calc.Evaluator) error {
	_, err := tea.NewProgram(New(e)).Run()
	return err
}
