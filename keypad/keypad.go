// Package keypad holds the state of a calculator keypad and the pure
// transitions applied to it on each key press.
package keypad

import (
	"slices"
	"unicode/utf8"

	"go.creack.net/gocalc/calc"
)

// Key labels that are not plain input characters.
const (
	KeyEquals    = "="
	KeyClear     = "AC"
	KeyBackspace = "⌫"
	KeyOpen      = "("
	KeyClose     = ")"
)

// Keys is the button grid, top row first.
var Keys = [][]string{
	{KeyOpen, KeyClose, KeyClear, KeyBackspace},
	{"7", "8", "9", "÷"},
	{"4", "5", "6", "×"},
	{"1", "2", "3", "-"},
	{".", "0", KeyEquals, "+"},
}

var operators = []string{"+", "-", "×", "÷"}

// IsKey reports whether label is one of the keypad buttons.
func IsKey(label string) bool {
	for _, row := range Keys {
		if slices.Contains(row, label) {
			return true
		}
	}
	return false
}

// IsOperator reports whether label is one of the arithmetic operator buttons.
func IsOperator(label string) bool {
	return slices.Contains(operators, label)
}

// State is the whole keypad state. It is a plain value, owned by the caller.
type State struct {
	Input      string // Expression being typed, "0" when empty.
	Result     string // Last displayed result, or "Error".
	LastResult string // Last successful result, used to chain operations.

	// NewCalculation is set right after a successful "=".
	// The next digit starts a fresh input, the next operator continues from LastResult.
	NewCalculation bool
}

// New returns the initial state.
func New() State {
	return State{Input: "0"}
}

// Press returns the state after pressing key. Unknown keys leave s unchanged.
func Press(s State, key string) State {
	return PressWith(calc.Evaluator{}, s, key)
}

// PressWith is Press using e to evaluate on "=".
func PressWith(e calc.Evaluator, s State, key string) State {
	if !IsKey(key) {
		return s
	}

	switch key {
	case KeyEquals:
		res := e.EvaluateExpression(s.Input)
		s.Result = res.Display()
		if res.OK {
			s.LastResult = res.Value
			s.NewCalculation = true
		}
	case KeyClear:
		s = New()
	case KeyBackspace:
		if utf8.RuneCountInString(s.Input) > 1 {
			_, size := utf8.DecodeLastRuneInString(s.Input)
			s.Input = s.Input[:len(s.Input)-size]
		} else {
			s.Input = "0"
		}
	case KeyOpen:
		if s.Input == "0" || s.NewCalculation {
			s.Input = key
		} else {
			s.Input += key
		}
		s.NewCalculation = false
	case KeyClose:
		if calc.CanAppendClosingParen(s.Input) {
			s.Input += key
		}
	default:
		switch {
		case s.NewCalculation && IsOperator(key):
			s.Input = s.LastResult + key
			s.NewCalculation = false
		case s.NewCalculation:
			s.Input = key
			s.NewCalculation = false
		case s.Input == "0":
			s.Input = key
		default:
			s.Input += key
		}
	}
	return s
}

// PressAll applies every key in order.
func PressAll(s State, keys ...string) State {
	for _, k := range keys {
		s = Press(s, k)
	}
	return s
}
