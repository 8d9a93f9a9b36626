package calc

import (
	"errors"

	"go.creack.net/gocalc/eval"
	"go.creack.net/gocalc/lexer"
	"go.creack.net/gocalc/parser"
)

// Kind classifies evaluation failures.
type Kind int

// Error kinds.
const (
	KindNone Kind = iota
	KindLex
	KindSyntax
	KindDivisionByZero
	KindOverflow
)

var kindStrings = map[Kind]string{
	KindNone:           "None",
	KindLex:            "LexError",
	KindSyntax:         "SyntaxError",
	KindDivisionByZero: "DivisionByZero",
	KindOverflow:       "Overflow",
}

func (k Kind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}
	return "Unknown"
}

// KindOf returns the Kind of an error produced by this module.
// A nil error is KindNone. Foreign errors are reported as KindSyntax.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, lexer.ErrLex):
		return KindLex
	case errors.Is(err, parser.ErrSyntax):
		return KindSyntax
	case errors.Is(err, eval.ErrDivisionByZero):
		return KindDivisionByZero
	case errors.Is(err, eval.ErrOverflow):
		return KindOverflow
	default:
		return KindSyntax
	}
}
