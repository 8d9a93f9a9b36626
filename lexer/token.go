package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Literals.
	TokNumber

	// Operators.
	TokPlus     // '+'.
	TokMinus    // '-'.
	TokMultiply // '*' or '×'.
	TokDivide   // '/' or '÷'.

	// Delimiters.
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber: "NUMBER",

	TokPlus:     "+",
	TokMinus:    "-",
	TokMultiply: "*",
	TokDivide:   "/",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// IsOperator reports whether the token is one of the four arithmetic operators.
func (tt TokenType) IsOperator() bool {
	return tt.IsOneOf(TokPlus, TokMinus, TokMultiply, TokDivide)
}

// Token represents a lexical token of an arithmetic expression.
type Token struct {
	Type  TokenType
	Value string

	pos int // Byte offset of the token start in the input.
}

// Pos returns the byte offset of the token in the input.
func (t Token) Pos() int { return t.pos }

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case t.Type == TokError:
		return t.errorString()
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d]: %.16q", t.Type, t.pos, t.Value)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.pos, t.Value)
}

func (t Token) errorString() string {
	return fmt.Sprintf("ERROR [%d]: %s", t.pos, t.Value)
}
