// Package calc evaluates the arithmetic expressions typed on a calculator keypad.
//
// An expression goes through Tokenize, Parse, Evaluate and Format, and the
// first failing stage decides the error Kind. Every function in this package
// is pure and safe for concurrent use.
package calc

import (
	"strings"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/eval"
	"go.creack.net/gocalc/lexer"
	"go.creack.net/gocalc/parser"
)

// ErrorText is what a calculator display shows for any failed evaluation.
const ErrorText = "Error"

var glyphReplacer = strings.NewReplacer("×", "*", "÷", "/")

// Normalize rewrites the keypad glyphs × and ÷ to their ASCII operators.
func Normalize(raw string) string {
	return glyphReplacer.Replace(raw)
}

// Result is the outcome of EvaluateExpression.
type Result struct {
	OK    bool
	Value string // Set when OK.
	Kind  Kind   // Set when !OK.
	Err   error  // Set when !OK.
}

// Display returns the text to show to the user.
func (r Result) Display() string {
	if !r.OK {
		return ErrorText
	}
	return r.Value
}

// Evaluator evaluates expressions with a given output precision.
// The zero value is ready to use.
type Evaluator struct {
	// Precision caps the number of fractional digits of the result.
	// Zero or negative keeps the shortest exact representation.
	Precision int
}

// Parse normalizes and parses raw without evaluating it.
func (Evaluator) Parse(raw string) (ast.Expr, error) {
	tokens, err := lexer.Tokenize(Normalize(raw))
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

// Evaluate returns the display-ready value of raw.
func (e Evaluator) Evaluate(raw string) (string, error) {
	expr, err := e.Parse(raw)
	if err != nil {
		return "", err
	}
	value, err := eval.Evaluate(expr)
	if err != nil {
		return "", err
	}
	digits := e.Precision
	if digits <= 0 {
		digits = -1
	}
	return eval.FormatPrecision(value, digits)
}

// EvaluateExpression is Evaluate in tagged result form.
func (e Evaluator) EvaluateExpression(raw string) Result {
	value, err := e.Evaluate(raw)
	if err != nil {
		return Result{Kind: KindOf(err), Err: err}
	}
	return Result{OK: true, Value: value}
}

var defaultEvaluator Evaluator

// Parse normalizes and parses raw without evaluating it.
func Parse(raw string) (ast.Expr, error) { return defaultEvaluator.Parse(raw) }

// Evaluate returns the display-ready value of raw, e.g. "14" for "2+3×4".
func Evaluate(raw string) (string, error) { return defaultEvaluator.Evaluate(raw) }

// EvaluateExpression evaluates raw and reports the outcome as a Result.
func EvaluateExpression(raw string) Result { return defaultEvaluator.EvaluateExpression(raw) }

// IsBalanced reports whether text has as many '(' as ')'.
func IsBalanced(text string) bool {
	return strings.Count(text, "(") == strings.Count(text, ")")
}

// CanAppendClosingParen reports whether text has an unclosed '(' left for a ')' to close.
func CanAppendClosingParen(text string) bool {
	return strings.Count(text, "(") > strings.Count(text, ")")
}
