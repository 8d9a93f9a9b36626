// Package eval computes the value of an expression tree and formats it for display.
package eval

import (
	"errors"
	"fmt"
	"math"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

// Evaluation errors.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("overflow")
)

func evaluateNumber(num ast.NumberExpr) (float64, error) {
	if math.IsInf(num.Value, 0) || math.IsNaN(num.Value) {
		return 0, fmt.Errorf("literal out of range: %w", ErrOverflow)
	}
	return num.Value, nil
}

func evaluatePrefix(prefix ast.PrefixExpr) (float64, error) {
	right, err := Evaluate(prefix.Right)
	if err != nil {
		return 0, err
	}
	switch prefix.Operator {
	case lexer.TokMinus:
		return -right, nil
	case lexer.TokPlus:
		return right, nil
	default:
		return 0, fmt.Errorf("unsupported prefix operator %q", prefix.Operator)
	}
}

func evaluateBinary(bin ast.BinaryExpr) (float64, error) {
	left, err := Evaluate(bin.Left)
	if err != nil {
		return 0, err
	}
	right, err := Evaluate(bin.Right)
	if err != nil {
		return 0, err
	}

	var result float64
	switch bin.Operator {
	case lexer.TokPlus:
		result = left + right
	case lexer.TokMinus:
		result = left - right
	case lexer.TokMultiply:
		result = left * right
	case lexer.TokDivide:
		// Also true for -0.
		if right == 0 {
			return 0, fmt.Errorf("evaluate %s: %w", bin.Dump(), ErrDivisionByZero)
		}
		result = left / right
	default:
		return 0, fmt.Errorf("unsupported binary operator %q", bin.Operator)
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, fmt.Errorf("evaluate %s: %w", bin.Dump(), ErrOverflow)
	}
	return result, nil
}

// Evaluate walks the tree and returns its value.
// The result is always finite when err is nil.
func Evaluate(expr ast.Expr) (float64, error) {
	switch e := expr.(type) {
	case ast.NumberExpr:
		return evaluateNumber(e)
	case ast.PrefixExpr:
		return evaluatePrefix(e)
	case ast.BinaryExpr:
		return evaluateBinary(e)
	default:
		return 0, fmt.Errorf("unsupported expression type %T", e)
	}
}
