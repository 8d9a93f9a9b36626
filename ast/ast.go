// Package ast defines the expression tree produced by the parser.
//
// Nodes are owned by their parent and never shared, so a tree is always acyclic.
package ast

import (
	"strconv"

	"go.creack.net/gocalc/lexer"
)

// Expr is any node of an arithmetic expression tree.
type Expr interface {
	Dump() string
	expr()
}

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float64
}

func (NumberExpr) expr() {}

func (n NumberExpr) Dump() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// BinaryExpr applies one of +, -, *, / to two operands.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.TokenType // TokPlus, TokMinus, TokMultiply or TokDivide.
	Right    Expr
}

func (BinaryExpr) expr() {}

func (b BinaryExpr) Dump() string {
	return "(" + b.Left.Dump() + " " + b.Operator.String() + " " + b.Right.Dump() + ")"
}

// PrefixExpr is a unary sign applied to a primary expression.
type PrefixExpr struct {
	Operator lexer.TokenType // TokMinus.
	Right    Expr
}

func (PrefixExpr) expr() {}

func (p PrefixExpr) Dump() string {
	return "(" + p.Operator.String() + p.Right.Dump() + ")"
}
