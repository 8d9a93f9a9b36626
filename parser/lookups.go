package parser

import (
	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

type bindingPower int

const (
	bpDefault bindingPower = iota
	bpAdditive
	bpMultiplicative
)

type nudHandler func(*parser) (ast.Expr, error)
type ledHandler func(*parser, ast.Expr, bindingPower) (ast.Expr, error)

type lookupTable[T any] map[lexer.TokenType]T

func (p *parser) led(kind lexer.TokenType, bp bindingPower, fn ledHandler) {
	if _, ok := p.ledLookupTable[kind]; ok {
		panic("duplicate led handler")
	}
	p.ledLookupTable[kind] = fn
	p.bindingPowerLookupTable[kind] = bp
}

func (p *parser) nud(kind lexer.TokenType, fn nudHandler) {
	if _, ok := p.nudLookupTable[kind]; ok {
		panic("duplicate nud handler")
	}
	p.nudLookupTable[kind] = fn
}

func (p *parser) createTokenLookups() {
	// Additive & multiplicative.
	p.led(lexer.TokPlus, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokMinus, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokMultiply, bpMultiplicative, parseBinaryExpr)
	p.led(lexer.TokDivide, bpMultiplicative, parseBinaryExpr)

	// Literals, grouping & signs.
	p.nud(lexer.TokNumber, parsePrimaryExpr)
	p.nud(lexer.TokParenLeft, parseGroupingExpr)
	p.nud(lexer.TokMinus, parsePrefixExpr)
	p.nud(lexer.TokPlus, parsePrefixExpr)
}
