package parser

import (
	"errors"
	"strconv"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

func parseExpr(p *parser, bp bindingPower) (ast.Expr, error) {
	// Parse the primary expression, always start with nud.
	nudFn, exists := p.nudLookupTable[p.curToken.Type]
	if !exists {
		return nil, p.unexpected()
	}
	left, err := nudFn(p)
	if err != nil {
		return nil, err
	}

	// While we have tokens with a higher binding power, parse them using led.
	// Stopping on equal binding power makes every tier left-associative.
	for p.bindingPowerLookupTable[p.curToken.Type] > bp {
		ledFn, exists := p.ledLookupTable[p.curToken.Type]
		if !exists {
			return nil, p.unexpected()
		}
		left, err = ledFn(p, left, p.bindingPowerLookupTable[p.curToken.Type])
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func parsePrimaryExpr(p *parser) (ast.Expr, error) {
	tok, err := p.expect(lexer.TokNumber)
	if err != nil {
		return nil, err
	}
	number, err := strconv.ParseFloat(tok.Value, 64)
	// Out of range literals parse as ±Inf and are reported by the evaluator.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, p.errorf("invalid number %q at offset %d", tok.Value, tok.Pos())
	}
	p.nextToken()
	return ast.NumberExpr{
		Value: number,
	}, nil
}

func parseGroupingExpr(p *parser) (ast.Expr, error) {
	open, err := p.expect(lexer.TokParenLeft)
	if err != nil {
		return nil, err
	}
	p.nextToken()

	inner, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}

	if p.curToken.Type == lexer.TokEOF {
		return nil, p.errorf("unclosed %q at offset %d", open.Value, open.Pos())
	}
	if _, err := p.expect(lexer.TokParenRight); err != nil {
		return nil, err
	}
	p.nextToken()
	return inner, nil
}

// parsePrefixExpr handles a single leading sign. The operand must be a
// number or a parenthesized group, so "--1" is rejected.
func parsePrefixExpr(p *parser) (ast.Expr, error) {
	operator := p.curToken
	p.nextToken()

	var right ast.Expr
	var err error
	switch p.curToken.Type {
	case lexer.TokNumber:
		right, err = parsePrimaryExpr(p)
	case lexer.TokParenLeft:
		right, err = parseGroupingExpr(p)
	default:
		return nil, p.unexpected()
	}
	if err != nil {
		return nil, err
	}

	if operator.Type == lexer.TokPlus {
		return right, nil
	}
	return ast.PrefixExpr{
		Operator: operator.Type,
		Right:    right,
	}, nil
}

func parseBinaryExpr(p *parser, left ast.Expr, bp bindingPower) (ast.Expr, error) {
	operator := p.curToken
	p.nextToken()
	right, err := parseExpr(p, bp)
	if err != nil {
		return nil, err
	}

	return ast.BinaryExpr{
		Left:     left,
		Operator: operator.Type,
		Right:    right,
	}, nil
}
