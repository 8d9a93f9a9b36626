// Package parser turns a token stream into an expression tree using precedence climbing.
package parser

import (
	"errors"
	"fmt"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

// ErrSyntax is wrapped by every error returned from Parse.
var ErrSyntax = errors.New("syntax error")

type parser struct {
	tokens []lexer.Token
	idx    int

	prevToken lexer.Token
	curToken  lexer.Token

	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	bindingPowerLookupTable lookupTable[bindingPower]
}

func newParser(tokens []lexer.Token) *parser {
	p := &parser{
		tokens:                  tokens,
		nudLookupTable:          lookupTable[nudHandler]{},
		ledLookupTable:          lookupTable[ledHandler]{},
		bindingPowerLookupTable: lookupTable[bindingPower]{},
	}
	p.createTokenLookups()
	p.nextToken()
	return p
}

// Parse builds the expression tree for the given tokens.
// The whole token stream must form a single expression.
func Parse(tokens []lexer.Token) (ast.Expr, error) {
	p := newParser(tokens)
	if p.curToken.Type == lexer.TokEOF {
		return nil, p.errorf("empty expression")
	}

	expr, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}

	switch p.curToken.Type {
	case lexer.TokEOF:
		return expr, nil
	case lexer.TokParenRight:
		return nil, p.errorf("unmatched %q at offset %d", p.curToken.Value, p.curToken.Pos())
	default:
		return nil, p.errorf("unexpected %q after expression at offset %d", p.curToken.Value, p.curToken.Pos())
	}
}

// ParseString tokenizes and parses the input.
// Lexing errors are returned as is, they do not wrap ErrSyntax.
func ParseString(input string) (ast.Expr, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *parser) nextToken() lexer.Token {
	p.prevToken = p.curToken
	if p.idx >= len(p.tokens) {
		// Missing trailing EOF, or already consumed.
		p.curToken = lexer.Token{Type: lexer.TokEOF}
		return p.curToken
	}
	p.curToken = p.tokens[p.idx]
	p.idx++
	return p.curToken
}

// expect checks if the current token is of the expected type.
func (p *parser) expect(kind ...lexer.TokenType) (lexer.Token, error) {
	if p.curToken.Type.IsOneOf(kind...) {
		return p.curToken, nil
	}
	return p.curToken, p.unexpected()
}

// unexpected reports the current token as out of place.
func (p *parser) unexpected() error {
	switch tok := p.curToken; {
	case tok.Type == lexer.TokEOF && p.prevToken.Type.IsOperator():
		return p.errorf("missing operand after %q at end of input", p.prevToken.Value)
	case tok.Type == lexer.TokEOF:
		return p.errorf("unexpected end of input")
	case tok.Type.IsOperator():
		return p.errorf("missing operand before %q at offset %d", tok.Value, tok.Pos())
	default:
		return p.errorf("unexpected %q at offset %d", tok.Value, tok.Pos())
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}
