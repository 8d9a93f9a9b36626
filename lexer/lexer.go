// Package lexer provides a lexical analyzer for arithmetic expressions as typed on a calculator keypad.
package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Lexing errors. Every error returned by Tokenize wraps ErrLex and one of the more specific kinds.
var (
	ErrLex              = errors.New("lex error")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrMalformedNumber  = errors.New("malformed number")
)

type Lexer struct {
	input string

	curToken Token
	err      error // Set alongside a TokError token.

	atEOF bool

	pos   int // Current position in input.
	start int // Position of the start of the current token.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next token in the input.
// Once the input is exhausted, or after an error, it keeps returning TokEOF.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, pos: l.pos}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Err returns the error behind the last TokError token, if any.
func (l *Lexer) Err() error { return l.err }

// Tokenize runs the lexer over the whole input.
// On success the returned slice always ends with a TokEOF token.
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokError {
			return nil, fmt.Errorf("%w: %w", ErrLex, l.err)
		}
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		return
	}
	_, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

// errorf emits a TokError token and drops the rest of the input.
func (l *Lexer) errorf(kind error, format string, args ...any) stateFn {
	l.err = fmt.Errorf("%w %s at offset %d", kind, fmt.Sprintf(format, args...), l.start)
	l.curToken = Token{
		Type:  TokError,
		Value: l.err.Error(),
		pos:   l.start,
	}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}
