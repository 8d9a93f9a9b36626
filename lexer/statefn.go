package lexer

import "strings"

const (
	digits     = "0123456789"
	whitespace = " \t\r\n"
)

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
// The keypad glyphs × and ÷ map to the same tokens as their ASCII forms.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokMultiply,
	'×': TokMultiply,
	'/': TokDivide,
	'÷': TokDivide,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	r := l.peek()
	if l.atEOF {
		return l.emit(TokEOF)
	}

	switch {
	case strings.ContainsRune(whitespace, r):
		l.acceptRun(whitespace)
		l.ignore()
		return lexText
	case r >= '0' && r <= '9', r == '.':
		return lexNumber
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.errorf(ErrInvalidCharacter, "%q", r)
	}
}

// lexNumber consumes a decimal literal: digits with at most one '.'.
// Either side of the point may be empty, but not both.
func lexNumber(l *Lexer) stateFn {
	intPart := l.acceptRun(digits)
	fracPart := false
	if l.accept(".") {
		fracPart = l.acceptRun(digits)
	}
	if l.peek() == '.' {
		l.acceptRun(digits + ".")
		return l.errorf(ErrMalformedNumber, "%q", l.input[l.start:l.pos])
	}
	if !intPart && !fracPart {
		return l.errorf(ErrMalformedNumber, "%q", l.input[l.start:l.pos])
	}
	return l.emit(TokNumber)
}
