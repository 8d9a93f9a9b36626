package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to test the lexer
func testLexer(t *testing.T, input string, expectedTokens []Token) {
	t.Helper()

	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokEOF || tok.Type == TokError {
			break
		}
	}
	if len(tokens) != len(expectedTokens) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expectedTokens), len(tokens), tokens)
	}
	for i, expectedToken := range expectedTokens {
		token := tokens[i]

		if token.Type != expectedToken.Type {
			t.Fatalf("tests[%d] - wrong type. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Type, expectedToken, token.Type, token)
		}

		if expectedToken.Type == TokError {
			continue
		}
		if token.Value != expectedToken.Value {
			t.Fatalf("tests[%d] - wrong value. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Value, expectedToken, token.Value, token)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if len(tokenTypeStrings) != int(FinalToken) {
		t.Fatalf("Expected %d token types in tokenTypeStrings, got %d", FinalToken, len(tokenTypeStrings))
	}
}

func TestLexerSingleNumber(t *testing.T) {
	input := "42"
	expectedTokens := []Token{
		{Type: TokNumber, Value: "42"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerBinaryExpression(t *testing.T) {
	input := "2+3*4"
	expectedTokens := []Token{
		{Type: TokNumber, Value: "2"},
		{Type: TokPlus, Value: "+"},
		{Type: TokNumber, Value: "3"},
		{Type: TokMultiply, Value: "*"},
		{Type: TokNumber, Value: "4"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerKeypadGlyphs(t *testing.T) {
	input := "8÷2×3"
	expectedTokens := []Token{
		{Type: TokNumber, Value: "8"},
		{Type: TokDivide, Value: "÷"},
		{Type: TokNumber, Value: "2"},
		{Type: TokMultiply, Value: "×"},
		{Type: TokNumber, Value: "3"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerWhitespace(t *testing.T) {
	input := " ( 1.5\t- 2 )\n"
	expectedTokens := []Token{
		{Type: TokParenLeft, Value: "("},
		{Type: TokNumber, Value: "1.5"},
		{Type: TokMinus, Value: "-"},
		{Type: TokNumber, Value: "2"},
		{Type: TokParenRight, Value: ")"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Integer",
			input: "1234567890",
			expected: []Token{
				{Type: TokNumber, Value: "1234567890"},
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "Decimal",
			input: "3.14",
			expected: []Token{
				{Type: TokNumber, Value: "3.14"},
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "Leading point",
			input: ".5",
			expected: []Token{
				{Type: TokNumber, Value: ".5"},
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "Trailing point",
			input: "5.",
			expected: []Token{
				{Type: TokNumber, Value: "5."},
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "Adjacent numbers",
			input: "1 2",
			expected: []Token{
				{Type: TokNumber, Value: "1"},
				{Type: TokNumber, Value: "2"},
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "Double point",
			input: "1.2.3",
			expected: []Token{
				{Type: TokError},
			},
		},
		{
			name:  "Consecutive points",
			input: "1..",
			expected: []Token{
				{Type: TokError},
			},
		},
		{
			name:  "Lone point",
			input: "1+.",
			expected: []Token{
				{Type: TokNumber, Value: "1"},
				{Type: TokPlus, Value: "+"},
				{Type: TokError},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testLexer(t, tt.input, tt.expected)
		})
	}
}

func TestLexerInvalidCharacter(t *testing.T) {
	input := "1 + a"
	expectedTokens := []Token{
		{Type: TokNumber, Value: "1"},
		{Type: TokPlus, Value: "+"},
		{Type: TokError},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerEOFAfterError(t *testing.T) {
	l := New("%1")
	tok := l.NextToken()
	require.Equal(t, TokError, tok.Type)
	require.ErrorIs(t, l.Err(), ErrInvalidCharacter)

	assert.Equal(t, TokEOF, l.NextToken().Type)
	assert.Equal(t, TokEOF, l.NextToken().Type)
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("(1+2)÷3")
	require.NoError(t, err)

	var types []TokenType
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{
		TokParenLeft, TokNumber, TokPlus, TokNumber, TokParenRight, TokDivide, TokNumber, TokEOF,
	}, types)
}

func TestTokenizeEmpty(t *testing.T) {
	tokens, err := Tokenize("   ")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokEOF, tokens[0].Type)
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    error
		message string
	}{
		{name: "letter", input: "2x3", kind: ErrInvalidCharacter, message: "lex error: invalid character 'x' at offset 1"},
		{name: "percent", input: "50%", kind: ErrInvalidCharacter, message: "lex error: invalid character '%' at offset 2"},
		{name: "nul", input: "1\x00", kind: ErrInvalidCharacter},
		{name: "double point", input: "9 - 1.2.3", kind: ErrMalformedNumber, message: `lex error: malformed number "1.2.3" at offset 4`},
		{name: "lone point", input: ".", kind: ErrMalformedNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.Error(t, err)
			assert.Nil(t, tokens)
			assert.True(t, errors.Is(err, ErrLex), "expected ErrLex, got %v", err)
			assert.ErrorIs(t, err, tt.kind)
			if tt.message != "" {
				assert.EqualError(t, err, tt.message)
			}
		})
	}
}

func TestTokenPos(t *testing.T) {
	tokens, err := Tokenize("12 × 3")
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, 0, tokens[0].Pos())
	assert.Equal(t, 3, tokens[1].Pos())
	assert.Equal(t, 6, tokens[2].Pos()) // × is two bytes wide.
	assert.Equal(t, `NUMBER[0]: "12"`, tokens[0].String())
	assert.Equal(t, "EOF", tokens[3].String())
}
