/*
File    : go-monkey/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected tokens
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// TestNewLexer_ConsumeTokens tests the ConsumeTokens method of the Lexer
func TestNewLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(INT_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "12"),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
			},
		},
		{
			Input: `let five = 5; let ten = 10;`,
			ExpectedTokens: []Token{
				NewToken(LET_KEY, "let"),
				NewToken(IDENTIFIER_ID, "five"),
				NewToken(ASSIGN_OP, "="),
				NewToken(INT_LIT, "5"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(LET_KEY, "let"),
				NewToken(IDENTIFIER_ID, "ten"),
				NewToken(ASSIGN_OP, "="),
				NewToken(INT_LIT, "10"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `let add = fn(x, y) { x + y; };`,
			ExpectedTokens: []Token{
				NewToken(LET_KEY, "let"),
				NewToken(IDENTIFIER_ID, "add"),
				NewToken(ASSIGN_OP, "="),
				NewToken(FUNC_KEY, "fn"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(COMMA_DELIM, ","),
				NewToken(IDENTIFIER_ID, "y"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(PLUS_OP, "+"),
				NewToken(IDENTIFIER_ID, "y"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `!-/*5; 5 < 10 > 5;`,
			ExpectedTokens: []Token{
				NewToken(NOT_OP, "!"),
				NewToken(MINUS_OP, "-"),
				NewToken(DIV_OP, "/"),
				NewToken(MUL_OP, "*"),
				NewToken(INT_LIT, "5"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(INT_LIT, "5"),
				NewToken(LT_OP, "<"),
				NewToken(INT_LIT, "10"),
				NewToken(GT_OP, ">"),
				NewToken(INT_LIT, "5"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `if (5 < 10) { return true; } else { return false; }`,
			ExpectedTokens: []Token{
				NewToken(IF_KEY, "if"),
				NewToken(LEFT_PAREN, "("),
				NewToken(INT_LIT, "5"),
				NewToken(LT_OP, "<"),
				NewToken(INT_LIT, "10"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RETURN_KEY, "return"),
				NewToken(TRUE_KEY, "true"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(ELSE_KEY, "else"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RETURN_KEY, "return"),
				NewToken(FALSE_KEY, "false"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
			},
		},
		{
			Input: `10 == 10; 10 != 9;`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "10"),
				NewToken(EQ_OP, "=="),
				NewToken(INT_LIT, "10"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(INT_LIT, "10"),
				NewToken(NE_OP, "!="),
				NewToken(INT_LIT, "9"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `"This is a long string  " nowAnIdentifier_234 "12"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "This is a long string  "),
				NewToken(IDENTIFIER_ID, "nowAnIdentifier_234"),
				NewToken(STRING_LIT, "12"),
			},
		},
		{
			Input: `{"one": 1, "two": 2}`,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(STRING_LIT, "one"),
				NewToken(COLON_DELIM, ":"),
				NewToken(INT_LIT, "1"),
				NewToken(COMMA_DELIM, ","),
				NewToken(STRING_LIT, "two"),
				NewToken(COLON_DELIM, ":"),
				NewToken(INT_LIT, "2"),
				NewToken(RIGHT_BRACE, "}"),
			},
		},
	}

	for _, test := range tests {
		lexer := NewLexer(test.Input)
		tokens := lexer.ConsumeTokens()
		assert.Equal(t, len(test.ExpectedTokens), len(tokens), "input: %q", test.Input)
		for i, expected := range test.ExpectedTokens {
			assert.Equal(t, expected.Type, tokens[i].Type, "input: %q token %d", test.Input, i)
			assert.Equal(t, expected.Literal, tokens[i].Literal, "input: %q token %d", test.Input, i)
		}
	}
}

// TestNewLexer_Keywords verifies that every keyword is classified as its
// keyword token and not as a plain identifier
func TestNewLexer_Keywords(t *testing.T) {
	lexer := NewLexer(`fn let true false if else return`)
	tokens := lexer.ConsumeTokens()

	expected := []TokenType{
		FUNC_KEY, LET_KEY, TRUE_KEY, FALSE_KEY, IF_KEY, ELSE_KEY, RETURN_KEY,
	}
	assert.Equal(t, len(expected), len(tokens))
	for i, tokenType := range expected {
		assert.Equal(t, tokenType, tokens[i].Type)
	}
}

// TestNewLexer_EscapeSequences verifies escape processing in string literals
func TestNewLexer_EscapeSequences(t *testing.T) {
	lexer := NewLexer(`"a\tb" "line1\nline2" "quote:\"q\"" "back\\slash"`)
	tokens := lexer.ConsumeTokens()

	assert.Equal(t, 4, len(tokens))
	assert.Equal(t, "a\tb", tokens[0].Literal)
	assert.Equal(t, "line1\nline2", tokens[1].Literal)
	assert.Equal(t, `quote:"q"`, tokens[2].Literal)
	assert.Equal(t, `back\slash`, tokens[3].Literal)
}

// TestNewLexer_UnterminatedString verifies that an unterminated string
// produces a token whose literal runs to the end of input
func TestNewLexer_UnterminatedString(t *testing.T) {
	lexer := NewLexer(`"never closed`)
	tokens := lexer.ConsumeTokens()

	assert.Equal(t, 1, len(tokens))
	assert.Equal(t, STRING_LIT, tokens[0].Type)
	assert.Equal(t, "never closed", tokens[0].Literal)
}

// TestNewLexer_InvalidCharacters verifies that unknown bytes come back as
// INVALID tokens instead of failing the lexer
func TestNewLexer_InvalidCharacters(t *testing.T) {
	lexer := NewLexer(`1 @ 2`)
	tokens := lexer.ConsumeTokens()

	assert.Equal(t, 3, len(tokens))
	assert.Equal(t, INT_LIT, tokens[0].Type)
	assert.Equal(t, INVALID_TYPE, tokens[1].Type)
	assert.Equal(t, "@", tokens[1].Literal)
	assert.Equal(t, INT_LIT, tokens[2].Type)
}

// TestNewLexer_Comments verifies that single-line and multi-line comments
// are skipped entirely
func TestNewLexer_Comments(t *testing.T) {
	src := `
let x = 1; // trailing comment
/* block
   comment */
let y = 2;
`
	lexer := NewLexer(src)
	tokens := lexer.ConsumeTokens()

	expected := []Token{
		NewToken(LET_KEY, "let"),
		NewToken(IDENTIFIER_ID, "x"),
		NewToken(ASSIGN_OP, "="),
		NewToken(INT_LIT, "1"),
		NewToken(SEMICOLON_DELIM, ";"),
		NewToken(LET_KEY, "let"),
		NewToken(IDENTIFIER_ID, "y"),
		NewToken(ASSIGN_OP, "="),
		NewToken(INT_LIT, "2"),
		NewToken(SEMICOLON_DELIM, ";"),
	}
	assert.Equal(t, len(expected), len(tokens))
	for i, exp := range expected {
		assert.Equal(t, exp.Type, tokens[i].Type)
		assert.Equal(t, exp.Literal, tokens[i].Literal)
	}
}

// TestNewLexer_EofIsSticky verifies that NextToken keeps returning EOF
// after the input is exhausted
func TestNewLexer_EofIsSticky(t *testing.T) {
	lexer := NewLexer(`5`)
	first := lexer.NextToken()
	assert.Equal(t, INT_LIT, first.Type)

	for i := 0; i < 3; i++ {
		token := lexer.NextToken()
		assert.Equal(t, EOF_TYPE, token.Type)
	}
}

// TestNewLexer_LineTracking verifies line metadata across newlines
func TestNewLexer_LineTracking(t *testing.T) {
	lexer := NewLexer("let a = 1;\nlet b = 2;")
	tokens := lexer.ConsumeTokens()

	assert.Equal(t, 10, len(tokens))
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[5].Line)
}
