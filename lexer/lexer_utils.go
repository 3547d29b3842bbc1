/*
File    : go-monkey/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strings"
	"unicode"
)

// isDigitASCII reports whether c is an ASCII decimal digit ('0'..'9').
// This is used in the hot path for number scanning.
func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

// isWhitespace checks if the given byte is a whitespace character.
// Uses Unicode's definition of whitespace, which includes:
//   - Space, tab, newline, carriage return, form feed, vertical tab
func isWhitespace(curr byte) bool {
	return unicode.IsSpace(rune(curr))
}

// isAlphanumeric checks if the given byte is an alphanumeric character.
// This includes both letters (a-z, A-Z) and digits (0-9).
func isAlphanumeric(curr byte) bool {
	return unicode.IsLetter(rune(curr)) || unicode.IsDigit(rune(curr))
}

// isNumeric checks if the given byte is a numeric digit (0-9).
func isNumeric(curr byte) bool {
	return unicode.IsDigit(rune(curr))
}

// isAlpha checks if the given byte is an alphabetic character (a-z, A-Z).
func isAlpha(curr byte) bool {
	return unicode.IsLetter(rune(curr))
}

// readStringLiteral reads and tokenizes a string literal from the source.
// String literals must be enclosed in double quotes ("). Escape sequences
// like \n, \t, \\, \" are processed into their byte values; an unrecognized
// escape keeps the character as-is.
//
// An unterminated string is not diagnosed here: the token's literal simply
// runs to the end of input and the parser sees whatever follows (nothing).
//
// Supported escape sequences:
//   - \n: newline
//   - \t: tab
//   - \r: carriage return
//   - \f: form feed
//   - \v: vertical tab
//   - \\: backslash
//   - \": double quote
//   - \': single quote
//   - \0: null character
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: A STRING_LIT token with the string content (delimiters excluded)
//
// Example:
//
//	Source: "hello\nworld"
//	Returns: Token{Type: STRING_LIT, Literal: "hello\nworld"}
func readStringLiteral(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	lex.Advance() // Consume opening quote

	var builder strings.Builder

	// Read characters until closing quote or end of input
	for lex.Current != '"' && lex.Current != 0 {
		// Handle escape sequences
		if lex.Current == '\\' && lex.Peek() != 0 {
			lex.Advance() // Consume the backslash
			escapedChar, valid := escapeChar(lex.Current)
			if valid {
				builder.WriteByte(escapedChar)
			} else {
				// Unknown escape - keep the character as-is
				builder.WriteByte(lex.Current)
			}
			lex.Advance()
			continue
		}

		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0 // the Advance below puts the next character at column 1
		}

		// Regular character - add to string
		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	if lex.Current == '"' {
		lex.Advance() // Consume closing quote
	}
	return NewTokenWithMetadata(STRING_LIT, builder.String(), line, column)
}

// escapeChar converts an escape sequence character to its actual byte value.
// This is used when processing escape sequences in string literals.
//
// Parameters:
//   - c: The character following the backslash in an escape sequence
//
// Returns:
//   - byte: The actual byte value of the escape sequence
//   - bool: true if the escape sequence is valid, false otherwise
//
// Example:
//
//	escapeChar('n') -> ('\n', true)
//	escapeChar('x') -> (0, false)
func escapeChar(c byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true // Newline
	case 't':
		return '\t', true // Tab
	case 'r':
		return '\r', true // Carriage return
	case 'f':
		return '\f', true // Form feed
	case 'v':
		return '\v', true // Vertical tab
	case '\\':
		return '\\', true // Backslash
	case '"':
		return '"', true // Double quote
	case '\'':
		return '\'', true // Single quote
	case '0':
		return 0, true // Null character
	default:
		return 0, false // Invalid escape sequence
	}
}

// readNumber reads and tokenizes an integer literal from the source.
// Monkey has no floating-point numbers, so a maximal run of decimal
// digits is the whole literal.
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: An INT_LIT token covering the digit run
//
// Example:
//
//	Source: "12345"
//	Returns: Token{Type: INT_LIT, Literal: "12345"}
func readNumber(lex *Lexer) Token {
	start := lex.Position
	line, column := lex.Line, lex.Column

	src := lex.Src
	n := lex.SrcLength

	i := start + 1 // already know src[start] is a digit
	for i < n && isDigitASCII(src[i]) {
		i++
	}

	lex.Column += i - start
	lex.Position = i
	if i >= n {
		lex.Current = 0
		lex.Position = n
	} else {
		lex.Current = src[i]
	}

	return NewTokenWithMetadata(INT_LIT, src[start:i], line, column)
}

// readIdentifier reads and tokenizes an identifier or keyword from the source.
// Identifiers can be variable names, function names, or language keywords.
//
// Rules:
//   - Must start with a letter (a-z, A-Z) or underscore (_)
//   - Can contain letters, digits, or underscores
//   - Keywords are identified using the lookupIdent function
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: An IDENTIFIER_ID token or a keyword token type
//
// Example:
//
//	Source: "myVariable"
//	Returns: Token{Type: IDENTIFIER_ID, Literal: "myVariable"}
//
//	Source: "if"
//	Returns: Token{Type: IF_KEY, Literal: "if"}
func readIdentifier(lex *Lexer) Token {
	position := lex.Position
	line, column := lex.Line, lex.Column

	lex.Advance() // first character already validated by the caller

	// Continue reading alphanumeric characters and underscores
	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	literal := lex.Src[position:lex.Position]

	// Check if this identifier is actually a keyword
	return NewTokenWithMetadata(lookupIdent(literal), literal, line, column)
}
