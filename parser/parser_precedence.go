/*
File    : go-monkey/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-monkey/lexer"

// Operator precedence constants
// Higher number = higher precedence (binds tighter)
//
// Precedence Hierarchy (lowest to highest):
// 1. Equality operators
// 2. Relational operators
// 3. Additive operators
// 4. Multiplicative operators
// 5. Unary/Prefix operators
// 6. Call operator (postfix)
// 7. Index operator (postfix)
//
// Example: In "a + b * c", multiplication has higher precedence than addition,
// so it's parsed as "a + (b * c)" rather than "(a + b) * c"
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Equality operators: == !=
	// Example: a == b, a != b
	EQUALITY_PRIORITY = 90

	// Relational operators: < >
	// Example: a < b, a > b
	RELATIONAL_PRIORITY = 100

	// Additive operators: + -
	// Example: a + b, a - b
	PLUS_PRIORITY = 120

	// Multiplicative operators: * /
	// Example: a * b, a / b
	MUL_PRIORITY = 130

	// Unary/Prefix operators: ! -
	// Example: !a, -b
	PREFIX_PRIORITY = 140

	// Call operator: (
	// Example: add(1, 2)
	PAREN_PRIORITY = 150

	// Index operator: [
	// Example: arr[0]
	INDEX_PRIORITY = 160
)

// getPrecedence returns the precedence level for a given token.
// This function is central to the Pratt parsing algorithm, determining
// how tightly operators bind to their operands.
//
// Parameters:
//
//	token - The token to get precedence for
//
// Returns:
//
//	An integer representing the precedence level (higher = tighter binding)
//	Returns -1 for tokens that are not operators
//
// All binary operators here are left-associative: the right-hand side of an
// operator is parsed at one precedence level above the operator's own, so a
// trailing operator of the same level ends the inner parse.
func getPrecedence(token *lexer.Token) int {
	switch token.Type {

	// Call operator
	case lexer.LEFT_PAREN:
		return PAREN_PRIORITY

	// Index operator - highest precedence for postfix
	case lexer.LEFT_BRACKET:
		return INDEX_PRIORITY

	// Unary/Prefix operator: !
	case lexer.NOT_OP:
		return PREFIX_PRIORITY

	// Multiplicative: * /
	case lexer.MUL_OP, lexer.DIV_OP:
		return MUL_PRIORITY

	// Additive: + -
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY

	// Relational: < >
	case lexer.GT_OP, lexer.LT_OP:
		return RELATIONAL_PRIORITY

	// Equality: == !=
	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY

	default:
		// Not an operator
		return -1
	}
}
