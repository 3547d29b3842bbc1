/*
File    : go-monkey/parser/parser_collections.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-monkey/lexer"
)

// parseArrayLiteral parses array literal expressions.
// Array literals are comma-separated expressions between brackets.
//
// Syntax:
//
//	[element, element, ...]
//	[]  (empty array)
//
// Returns:
//
//	An ArrayLiteralNode containing all element expressions, or nil on error
//
// Examples:
//
//	[1, 2, 3]
//	[1, 2 * 2, fn(x) { x }]
func (par *Parser) parseArrayLiteral() ExpressionNode {
	node := &ArrayLiteralNode{Token: par.CurrToken}
	elements := par.parseExpressionList(lexer.RIGHT_BRACKET)
	if elements == nil {
		return nil
	}
	node.Elements = elements
	return node
}

// parseHashLiteral parses hash literal expressions.
// Hash literals are comma-separated key-value pairs between braces, with
// a colon between each key and value. Keys and values are arbitrary
// expressions; whether a key is actually hashable is decided at runtime.
//
// Syntax:
//
//	{key: value, key: value, ...}
//	{}  (empty hash)
//
// Returns:
//
//	A HashLiteralNode with keys and values in source order, or nil on error
//
// Examples:
//
//	{"one": 1, "two": 2}
//	{1: "a", true: "b", "thr" + "ee": 3}
func (par *Parser) parseHashLiteral() ExpressionNode {
	node := &HashLiteralNode{Token: par.CurrToken}
	node.Keys = make([]ExpressionNode, 0)
	node.Values = make([]ExpressionNode, 0)

	for par.NextToken.Type != lexer.RIGHT_BRACE {
		par.advance()
		key := par.parseExpression()
		if key == nil {
			return nil
		}

		if !par.expectAdvance(lexer.COLON_DELIM) {
			return nil
		}

		par.advance()
		value := par.parseExpression()
		if value == nil {
			return nil
		}

		node.Keys = append(node.Keys, key)
		node.Values = append(node.Values, value)

		if par.NextToken.Type != lexer.RIGHT_BRACE && !par.expectAdvance(lexer.COMMA_DELIM) {
			return nil
		}
	}

	if !par.expectAdvance(lexer.RIGHT_BRACE) {
		return nil
	}

	return node
}

// parseIndexExpression parses indexing into an array or hash.
// The index is a full expression parsed at minimum precedence.
//
// Parameters:
//
//	left - The already-parsed expression being indexed
//
// Syntax:
//
//	left[index]
//
// Returns:
//
//	An IndexExpressionNode, or nil on error
//
// Examples:
//
//	arr[0], arr[1 + 1], prices["apple"], {"a": 1}["a"]
func (par *Parser) parseIndexExpression(left ExpressionNode) ExpressionNode {
	node := &IndexExpressionNode{Token: par.CurrToken, Left: left}

	par.advance()
	node.Index = par.parseExpression()
	if node.Index == nil {
		return nil
	}

	if !par.expectAdvance(lexer.RIGHT_BRACKET) {
		return nil
	}

	return node
}

// parseExpressionList parses a comma-separated list of expressions
// terminated by the given end token. The current token must be the
// opening delimiter; on return the current token is the end token.
//
// Parameters:
//
//	end - The token type that closes the list (e.g. RIGHT_PAREN)
//
// Returns:
//
//	The parsed expressions (possibly empty), or nil on error
//
// This helper serves both array literals and call argument lists.
func (par *Parser) parseExpressionList(end lexer.TokenType) []ExpressionNode {
	list := make([]ExpressionNode, 0)

	if par.NextToken.Type == end {
		par.advance()
		return list
	}

	par.advance()
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	list = append(list, expr)

	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance() // onto the comma
		par.advance() // onto the next element
		expr = par.parseExpression()
		if expr == nil {
			return nil
		}
		list = append(list, expr)
	}

	if !par.expectAdvance(end) {
		return nil
	}

	return list
}
