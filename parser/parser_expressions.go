/*
File    : go-monkey/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-monkey/lexer"
)

// parseExpression is the entry point for parsing expressions.
// It delegates to parseInternal with minimum precedence, allowing
// all operators to be parsed.
//
// Returns:
//
//	An ExpressionNode representing the parsed expression
//
// This function uses the Pratt parsing algorithm, which handles
// operator precedence and associativity elegantly.
func (par *Parser) parseExpression() ExpressionNode {
	return par.parseInternal(MINIMUM_PRIORITY)
}

// parseInternal is the heart of the Pratt parser.
// It parses expressions while respecting operator precedence.
//
// Parameters:
//
//	currPrecedence - The minimum precedence level for operators to parse
//
// Returns:
//
//	An ExpressionNode representing the parsed expression
//
// Algorithm:
//  1. Parse a prefix expression (unary operator or primary expression)
//  2. While the next operator has precedence >= currPrecedence:
//     a. Parse the operator as an infix expression
//     b. The result becomes the new left operand
//  3. Return the final expression
//
// Binary handlers parse their right-hand side at (operator precedence + 1),
// which makes every binary operator left-associative. A semicolon (or any
// non-operator token) has no precedence and therefore ends the loop.
func (par *Parser) parseInternal(currPrecedence int) ExpressionNode {
	unary, has := par.UnaryFuncs[par.CurrToken.Type]
	if !has {
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: unexpected token: %s",
			par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Literal)
		par.addError(msg)
		return nil
	}
	left := unary()
	if left == nil {
		return nil
	}
	for par.NextToken.Type != lexer.EOF_TYPE && getPrecedence(&par.NextToken) >= currPrecedence {
		binary, has := par.BinaryFuncs[par.NextToken.Type]
		par.advance()
		if !has {
			msg := fmt.Sprintf("[%d:%d] PARSER ERROR: unexpected operator: %s",
				par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Literal)
			par.addError(msg)
			return nil
		}
		left = binary(left)
		if left == nil {
			return nil
		}
	}
	return left
}

// parseIdentifierExpression parses a bare identifier.
//
// Returns:
//
//	An IdentifierExpressionNode carrying the identifier's name
//
// Examples:
//
//	x, counter, addTwo
func (par *Parser) parseIdentifierExpression() ExpressionNode {
	return &IdentifierExpressionNode{
		Token: par.CurrToken,
		Name:  par.CurrToken.Literal,
	}
}

// parseUnaryExpression parses prefix operator expressions.
// The operand is parsed at PREFIX_PRIORITY, so postfix operators (calls,
// indexing) still bind tighter than the prefix operator itself.
//
// Syntax:
//
//	!<expression>
//	-<expression>
//
// Returns:
//
//	A UnaryExpressionNode, or nil if the operand failed to parse
//
// Examples:
//
//	!true, -15, !!ok, -add(1, 2)
func (par *Parser) parseUnaryExpression() ExpressionNode {
	op := par.CurrToken
	par.advance()
	right := par.parseInternal(PREFIX_PRIORITY)
	if right == nil {
		return nil
	}
	return &UnaryExpressionNode{
		Operation: op,
		Right:     right,
	}
}

// parseBinaryExpression parses binary (infix) expressions.
// Binary expressions have the form: left operator right
//
// Parameters:
//
//	left - The already-parsed left operand
//
// Returns:
//
//	A BinaryExpressionNode representing the complete expression
//
// Supported operators:
//
//	Arithmetic: +, -, *, /
//	Comparison: <, >, ==, !=
//
// Examples:
//
//	5 + 3, a * b, x == y, n < 10
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	op := par.CurrToken
	par.advance()
	right := par.parseInternal(getPrecedence(&op) + 1)
	if right == nil {
		return nil
	}
	return &BinaryExpressionNode{
		Operation: op,
		Left:      left,
		Right:     right,
	}
}

// parseParenthesizedExpression parses expressions enclosed in parentheses.
// Parentheses are used for grouping and overriding operator precedence.
// The parentheses themselves leave no trace in the AST - the inner
// expression is returned directly.
//
// Returns:
//
//	The inner ExpressionNode, or nil if it failed to parse
//
// Examples:
//
//	(5 + 3) * 2  - Parentheses force addition before multiplication
func (par *Parser) parseParenthesizedExpression() ExpressionNode {
	// we are already at the LEFT_PAREN, so just advance
	par.advance()
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return expr
}
