/*
File    : go-monkey/parser/parser_literals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/go-monkey/lexer"
)

// parseIntegerLiteral parses integer literal expressions.
//
// Returns:
//
//	An IntegerLiteralExpressionNode with the parsed value, or nil
//	(with a recorded error) if the literal does not fit in int64
//
// The lexer only produces digit runs here, so the error case is a literal
// that overflows int64, e.g. 9999999999999999999.
//
// Examples:
//
//	42, 0, 9223372036854775807
func (par *Parser) parseIntegerLiteral() ExpressionNode {
	token := par.CurrToken
	val, err := strconv.ParseInt(token.Literal, 10, 64)
	if err != nil {
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: could not parse integer literal: %s",
			token.Line, token.Column, token.Literal)
		par.addError(msg)
		return nil
	}
	return &IntegerLiteralExpressionNode{
		Token: token,
		Value: val,
	}
}

// parseBooleanLiteral parses boolean literal expressions.
//
// Returns:
//
//	A BooleanLiteralExpressionNode with value true or false
//
// Examples:
//
//	true, false
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	token := par.CurrToken
	return &BooleanLiteralExpressionNode{
		Token: token,
		Value: token.Type == lexer.TRUE_KEY,
	}
}

// parseStringLiteral parses string literal expressions.
// Escape sequences were already processed by the lexer, so the token's
// literal is the final string content.
//
// Returns:
//
//	A StringLiteralExpressionNode
//
// Examples:
//
//	"hello", "Monkey is awesome!"
func (par *Parser) parseStringLiteral() ExpressionNode {
	return &StringLiteralExpressionNode{
		Token: par.CurrToken,
		Value: par.CurrToken.Literal,
	}
}
