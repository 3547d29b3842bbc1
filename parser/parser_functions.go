/*
File    : go-monkey/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-monkey/lexer"
)

// parseFunctionLiteral parses anonymous function literals.
// Functions are first-class values in Monkey; naming one is done with an
// ordinary let binding. The parameter list contains identifiers only.
//
// Syntax:
//
//	fn(<param>, <param>, ...) { <body> }
//	fn() { <body> }
//
// Returns:
//
//	A FunctionLiteralNode, or nil if a required token was missing
//
// Examples:
//
//	fn(x, y) { x + y }
//	let newAdder = fn(x) { fn(y) { x + y } };
func (par *Parser) parseFunctionLiteral() ExpressionNode {
	node := &FunctionLiteralNode{Token: par.CurrToken}

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	params := par.parseFunctionParams()
	if params == nil {
		return nil
	}
	node.Params = params

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	node.Body = par.parseBlockStatement()

	return node
}

// parseFunctionParams parses the parameter list of a function literal.
// The current token must be the opening parenthesis; on return the
// current token is the closing parenthesis.
//
// Returns:
//
//	The parameter identifiers (possibly empty), or nil on error
func (par *Parser) parseFunctionParams() []*IdentifierExpressionNode {
	params := make([]*IdentifierExpressionNode, 0)

	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
		return params
	}

	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	params = append(params, &IdentifierExpressionNode{
		Token: par.CurrToken,
		Name:  par.CurrToken.Literal,
	})

	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance() // onto the comma
		if !par.expectAdvance(lexer.IDENTIFIER_ID) {
			return nil
		}
		params = append(params, &IdentifierExpressionNode{
			Token: par.CurrToken,
			Name:  par.CurrToken.Literal,
		})
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	return params
}

// parseCallExpression parses function call expressions.
// The callee is the already-parsed left expression; arguments are a
// comma-separated expression list.
//
// Parameters:
//
//	left - The callee expression (identifier, function literal, or call)
//
// Syntax:
//
//	callee(arg, arg, ...)
//
// Returns:
//
//	A CallExpressionNode, or nil on error
//
// Examples:
//
//	add(1, 2 * 3)
//	fn(x) { x }(5)
//	newAdder(2)(3)
func (par *Parser) parseCallExpression(left ExpressionNode) ExpressionNode {
	node := &CallExpressionNode{Token: par.CurrToken, Function: left}
	args := par.parseExpressionList(lexer.RIGHT_PAREN)
	if args == nil {
		return nil
	}
	node.Args = args
	return node
}
