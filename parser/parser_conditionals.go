/*
File    : go-monkey/parser/parser_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-monkey/lexer"
)

// parseIfExpression parses conditional expressions.
// In Monkey, if/else is an expression: it produces the value of the
// branch that ran, or null when the condition is falsy and there is
// no else branch.
//
// Syntax:
//
//	if (<condition>) { <consequence> }
//	if (<condition>) { <consequence> } else { <alternative> }
//
// Returns:
//
//	An IfExpressionNode, or nil if a required token was missing
//
// Examples:
//
//	if (x > 5) { x } else { 0 }
//	let max = if (a > b) { a } else { b };
func (par *Parser) parseIfExpression() ExpressionNode {
	node := &IfExpressionNode{Token: par.CurrToken}

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	par.advance()
	node.Condition = par.parseExpression()
	if node.Condition == nil {
		return nil
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	node.Consequence = par.parseBlockStatement()

	// The else branch is optional
	if par.NextToken.Type == lexer.ELSE_KEY {
		par.advance()

		if !par.expectAdvance(lexer.LEFT_BRACE) {
			return nil
		}
		node.Alternative = par.parseBlockStatement()
	}

	return node
}
