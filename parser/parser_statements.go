/*
File    : go-monkey/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-monkey/lexer"
)

// parseStatement parses a single statement.
// This is the main dispatcher that determines what type of statement to parse
// based on the current token.
//
// Returns:
//
//	A StatementNode representing the parsed statement, or nil for empty
//	statements and statements discarded because of a parse error
//
// Supported statement types:
//   - Let bindings (let x = ...;)
//   - Return statements (return ...;)
//   - Expression statements (any expression, optionally followed by a semicolon)
//
// A statement leaves CurrToken on its own last token; the Parse loop
// advances past it. Stray semicolons parse as nil statements and are
// skipped the same way.
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {

	// ignore semicolons
	case lexer.SEMICOLON_DELIM:
		return nil

	// let a = 10;
	case lexer.LET_KEY:
		return par.parseLetStatement()

	// return a + b;
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()

	default:
		return par.parseExpression()
	}
}

// parseLetStatement parses a let binding.
// A let statement binds the value of an expression to a name in the
// current scope.
//
// Syntax:
//
//	let <identifier> = <expression>;
//
// Returns:
//
//	A LetStatementNode, or nil if a required token was missing
//
// Examples:
//
//	let x = 5;
//	let addTwo = fn(y) { y + 2 };
func (par *Parser) parseLetStatement() StatementNode {
	node := &LetStatementNode{Token: par.CurrToken}

	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	node.Identifier = &IdentifierExpressionNode{
		Token: par.CurrToken,
		Name:  par.CurrToken.Literal,
	}

	if !par.expectAdvance(lexer.ASSIGN_OP) {
		return nil
	}

	// Move onto the first token of the value expression
	par.advance()
	node.Expr = par.parseExpression()
	if node.Expr == nil {
		return nil
	}

	return node
}

// parseReturnStatement parses a return statement.
// The returned expression is wrapped by the evaluator into a ReturnValue
// so it can bubble out of nested blocks.
//
// Syntax:
//
//	return <expression>;
//
// Returns:
//
//	A ReturnStatementNode, or nil if the expression failed to parse
//
// Example:
//
//	return x + y;
func (par *Parser) parseReturnStatement() StatementNode {
	node := &ReturnStatementNode{Token: par.CurrToken}

	// Move onto the first token of the returned expression
	par.advance()
	node.Expr = par.parseExpression()
	if node.Expr == nil {
		return nil
	}

	return node
}

// parseBlockStatement parses a braced sequence of statements.
// The current token must be the opening brace; on return the current token
// is the closing brace (or EOF for an unterminated block).
//
// Blocks appear as function bodies and as the branches of if expressions.
// They do not introduce a scope of their own - scoping is handled by
// function calls in the evaluator.
//
// Returns:
//
//	A BlockStatementNode containing all statements up to the closing brace
func (par *Parser) parseBlockStatement() *BlockStatementNode {
	block := &BlockStatementNode{Token: par.CurrToken}
	block.Statements = make([]StatementNode, 0)

	par.advance()

	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		par.advance()
	}

	return block
}
