/*
File    : go-monkey/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a Pratt parser (also known as top-down operator precedence parser)
for the Monkey programming language.

The parser converts a stream of tokens from the lexer into an Abstract Syntax Tree (AST).
It handles:
- Expressions (binary, unary, literals, identifiers)
- Statements (let bindings, return statements, expression statements)
- Functions (literals and calls)
- Collections (array literals, hash literals, indexing)
- Operator precedence and associativity

Key Features:
- Pratt parsing algorithm for efficient expression parsing
- Error collection (doesn't panic on first error)
- One-token lookahead (CurrToken/NextToken)

The AST the parser produces is pure data: no evaluation happens here, and
every node is fully constructed before it is handed out.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-monkey/lexer"
)

// unaryParseFunction parses a token appearing at the start of an expression
// (a literal, an identifier, a prefix operator, a grouped expression, ...).
type unaryParseFunction func() ExpressionNode

// binaryParseFunction parses a token appearing after a completed left-hand
// expression (a binary operator, a call, an index).
type binaryParseFunction func(left ExpressionNode) ExpressionNode

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse Monkey source code
// into an Abstract Syntax Tree (AST).
type Parser struct {
	Lex       lexer.Lexer // Lexer instance for tokenizing source code
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions.
	// They are filled once during init and never change afterwards.
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix operators and literals
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Binary/postfix operators

	// Collect parsing errors instead of panicking
	// This allows reporting multiple errors in a single parse
	Errors []string
}

// NewParser creates and initializes a new Parser instance.
// This is the main entry point for creating a parser.
//
// Parameters:
//
//	src - The Monkey source code to parse
//
// Returns:
//
//	A pointer to a fully initialized Parser instance
//
// The parser is ready to use immediately after creation.
// Call Parse() to begin parsing the source code.
func NewParser(src string) *Parser {
	// Create a lexer for the source code
	lex := lexer.NewLexer(src)

	// Create the parser with the lexer
	par := &Parser{
		Lex: lex,
	}

	// Initialize all parser state (maps, tokens, etc.)
	par.init()

	return par
}

// init initializes the parser's internal state.
// This function sets up:
// 1. Function maps for Pratt parsing
// 2. Error collection
// 3. Initial token lookahead
//
// The function registers parsing functions for all supported token types,
// establishing the grammar of the Monkey language.
func (par *Parser) init() {
	// Initialize all maps
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]string, 0)

	// Register unary/prefix parsing functions
	// These handle tokens that can start an expression

	// Identifiers: variable names, function names
	par.registerUnaryFuncs(par.parseIdentifierExpression, lexer.IDENTIFIER_ID)

	// Integer literals: 42, 0
	par.registerUnaryFuncs(par.parseIntegerLiteral, lexer.INT_LIT)

	// Boolean literals: true, false
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.TRUE_KEY, lexer.FALSE_KEY)

	// String literals: "hello"
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)

	// Prefix operators: !x, -x
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.NOT_OP, lexer.MINUS_OP)

	// Parenthesized expressions: (expr)
	par.registerUnaryFuncs(par.parseParenthesizedExpression, lexer.LEFT_PAREN)

	// Conditional expressions: if (cond) { ... } else { ... }
	par.registerUnaryFuncs(par.parseIfExpression, lexer.IF_KEY)

	// Function literals: fn(a, b) { ... }
	par.registerUnaryFuncs(par.parseFunctionLiteral, lexer.FUNC_KEY)

	// Array literals: [1, 2, 3]
	par.registerUnaryFuncs(par.parseArrayLiteral, lexer.LEFT_BRACKET)

	// Hash literals: {"one": 1}
	par.registerUnaryFuncs(par.parseHashLiteral, lexer.LEFT_BRACE)

	// Register binary/infix parsing functions
	// These handle operators that appear between two expressions

	// Arithmetic operators: +, -, *, /
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP)

	// Comparison operators: <, >, ==, !=
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.LT_OP, lexer.GT_OP, lexer.EQ_OP, lexer.NE_OP)

	// Function calls: callee(args)
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)

	// Indexing: arr[idx], hash[key]
	par.registerBinaryFuncs(par.parseIndexExpression, lexer.LEFT_BRACKET)

	// Prime the CurrToken/NextToken lookahead window
	par.advance()
	par.advance()
}

// registerUnaryFuncs associates a unary parse function with token types.
//
// Parameters:
//
//	fn    - The parsing function to register
//	types - One or more token types that should use this function
func (par *Parser) registerUnaryFuncs(fn unaryParseFunction, types ...lexer.TokenType) {
	for _, tokenType := range types {
		par.UnaryFuncs[tokenType] = fn
	}
}

// registerBinaryFuncs associates a binary parse function with token types.
//
// Parameters:
//
//	fn    - The parsing function to register
//	types - One or more token types that should use this function
func (par *Parser) registerBinaryFuncs(fn binaryParseFunction, types ...lexer.TokenType) {
	for _, tokenType := range types {
		par.BinaryFuncs[tokenType] = fn
	}
}

// advance shifts the lookahead window by one token:
// NextToken becomes CurrToken and a fresh token is pulled from the lexer.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// expectAdvance checks the next token and advances over it when it matches.
// On mismatch an error is recorded and the parser stays put.
//
// Parameters:
//
//	expected - The token type we require next
//
// Returns:
//
//	true if the next token matched and was consumed, false otherwise
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

// expectNext checks if the next token matches the expected type.
// If not, it adds an error message to the error list.
//
// Parameters:
//
//	expected - The token type we expect to see next
//
// Returns:
//
//	true if the next token matches, false otherwise
//
// This function doesn't advance the parser, it only checks.
// Use expectAdvance() if you want to check and advance in one step.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextToken.Type != expected {
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: expected %s, got %s",
			par.NextToken.Line, par.NextToken.Column, expected, par.NextToken.Type)
		par.addError(msg)
		return false
	}
	return true
}

// addError adds an error message to the parser's error list.
// The parser collects errors instead of panicking, allowing it to
// report multiple errors in a single parse.
//
// Parameters:
//
//	msg - The error message to add
func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

// HasErrors returns true if there are parsing errors.
// This should be checked after parsing to determine if the parse was successful.
// A RootNode produced alongside errors may be partial and must not be evaluated.
//
// Returns:
//
//	true if there are any errors, false if parsing was successful
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all parsing errors collected during parsing.
// This allows the caller to display all errors to the user.
//
// Returns:
//
//	A slice of error message strings
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// Parse is the main parsing function that converts source code into an AST.
// It repeatedly parses statements until reaching the end of the file (EOF),
// building up a RootNode that contains all the parsed statements.
//
// A statement that fails to parse contributes nothing to the tree; the
// parser keeps going so that one run can report every error it finds.
//
// Returns:
//
//	A pointer to a RootNode containing all parsed statements
func (par *Parser) Parse() *RootNode {

	// Create the root node that will hold all statements
	root := &RootNode{}
	root.Statements = make([]StatementNode, 0)

	// Parse statements until we reach the end of file
	for par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
		par.advance()
	}

	return root
}
