/*
File    : go-monkey/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"

	"github.com/akashmaji946/go-monkey/lexer"
)

// Node: base interface for all nodes of the AST
// Literal(): returns the string representation of the node
// Every node is produced by the parser only and is immutable once built.
type Node interface {
	Literal() string
}

// StatementNode: base interface for all statement nodes
// Node: every statement node is a node
// Statement(): marker method distinguishing statements
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
// Node: every expression node is a node
// StatementNode: every expression is also a statement (expression statements)
// Expression(): marker method distinguishing expressions
type ExpressionNode interface {
	Node
	StatementNode
	Expression()
}

// RootNode: represents the root of the AST (the program node)
// Statements: list of statements in the program
type RootNode struct {
	Statements []StatementNode // every line of code is a statement
}

// RootNode.Literal(): string representation of the whole program
func (root *RootNode) Literal() string {
	var builder strings.Builder
	for _, stmt := range root.Statements {
		builder.WriteString(stmt.Literal())
	}
	return builder.String()
}

// There can be many types of ExpressionNodes

// IntegerLiteralExpressionNode: represents an integer number literal
// Example: 42, 0, 15
type IntegerLiteralExpressionNode struct {
	Token lexer.Token // The integer token with its literal text
	Value int64       // The parsed integer value
}

// IntegerLiteralExpressionNode.Literal(): string representation of the node
func (node *IntegerLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// IntegerLiteralExpressionNode.Statement(): every expression is also a statement
func (node *IntegerLiteralExpressionNode) Statement() {}

// IntegerLiteralExpressionNode.Expression(): marker
func (node *IntegerLiteralExpressionNode) Expression() {}

// BooleanLiteralExpressionNode: represents a boolean literal value
// Example: true or false
type BooleanLiteralExpressionNode struct {
	Token lexer.Token // The boolean token (true/false)
	Value bool        // The parsed boolean value
}

// BooleanLiteralExpressionNode.Literal(): string representation of the node
func (node *BooleanLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// BooleanLiteralExpressionNode.Statement(): every expression is also a statement
func (node *BooleanLiteralExpressionNode) Statement() {}

// BooleanLiteralExpressionNode.Expression(): marker
func (node *BooleanLiteralExpressionNode) Expression() {}

// StringLiteralExpressionNode: represents a string literal
// Example: "hello", "Monkey"
type StringLiteralExpressionNode struct {
	Token lexer.Token // The string token
	Value string      // The string content (escape sequences already processed)
}

// StringLiteralExpressionNode.Literal(): string representation of the node
func (node *StringLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// StringLiteralExpressionNode.Statement(): every expression is also a statement
func (node *StringLiteralExpressionNode) Statement() {}

// StringLiteralExpressionNode.Expression(): marker
func (node *StringLiteralExpressionNode) Expression() {}

// IdentifierExpressionNode: represents a variable or function name
// Example: x, myVar, add
type IdentifierExpressionNode struct {
	Token lexer.Token // The identifier token
	Name  string      // The identifier text
}

// IdentifierExpressionNode.Literal(): string representation of the node
func (node *IdentifierExpressionNode) Literal() string {
	return node.Name
}

// IdentifierExpressionNode.Statement(): every expression is also a statement
func (node *IdentifierExpressionNode) Statement() {}

// IdentifierExpressionNode.Expression(): marker
func (node *IdentifierExpressionNode) Expression() {}

// UnaryExpressionNode: represents a prefix operation expression with one operand
// Example: -x, !flag
type UnaryExpressionNode struct {
	Operation lexer.Token    // The prefix operator token (- or !)
	Right     ExpressionNode // Operand expression
}

// UnaryExpressionNode.Literal(): parenthesised form, e.g. "(-a)"
func (node *UnaryExpressionNode) Literal() string {
	return "(" + node.Operation.Literal + node.Right.Literal() + ")"
}

// UnaryExpressionNode.Statement(): every expression is also a statement
func (node *UnaryExpressionNode) Statement() {}

// UnaryExpressionNode.Expression(): marker
func (node *UnaryExpressionNode) Expression() {}

// BinaryExpressionNode: represents a binary operation expression with two operands
// Example: 2 + 3, x * y, a == b
type BinaryExpressionNode struct {
	Operation lexer.Token    // The binary operator token (+, -, *, /, <, >, ==, !=)
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

// BinaryExpressionNode.Literal(): parenthesised form, e.g. "(a + (b * c))"
func (node *BinaryExpressionNode) Literal() string {
	return "(" + node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal() + ")"
}

// BinaryExpressionNode.Statement(): every expression is also a statement
func (node *BinaryExpressionNode) Statement() {}

// BinaryExpressionNode.Expression(): marker
func (node *BinaryExpressionNode) Expression() {}

// LetStatementNode: represents a variable binding
// Example: let x = 5;
type LetStatementNode struct {
	Token      lexer.Token               // The 'let' token
	Identifier *IdentifierExpressionNode // The name being bound
	Expr       ExpressionNode            // The bound value expression
}

// LetStatementNode.Literal(): string representation of the node
func (node *LetStatementNode) Literal() string {
	return "let " + node.Identifier.Literal() + " = " + node.Expr.Literal() + ";"
}

// LetStatementNode.Statement(): marker
func (node *LetStatementNode) Statement() {}

// ReturnStatementNode: represents a return statement
// Example: return x + y;
type ReturnStatementNode struct {
	Token lexer.Token    // The 'return' token
	Expr  ExpressionNode // The returned value expression
}

// ReturnStatementNode.Literal(): string representation of the node
func (node *ReturnStatementNode) Literal() string {
	return "return " + node.Expr.Literal() + ";"
}

// ReturnStatementNode.Statement(): marker
func (node *ReturnStatementNode) Statement() {}

// BlockStatementNode: represents a braced sequence of statements
// Example: { let x = 1; x + 2 }
type BlockStatementNode struct {
	Token      lexer.Token     // The '{' token
	Statements []StatementNode // Statements inside the block
}

// BlockStatementNode.Literal(): string representation of the node
func (node *BlockStatementNode) Literal() string {
	var builder strings.Builder
	builder.WriteString("{ ")
	for _, stmt := range node.Statements {
		builder.WriteString(stmt.Literal())
	}
	builder.WriteString(" }")
	return builder.String()
}

// BlockStatementNode.Statement(): marker
func (node *BlockStatementNode) Statement() {}

// IfExpressionNode: represents a conditional expression
// The alternative block is optional; a missing alternative makes the
// expression evaluate to null when the condition is falsy.
// Example: if (x > 5) { x } else { 0 }
type IfExpressionNode struct {
	Token       lexer.Token         // The 'if' token
	Condition   ExpressionNode      // The condition expression
	Consequence *BlockStatementNode // Block evaluated when condition is truthy
	Alternative *BlockStatementNode // Optional else block (may be nil)
}

// IfExpressionNode.Literal(): string representation of the node
func (node *IfExpressionNode) Literal() string {
	res := "if " + node.Condition.Literal() + " " + node.Consequence.Literal()
	if node.Alternative != nil {
		res += " else " + node.Alternative.Literal()
	}
	return res
}

// IfExpressionNode.Statement(): every expression is also a statement
func (node *IfExpressionNode) Statement() {}

// IfExpressionNode.Expression(): marker
func (node *IfExpressionNode) Expression() {}

// FunctionLiteralNode: represents an anonymous function literal
// The parameter list contains only identifiers.
// Example: fn(x, y) { x + y }
type FunctionLiteralNode struct {
	Token  lexer.Token                 // The 'fn' token
	Params []*IdentifierExpressionNode // Parameter names
	Body   *BlockStatementNode         // Function body
}

// FunctionLiteralNode.Literal(): string representation of the node
func (node *FunctionLiteralNode) Literal() string {
	params := make([]string, 0, len(node.Params))
	for _, param := range node.Params {
		params = append(params, param.Literal())
	}
	return "fn(" + strings.Join(params, ", ") + ") " + node.Body.Literal()
}

// FunctionLiteralNode.Statement(): every expression is also a statement
func (node *FunctionLiteralNode) Statement() {}

// FunctionLiteralNode.Expression(): marker
func (node *FunctionLiteralNode) Expression() {}

// CallExpressionNode: represents a function call
// The callee can be any expression that evaluates to a function
// (identifier, function literal, another call).
// Example: add(1, 2 * 3)
type CallExpressionNode struct {
	Token    lexer.Token      // The '(' token of the call
	Function ExpressionNode   // Callee expression
	Args     []ExpressionNode // Argument expressions
}

// CallExpressionNode.Literal(): string representation of the node
func (node *CallExpressionNode) Literal() string {
	args := make([]string, 0, len(node.Args))
	for _, arg := range node.Args {
		args = append(args, arg.Literal())
	}
	return node.Function.Literal() + "(" + strings.Join(args, ", ") + ")"
}

// CallExpressionNode.Statement(): every expression is also a statement
func (node *CallExpressionNode) Statement() {}

// CallExpressionNode.Expression(): marker
func (node *CallExpressionNode) Expression() {}

// ArrayLiteralNode: represents an array literal
// Example: [1, 2 * 2, "three"]
type ArrayLiteralNode struct {
	Token    lexer.Token      // The '[' token
	Elements []ExpressionNode // Element expressions
}

// ArrayLiteralNode.Literal(): string representation of the node
func (node *ArrayLiteralNode) Literal() string {
	elements := make([]string, 0, len(node.Elements))
	for _, el := range node.Elements {
		elements = append(elements, el.Literal())
	}
	return "[" + strings.Join(elements, ", ") + "]"
}

// ArrayLiteralNode.Statement(): every expression is also a statement
func (node *ArrayLiteralNode) Statement() {}

// ArrayLiteralNode.Expression(): marker
func (node *ArrayLiteralNode) Expression() {}

// IndexExpressionNode: represents indexing into an array or hash
// Example: arr[0], prices["apple"]
type IndexExpressionNode struct {
	Token lexer.Token    // The '[' token of the index
	Left  ExpressionNode // The indexed expression
	Index ExpressionNode // The index expression
}

// IndexExpressionNode.Literal(): parenthesised form, e.g. "(arr[0])"
func (node *IndexExpressionNode) Literal() string {
	return "(" + node.Left.Literal() + "[" + node.Index.Literal() + "])"
}

// IndexExpressionNode.Statement(): every expression is also a statement
func (node *IndexExpressionNode) Statement() {}

// IndexExpressionNode.Expression(): marker
func (node *IndexExpressionNode) Expression() {}

// HashLiteralNode: represents a hash (dictionary) literal
// Keys and Values are parallel slices preserving source order, so the
// evaluator can evaluate each key before its value, left to right.
// Example: {"one": 1, "two": 2}
type HashLiteralNode struct {
	Token  lexer.Token      // The '{' token
	Keys   []ExpressionNode // Key expressions in source order
	Values []ExpressionNode // Value expressions in source order
}

// HashLiteralNode.Literal(): string representation of the node
func (node *HashLiteralNode) Literal() string {
	pairs := make([]string, 0, len(node.Keys))
	for i, key := range node.Keys {
		pairs = append(pairs, key.Literal()+": "+node.Values[i].Literal())
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// HashLiteralNode.Statement(): every expression is also a statement
func (node *HashLiteralNode) Statement() {}

// HashLiteralNode.Expression(): marker
func (node *HashLiteralNode) Expression() {}
