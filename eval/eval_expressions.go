/*
File    : go-monkey/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-monkey/function"
	"github.com/akashmaji946/go-monkey/lexer"
	"github.com/akashmaji946/go-monkey/objects"
	"github.com/akashmaji946/go-monkey/parser"
)

// Eval is the main dispatch function of the evaluator.
// It walks the AST node by node, switching on the concrete node type and
// delegating to the specialized eval methods. The node set is closed, so
// the switch is exhaustive; an unknown node evaluates to null.
//
// Parameters:
//   - n: The AST node to evaluate
//
// Returns:
//   - objects.MonkeyObject: The result of evaluating the node
func (e *Evaluator) Eval(n parser.Node) objects.MonkeyObject {
	switch n := n.(type) {

	case *parser.RootNode:
		return e.evalRootNode(n)

	case *parser.IntegerLiteralExpressionNode:
		return &objects.Integer{Value: n.Value}

	case *parser.BooleanLiteralExpressionNode:
		return objects.NativeBool(n.Value)

	case *parser.StringLiteralExpressionNode:
		return &objects.String{Value: n.Value}

	case *parser.IdentifierExpressionNode:
		return e.evalIdentifier(n)

	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)

	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n)

	case *parser.IfExpressionNode:
		return e.evalIfExpression(n)

	case *parser.LetStatementNode:
		return e.evalLetStatement(n)

	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(n)

	case *parser.BlockStatementNode:
		return e.evalBlockStatement(n)

	case *parser.FunctionLiteralNode:
		// Closure capture: the function references the defining scope
		// directly, not a copy
		return &function.Function{
			Params: n.Params,
			Body:   n.Body,
			Scp:    e.Scp,
		}

	case *parser.CallExpressionNode:
		return e.evalCallExpression(n)

	case *parser.ArrayLiteralNode:
		return e.evalArrayLiteral(n)

	case *parser.IndexExpressionNode:
		return e.evalIndexExpression(n)

	case *parser.HashLiteralNode:
		return e.evalHashLiteral(n)

	default:
		return objects.NULL
	}
}

// evalIdentifier resolves an identifier to its bound value.
// Resolution order: the scope chain first (innermost to outermost), then
// the builtin table. An unresolved name is a runtime error.
//
// Parameters:
//   - n: The identifier node to resolve
//
// Returns:
//   - objects.MonkeyObject: The bound value, a builtin, or an Error
func (e *Evaluator) evalIdentifier(n *parser.IdentifierExpressionNode) objects.MonkeyObject {
	if obj, ok := e.Scp.LookUp(n.Name); ok {
		return obj
	}
	if builtin, ok := e.Builtins[n.Name]; ok {
		return builtin
	}
	return e.CreateError("identifier not found: %s", n.Name)
}

// evalUnaryExpression evaluates prefix operator expressions (!x, -x).
// The operand is evaluated first; an Error operand short-circuits.
//
//   - !x negates truthiness and always yields a Boolean
//   - -x negates an Integer; any other operand type is an error
//
// Parameters:
//   - n: The unary expression node
//
// Returns:
//   - objects.MonkeyObject: The operation result or an Error
func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpressionNode) objects.MonkeyObject {
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}

	switch n.Operation.Type {
	case lexer.NOT_OP:
		return objects.NativeBool(!isTruthy(right))
	case lexer.MINUS_OP:
		if right.GetType() != objects.IntegerType {
			return e.CreateError("unknown operator: -%s", right.GetType())
		}
		return &objects.Integer{Value: -right.(*objects.Integer).Value}
	default:
		return e.CreateError("unknown operator: %s%s", n.Operation.Literal, right.GetType())
	}
}

// evalBinaryExpression evaluates binary operator expressions.
// Left and right operands are evaluated in order, each short-circuiting
// on Error. Dispatch then happens on the operand types:
//
//   - Integer op Integer: arithmetic and comparisons
//   - String op String: only + (concatenation)
//   - == and != on anything else: identity comparison, which matches value
//     equality for the canonical Boolean and Null singletons
//   - mismatched operand types: "type mismatch" error
//   - anything else: "unknown operator" error
//
// Parameters:
//   - n: The binary expression node
//
// Returns:
//   - objects.MonkeyObject: The operation result or an Error
func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpressionNode) objects.MonkeyObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}

	op := n.Operation.Literal

	switch {
	case left.GetType() == objects.IntegerType && right.GetType() == objects.IntegerType:
		return e.evalIntegerBinaryExpression(op, left.(*objects.Integer), right.(*objects.Integer))

	case left.GetType() == objects.StringType && right.GetType() == objects.StringType:
		return e.evalStringBinaryExpression(op, left.(*objects.String), right.(*objects.String))

	case op == "==":
		return objects.NativeBool(left == right)

	case op == "!=":
		return objects.NativeBool(left != right)

	case left.GetType() != right.GetType():
		return e.CreateError("type mismatch: %s %s %s", left.GetType(), op, right.GetType())

	default:
		return e.CreateError("unknown operator: %s %s %s", left.GetType(), op, right.GetType())
	}
}

// evalIntegerBinaryExpression evaluates binary operators on two integers.
// Arithmetic wraps on overflow (native int64 semantics); division by zero
// is a runtime error rather than a host-level fault.
//
// Parameters:
//   - op: The operator literal
//   - left, right: The integer operands
//
// Returns:
//   - objects.MonkeyObject: Integer for arithmetic, Boolean for
//     comparisons, or an Error for unknown operators
func (e *Evaluator) evalIntegerBinaryExpression(op string, left, right *objects.Integer) objects.MonkeyObject {
	switch op {
	case "+":
		return &objects.Integer{Value: left.Value + right.Value}
	case "-":
		return &objects.Integer{Value: left.Value - right.Value}
	case "*":
		return &objects.Integer{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return e.CreateError("division by zero")
		}
		return &objects.Integer{Value: left.Value / right.Value}
	case "<":
		return objects.NativeBool(left.Value < right.Value)
	case ">":
		return objects.NativeBool(left.Value > right.Value)
	case "==":
		return objects.NativeBool(left.Value == right.Value)
	case "!=":
		return objects.NativeBool(left.Value != right.Value)
	default:
		return e.CreateError("unknown operator: %s %s %s", objects.IntegerType, op, objects.IntegerType)
	}
}

// evalStringBinaryExpression evaluates binary operators on two strings.
// Only concatenation (+) is supported; every other operator on strings
// is an error.
//
// Parameters:
//   - op: The operator literal
//   - left, right: The string operands
//
// Returns:
//   - objects.MonkeyObject: The concatenated String or an Error
func (e *Evaluator) evalStringBinaryExpression(op string, left, right *objects.String) objects.MonkeyObject {
	if op != "+" {
		return e.CreateError("unknown operator: %s %s %s", objects.StringType, op, objects.StringType)
	}
	return &objects.String{Value: left.Value + right.Value}
}
