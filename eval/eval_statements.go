/*
File    : go-monkey/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-monkey/objects"
	"github.com/akashmaji946/go-monkey/parser"
)

// evalRootNode evaluates the program's top-level statements in order.
//
// Two control-flow behaviors distinguish the top level from a nested
// block:
//  1. Error propagation: the first Error stops evaluation and becomes
//     the program's result
//  2. Return unwrapping: a ReturnValue is unwrapped to its inner value
//     here - this is one of the exactly two unwrap points (the other is
//     the function-call boundary)
//
// Parameters:
//   - n: The program root node
//
// Returns:
//   - objects.MonkeyObject: The result of the last statement, an unwrapped
//     return value, an Error, or Null for an empty program
func (e *Evaluator) evalRootNode(n *parser.RootNode) objects.MonkeyObject {
	var result objects.MonkeyObject = objects.NULL

	for _, stmt := range n.Statements {
		result = e.Eval(stmt)

		switch result := result.(type) {
		case *objects.ReturnValue:
			return result.Value
		case *objects.Error:
			return result
		}
	}

	return result
}

// evalBlockStatement evaluates a sequence of statements within a block.
//
// Unlike the program root, a block does NOT unwrap ReturnValue: the
// wrapper is returned as-is so it bubbles through arbitrarily nested
// blocks until a function call or the program root unwraps it. Errors
// propagate the same way.
//
// Note: blocks do not create a new scope - scope creation is handled by
// function calls.
//
// Parameters:
//   - n: A BlockStatementNode containing a list of statements to evaluate
//
// Returns:
//   - objects.MonkeyObject: The result of the last statement, a ReturnValue
//     wrapper, an Error, or Null for an empty block
//
// Example:
//
//	if (10 > 1) { if (10 > 1) { return 10; } return 1; }
//	// the inner return's wrapper passes through the outer block untouched
func (e *Evaluator) evalBlockStatement(n *parser.BlockStatementNode) objects.MonkeyObject {
	var result objects.MonkeyObject = objects.NULL

	for _, stmt := range n.Statements {
		result = e.Eval(stmt)

		if result != nil {
			resultType := result.GetType()
			if resultType == objects.ReturnValueType || resultType == objects.ErrorType {
				return result
			}
		}
	}

	return result
}

// evalLetStatement handles let bindings.
//
// The value expression is evaluated first; an Error result propagates
// without binding anything. Otherwise the value is bound to the name in
// the CURRENT scope only - rebinding a name shadows without touching any
// outer binding of the same name.
//
// Parameters:
//   - n: A LetStatementNode containing the identifier and value expression
//
// Returns:
//   - objects.MonkeyObject: The bound value on success, or the Error from
//     evaluating the value expression
//
// Example:
//
//	let x = 10;
//	let addX = fn(y) { x + y };
func (e *Evaluator) evalLetStatement(n *parser.LetStatementNode) objects.MonkeyObject {
	val := e.Eval(n.Expr)
	if IsError(val) {
		return val
	}

	e.Scp.Bind(n.Identifier.Name, val)
	return val
}

// evalReturnStatement handles return statements.
//
// The returned expression is evaluated (an Error propagates unchanged),
// then wrapped into a ReturnValue. The wrapper signals every enclosing
// block to stop and pass it along until it reaches a function-call
// boundary or the program root, where it is unwrapped exactly once.
//
// Parameters:
//   - n: A ReturnStatementNode containing the returned expression
//
// Returns:
//   - objects.MonkeyObject: A ReturnValue wrapper, or an Error
func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatementNode) objects.MonkeyObject {
	val := e.Eval(n.Expr)
	if IsError(val) {
		return val
	}
	return &objects.ReturnValue{Value: val}
}
