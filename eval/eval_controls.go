/*
File    : go-monkey/eval/eval_controls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-monkey/function"
	"github.com/akashmaji946/go-monkey/objects"
	"github.com/akashmaji946/go-monkey/parser"
	"github.com/akashmaji946/go-monkey/scope"
	"github.com/akashmaji946/go-monkey/std"
)

// evalIfExpression evaluates conditional expressions.
//
// The condition is evaluated first (an Error short-circuits). A truthy
// condition selects the consequence block; otherwise the alternative
// block is selected if present. With no alternative the whole
// expression is null.
//
// Truthiness: null and false are falsy, everything else is truthy -
// including 0 and the empty string.
//
// Parameters:
//   - n: The if expression node
//
// Returns:
//   - objects.MonkeyObject: The selected branch's value, Null, or an Error
//
// Example:
//
//	if (1 < 2) { "yes" } else { "no" }   -> "yes"
//	if (false) { 10 }                    -> null
func (e *Evaluator) evalIfExpression(n *parser.IfExpressionNode) objects.MonkeyObject {
	condition := e.Eval(n.Condition)
	if IsError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return e.Eval(n.Consequence)
	} else if n.Alternative != nil {
		return e.Eval(n.Alternative)
	}
	return objects.NULL
}

// evalCallExpression evaluates function call expressions for both builtin
// and user-defined functions.
//
// Evaluation order:
//  1. The callee expression (an Error short-circuits the whole call)
//  2. The arguments, left to right, stopping at the first Error
//  3. Application of the callee to the argument values
//
// Parameters:
//   - n: The call expression node
//
// Returns:
//   - objects.MonkeyObject: The call result or an Error
func (e *Evaluator) evalCallExpression(n *parser.CallExpressionNode) objects.MonkeyObject {
	fn := e.Eval(n.Function)
	if IsError(fn) {
		return fn
	}

	args := e.evalExpressions(n.Args)
	if len(args) == 1 && IsError(args[0]) {
		return args[0]
	}

	return e.applyFunction(fn, args)
}

// evalExpressions evaluates a list of expressions left to right.
// On the first Error, a one-element slice holding just that Error is
// returned so the caller can propagate it.
//
// Parameters:
//   - exprs: The expressions to evaluate
//
// Returns:
//   - []objects.MonkeyObject: All results, or a single-element Error slice
func (e *Evaluator) evalExpressions(exprs []parser.ExpressionNode) []objects.MonkeyObject {
	result := make([]objects.MonkeyObject, 0, len(exprs))

	for _, expr := range exprs {
		evaluated := e.Eval(expr)
		if IsError(evaluated) {
			return []objects.MonkeyObject{evaluated}
		}
		result = append(result, evaluated)
	}

	return result
}

// applyFunction applies a callee value to already-evaluated arguments.
//
// For a user-defined function:
//  1. The argument count must match the parameter count exactly
//  2. A fresh scope is created whose parent is the function's CAPTURED
//     scope (not the caller's) - this is what makes closures lexical
//  3. Parameters are bound to arguments in that scope
//  4. The body is evaluated with the call scope installed
//  5. A ReturnValue result is unwrapped exactly once
//
// For a builtin, the native callback is invoked with the evaluator's
// writer. Calling any other value type is a runtime error.
//
// Parameters:
//   - fn: The callee value
//   - args: The evaluated argument values
//
// Returns:
//   - objects.MonkeyObject: The call result or an Error
func (e *Evaluator) applyFunction(fn objects.MonkeyObject, args []objects.MonkeyObject) objects.MonkeyObject {
	switch fn := fn.(type) {

	case *function.Function:
		if len(args) != len(fn.Params) {
			return e.CreateError("wrong number of arguments: got=%d, want=%d", len(args), len(fn.Params))
		}

		callScope := scope.NewScope(fn.Scp)
		for i, param := range fn.Params {
			callScope.Bind(param.Name, args[i])
		}

		// Evaluate the body with the call scope installed, then restore
		// the caller's scope
		saved := e.Scp
		e.Scp = callScope
		result := e.Eval(fn.Body)
		e.Scp = saved

		return UnwrapReturnValue(result)

	case *std.Builtin:
		return fn.Callback(e.Writer, args...)

	default:
		return e.CreateError("not a function: %s", fn.GetType())
	}
}
