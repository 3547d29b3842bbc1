/*
File    : go-monkey/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-monkey/objects"
	"github.com/akashmaji946/go-monkey/parser"
	"github.com/akashmaji946/go-monkey/scope"
)

// Function represents a user-defined function object in Monkey.
// It captures the function's parameters, body, and the scope in which it
// was defined (for closure support). Functions are anonymous values created
// by `fn` literals; naming happens through ordinary `let` bindings.
//
// Fields:
//   - Params: A slice of identifier nodes representing the function's
//     parameter names. These are bound to argument values when the
//     function is called.
//   - Body: A block statement node containing the function's executable
//     statements. This is evaluated when the function is invoked.
//   - Scp: A pointer to the scope in which the function was defined.
//     This enables closure behavior, allowing the function to access
//     variables from its enclosing scope even after that scope has
//     finished executing.
type Function struct {
	Params []*parser.IdentifierExpressionNode // Function parameter names
	Body   *parser.BlockStatementNode         // Function body (statements to execute)
	Scp    *scope.Scope                       // Captured scope for closures
}

// GetType returns the type identifier for this Function object.
// This implements the objects.MonkeyObject interface.
//
// Returns:
//   - objects.MonkeyType: The string "FUNCTION"
func (f *Function) GetType() objects.MonkeyType {
	return objects.FunctionType
}

// ToString returns the display form of the function:
// "fn(p1, p2) { body }", with the body rendered through the AST.
//
// Example:
//
//	For fn(x, y) { x + y; } this returns: "fn(x, y) { (x + y) }"
//
// Returns:
//   - string: A formatted string representation of the function
func (f *Function) ToString() string {
	params := make([]string, 0, len(f.Params))
	for _, param := range f.Params {
		params = append(params, param.Name)
	}
	return fmt.Sprintf("fn(%s) %s", strings.Join(params, ", "), f.Body.Literal())
}

// ToObject returns a detailed string representation of the function,
// including its parameter names. This is useful for debugging and
// inspection.
//
// Returns:
//   - string: A detailed string representation including parameters
func (f *Function) ToObject() string {
	params := make([]string, 0, len(f.Params))
	for _, param := range f.Params {
		params = append(params, param.Name)
	}
	return fmt.Sprintf("<%s(%s)>", objects.FunctionType, strings.Join(params, ", "))
}
