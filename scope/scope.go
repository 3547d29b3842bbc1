/*
File    : go-monkey/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import "github.com/akashmaji946/go-monkey/objects"

// Scope defines a lexical scope boundary for variable lifetime and accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping and closures.
// Each scope maintains its own variable bindings and can access variables from parent scopes.
// This structure supports:
// - Variable shadowing: inner scopes can redefine variables from outer scopes
// - Closures: functions capture their defining scope and can access outer variables
// - Call scoping: each function call gets its own scope for parameter bindings
//
// The scope chain is traversed upward (from child to parent) during variable lookup,
// implementing the standard lexical scoping rules found in most programming languages.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.MonkeyObject

	// Parent points to the enclosing scope, forming a scope chain
	// nil indicates this is the global (root) scope
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent scope.
//
// This constructor initializes the bindings map and establishes the parent-child
// relationship in the scope chain. The parent parameter determines the scope's
// position in the hierarchy:
// - parent == nil: Creates a global (root) scope with no parent
// - parent != nil: Creates a nested scope that can access parent variables
//
// Each new scope starts with empty variable bindings but inherits access to
// all variables in parent scopes through the lookup chain.
//
// Parameters:
//   - parent: The enclosing scope, or nil for a global scope
//
// Returns:
//   - *Scope: A fully initialized scope ready for variable bindings
//
// Example usage:
//
//	globalScope := NewScope(nil)            // Create global scope
//	callScope := NewScope(fn.Scp)           // Create per-call function scope
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.MonkeyObject),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this scope and all parent scopes.
//
// This method implements the core variable resolution algorithm for lexical scoping:
// 1. First checks the current scope's Variables map
// 2. If not found and a parent scope exists, recursively searches the parent
// 3. Continues up the scope chain until the variable is found or the root is reached
//
// This traversal order ensures that:
// - Variables in inner scopes shadow those in outer scopes
// - All variables in the scope chain are accessible
// - The most recent binding is always returned
//
// Parameters:
//   - varName: The name of the variable to look up
//
// Returns:
//   - objects.MonkeyObject: The value bound to the variable (if found)
//   - bool: true if the variable was found in this scope or any parent, false otherwise
//
// Example:
//
//	let x = 10;
//	let addX = fn(y) { x + y };   // LookUp finds x in the parent scope
func (s *Scope) LookUp(varName string) (objects.MonkeyObject, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.MonkeyObject)
	}
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind creates a new variable binding in the current scope.
//
// This method adds or updates a variable binding in the current scope only,
// without affecting parent scopes. Shadowing a variable from a parent scope
// is allowed and never mutates the outer binding.
//
// Parameters:
//   - varName: The name of the variable to bind
//   - obj: The value to bind to the variable
//
// Returns:
//   - objects.MonkeyObject: The bound value (echoed back)
//
// Example:
//
//	scope.Bind("x", &objects.Integer{Value: 10})
func (s *Scope) Bind(varName string, obj objects.MonkeyObject) objects.MonkeyObject {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.MonkeyObject)
	}
	s.Variables[varName] = obj
	return obj
}
