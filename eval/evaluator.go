/*
File    : go-monkey/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator for the Monkey language.
// It walks the AST produced by the parser against a chain of scopes and
// produces Monkey objects, including first-class functions with closures.
//
// Runtime failures are ordinary Error objects, never panics: every
// evaluation step checks its inputs and propagates the first Error it
// sees unchanged to the top.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/go-monkey/objects"
	"github.com/akashmaji946/go-monkey/parser"
	"github.com/akashmaji946/go-monkey/scope"
	"github.com/akashmaji946/go-monkey/std"
)

// Evaluator holds the state for evaluating Monkey AST nodes,
// including parser, scope, builtins, and output writer.
// It serves as the main execution engine for the Monkey interpreter,
// managing the evaluation context and providing access to built-in functions.
//
// A single Evaluator is not safe for concurrent use; callers must not
// share one across goroutines.
type Evaluator struct {
	Par      *parser.Parser          // Parser instance (kept for diagnostics hooks)
	Scp      *scope.Scope            // Current scope for variable bindings and lexical scoping
	Builtins map[string]*std.Builtin // Map of builtin functions (len, first, last, rest, push, puts)
	Writer   io.Writer               // Output writer for builtin functions (default: os.Stdout)
}

// NewEvaluator creates and initializes a new Evaluator instance with default configuration.
//
// This constructor performs the following initialization:
// - Creates a new root scope with no parent (global scope)
// - Fills the builtin lookup map from the std registry
// - Sets the output writer to os.Stdout for default console output
//
// Returns:
//   - *Evaluator: A fully initialized evaluator ready to execute Monkey code
//
// Example usage:
//
//	ev := NewEvaluator()
//	ev.SetParser(par)
//	result := ev.Eval(par.Parse())
func NewEvaluator() *Evaluator {
	ev := &Evaluator{
		Par:      nil,
		Scp:      scope.NewScope(nil),
		Builtins: make(map[string]*std.Builtin),
		Writer:   os.Stdout, // Default to stdout
	}
	for _, builtin := range std.Builtins {
		ev.Builtins[builtin.Name] = builtin
	}
	return ev
}

// SetWriter configures the output destination for the evaluator's builtin functions.
//
// This method allows redirecting output from builtin functions (like puts)
// to any io.Writer implementation. This is particularly useful for:
// - Testing: capturing output to verify program behavior
// - REPL: routing output through the prompt's writer
//
// Parameters:
//   - w: An io.Writer implementation that will receive output from builtin functions
//
// Example usage:
//
//	var buf bytes.Buffer
//	ev.SetWriter(&buf)  // Redirect output to buffer for testing
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetParser assigns a parser instance to the evaluator.
// The evaluator only stores the reference; evaluation never reads it, and
// runtime error messages carry no positions, since their exact text is
// part of the language surface.
//
// Parameters:
//   - p: A pointer to the Parser instance that parsed the AST being evaluated
func (e *Evaluator) SetParser(p *parser.Parser) {
	e.Par = p
}

// CreateError constructs a Monkey Error object from a format string.
// The resulting message is exactly the formatted text - the display form
// "ERROR: message" is applied by Error.ToString, not here.
//
// Parameters:
//   - format: A printf-style format string
//   - a: Format arguments
//
// Returns:
//   - objects.MonkeyObject: The new Error object
func (e *Evaluator) CreateError(format string, a ...interface{}) objects.MonkeyObject {
	return &objects.Error{Message: fmt.Sprintf(format, a...)}
}
