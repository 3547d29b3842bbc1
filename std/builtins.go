/*
File    : go-monkey/std/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std defines the builtin functions available in the Monkey language.
// The builtin surface is deliberately small and fixed: len, first, last,
// rest, push, and puts. Builtins are registered globally and resolved by
// the evaluator when an identifier is not found in any scope.
package std

import (
	"fmt"
	"io" // io.Writer is used for output operations in builtin functions

	"github.com/akashmaji946/go-monkey/objects"
)

// CallbackFunc is the function signature for builtin functions.
// It takes an io.Writer for output (e.g., console) and a variadic list of
// MonkeyObject arguments, returning a MonkeyObject result (or an Error
// object if something goes wrong).
type CallbackFunc func(writer io.Writer, args ...objects.MonkeyObject) objects.MonkeyObject

// Builtin represents a builtin function with a name and its implementation callback.
// This struct is used to store and invoke builtin functions in the language.
// Builtin is itself a MonkeyObject so that builtins are first-class values:
// they can be passed around and compared like anything else.
type Builtin struct {
	Name     string       // The name of the builtin function (e.g., "len")
	Callback CallbackFunc // The function that implements the builtin behavior
}

// GetType returns the type of the Builtin object ("BUILTIN").
func (b *Builtin) GetType() objects.MonkeyType {
	return objects.BuiltinType
}

// ToString returns a short display form of the builtin.
func (b *Builtin) ToString() string {
	return fmt.Sprintf("builtin function %s", b.Name)
}

// ToObject returns a detailed representation of the builtin.
func (b *Builtin) ToObject() string {
	return fmt.Sprintf("<%s(%s)>", objects.BuiltinType, b.Name)
}

// Builtins is the global table of builtin functions available in Monkey.
// The evaluator copies this slice into its lookup map at construction.
var Builtins = []*Builtin{
	{Name: "len", Callback: builtinLen},     // Length of a string (bytes) or array
	{Name: "first", Callback: builtinFirst}, // First element of an array
	{Name: "last", Callback: builtinLast},   // Last element of an array
	{Name: "rest", Callback: builtinRest},   // All but the first element of an array
	{Name: "push", Callback: builtinPush},   // New array with an element appended
	{Name: "puts", Callback: builtinPuts},   // Print arguments, one per line
}

// createError is a local helper to create Monkey error objects.
func createError(format string, a ...interface{}) *objects.Error {
	return &objects.Error{Message: fmt.Sprintf(format, a...)}
}

// builtinLen returns the length of its single argument.
//
// Syntax: len(x)
//   - String: length in bytes
//   - Array: number of elements
//   - anything else: error
//
// Example:
//
//	len("hello")      -> 5
//	len([1, 2, 3])    -> 3
func builtinLen(writer io.Writer, args ...objects.MonkeyObject) objects.MonkeyObject {
	if len(args) != 1 {
		return createError("wrong number of arguments. got=%d, want=1", len(args))
	}

	switch arg := args[0].(type) {
	case *objects.String:
		return &objects.Integer{Value: int64(len(arg.Value))}
	case *objects.Array:
		return &objects.Integer{Value: int64(len(arg.Elements))}
	default:
		return createError("argument to `len` not supported, got %s", args[0].GetType())
	}
}

// builtinFirst returns the first element of an array, or null for an
// empty array.
//
// Syntax: first(arr)
func builtinFirst(writer io.Writer, args ...objects.MonkeyObject) objects.MonkeyObject {
	if len(args) != 1 {
		return createError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return createError("argument to `first` must be ARRAY, got %s", args[0].GetType())
	}

	if len(arr.Elements) > 0 {
		return arr.Elements[0]
	}
	return objects.NULL
}

// builtinLast returns the last element of an array, or null for an
// empty array.
//
// Syntax: last(arr)
func builtinLast(writer io.Writer, args ...objects.MonkeyObject) objects.MonkeyObject {
	if len(args) != 1 {
		return createError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return createError("argument to `last` must be ARRAY, got %s", args[0].GetType())
	}

	if length := len(arr.Elements); length > 0 {
		return arr.Elements[length-1]
	}
	return objects.NULL
}

// builtinRest returns a new array holding all but the first element of
// its argument, or null for an empty array. The original array is never
// modified.
//
// Syntax: rest(arr)
//
// Example:
//
//	rest([1, 2, 3])  -> [2, 3]
//	rest([])         -> null
func builtinRest(writer io.Writer, args ...objects.MonkeyObject) objects.MonkeyObject {
	if len(args) != 1 {
		return createError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return createError("argument to `rest` must be ARRAY, got %s", args[0].GetType())
	}

	length := len(arr.Elements)
	if length > 0 {
		elements := make([]objects.MonkeyObject, length-1)
		copy(elements, arr.Elements[1:])
		return &objects.Array{Elements: elements}
	}
	return objects.NULL
}

// builtinPush returns a new array consisting of the argument array with
// one value appended. The original array is never modified.
//
// Syntax: push(arr, value)
//
// Example:
//
//	push([1, 2], 3)  -> [1, 2, 3]
func builtinPush(writer io.Writer, args ...objects.MonkeyObject) objects.MonkeyObject {
	if len(args) != 2 {
		return createError("wrong number of arguments. got=%d, want=2", len(args))
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return createError("argument to `push` must be ARRAY, got %s", args[0].GetType())
	}

	length := len(arr.Elements)
	elements := make([]objects.MonkeyObject, length+1)
	copy(elements, arr.Elements)
	elements[length] = args[1]
	return &objects.Array{Elements: elements}
}

// builtinPuts prints each argument's display form followed by a newline
// and returns null. Output goes through the evaluator's writer so the
// REPL and tests can capture it.
//
// Syntax: puts(value, ...)
func builtinPuts(writer io.Writer, args ...objects.MonkeyObject) objects.MonkeyObject {
	for _, arg := range args {
		fmt.Fprintln(writer, arg.ToString())
	}
	return objects.NULL
}
