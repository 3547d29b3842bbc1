/*
File    : go-monkey/eval/eval_collections.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-monkey/objects"
	"github.com/akashmaji946/go-monkey/parser"
)

// evalArrayLiteral evaluates an array literal expression.
// Elements are evaluated left to right; the first Error becomes the
// result of the whole literal.
//
// Parameters:
//   - n: The array literal node
//
// Returns:
//   - objects.MonkeyObject: The Array object or an Error
//
// Example:
//
//	[1, 2 * 2, 3 + 3]  -> [1, 4, 6]
func (e *Evaluator) evalArrayLiteral(n *parser.ArrayLiteralNode) objects.MonkeyObject {
	elements := e.evalExpressions(n.Elements)
	if len(elements) == 1 && IsError(elements[0]) {
		return elements[0]
	}
	return &objects.Array{Elements: elements}
}

// evalHashLiteral evaluates a hash literal expression.
// Each key is evaluated, checked for hashability, then its value is
// evaluated - in source order, propagating the first Error. Only
// Integer, Boolean, and String values can be hash keys.
//
// Parameters:
//   - n: The hash literal node
//
// Returns:
//   - objects.MonkeyObject: The Hash object or an Error
//
// Example:
//
//	{"one": 10 - 9, 4: 4, true: 5}
func (e *Evaluator) evalHashLiteral(n *parser.HashLiteralNode) objects.MonkeyObject {
	pairs := make(map[objects.HashKey]objects.HashPair)

	for i, keyNode := range n.Keys {
		key := e.Eval(keyNode)
		if IsError(key) {
			return key
		}

		hashable, ok := key.(objects.Hashable)
		if !ok {
			return e.CreateError("unusable as hash key: %s", key.GetType())
		}

		value := e.Eval(n.Values[i])
		if IsError(value) {
			return value
		}

		pairs[hashable.HashKey()] = objects.HashPair{Key: key, Value: value}
	}

	return &objects.Hash{Pairs: pairs}
}

// evalIndexExpression evaluates indexing into an array or hash.
// The indexed expression and the index are evaluated in order, each
// short-circuiting on Error.
//
//   - Array[Integer]: the element, or null when the index is out of
//     bounds (negative indices are out of bounds, not from-the-end)
//   - Hash[key]: the key's value, or null when absent; a non-hashable
//     key is a runtime error
//   - anything else: "index operator not supported" error
//
// Parameters:
//   - n: The index expression node
//
// Returns:
//   - objects.MonkeyObject: The indexed value, Null, or an Error
func (e *Evaluator) evalIndexExpression(n *parser.IndexExpressionNode) objects.MonkeyObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}
	index := e.Eval(n.Index)
	if IsError(index) {
		return index
	}

	switch {
	case left.GetType() == objects.ArrayType && index.GetType() == objects.IntegerType:
		return e.evalArrayIndex(left.(*objects.Array), index.(*objects.Integer))

	case left.GetType() == objects.HashType:
		return e.evalHashIndex(left.(*objects.Hash), index)

	default:
		return e.CreateError("index operator not supported: %s", left.GetType())
	}
}

// evalArrayIndex returns the element at the given index, or null when
// the index falls outside [0, len).
func (e *Evaluator) evalArrayIndex(arr *objects.Array, index *objects.Integer) objects.MonkeyObject {
	idx := index.Value
	max := int64(len(arr.Elements) - 1)

	if idx < 0 || idx > max {
		return objects.NULL
	}
	return arr.Elements[idx]
}

// evalHashIndex returns the value stored under the given key, or null
// when the key is absent. A key type that cannot be hashed is an error.
func (e *Evaluator) evalHashIndex(hash *objects.Hash, index objects.MonkeyObject) objects.MonkeyObject {
	hashable, ok := index.(objects.Hashable)
	if !ok {
		return e.CreateError("unusable as hash key: %s", index.GetType())
	}

	pair, ok := hash.Pairs[hashable.HashKey()]
	if !ok {
		return objects.NULL
	}
	return pair.Value
}
