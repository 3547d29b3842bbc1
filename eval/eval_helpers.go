/*
File    : go-monkey/eval/eval_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-monkey/objects"
)

// IsError checks if a MonkeyObject represents an error condition.
//
// This helper function is used throughout the evaluator to detect error objects
// and enable early termination of evaluation. When an error is detected, it should
// be propagated up the call stack rather than continuing evaluation.
//
// The function includes a nil check to safely handle cases where the object
// might be nil (though this should rarely occur in normal operation).
//
// Parameters:
//   - obj: The MonkeyObject to check (can be nil)
//
// Returns:
//   - bool: true if the object is non-nil and has type ErrorType, false otherwise
//
// Example usage:
//
//	result := e.Eval(node)
//	if IsError(result) {
//	    return result  // Propagate error up
//	}
//	// Continue with normal evaluation
func IsError(obj objects.MonkeyObject) bool {
	if obj != nil {
		return obj.GetType() == objects.ErrorType
	}
	return false
}

// UnwrapReturnValue extracts the actual value from a ReturnValue wrapper.
//
// This helper function is used to unwrap return values after function execution
// completes. During evaluation, return statements create ReturnValue wrappers to
// signal early termination. Once we've exited the function context, we need to
// extract the actual returned value.
//
// If the object is not a ReturnValue (i.e., it's a normal value), it's returned
// unchanged. This makes the function safe to call on any object.
//
// Parameters:
//   - obj: The MonkeyObject to potentially unwrap
//
// Returns:
//   - objects.MonkeyObject: The unwrapped value if obj is a ReturnValue,
//     otherwise returns obj unchanged
//
// Example flow:
//
//	fn(a, b) { return a + b; }   // Body yields ReturnValue(Integer(8))
//	add(5, 3)                    // UnwrapReturnValue extracts Integer(8)
func UnwrapReturnValue(obj objects.MonkeyObject) objects.MonkeyObject {
	if retVal, isReturn := obj.(*objects.ReturnValue); isReturn {
		return retVal.Value
	}
	return obj
}

// isTruthy decides how a value behaves as a condition.
// Null and false are falsy; every other value - including 0, "" and
// empty collections - is truthy.
func isTruthy(obj objects.MonkeyObject) bool {
	switch obj {
	case objects.NULL:
		return false
	case objects.FALSE:
		return false
	default:
		return true
	}
}
