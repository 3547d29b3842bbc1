/*
File    : go-monkey/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser_Parse_OneNumberExpression(t *testing.T) {

	src := `12`
	par := NewParser(src)
	root := par.Parse()
	// root should not be nil
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())

	// must: root has 1 statement
	assert.Equal(t, 1, len(root.Statements))

	exp, can := root.Statements[0].(*IntegerLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "12", exp.Literal())
	assert.Equal(t, int64(12), exp.Value)
}

func TestParser_Parse_AddExpression(t *testing.T) {

	src := `12 + 13`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())

	// must: root has 1 statement
	assert.Equal(t, 1, len(root.Statements))

	exp, can := root.Statements[0].(*BinaryExpressionNode)
	assert.True(t, can)
	left, can := exp.Left.(*IntegerLiteralExpressionNode)
	assert.True(t, can)
	right, can := exp.Right.(*IntegerLiteralExpressionNode)
	assert.True(t, can)

	assert.Equal(t, int64(12), left.Value)
	assert.Equal(t, int64(13), right.Value)
	assert.Equal(t, "(12 + 13)", exp.Literal())
}

// TestParser_Parse_Precedence checks the fully parenthesised rendering of
// every documented operator combination. The Literal() form of a parsed
// expression makes precedence and associativity directly visible.
func TestParser_Parse_Precedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"false", "false"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"3 < 5 == true", "((3 < 5) == true)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
		{"add(a * b[2], b[1], 2 * [1, 2][1])", "add((a * (b[2])), (b[1]), (2 * ([1, 2][1])))"},
	}

	for _, test := range tests {
		par := NewParser(test.input)
		root := par.Parse()
		assert.False(t, par.HasErrors(), "input: %q errors: %v", test.input, par.GetErrors())
		assert.Equal(t, 1, len(root.Statements), "input: %q", test.input)
		assert.Equal(t, test.expected, root.Statements[0].Literal(), "input: %q", test.input)
	}
}

func TestParser_Parse_LetStatements(t *testing.T) {
	tests := []struct {
		input        string
		expectedName string
	}{
		{"let x = 5;", "x"},
		{"let y = true;", "y"},
		{"let foobar = y;", "foobar"},
	}

	for _, test := range tests {
		par := NewParser(test.input)
		root := par.Parse()
		assert.False(t, par.HasErrors(), "input: %q errors: %v", test.input, par.GetErrors())
		assert.Equal(t, 1, len(root.Statements))

		stmt, can := root.Statements[0].(*LetStatementNode)
		assert.True(t, can)
		assert.Equal(t, test.expectedName, stmt.Identifier.Name)
	}
}

func TestParser_Parse_ReturnStatements(t *testing.T) {
	src := `
return 5;
return 10;
return add(15);
`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())
	assert.Equal(t, 3, len(root.Statements))

	for _, stmt := range root.Statements {
		_, can := stmt.(*ReturnStatementNode)
		assert.True(t, can)
	}
}

func TestParser_Parse_ErrorCollection(t *testing.T) {
	// Each bad let statement should contribute an error; the parser keeps
	// going so all of them surface in one run
	src := `let x 5; let = 10; let 838383;`
	par := NewParser(src)
	par.Parse()

	assert.True(t, par.HasErrors())
	assert.GreaterOrEqual(t, len(par.GetErrors()), 3)
}

func TestParser_Parse_StatementDiscardedOnError(t *testing.T) {
	src := `let x 5;`
	par := NewParser(src)
	root := par.Parse()

	assert.True(t, par.HasErrors())
	// The broken statement contributes nothing to the tree
	for _, stmt := range root.Statements {
		_, isLet := stmt.(*LetStatementNode)
		assert.False(t, isLet)
	}
}

func TestParser_Parse_IfExpression(t *testing.T) {
	src := `if (x < y) { x }`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(root.Statements))

	exp, can := root.Statements[0].(*IfExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "(x < y)", exp.Condition.Literal())
	assert.Equal(t, 1, len(exp.Consequence.Statements))
	assert.Nil(t, exp.Alternative)
}

func TestParser_Parse_IfElseExpression(t *testing.T) {
	src := `if (x < y) { x } else { y }`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	exp, can := root.Statements[0].(*IfExpressionNode)
	assert.True(t, can)
	assert.NotNil(t, exp.Alternative)
	assert.Equal(t, 1, len(exp.Alternative.Statements))
}

func TestParser_Parse_FunctionLiteral(t *testing.T) {
	src := `fn(x, y) { x + y; }`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(root.Statements))

	fn, can := root.Statements[0].(*FunctionLiteralNode)
	assert.True(t, can)
	assert.Equal(t, 2, len(fn.Params))
	assert.Equal(t, "x", fn.Params[0].Name)
	assert.Equal(t, "y", fn.Params[1].Name)
	assert.Equal(t, 1, len(fn.Body.Statements))
	assert.Equal(t, "(x + y)", fn.Body.Statements[0].Literal())
}

func TestParser_Parse_FunctionParams(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"fn() {};", []string{}},
		{"fn(x) {};", []string{"x"}},
		{"fn(x, y, z) {};", []string{"x", "y", "z"}},
	}

	for _, test := range tests {
		par := NewParser(test.input)
		root := par.Parse()
		assert.False(t, par.HasErrors(), "input: %q errors: %v", test.input, par.GetErrors())

		fn, can := root.Statements[0].(*FunctionLiteralNode)
		assert.True(t, can)
		assert.Equal(t, len(test.expected), len(fn.Params))
		for i, name := range test.expected {
			assert.Equal(t, name, fn.Params[i].Name)
		}
	}
}

func TestParser_Parse_CallExpression(t *testing.T) {
	src := `add(1, 2 * 3, 4 + 5);`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	call, can := root.Statements[0].(*CallExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "add", call.Function.Literal())
	assert.Equal(t, 3, len(call.Args))
	assert.Equal(t, "1", call.Args[0].Literal())
	assert.Equal(t, "(2 * 3)", call.Args[1].Literal())
	assert.Equal(t, "(4 + 5)", call.Args[2].Literal())
}

func TestParser_Parse_StringLiteral(t *testing.T) {
	src := `"hello world";`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	str, can := root.Statements[0].(*StringLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "hello world", str.Value)
}

func TestParser_Parse_ArrayLiteral(t *testing.T) {
	src := `[1, 2 * 2, 3 + 3]`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	arr, can := root.Statements[0].(*ArrayLiteralNode)
	assert.True(t, can)
	assert.Equal(t, 3, len(arr.Elements))
	assert.Equal(t, "1", arr.Elements[0].Literal())
	assert.Equal(t, "(2 * 2)", arr.Elements[1].Literal())
	assert.Equal(t, "(3 + 3)", arr.Elements[2].Literal())
}

func TestParser_Parse_EmptyArrayLiteral(t *testing.T) {
	par := NewParser(`[]`)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	arr, can := root.Statements[0].(*ArrayLiteralNode)
	assert.True(t, can)
	assert.Equal(t, 0, len(arr.Elements))
}

func TestParser_Parse_IndexExpression(t *testing.T) {
	src := `myArray[1 + 1]`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	idx, can := root.Statements[0].(*IndexExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "myArray", idx.Left.Literal())
	assert.Equal(t, "(1 + 1)", idx.Index.Literal())
}

func TestParser_Parse_HashLiteral(t *testing.T) {
	src := `{"one": 1, "two": 2, "three": 3}`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	hash, can := root.Statements[0].(*HashLiteralNode)
	assert.True(t, can)
	assert.Equal(t, 3, len(hash.Keys))
	assert.Equal(t, 3, len(hash.Values))
	assert.Equal(t, "one", hash.Keys[0].Literal())
	assert.Equal(t, "1", hash.Values[0].Literal())
}

func TestParser_Parse_EmptyHashLiteral(t *testing.T) {
	par := NewParser(`{}`)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	hash, can := root.Statements[0].(*HashLiteralNode)
	assert.True(t, can)
	assert.Equal(t, 0, len(hash.Keys))
}

func TestParser_Parse_HashLiteralWithExpressions(t *testing.T) {
	src := `{"one": 0 + 1, "two": 10 - 8, "three": 15 / 5}`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	hash, can := root.Statements[0].(*HashLiteralNode)
	assert.True(t, can)
	assert.Equal(t, "(0 + 1)", hash.Values[0].Literal())
	assert.Equal(t, "(10 - 8)", hash.Values[1].Literal())
	assert.Equal(t, "(15 / 5)", hash.Values[2].Literal())
}

func TestParser_Parse_NestedFunctionLiteral(t *testing.T) {
	src := `let newAdder = fn(x) { fn(y) { x + y } };`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	let, can := root.Statements[0].(*LetStatementNode)
	assert.True(t, can)

	outer, can := let.Expr.(*FunctionLiteralNode)
	assert.True(t, can)
	assert.Equal(t, 1, len(outer.Body.Statements))

	inner, can := outer.Body.Statements[0].(*FunctionLiteralNode)
	assert.True(t, can)
	assert.Equal(t, "y", inner.Params[0].Name)
}

func TestParser_Parse_IntegerLiteralOverflow(t *testing.T) {
	par := NewParser(`99999999999999999999`)
	par.Parse()
	assert.True(t, par.HasErrors())
}
