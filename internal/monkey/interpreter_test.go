package monkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalSource parses and evaluates src in a fresh environment.
func evalSource(t *testing.T, src string) (Value, error) {
	t.Helper()
	program, err := Parse(src)
	require.NoError(t, err, "source %q", src)
	return Evaluate(program, NewEnvironment())
}

type evalTestCase struct {
	src  string
	eval string
}

func runEvalTests(t *testing.T, testCases []evalTestCase) {
	t.Helper()
	assert := assert.New(t)
	for _, tc := range testCases {
		val, err := evalSource(t, tc.src)
		if assert.NoError(err, "source %q", tc.src) {
			assert.Equal(tc.eval, val.Inspect(), "source %q", tc.src)
		}
	}
}

func TestInterpretLiterals(t *testing.T) {
	runEvalTests(t, []evalTestCase{
		{"5", "5"},
		{"10;", "10"},
		{"true", "true"},
		{"false", "false"},
		{`"hello world"`, "hello world"},
		{"", "null"},
		{"[1, 2 * 2, 3 + 3]", "[1, 4, 6]"},
		{`["a", 1]`, `["a", 1]`},
		{`{"one": 1, "two": 2, 3: true}`, `{"one": 1, "two": 2, 3: true}`},
		{`{"a": 1, "a": 2}`, `{"a": 2}`},
		{"fn(x) { x + 2; }", "fn(x) { (x + 2) }"},
	})
}

func TestInterpretPrefix(t *testing.T) {
	runEvalTests(t, []evalTestCase{
		{"-5", "-5"},
		{"--5", "5"},
		{"!true", "false"},
		{"!false", "true"},
		{"!5", "false"},
		{"!!true", "true"},
		{"!!5", "true"},
		{`!""`, "false"},
		{"!if (false) { 1 }", "true"},
	})
}

func TestInterpretInfix(t *testing.T) {
	runEvalTests(t, []evalTestCase{
		{"5 + 5 + 5 + 5 - 10", "10"},
		{"2 * 2 * 2 * 2 * 2", "32"},
		{"-50 + 100 + -50", "0"},
		{"5 * 2 + 10", "20"},
		{"5 + 2 * 10", "25"},
		{"50 / 2 * 2 + 10", "60"},
		{"2 * (5 + 10)", "30"},
		{"3 * 3 * 3 + 10", "37"},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", "50"},
		{"7 / 2", "3"},
		{"-7 / 2", "-3"},
		{"1 < 2", "true"},
		{"1 > 2", "false"},
		{"1 == 1", "true"},
		{"1 != 1", "false"},
		{"true == true", "true"},
		{"true != false", "true"},
		{"(1 < 2) == true", "true"},
		{"(1 > 2) == true", "false"},
		{`"Hello" + " " + "World!"`, "Hello World!"},
		{`"a" == "a"`, "true"},
		{`"a" != "b"`, "true"},
	})
}

func TestInterpretConditionals(t *testing.T) {
	runEvalTests(t, []evalTestCase{
		{"if (true) { 10 }", "10"},
		{"if (false) { 10 }", "null"},
		{"if (1) { 10 }", "10"},
		{"if (1 < 2) { 10 }", "10"},
		{"if (1 > 2) { 10 }", "null"},
		{"if (1 > 2) { 10 } else { 20 }", "20"},
		{"if (1 < 2) { 10 } else { 20 }", "10"},
		{"if (true) { }", "null"},
	})
}

func TestInterpretReturn(t *testing.T) {
	runEvalTests(t, []evalTestCase{
		{"return 10;", "10"},
		{"return 10; 9;", "10"},
		{"return 2 * 5; 9;", "10"},
		{"9; return 2 * 5; 9;", "10"},
		{"if (10 > 1) { if (10 > 1) { return 10; } return 1; }", "10"},
		{"let f = fn(x) { return x; x + 10; }; f(10);", "10"},
		{"let f = fn(x) { let result = x + 10; return result; return 10; }; f(10);", "20"},
		{"let f = fn() { if (true) { return 1; } 2 }; f() + f();", "2"},
		{"let f = fn() { let x = if (true) { return 1; }; 2 }; f();", "1"},
	})
}

func TestInterpretLetAndFunctions(t *testing.T) {
	runEvalTests(t, []evalTestCase{
		{"let x = 5; x + 1;", "6"},
		{"let a = 5; a;", "5"},
		{"let a = 5 * 5; a;", "25"},
		{"let a = 5; let b = a; b;", "5"},
		{"let a = 5; let b = a; let c = a + b + 5; c;", "15"},
		{"let identity = fn(x) { x; }; identity(5);", "5"},
		{"let double = fn(x) { x * 2; }; double(5);", "10"},
		{"let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5));", "20"},
		{"fn(x) { x; }(5)", "5"},
		{"let f = fn() { }; f();", "null"},
	})
}

func TestInterpretClosures(t *testing.T) {
	runEvalTests(t, []evalTestCase{
		{
			`let newAdder = fn(x) { fn(y) { x + y } };
let addTwo = newAdder(2);
addTwo(3);`,
			"5",
		},
		{
			`let x = 1;
let f = fn() { x };
let g = fn() { let x = 2; f() };
g();`,
			"1",
		},
		{
			`let x = 1;
let f = fn() { let x = 2; x };
f() + x;`,
			"3",
		},
		{
			`let fib = fn(n) { if (n < 2) { return n; } fib(n - 1) + fib(n - 2) };
fib(15);`,
			"610",
		},
		{
			`let map = fn(arr, f) { [f(arr[0]), f(arr[1])] };
map([1, 2], fn(x) { x * 10 });`,
			"[10, 20]",
		},
	})
}

func TestInterpretIndex(t *testing.T) {
	runEvalTests(t, []evalTestCase{
		{"[1, 2, 3][0]", "1"},
		{"[1, 2, 3][2]", "3"},
		{"let i = 0; [1][i];", "1"},
		{"[1, 2, 3][1 + 1];", "3"},
		{"let a = [1, 2, 3]; a[0] + a[1] + a[2];", "6"},
		{"[1, 2, 3][3]", "null"},
		{"[1, 2, 3][-1]", "null"},
		{`{"foo": 5}["foo"]`, "5"},
		{`{"foo": 5}["bar"]`, "null"},
		{`let key = "foo"; {"foo": 5}[key]`, "5"},
		{`{}["foo"]`, "null"},
		{"{5: 5}[5]", "5"},
		{"{true: 5}[true]", "5"},
		{"{false: 5}[false]", "5"},
		{`{1: "int", "1": "string"}["1"]`, "string"},
	})
}

func TestInterpretErrors(t *testing.T) {
	testCases := []struct {
		src string
		msg string
	}{
		{"foobar;", "identifier not found: foobar"},
		{"5 + true;", "type mismatch: INTEGER + BOOLEAN"},
		{"5 + true; 5;", "type mismatch: INTEGER + BOOLEAN"},
		{"5 == true", "type mismatch: INTEGER == BOOLEAN"},
		{`"a" - 1`, "type mismatch: STRING - INTEGER"},
		{"-true", "unknown operator: -BOOLEAN"},
		{`-"a"`, "unknown operator: -STRING"},
		{"true + false;", "unknown operator: BOOLEAN + BOOLEAN"},
		{"5; true + false; 5", "unknown operator: BOOLEAN + BOOLEAN"},
		{"if (10 > 1) { true + false; }", "unknown operator: BOOLEAN + BOOLEAN"},
		{"if (10 > 1) { if (10 > 1) { return true + false; } return 1; }", "unknown operator: BOOLEAN + BOOLEAN"},
		{`"Hello" - "World"`, "unknown operator: STRING - STRING"},
		{"fn(x) { x } < fn(x) { x }", "unknown operator: FUNCTION < FUNCTION"},
		{"1 / 0", "division by zero"},
		{"let f = fn(x) { x }; f();", "wrong number of arguments: want=1, got=0"},
		{"let f = fn() { 1 }; f(1, 2);", "wrong number of arguments: want=0, got=2"},
		{"5()", "not a function: INTEGER"},
		{`"f"(1)`, "not a function: STRING"},
		{`{"name": "Monkey"}[fn(x) { x }];`, "unusable as hash key: FUNCTION"},
		{`{[1]: 2}`, "unusable as hash key: ARRAY"},
		{"1[0]", "index operator not supported: INTEGER"},
		{`[1]["a"]`, "index operator not supported: ARRAY[STRING]"},
		{"let f = fn() { y }; f();", "identifier not found: y"},
		{"[1, x, 3]", "identifier not found: x"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		val, err := evalSource(t, tc.src)
		assert.Nil(val, "source %q", tc.src)
		if assert.Error(err, "source %q", tc.src) {
			assert.IsType(&Error{}, err)
			assert.Equal(tc.msg, err.Error(), "source %q", tc.src)
		}
	}
}

func TestInterpretFunctionScopeDoesNotLeak(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment()

	program, err := Parse("let f = fn(a) { let inner = a; inner }; f(1);")
	require.NoError(t, err)
	_, err = Evaluate(program, env)
	require.NoError(t, err)

	_, ok := env.Get("inner")
	assert.False(ok)
	_, ok = env.Get("a")
	assert.False(ok)
	assert.Equal([]string{"f"}, env.Names())
}

func TestInterpretBlockScopeDoesNotLeak(t *testing.T) {
	testCases := []struct {
		src string
		msg string
	}{
		{"if (true) { let x = 10; }; x", "identifier not found: x"},
		{"if (false) { 1 } else { let x = 10; }; x", "identifier not found: x"},
		{"fn() { if (true) { let y = 1; } y }()", "identifier not found: y"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, err := evalSource(t, tc.src)
		if assert.Error(err, "source %q", tc.src) {
			assert.Equal(tc.msg, err.Error(), "source %q", tc.src)
		}
	}
}

func TestInterpretBlockSeesEnclosingScope(t *testing.T) {
	runEvalTests(t, []evalTestCase{
		{"let x = 1; if (true) { x + 1 }", "2"},
		{"let x = 1; if (true) { let x = 5; x }", "5"},
		{"let x = 1; if (true) { let x = 5; }; x", "1"},
		{"let f = fn(a) { if (a > 0) { let b = a * 2; b } else { 0 } }; f(4)", "8"},
	})
}

func TestInterpretPersistentEnvironment(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment()

	lines := []struct {
		src  string
		eval string
	}{
		{"let x = 5;", "5"},
		{"let add = fn(a, b) { a + b };", "fn(a, b) { (a + b) }"},
		{"add(x, 10)", "15"},
		{"let x = x * 2;", "10"},
		{"add(x, 10)", "20"},
	}
	for _, line := range lines {
		program, err := Parse(line.src)
		require.NoError(t, err)
		val, err := Evaluate(program, env)
		require.NoError(t, err)
		assert.Equal(line.eval, val.Inspect(), "source %q", line.src)
	}
}

func TestInterpretSingleNodes(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment()
	env.Set("x", &Integer{2})

	val, err := Evaluate(NewInfixExpr(STAR, ident("x"), intLit(21)), env)
	assert.NoError(err)
	assert.Equal(&Integer{42}, val)

	val, err = Evaluate(NewReturnStmt(intLit(7)), env)
	assert.NoError(err)
	assert.Equal(&Integer{7}, val)

	val, err = Evaluate(NewLetStmt("y", NewLiteralExpr(NewBoolLiteral(true))), env)
	assert.NoError(err)
	assert.Same(TRUE_OBJ, val)
	y, ok := env.Get("y")
	assert.True(ok)
	assert.Same(TRUE_OBJ, y)
}

func TestInterpretPostfix(t *testing.T) {
	_, err := Evaluate(NewPostfixExpr(BANG, intLit(5)), NewEnvironment())
	if assert.Error(t, err) {
		assert.Equal(t, "unknown operator: INTEGER!", err.Error())
	}
}

func TestInterpretBooleansAreShared(t *testing.T) {
	assert := assert.New(t)

	val, err := evalSource(t, "1 < 2")
	assert.NoError(err)
	assert.Same(TRUE_OBJ, val)

	val, err = evalSource(t, "if (false) { 1 }")
	assert.NoError(err)
	assert.Same(NULL_OBJ, val)
}
