package monkey

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intLit(v int64) Expr {
	return NewLiteralExpr(NewIntLiteral(v))
}

func ident(name string) Expr {
	return NewIdentifierExpr(name)
}

func TestParseStatements(t *testing.T) {
	src := `let x = 5;
return x;
x + 1;
if (x) { 1 } else { 2 };
if (x) { 1 }
fn(a) { a }(3);
[1][0];
{"k": true}`

	expected := []Stmt{
		NewLetStmt("x", intLit(5)),
		NewReturnStmt(ident("x")),
		NewExpressionStmt(NewInfixExpr(PLUS, ident("x"), intLit(1))),
		NewExpressionStmt(NewIfExpr(
			ident("x"),
			[]Stmt{NewExpressionStmt(intLit(1))},
			[]Stmt{NewExpressionStmt(intLit(2))},
		)),
		NewExpressionStmt(NewIfExpr(
			ident("x"),
			[]Stmt{NewExpressionStmt(intLit(1))},
			nil,
		)),
		NewExpressionStmt(NewCallExpr(
			NewFunctionExpr([]string{"a"}, []Stmt{NewExpressionStmt(ident("a"))}),
			[]Expr{intLit(3)},
		)),
		NewExpressionStmt(NewIndexExpr(
			NewLiteralExpr(NewArrayLiteral([]Expr{intLit(1)})),
			intLit(0),
		)),
		NewExpressionStmt(NewLiteralExpr(NewHashLiteral([]HashPair{
			{NewLiteralExpr(NewStringLiteral("k")), NewLiteralExpr(NewBoolLiteral(true))},
		}))),
	}

	program, err := Parse(src)
	require.NoError(t, err)
	if diff := cmp.Diff(expected, program.Statements); diff != "" {
		t.Errorf("statements mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmptyLists(t *testing.T) {
	program, err := Parse(`fn() { }; []; {}; f()`)
	require.NoError(t, err)

	expected := []Stmt{
		NewExpressionStmt(NewFunctionExpr([]string{}, []Stmt{})),
		NewExpressionStmt(NewLiteralExpr(NewArrayLiteral([]Expr{}))),
		NewExpressionStmt(NewLiteralExpr(NewHashLiteral([]HashPair{}))),
		NewExpressionStmt(NewCallExpr(ident("f"), []Expr{})),
	}
	if diff := cmp.Diff(expected, program.Statements); diff != "" {
		t.Errorf("statements mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	testCases := []struct {
		src string
		str string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4);\n((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
		{"add(a * b[2], b[1], 2 * [1, 2][1])", "add((a * (b[2])), (b[1]), (2 * ([1, 2][1])))"},
		{`"a" + "b"`, `("a" + "b")`},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		program, err := Parse(tc.src)
		if assert.NoError(err, "source %q", tc.src) {
			assert.Equal(tc.str, program.String(), "source %q", tc.src)
		}
	}
}

func TestParsePrintIsIdempotent(t *testing.T) {
	sources := []string{
		"((a + b) * c)",
		"let x = (1 + (2 * 3));",
		"return (-x);",
		"if ((x < y)) { x } else { y }",
		"if (x) { }",
		"fn(x, y) { let z = (x + y); z }",
		"fn() { }",
		"add(1, (2 * 3))",
		`{"a": 1, true: [1, 2]}`,
		"(arr[(i + 1)])",
		`"a\tb"`,
		"f;\n(a[0])",
		"fn(x) { return x; }(5)",
	}

	assert := assert.New(t)
	for _, src := range sources {
		program, err := Parse(src)
		if assert.NoError(err, "source %q", src) {
			assert.Equal(src, program.String())
		}
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		src  string
		errs []string
	}{
		{"let = 5;", []string{"expected identifier, got = instead"}},
		{"let x 5;", []string{"expected next token to be =, got 5 instead"}},
		{"let x = 5", []string{"expected next token to be ;, got EOF instead"}},
		{"return 5", []string{"expected next token to be ;, got EOF instead"}},
		{";", []string{"no prefix parse function for ; found"}},
		{"1 + @", []string{"illegal token: unexpected character '@'"}},
		{`"abc`, []string{"illegal token: unterminated string"}},
		{"fn(x, 1) { x }", []string{"expected next token to be IDENT, got 1 instead"}},
		{"if (x { 1 }", []string{"expected next token to be ), got { instead"}},
		{"fn() { x", []string{"expected }, got EOF instead"}},
		{
			"let = 5; let y 1; let z = 2;",
			[]string{
				"expected identifier, got = instead",
				"expected next token to be =, got 1 instead",
			},
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		program, err := Parse(tc.src)
		assert.Nil(program, "source %q", tc.src)

		merr, ok := err.(*multierror.Error)
		if !assert.True(ok, "source %q", tc.src) {
			continue
		}
		msgs := make([]string, 0, len(merr.Errors))
		for _, e := range merr.Errors {
			assert.IsType(&ParseError{}, e)
			msgs = append(msgs, e.Error())
		}
		assert.Equal(tc.errs, msgs, "source %q", tc.src)
	}
}

func TestParseErrorsFormat(t *testing.T) {
	_, err := Parse("let = 5; let y 1;")
	require.Error(t, err)
	assert.Equal(t,
		"parse error: expected identifier, got = instead\n"+
			"parse error: expected next token to be =, got 1 instead",
		err.Error(),
	)
}

func TestParseErrorExpectedToken(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("let = 5;")
	merr := err.(*multierror.Error)
	require.Len(t, merr.Errors, 1)

	perr := merr.Errors[0].(*ParseError)
	assert.Equal(IDENT, perr.Expected)
	assert.Equal(Token{EQUAL, "="}, perr.Found)
}

func TestAstPrinterPrint(t *testing.T) {
	program, err := Parse("let x = -1 * 2; x")
	require.NoError(t, err)

	printer := &AstPrinter{}
	assert.Equal(t, "let x = ((-1) * 2);\nx", printer.Print(program))
	assert.Equal(t, "((-1) * 2)", printer.Print(program.Statements[0].(*LetStmt).Value))
}
