package monkey

import (
	"strconv"
	"strings"
)

// Node is any piece of the syntax tree that can be evaluated: a *Program, a
// Stmt or an Expr.
type Node interface {
	String() string
}

// Program is the root of the syntax tree.
type Program struct {
	Statements []Stmt
}

func (program *Program) String() string {
	return strings.Join(printStmts(program.Statements), "\n")
}

// HashPair is a single `key: value` entry of a hash literal.
type HashPair struct {
	Key   Expr
	Value Expr
}

// AstPrinter renders the syntax tree in its canonical form: every prefix,
// infix and index expression is fully parenthesized, so parsing the output
// again yields the same tree.
type AstPrinter struct{}

// Print returns the canonical rendering of node.
func (printer *AstPrinter) Print(node Node) string {
	return node.String()
}

func (printer *AstPrinter) VisitLetStmt(stmt *LetStmt) (interface{}, error) {
	return "let " + stmt.Name + " = " + stmt.Value.String() + ";", nil
}

func (printer *AstPrinter) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	return "return " + stmt.Value.String() + ";", nil
}

func (printer *AstPrinter) VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error) {
	return stmt.Expr.String(), nil
}

func (printer *AstPrinter) VisitIdentifierExpr(expr *IdentifierExpr) (interface{}, error) {
	return expr.Name, nil
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return expr.Value.String(), nil
}

func (printer *AstPrinter) VisitPrefixExpr(expr *PrefixExpr) (interface{}, error) {
	return "(" + string(expr.Op) + expr.Right.String() + ")", nil
}

func (printer *AstPrinter) VisitInfixExpr(expr *InfixExpr) (interface{}, error) {
	return "(" + expr.Left.String() + " " + string(expr.Op) + " " + expr.Right.String() + ")", nil
}

func (printer *AstPrinter) VisitPostfixExpr(expr *PostfixExpr) (interface{}, error) {
	return "(" + expr.Left.String() + string(expr.Op) + ")", nil
}

func (printer *AstPrinter) VisitIfExpr(expr *IfExpr) (interface{}, error) {
	var sb strings.Builder
	sb.WriteString("if (")
	sb.WriteString(expr.Cond.String())
	sb.WriteString(") ")
	sb.WriteString(printBlock(expr.Consequence))
	if expr.Alternative != nil {
		sb.WriteString(" else ")
		sb.WriteString(printBlock(expr.Alternative))
	}
	return sb.String(), nil
}

func (printer *AstPrinter) VisitFunctionExpr(expr *FunctionExpr) (interface{}, error) {
	return printFunction(expr.Params, expr.Body), nil
}

func (printer *AstPrinter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	return expr.Callee.String() + "(" + printExprs(expr.Args) + ")", nil
}

func (printer *AstPrinter) VisitIndexExpr(expr *IndexExpr) (interface{}, error) {
	return "(" + expr.Left.String() + "[" + expr.Index.String() + "])", nil
}

func (printer *AstPrinter) VisitIntLiteral(literal *IntLiteral) (interface{}, error) {
	return strconv.FormatInt(literal.Value, 10), nil
}

func (printer *AstPrinter) VisitStringLiteral(literal *StringLiteral) (interface{}, error) {
	return quote(literal.Value), nil
}

func (printer *AstPrinter) VisitBoolLiteral(literal *BoolLiteral) (interface{}, error) {
	return strconv.FormatBool(literal.Value), nil
}

func (printer *AstPrinter) VisitArrayLiteral(literal *ArrayLiteral) (interface{}, error) {
	return "[" + printExprs(literal.Elements) + "]", nil
}

func (printer *AstPrinter) VisitHashLiteral(literal *HashLiteral) (interface{}, error) {
	pairs := make([]string, 0, len(literal.Pairs))
	for _, pair := range literal.Pairs {
		pairs = append(pairs, pair.Key.String()+": "+pair.Value.String())
	}
	return "{" + strings.Join(pairs, ", ") + "}", nil
}

func printFunction(params []string, body []Stmt) string {
	return "fn(" + strings.Join(params, ", ") + ") " + printBlock(body)
}

func printBlock(stmts []Stmt) string {
	if len(stmts) == 0 {
		return "{ }"
	}
	return "{ " + strings.Join(printStmts(stmts), " ") + " }"
}

// printStmts renders each statement. Expression statements other than the
// last one get a terminating semicolon, otherwise the next statement could be
// read as a call or index on them.
func printStmts(stmts []Stmt) []string {
	parts := make([]string, 0, len(stmts))
	for i, stmt := range stmts {
		s := stmt.String()
		if _, ok := stmt.(*ExpressionStmt); ok && i < len(stmts)-1 {
			s += ";"
		}
		parts = append(parts, s)
	}
	return parts
}

func printExprs(exprs []Expr) string {
	parts := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		parts = append(parts, expr.String())
	}
	return strings.Join(parts, ", ")
}
