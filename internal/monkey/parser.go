package monkey

import (
	"fmt"
	"strconv"

	multierror "github.com/hashicorp/go-multierror"
)

type (
	prefixParseFn func() (Expr, error)
	infixParseFn  func(left Expr) (Expr, error)
)

// Parser builds the syntax tree from the tokens produced by a lexer. Statements
// are parsed by recursive descent and expressions by precedence climbing
// (Pratt parsing): every token type may have a prefix parse function, used
// when it starts an expression, and an infix parse function, used when it
// follows a complete left-hand side. The grammar is described in the package
// documentation.
type Parser struct {
	lexer     *Lexer
	current   Token
	peek      Token
	prefixFns map[TokenType]prefixParseFn
	infixFns  map[TokenType]infixParseFn
}

// NewParser creates a new parser reading tokens from the given lexer
func NewParser(lexer *Lexer) *Parser {
	parser := new(Parser)
	parser.lexer = lexer
	parser.prefixFns = map[TokenType]prefixParseFn{
		IDENT:        parser.identifier,
		INT:          parser.integer,
		STRING:       parser.stringLiteral,
		TRUE:         parser.boolean,
		FALSE:        parser.boolean,
		BANG:         parser.prefix,
		MINUS:        parser.prefix,
		LEFT_PAREN:   parser.grouped,
		IF:           parser.ifExpression,
		FN:           parser.function,
		LEFT_BRACKET: parser.array,
		LEFT_BRACE:   parser.hash,
		ILLEGAL:      parser.illegal,
	}
	parser.infixFns = map[TokenType]infixParseFn{
		PLUS:         parser.infix,
		MINUS:        parser.infix,
		STAR:         parser.infix,
		SLASH:        parser.infix,
		EQUAL_EQUAL:  parser.infix,
		BANG_EQUAL:   parser.infix,
		LESS:         parser.infix,
		GREATER:      parser.infix,
		LEFT_PAREN:   parser.call,
		LEFT_BRACKET: parser.index,
	}
	// fill both current and peek
	parser.nextToken()
	parser.nextToken()
	return parser
}

// ParseProgram parses every statement of the input. A statement that fails to
// parse is skipped up to its terminating semicolon so that the following
// statements are still checked. If any statement failed, the returned error is
// a *multierror.Error holding every *ParseError and no program is returned.
func (parser *Parser) ParseProgram() (*Program, error) {
	var errs *multierror.Error
	program := &Program{Statements: []Stmt{}}
	for !parser.currentIs(EOF) {
		stmt, err := parser.statement()
		if err != nil {
			errs = multierror.Append(errs, err)
			parser.synchronize()
		} else {
			program.Statements = append(program.Statements, stmt)
		}
		parser.nextToken()
	}
	if errs != nil {
		errs.ErrorFormat = formatParseErrors
		return nil, errs
	}
	return program, nil
}

// stmt --> letStmt | returnStmt | exprStmt ;
func (parser *Parser) statement() (Stmt, error) {
	switch parser.current.Type {
	case LET:
		return parser.letStatement()
	case RETURN:
		return parser.returnStatement()
	default:
		return parser.expressionStatement()
	}
}

// letStmt --> "let" IDENT "=" expr ";" ;
func (parser *Parser) letStatement() (Stmt, error) {
	if !parser.peekIs(IDENT) {
		return nil, NewParseError(IDENT, parser.peek, "expected identifier")
	}
	parser.nextToken()
	name := parser.current.Literal

	if err := parser.expectPeek(EQUAL); err != nil {
		return nil, err
	}
	parser.nextToken()

	value, err := parser.expression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := parser.expectPeek(SEMICOLON); err != nil {
		return nil, err
	}
	return NewLetStmt(name, value), nil
}

// returnStmt --> "return" expr ";" ;
func (parser *Parser) returnStatement() (Stmt, error) {
	parser.nextToken()
	value, err := parser.expression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := parser.expectPeek(SEMICOLON); err != nil {
		return nil, err
	}
	return NewReturnStmt(value), nil
}

// exprStmt --> expr ";"? ;
func (parser *Parser) expressionStatement() (Stmt, error) {
	expr, err := parser.expression(LOWEST)
	if err != nil {
		return nil, err
	}
	if parser.peekIs(SEMICOLON) {
		parser.nextToken()
	}
	return NewExpressionStmt(expr), nil
}

// block --> "{" stmt* "}" ;
//
// The current token is the opening brace. On return, the current token is
// the closing brace.
func (parser *Parser) block() ([]Stmt, error) {
	parser.nextToken()
	stmts := []Stmt{}
	for !parser.currentIs(RIGHT_BRACE) {
		if parser.currentIs(EOF) {
			return nil, NewParseError(RIGHT_BRACE, parser.current, "expected }")
		}
		stmt, err := parser.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		parser.nextToken()
	}
	return stmts, nil
}

// expression parses an expression whose operators all bind tighter than the
// given precedence. Operators of equal precedence are left to the caller,
// which makes binary operators left-associative.
func (parser *Parser) expression(precedence Precedence) (Expr, error) {
	prefix, ok := parser.prefixFns[parser.current.Type]
	if !ok {
		return nil, NewParseError("", parser.current, fmt.Sprintf(
			"no prefix parse function for %s found", parser.current.Type,
		))
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for !parser.peekIs(SEMICOLON) && precedence < precedenceOf(parser.peek.Type) {
		infix, ok := parser.infixFns[parser.peek.Type]
		if !ok {
			return left, nil
		}
		parser.nextToken()
		if left, err = infix(left); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (parser *Parser) identifier() (Expr, error) {
	return NewIdentifierExpr(parser.current.Literal), nil
}

func (parser *Parser) integer() (Expr, error) {
	value, err := strconv.ParseInt(parser.current.Literal, 10, 64)
	if err != nil {
		return nil, NewParseError("", parser.current, fmt.Sprintf(
			"could not parse %q as integer", parser.current.Literal,
		))
	}
	return NewLiteralExpr(NewIntLiteral(value)), nil
}

func (parser *Parser) stringLiteral() (Expr, error) {
	return NewLiteralExpr(NewStringLiteral(parser.current.Literal)), nil
}

func (parser *Parser) boolean() (Expr, error) {
	return NewLiteralExpr(NewBoolLiteral(parser.currentIs(TRUE))), nil
}

func (parser *Parser) illegal() (Expr, error) {
	return nil, NewParseError("", parser.current, "illegal token: "+parser.current.Literal)
}

// prefix --> ( "!" | "-" ) expr ;
func (parser *Parser) prefix() (Expr, error) {
	op := parser.current.Type
	parser.nextToken()
	right, err := parser.expression(PREFIX)
	if err != nil {
		return nil, err
	}
	return NewPrefixExpr(op, right), nil
}

func (parser *Parser) infix(left Expr) (Expr, error) {
	op := parser.current.Type
	precedence := precedenceOf(op)
	parser.nextToken()
	right, err := parser.expression(precedence)
	if err != nil {
		return nil, err
	}
	return NewInfixExpr(op, left, right), nil
}

// "(" expr ")"
func (parser *Parser) grouped() (Expr, error) {
	parser.nextToken()
	expr, err := parser.expression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := parser.expectPeek(RIGHT_PAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

// "if" "(" expr ")" block ( "else" block )?
func (parser *Parser) ifExpression() (Expr, error) {
	if err := parser.expectPeek(LEFT_PAREN); err != nil {
		return nil, err
	}
	parser.nextToken()
	cond, err := parser.expression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := parser.expectPeek(RIGHT_PAREN); err != nil {
		return nil, err
	}
	if err := parser.expectPeek(LEFT_BRACE); err != nil {
		return nil, err
	}
	consequence, err := parser.block()
	if err != nil {
		return nil, err
	}

	var alternative []Stmt
	if parser.peekIs(ELSE) {
		parser.nextToken()
		if err := parser.expectPeek(LEFT_BRACE); err != nil {
			return nil, err
		}
		if alternative, err = parser.block(); err != nil {
			return nil, err
		}
	}
	return NewIfExpr(cond, consequence, alternative), nil
}

// "fn" "(" params? ")" block
func (parser *Parser) function() (Expr, error) {
	if err := parser.expectPeek(LEFT_PAREN); err != nil {
		return nil, err
	}
	params, err := parser.parameters()
	if err != nil {
		return nil, err
	}
	if err := parser.expectPeek(LEFT_BRACE); err != nil {
		return nil, err
	}
	body, err := parser.block()
	if err != nil {
		return nil, err
	}
	return NewFunctionExpr(params, body), nil
}

// params --> IDENT ( "," IDENT )* ;
//
// The current token is the opening parenthesis. On return, the current token
// is the closing parenthesis.
func (parser *Parser) parameters() ([]string, error) {
	params := []string{}
	if parser.peekIs(RIGHT_PAREN) {
		parser.nextToken()
		return params, nil
	}

	if err := parser.expectPeek(IDENT); err != nil {
		return nil, err
	}
	params = append(params, parser.current.Literal)
	for parser.peekIs(COMMA) {
		parser.nextToken()
		if err := parser.expectPeek(IDENT); err != nil {
			return nil, err
		}
		params = append(params, parser.current.Literal)
	}

	if err := parser.expectPeek(RIGHT_PAREN); err != nil {
		return nil, err
	}
	return params, nil
}

// infix "(" exprs? ")"
func (parser *Parser) call(callee Expr) (Expr, error) {
	args, err := parser.expressionList(RIGHT_PAREN)
	if err != nil {
		return nil, err
	}
	return NewCallExpr(callee, args), nil
}

// infix "[" expr "]"
func (parser *Parser) index(left Expr) (Expr, error) {
	parser.nextToken()
	index, err := parser.expression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := parser.expectPeek(RIGHT_BRACKET); err != nil {
		return nil, err
	}
	return NewIndexExpr(left, index), nil
}

// "[" exprs? "]"
func (parser *Parser) array() (Expr, error) {
	elements, err := parser.expressionList(RIGHT_BRACKET)
	if err != nil {
		return nil, err
	}
	return NewLiteralExpr(NewArrayLiteral(elements)), nil
}

// "{" ( expr ":" expr ( "," expr ":" expr )* )? "}"
func (parser *Parser) hash() (Expr, error) {
	pairs := []HashPair{}
	for !parser.peekIs(RIGHT_BRACE) {
		parser.nextToken()
		key, err := parser.expression(LOWEST)
		if err != nil {
			return nil, err
		}
		if err := parser.expectPeek(COLON); err != nil {
			return nil, err
		}
		parser.nextToken()
		value, err := parser.expression(LOWEST)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, HashPair{key, value})

		if !parser.peekIs(RIGHT_BRACE) {
			if err := parser.expectPeek(COMMA); err != nil {
				return nil, err
			}
		}
	}
	parser.nextToken()
	return NewLiteralExpr(NewHashLiteral(pairs)), nil
}

// exprs --> expr ( "," expr )* ;
//
// The current token is the opening delimiter. On return, the current token is
// the given closing delimiter.
func (parser *Parser) expressionList(end TokenType) ([]Expr, error) {
	list := []Expr{}
	if parser.peekIs(end) {
		parser.nextToken()
		return list, nil
	}

	parser.nextToken()
	expr, err := parser.expression(LOWEST)
	if err != nil {
		return nil, err
	}
	list = append(list, expr)
	for parser.peekIs(COMMA) {
		parser.nextToken()
		parser.nextToken()
		if expr, err = parser.expression(LOWEST); err != nil {
			return nil, err
		}
		list = append(list, expr)
	}

	if err := parser.expectPeek(end); err != nil {
		return nil, err
	}
	return list, nil
}

// expectPeek consumes the peeked token if it has the given type.
func (parser *Parser) expectPeek(typ TokenType) error {
	if parser.peekIs(typ) {
		parser.nextToken()
		return nil
	}
	return NewParseError(typ, parser.peek, fmt.Sprintf("expected next token to be %s", typ))
}

// synchronize skips the rest of a statement that failed to parse.
func (parser *Parser) synchronize() {
	for !parser.currentIs(SEMICOLON) && !parser.currentIs(EOF) {
		parser.nextToken()
	}
}

func (parser *Parser) nextToken() {
	parser.current = parser.peek
	parser.peek = parser.lexer.NextToken()
}

func (parser *Parser) currentIs(typ TokenType) bool {
	return parser.current.Type == typ
}

func (parser *Parser) peekIs(typ TokenType) bool {
	return parser.peek.Type == typ
}
