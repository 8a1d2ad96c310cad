/*
Package monkey implements a lexer, a Pratt parser and a tree-walking evaluator
for the Monkey language.

Grammar

	program    --> stmt* EOF ;
	stmt       --> letStmt
	             | returnStmt
	             | exprStmt ;
	letStmt    --> "let" IDENT "=" expr ";" ;
	returnStmt --> "return" expr ";" ;
	exprStmt   --> expr ";"? ;
	block      --> "{" stmt* "}" ;
	expr       --> prefix ( infixOp expr | call | index )* ;
	prefix     --> INT | STRING | IDENT
	             | "true" | "false"
	             | ( "!" | "-" ) expr
	             | "(" expr ")"
	             | "if" "(" expr ")" block ( "else" block )?
	             | "fn" "(" params? ")" block
	             | "[" exprs? "]"
	             | "{" ( pair ( "," pair )* )? "}" ;
	pair       --> expr ":" expr ;
	params     --> IDENT ( "," IDENT )* ;
	call       --> "(" exprs? ")" ;
	index      --> "[" expr "]" ;
	exprs      --> expr ( "," expr )* ;
	infixOp    --> "+" | "-" | "*" | "/" | "<" | ">" | "==" | "!=" ;

Operators bind, from loosest to tightest: equality, comparison, sum, product,
prefix, call and index. Infix operators of the same precedence associate to
the left.

Function calls and if branches each run in a new scope enclosed by the one
they appear in, so let bindings made inside them are not visible outside.
*/
package monkey
