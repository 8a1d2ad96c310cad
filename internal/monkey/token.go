package monkey

import "strings"

// Token represents a group of characters with the meaning that was assigned
// to it during the scanning phase. Tokens are compared by value.
type Token struct {
	Type    TokenType
	Literal string
}

// NewToken creates a new token
func NewToken(typ TokenType, literal string) Token {
	return Token{typ, literal}
}

func newIllegalToken(message string) Token {
	return Token{ILLEGAL, message}
}

// String returns the token as it would be written in source code, so that a
// sequence of rendered tokens can be scanned again.
func (t Token) String() string {
	switch t.Type {
	case STRING:
		return quote(t.Literal)
	case ILLEGAL:
		return "ILLEGAL(" + t.Literal + ")"
	case EOF:
		return "EOF"
	}
	return t.Literal
}

// TokenType is a just a wrapped string used to represent token's type. For
// operators and delimiters the value is the token's spelling.
type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	IDENT  TokenType = "IDENT"
	INT    TokenType = "INT"
	STRING TokenType = "STRING"

	// Operators
	EQUAL       TokenType = "="
	PLUS        TokenType = "+"
	MINUS       TokenType = "-"
	BANG        TokenType = "!"
	STAR        TokenType = "*"
	SLASH       TokenType = "/"
	EQUAL_EQUAL TokenType = "=="
	BANG_EQUAL  TokenType = "!="
	LESS        TokenType = "<"
	GREATER     TokenType = ">"

	// Delimiters
	COMMA         TokenType = ","
	SEMICOLON     TokenType = ";"
	COLON         TokenType = ":"
	LEFT_PAREN    TokenType = "("
	RIGHT_PAREN   TokenType = ")"
	LEFT_BRACE    TokenType = "{"
	RIGHT_BRACE   TokenType = "}"
	LEFT_BRACKET  TokenType = "["
	RIGHT_BRACKET TokenType = "]"

	// Keywords
	FN     TokenType = "FN"
	LET    TokenType = "LET"
	IF     TokenType = "IF"
	ELSE   TokenType = "ELSE"
	RETURN TokenType = "RETURN"
	TRUE   TokenType = "TRUE"
	FALSE  TokenType = "FALSE"
)

var keywords = map[string]TokenType{
	"fn":     FN,
	"let":    LET,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
	"true":   TRUE,
	"false":  FALSE,
}

// lookupIdent resolves a scanned word to its keyword type, or IDENT.
func lookupIdent(ident string) TokenType {
	if typ, ok := keywords[ident]; ok {
		return typ
	}
	return IDENT
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

// quote renders s as a string literal using only the escapes the lexer
// understands.
func quote(s string) string {
	return `"` + escaper.Replace(s) + `"`
}
